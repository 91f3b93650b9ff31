package sqlite

import (
	"context"

	"github.com/ironloft/gymd/internal/gym/domain"
)

type exercisesRepo struct {
	db dbtx
}

const exerciseColumns = `id, name, reps, sets, muscle_group, rest_period, video_link, workout_id, created_at, updated_at`

func scanExercise(row interface{ Scan(...any) error }) (domain.Exercise, error) {
	var (
		e     domain.Exercise
		group string
	)
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Reps,
		&e.Sets,
		&group,
		&e.RestPeriod,
		&e.VideoLink,
		&e.WorkoutID,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return domain.Exercise{}, err
	}
	e.MuscleGroup = domain.MuscleGroup(group)
	return e, nil
}

func (r *exercisesRepo) GetExerciseByID(ctx context.Context, id string) (domain.Exercise, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+exerciseColumns+` FROM exercises WHERE id = ?`, id)

	e, err := scanExercise(row)
	if err != nil {
		return domain.Exercise{}, mapNotFound(err)
	}
	return e, nil
}

func (r *exercisesRepo) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+exerciseColumns+` FROM exercises ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []domain.Exercise
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

func (r *exercisesRepo) CreateExercise(ctx context.Context, e domain.Exercise) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO exercises (id, name, reps, sets, muscle_group, rest_period, video_link, workout_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Reps, e.Sets, string(e.MuscleGroup), e.RestPeriod, e.VideoLink, e.WorkoutID)
	return mapConstraint(err)
}

func (r *exercisesRepo) UpdateExercise(ctx context.Context, e domain.Exercise) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE exercises
		SET name = ?, reps = ?, sets = ?, muscle_group = ?, rest_period = ?,
		    video_link = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		e.Name, e.Reps, e.Sets, string(e.MuscleGroup), e.RestPeriod, e.VideoLink, e.ID)
	if err != nil {
		return err
	}
	return mapNoRows(res)
}

func (r *exercisesRepo) DeleteExercise(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM exercises WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return mapNoRows(res)
}
