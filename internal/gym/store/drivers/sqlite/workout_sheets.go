package sqlite

import (
	"context"
	"database/sql"

	"github.com/ironloft/gymd/internal/gym/domain"
)

type workoutSheetsRepo struct {
	db dbtx
}

const sheetColumns = `id, name, type, is_active, company_id, created_at, updated_at`

func scanSheet(row interface{ Scan(...any) error }) (domain.WorkoutSheet, error) {
	var (
		s         domain.WorkoutSheet
		sheetType string
	)
	err := row.Scan(&s.ID, &s.Name, &sheetType, &s.IsActive, &s.CompanyID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.WorkoutSheet{}, err
	}
	s.Type = domain.WorkoutType(sheetType)
	return s, nil
}

func (r *workoutSheetsRepo) GetWorkoutSheetByID(ctx context.Context, id string) (domain.WorkoutSheet, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+sheetColumns+` FROM workout_sheets WHERE id = ?`, id)

	s, err := scanSheet(row)
	if err != nil {
		return domain.WorkoutSheet{}, mapNotFound(err)
	}
	return s, nil
}

func (r *workoutSheetsRepo) ListWorkoutSheets(ctx context.Context) ([]domain.WorkoutSheet, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+sheetColumns+` FROM workout_sheets ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSheets(rows)
}

func (r *workoutSheetsRepo) ListWorkoutSheetsByUserID(
	ctx context.Context,
	userID string,
) ([]domain.WorkoutSheet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ws.id, ws.name, ws.type, ws.is_active, ws.company_id, ws.created_at, ws.updated_at
		FROM workout_sheets ws
		JOIN user_workout_sheets uws ON uws.workout_sheet_id = ws.id
		WHERE uws.user_id = ?
		ORDER BY ws.created_at, ws.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSheets(rows)
}

func collectSheets(rows *sql.Rows) ([]domain.WorkoutSheet, error) {
	var sheets []domain.WorkoutSheet
	for rows.Next() {
		s, err := scanSheet(rows)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, s)
	}
	return sheets, rows.Err()
}

func (r *workoutSheetsRepo) ListWorkoutsBySheetID(
	ctx context.Context,
	sheetID string,
) ([]domain.Workout, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, workout_sheet_id, created_at, updated_at
		FROM workouts WHERE workout_sheet_id = ?
		ORDER BY created_at, id`, sheetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []domain.Workout
	for rows.Next() {
		var wk domain.Workout
		if err := rows.Scan(&wk.ID, &wk.Name, &wk.WorkoutSheetID, &wk.CreatedAt, &wk.UpdatedAt); err != nil {
			return nil, err
		}
		workouts = append(workouts, wk)
	}
	return workouts, rows.Err()
}

func (r *workoutSheetsRepo) CreateWorkoutSheet(ctx context.Context, s domain.WorkoutSheet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO workout_sheets (id, name, type, is_active, company_id)
		VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.Name, string(s.Type), s.IsActive, s.CompanyID)
	return mapConstraint(err)
}

func (r *workoutSheetsRepo) CreateWorkout(ctx context.Context, wk domain.Workout) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO workouts (id, name, workout_sheet_id) VALUES (?, ?, ?)`,
		wk.ID, wk.Name, wk.WorkoutSheetID)
	return mapConstraint(err)
}

func (r *workoutSheetsRepo) UpdateWorkoutSheet(ctx context.Context, s domain.WorkoutSheet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE workout_sheets
		SET name = ?, type = ?, is_active = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		s.Name, string(s.Type), s.IsActive, s.ID)
	if err != nil {
		return err
	}
	return mapNoRows(res)
}

func (r *workoutSheetsRepo) DeleteWorkoutSheet(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workout_sheets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return mapNoRows(res)
}

func (r *workoutSheetsRepo) LinkUser(ctx context.Context, sheetID, userID string) error {
	// ON CONFLICT DO NOTHING keeps linking idempotent.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_workout_sheets (user_id, workout_sheet_id)
		VALUES (?, ?)
		ON CONFLICT (user_id, workout_sheet_id) DO NOTHING`,
		userID, sheetID)
	return err
}

func (r *workoutSheetsRepo) UnlinkUser(ctx context.Context, sheetID, userID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM user_workout_sheets
		WHERE user_id = ? AND workout_sheet_id = ?`,
		userID, sheetID)
	if err != nil {
		return err
	}
	return mapNoRows(res)
}
