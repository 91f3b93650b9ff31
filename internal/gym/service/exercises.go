package service

import (
	"context"
	"errors"

	"github.com/ironloft/gymd/internal/gym/domain"
	"github.com/ironloft/gymd/internal/gym/store"
	"github.com/ironloft/gymd/pkg/idx"
)

// ExerciseService manages the movements prescribed inside workouts.
type ExerciseService struct {
	Store store.Store
}

type ExerciseParams struct {
	Name        string
	Reps        int
	Sets        int
	MuscleGroup string
	RestPeriod  int
	VideoLink   string
	WorkoutID   string
}

func (s *ExerciseService) Create(ctx context.Context, p ExerciseParams) (domain.Exercise, error) {
	if p.Name == "" || p.WorkoutID == "" {
		return domain.Exercise{}, ErrValidation
	}

	e := domain.Exercise{
		ID:          idx.New().String(),
		Name:        p.Name,
		Reps:        p.Reps,
		Sets:        p.Sets,
		MuscleGroup: domain.MuscleGroup(p.MuscleGroup),
		RestPeriod:  p.RestPeriod,
		VideoLink:   p.VideoLink,
		WorkoutID:   p.WorkoutID,
	}
	if err := s.Store.Exercises().CreateExercise(ctx, e); err != nil {
		return domain.Exercise{}, err
	}
	return s.Get(ctx, e.ID)
}

func (s *ExerciseService) Get(ctx context.Context, id string) (domain.Exercise, error) {
	e, err := s.Store.Exercises().GetExerciseByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Exercise{}, ErrNotFound
		}
		return domain.Exercise{}, err
	}
	return e, nil
}

func (s *ExerciseService) List(ctx context.Context) ([]domain.Exercise, error) {
	return s.Store.Exercises().ListExercises(ctx)
}

func (s *ExerciseService) Update(ctx context.Context, id string, p ExerciseParams) (domain.Exercise, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return domain.Exercise{}, err
	}

	e.Name = p.Name
	e.Reps = p.Reps
	e.Sets = p.Sets
	e.MuscleGroup = domain.MuscleGroup(p.MuscleGroup)
	e.RestPeriod = p.RestPeriod
	e.VideoLink = p.VideoLink

	if err := s.Store.Exercises().UpdateExercise(ctx, e); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Exercise{}, ErrNotFound
		}
		return domain.Exercise{}, err
	}
	return s.Get(ctx, id)
}

func (s *ExerciseService) Delete(ctx context.Context, id string) error {
	if err := s.Store.Exercises().DeleteExercise(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
