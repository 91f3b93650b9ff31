package service

import (
	"context"
	"errors"

	"github.com/ironloft/gymd/internal/gym/domain"
	"github.com/ironloft/gymd/internal/gym/store"
	"github.com/ironloft/gymd/pkg/idx"
)

// WorkoutSheetService manages training plans, the workouts inside them and
// the user links that assign a plan to a member.
type WorkoutSheetService struct {
	Store store.Store
}

type WorkoutSheetParams struct {
	Name      string
	Type      string
	IsActive  bool
	CompanyID string
}

func (s *WorkoutSheetService) Create(ctx context.Context, p WorkoutSheetParams) (domain.WorkoutSheet, error) {
	if p.Name == "" || !domain.ValidWorkoutType(p.Type) {
		return domain.WorkoutSheet{}, ErrValidation
	}

	sheet := domain.WorkoutSheet{
		ID:        idx.New().String(),
		Name:      p.Name,
		Type:      domain.WorkoutType(p.Type),
		IsActive:  p.IsActive,
		CompanyID: p.CompanyID,
	}
	if err := s.Store.WorkoutSheets().CreateWorkoutSheet(ctx, sheet); err != nil {
		return domain.WorkoutSheet{}, err
	}
	return s.Get(ctx, sheet.ID)
}

func (s *WorkoutSheetService) Get(ctx context.Context, id string) (domain.WorkoutSheet, error) {
	sheet, err := s.Store.WorkoutSheets().GetWorkoutSheetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.WorkoutSheet{}, ErrNotFound
		}
		return domain.WorkoutSheet{}, err
	}
	return sheet, nil
}

func (s *WorkoutSheetService) List(ctx context.Context) ([]domain.WorkoutSheet, error) {
	return s.Store.WorkoutSheets().ListWorkoutSheets(ctx)
}

// ListByUser returns the sheets linked to a member.
func (s *WorkoutSheetService) ListByUser(ctx context.Context, userID string) ([]domain.WorkoutSheet, error) {
	return s.Store.WorkoutSheets().ListWorkoutSheetsByUserID(ctx, userID)
}

// ListWorkouts returns the workouts inside a sheet, checking the sheet
// exists first so a bogus id is a 404 rather than an empty list.
func (s *WorkoutSheetService) ListWorkouts(ctx context.Context, sheetID string) ([]domain.Workout, error) {
	if _, err := s.Get(ctx, sheetID); err != nil {
		return nil, err
	}
	return s.Store.WorkoutSheets().ListWorkoutsBySheetID(ctx, sheetID)
}

// AddWorkout creates a workout inside an existing sheet.
func (s *WorkoutSheetService) AddWorkout(ctx context.Context, sheetID, name string) (domain.Workout, error) {
	if name == "" {
		return domain.Workout{}, ErrValidation
	}
	if _, err := s.Get(ctx, sheetID); err != nil {
		return domain.Workout{}, err
	}

	wk := domain.Workout{
		ID:             idx.New().String(),
		Name:           name,
		WorkoutSheetID: sheetID,
	}
	if err := s.Store.WorkoutSheets().CreateWorkout(ctx, wk); err != nil {
		return domain.Workout{}, err
	}
	return wk, nil
}

func (s *WorkoutSheetService) Update(ctx context.Context, id string, p WorkoutSheetParams) (domain.WorkoutSheet, error) {
	if !domain.ValidWorkoutType(p.Type) {
		return domain.WorkoutSheet{}, ErrValidation
	}

	sheet, err := s.Get(ctx, id)
	if err != nil {
		return domain.WorkoutSheet{}, err
	}

	sheet.Name = p.Name
	sheet.Type = domain.WorkoutType(p.Type)
	sheet.IsActive = p.IsActive

	if err := s.Store.WorkoutSheets().UpdateWorkoutSheet(ctx, sheet); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.WorkoutSheet{}, ErrNotFound
		}
		return domain.WorkoutSheet{}, err
	}
	return s.Get(ctx, id)
}

func (s *WorkoutSheetService) Delete(ctx context.Context, id string) error {
	if err := s.Store.WorkoutSheets().DeleteWorkoutSheet(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// LinkUser assigns a sheet to a member. Both sides must exist; linking twice
// is a no-op.
func (s *WorkoutSheetService) LinkUser(ctx context.Context, sheetID, userID string) error {
	if _, err := s.Get(ctx, sheetID); err != nil {
		return err
	}
	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Store.WorkoutSheets().LinkUser(ctx, sheetID, userID)
}

func (s *WorkoutSheetService) UnlinkUser(ctx context.Context, sheetID, userID string) error {
	if err := s.Store.WorkoutSheets().UnlinkUser(ctx, sheetID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
