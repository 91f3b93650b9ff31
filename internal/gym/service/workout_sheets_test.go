package service

import (
	"context"
	"testing"

	"github.com/ironloft/gymd/internal/gym/domain"
	"github.com/ironloft/gymd/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestWorkoutSheetLifecycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	sheets := &WorkoutSheetService{Store: env.store}
	u := env.seedUser(t, "alice", "hunter2!", domain.RoleClient)

	sheet, err := sheets.Create(ctx, WorkoutSheetParams{
		Name:      "Hypertrophy Block A",
		Type:      "custom",
		IsActive:  true,
		CompanyID: u.CompanyID,
	})
	require.NoError(t, err)

	t.Run("invalid type rejected", func(t *testing.T) {
		_, err := sheets.Create(ctx, WorkoutSheetParams{Name: "X", Type: "weird", CompanyID: u.CompanyID})
		require.ErrorIs(t, err, ErrValidation)
	})

	wk, err := sheets.AddWorkout(ctx, sheet.ID, "Push Day")
	require.NoError(t, err)
	require.Equal(t, sheet.ID, wk.WorkoutSheetID)

	workouts, err := sheets.ListWorkouts(ctx, sheet.ID)
	require.NoError(t, err)
	require.Len(t, workouts, 1)

	t.Run("workouts of a missing sheet are not found", func(t *testing.T) {
		_, err := sheets.ListWorkouts(ctx, idx.New().String())
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("link and unlink user", func(t *testing.T) {
		require.NoError(t, sheets.LinkUser(ctx, sheet.ID, u.ID))
		// Linking twice is a no-op.
		require.NoError(t, sheets.LinkUser(ctx, sheet.ID, u.ID))

		linked, err := sheets.ListByUser(ctx, u.ID)
		require.NoError(t, err)
		require.Len(t, linked, 1)
		require.Equal(t, sheet.ID, linked[0].ID)

		require.NoError(t, sheets.UnlinkUser(ctx, sheet.ID, u.ID))
		require.ErrorIs(t, sheets.UnlinkUser(ctx, sheet.ID, u.ID), ErrNotFound)
	})

	t.Run("link to missing user fails", func(t *testing.T) {
		require.ErrorIs(t, sheets.LinkUser(ctx, sheet.ID, idx.New().String()), ErrNotFound)
	})

	updated, err := sheets.Update(ctx, sheet.ID, WorkoutSheetParams{
		Name:     "Hypertrophy Block B",
		Type:     "default",
		IsActive: false,
	})
	require.NoError(t, err)
	require.Equal(t, "Hypertrophy Block B", updated.Name)
	require.Equal(t, domain.WorkoutTypeDefault, updated.Type)
	require.False(t, updated.IsActive)

	require.NoError(t, sheets.Delete(ctx, sheet.ID))
	require.ErrorIs(t, sheets.Delete(ctx, sheet.ID), ErrNotFound)

	// Cascade removed the workouts too.
	_, err = sheets.ListWorkouts(ctx, sheet.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestExerciseLifecycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	sheets := &WorkoutSheetService{Store: env.store}
	exercises := &ExerciseService{Store: env.store}
	u := env.seedUser(t, "alice", "hunter2!", domain.RoleClient)

	sheet, err := sheets.Create(ctx, WorkoutSheetParams{
		Name: "Block A", Type: "default", IsActive: true, CompanyID: u.CompanyID,
	})
	require.NoError(t, err)
	wk, err := sheets.AddWorkout(ctx, sheet.ID, "Leg Day")
	require.NoError(t, err)

	e, err := exercises.Create(ctx, ExerciseParams{
		Name:        "Back Squat",
		Reps:        5,
		Sets:        3,
		MuscleGroup: "LEGS",
		RestPeriod:  180,
		WorkoutID:   wk.ID,
	})
	require.NoError(t, err)
	require.Equal(t, domain.MuscleGroupLegs, e.MuscleGroup)

	updated, err := exercises.Update(ctx, e.ID, ExerciseParams{
		Name: "Front Squat", Reps: 8, Sets: 4, MuscleGroup: "LEGS", RestPeriod: 120, WorkoutID: wk.ID,
	})
	require.NoError(t, err)
	require.Equal(t, "Front Squat", updated.Name)
	require.Equal(t, 8, updated.Reps)

	all, err := exercises.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, exercises.Delete(ctx, e.ID))
	require.ErrorIs(t, exercises.Delete(ctx, e.ID), ErrNotFound)
}
