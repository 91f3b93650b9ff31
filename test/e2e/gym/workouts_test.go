package gym_test

import (
	"net/http"
	"testing"

	"github.com/ironloft/gymd/pkg/api"
	"github.com/stretchr/testify/require"
)

func TestWorkoutSheetFlow(t *testing.T) {
	ts := setupServer(t)

	admin := login(t, ts, adminUsername, adminPassword)
	member := login(t, ts, memberUsername, memberPassword)

	// Create a sheet
	var sheet api.WorkoutSheetResponse
	resp := doJSON(t, http.MethodPost, ts.URL+"/v1/workout-sheets", admin.AccessToken,
		api.CreateWorkoutSheetRequest{Name: "Strength Block", Type: "custom", CompanyID: ts.adminCompanyID}, &sheet)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, sheet.IsActive)

	// Add a workout inside it
	var workout api.WorkoutResponse
	resp = doJSON(t, http.MethodPost, ts.URL+"/v1/workout-sheets/"+sheet.ID+"/workouts", admin.AccessToken,
		api.CreateWorkoutRequest{Name: "Day 1 - Push"}, &workout)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, sheet.ID, workout.WorkoutSheetID)

	// Put an exercise into the workout
	var exercise api.ExerciseResponse
	resp = doJSON(t, http.MethodPost, ts.URL+"/v1/exercises", admin.AccessToken,
		api.CreateExerciseRequest{
			Name:        "Bench Press",
			Reps:        5,
			Sets:        5,
			MuscleGroup: "CHEST",
			RestPeriod:  180,
			WorkoutID:   workout.ID,
		}, &exercise)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Assign the sheet to the member and read it back from their side
	resp = doJSON(t, http.MethodPost, ts.URL+"/v1/workout-sheets/"+sheet.ID+"/users/"+member.UserID, admin.AccessToken, nil, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	var memberSheets []api.WorkoutSheetResponse
	resp = doJSON(t, http.MethodGet, ts.URL+"/v1/users/"+member.UserID+"/workout-sheets", member.AccessToken, nil, &memberSheets)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, memberSheets, 1)
	require.Equal(t, sheet.ID, memberSheets[0].ID)

	// Unassign and verify
	resp = doJSON(t, http.MethodDelete, ts.URL+"/v1/workout-sheets/"+sheet.ID+"/users/"+member.UserID, admin.AccessToken, nil, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, ts.URL+"/v1/users/"+member.UserID+"/workout-sheets", member.AccessToken, nil, &memberSheets)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, memberSheets)

	// Deleting the sheet cascades
	resp = doJSON(t, http.MethodDelete, ts.URL+"/v1/workout-sheets/"+sheet.ID, admin.AccessToken, nil, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, ts.URL+"/v1/workout-sheets/"+sheet.ID+"/workouts", admin.AccessToken, nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	ts := setupServer(t)

	var live api.HealthResponse
	resp := doJSON(t, http.MethodGet, ts.URL+"/livez", "", nil, &live)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", live.Status)

	var ready api.HealthResponse
	resp = doJSON(t, http.MethodGet, ts.URL+"/readyz", "", nil, &ready)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}
