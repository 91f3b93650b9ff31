package domain

import "time"

// WorkoutType distinguishes a gym's template sheets from ones tailored to a
// single client.
type WorkoutType string

const (
	WorkoutTypeDefault WorkoutType = "default"
	WorkoutTypeCustom  WorkoutType = "custom"
)

// ValidWorkoutType reports whether s is one of the known sheet types.
func ValidWorkoutType(s string) bool {
	switch WorkoutType(s) {
	case WorkoutTypeDefault, WorkoutTypeCustom:
		return true
	}
	return false
}

// WorkoutSheet groups workouts into a plan. Users are linked to sheets
// through a join table; a sheet can serve many users and vice versa.
type WorkoutSheet struct {
	ID        string
	Name      string
	Type      WorkoutType
	IsActive  bool
	CompanyID string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Workout is one training day inside a sheet.
type Workout struct {
	ID             string
	Name           string
	WorkoutSheetID string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
