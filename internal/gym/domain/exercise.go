package domain

import "time"

// MuscleGroup tags an exercise with the primary muscle it targets.
type MuscleGroup string

const (
	MuscleGroupChest     MuscleGroup = "CHEST"
	MuscleGroupBack      MuscleGroup = "BACK"
	MuscleGroupLegs      MuscleGroup = "LEGS"
	MuscleGroupShoulders MuscleGroup = "SHOULDERS"
	MuscleGroupArms      MuscleGroup = "ARMS"
	MuscleGroupCore      MuscleGroup = "CORE"
)

// Exercise is a single prescribed movement inside a workout.
type Exercise struct {
	ID          string
	Name        string
	Reps        int
	Sets        int
	MuscleGroup MuscleGroup
	RestPeriod  int // seconds between sets
	VideoLink   string
	WorkoutID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
