// Package api holds the wire-level request and response types for the gymd
// HTTP API, shared between the server handlers and any Go client.
package api

import "time"

// LoginRequest is the body of POST /v1/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse echoes the issued token pair plus enough of the user record
// for a client to bootstrap its session without a second round trip.
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Role         string `json:"role"`
	UserID       string `json:"user_id"`
	CompanyID    string `json:"company_id"`
}

// RefreshRequest is the body of POST /v1/auth/refresh.
type RefreshRequest struct {
	UserID       string `json:"user_id"`
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse carries a freshly rotated token pair.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// CreateUserRequest is the body of POST /v1/users.
type CreateUserRequest struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	CompanyID string `json:"company_id"`
}

// UpdateUserRequest is the body of PUT /v1/users/{id}. Nil fields are left
// unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// UserResponse is a user record with the password hash stripped.
type UserResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	CompanyID   string     `json:"company_id"`
	LastPayment *time.Time `json:"last_payment,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateCompanyRequest is the body of POST /v1/companies.
type CreateCompanyRequest struct {
	Name string `json:"name"`
}

// UpdateCompanyRequest is the body of PUT /v1/companies/{id}.
type UpdateCompanyRequest struct {
	Name string `json:"name"`
}

// CompanyResponse is a company record.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateExerciseRequest is the body of POST /v1/exercises.
type CreateExerciseRequest struct {
	Name        string `json:"name"`
	Reps        int    `json:"reps"`
	Sets        int    `json:"sets"`
	MuscleGroup string `json:"muscle_group"`
	RestPeriod  int    `json:"rest_period"`
	VideoLink   string `json:"video_link,omitempty"`
	WorkoutID   string `json:"workout_id"`
}

// UpdateExerciseRequest is the body of PUT /v1/exercises/{id}. Nil fields
// are left unchanged.
type UpdateExerciseRequest struct {
	Name        *string `json:"name,omitempty"`
	Reps        *int    `json:"reps,omitempty"`
	Sets        *int    `json:"sets,omitempty"`
	MuscleGroup *string `json:"muscle_group,omitempty"`
	RestPeriod  *int    `json:"rest_period,omitempty"`
	VideoLink   *string `json:"video_link,omitempty"`
}

// ExerciseResponse is an exercise record.
type ExerciseResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Reps        int       `json:"reps"`
	Sets        int       `json:"sets"`
	MuscleGroup string    `json:"muscle_group"`
	RestPeriod  int       `json:"rest_period"`
	VideoLink   string    `json:"video_link,omitempty"`
	WorkoutID   string    `json:"workout_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateWorkoutSheetRequest is the body of POST /v1/workout-sheets.
type CreateWorkoutSheetRequest struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	CompanyID string `json:"company_id"`
}

// UpdateWorkoutSheetRequest is the body of PUT /v1/workout-sheets/{id}.
type UpdateWorkoutSheetRequest struct {
	Name     *string `json:"name,omitempty"`
	Type     *string `json:"type,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// CreateWorkoutRequest is the body of POST /v1/workout-sheets/{id}/workouts.
type CreateWorkoutRequest struct {
	Name string `json:"name"`
}

// WorkoutSheetResponse is a workout sheet record.
type WorkoutSheetResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	IsActive  bool      `json:"is_active"`
	CompanyID string    `json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HealthResponse is returned by the livez and readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each critical dependency.
type HealthChecks struct {
	Database string `json:"database"`
}

// WorkoutResponse is a workout inside a sheet.
type WorkoutResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	WorkoutSheetID string    `json:"workout_sheet_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
