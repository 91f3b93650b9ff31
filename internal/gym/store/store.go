package store

import (
	"context"
	"errors"

	"github.com/ironloft/gymd/internal/gym/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// independently testable; the services depend only on this interface, never
// on a concrete driver.
type Store interface {
	Users() Users
	Companies() Companies
	RefreshTokens() RefreshTokens
	WorkoutSheets() WorkoutSheets
	Exercises() Exercises

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during credential verification and role checks.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// ListUsers returns all users ordered by creation date.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUser overwrites the mutable fields (name, password_hash, role,
	// last_payment) and bumps updated_at.
	UpdateUser(ctx context.Context, u domain.User) error

	// DeleteUser cascades to refresh_tokens and sheet links (per schema).
	DeleteUser(ctx context.Context, id string) error
}

type Companies interface {
	GetCompanyByID(ctx context.Context, id string) (domain.Company, error)

	ListCompanies(ctx context.Context) ([]domain.Company, error)

	CreateCompany(ctx context.Context, c domain.Company) error

	// UpdateCompanyName mutates the name and bumps updated_at.
	UpdateCompanyName(ctx context.Context, id, name string) error

	DeleteCompany(ctx context.Context, id string) error
}

type RefreshTokens interface {
	// GetRefreshTokenByUserID returns the single refresh record for a user.
	GetRefreshTokenByUserID(ctx context.Context, userID string) (domain.RefreshToken, error)

	// UpsertRefreshToken writes the refresh record for t.UserID, replacing
	// any existing row in a single conditional statement. The store is the
	// serialization point for concurrent logins and refreshes, so this must
	// not be implemented as separate read-then-write steps.
	UpsertRefreshToken(ctx context.Context, t domain.RefreshToken) error
}

type WorkoutSheets interface {
	GetWorkoutSheetByID(ctx context.Context, id string) (domain.WorkoutSheet, error)

	ListWorkoutSheets(ctx context.Context) ([]domain.WorkoutSheet, error)

	// ListWorkoutSheetsByUserID returns the sheets linked to a user.
	ListWorkoutSheetsByUserID(ctx context.Context, userID string) ([]domain.WorkoutSheet, error)

	// ListWorkoutsBySheetID returns the workouts inside a sheet.
	ListWorkoutsBySheetID(ctx context.Context, sheetID string) ([]domain.Workout, error)

	CreateWorkoutSheet(ctx context.Context, s domain.WorkoutSheet) error

	// CreateWorkout inserts a workout into an existing sheet.
	CreateWorkout(ctx context.Context, wk domain.Workout) error

	// UpdateWorkoutSheet overwrites name, type and is_active, bumps updated_at.
	UpdateWorkoutSheet(ctx context.Context, s domain.WorkoutSheet) error

	// DeleteWorkoutSheet cascades to workouts, exercises and user links.
	DeleteWorkoutSheet(ctx context.Context, id string) error

	// LinkUser attaches a user to a sheet. Idempotent.
	LinkUser(ctx context.Context, sheetID, userID string) error

	// UnlinkUser detaches a user from a sheet. Returns ErrNotFound when no
	// link exists.
	UnlinkUser(ctx context.Context, sheetID, userID string) error
}

type Exercises interface {
	GetExerciseByID(ctx context.Context, id string) (domain.Exercise, error)

	ListExercises(ctx context.Context) ([]domain.Exercise, error)

	CreateExercise(ctx context.Context, e domain.Exercise) error

	UpdateExercise(ctx context.Context, e domain.Exercise) error

	DeleteExercise(ctx context.Context, id string) error
}
