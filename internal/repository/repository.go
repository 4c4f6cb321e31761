package repository

import (
	"alcyxob/trainer-backoffice/internal/domain" // Import our defined domain models
	"context"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateID  = RepositoryError("duplicate id")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ClientMutator changes a private copy of a client. Returning an error
// discards the copy, so the stored client is left exactly as it was.
type ClientMutator func(c *domain.Client) error

// WorkoutMutator changes a private copy of a library workout.
type WorkoutMutator func(w *domain.Workout) error

// ExerciseRepository gives read-only access to the seeded exercise catalog.
type ExerciseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Exercise, error)
	List(ctx context.Context) ([]domain.Exercise, error) // seed order
	Count(ctx context.Context) (int, error)
}

// WorkoutRepository defines the interface for the workout library.
type WorkoutRepository interface {
	// NextID reserves a fresh workout identifier. Identifiers are never reused,
	// including those of deleted workouts and of copies held by clients.
	NextID(ctx context.Context) (int64, error)
	// Create stores w. A zero ID is replaced by NextID.
	Create(ctx context.Context, w *domain.Workout) (int64, error)
	// Prepend stores w in front of the listing order.
	Prepend(ctx context.Context, w *domain.Workout) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Workout, error)
	List(ctx context.Context) ([]domain.Workout, error)
	Update(ctx context.Context, id int64, fn WorkoutMutator) (*domain.Workout, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// ClientRepository defines the interface for interacting with client data.
type ClientRepository interface {
	// Create stores c. A zero ID is replaced by a fresh identifier.
	Create(ctx context.Context, c *domain.Client) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	// Update applies fn to a copy of the client and commits the copy only if fn succeeds.
	Update(ctx context.Context, id int64, fn ClientMutator) (*domain.Client, error)
	// UpdateAll applies fn to copies of every client; any error discards every copy.
	UpdateAll(ctx context.Context, fn ClientMutator) ([]domain.Client, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
