package repository

import (
	"alcyxob/irontrack/internal/domain"
	"context"
)

// Error constants for the repository layer.
var (
	ErrWriteFailed = RepositoryError("write to backing store failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// SetRepository defines the interface for interacting with the workout log.
// The log is append-only: there is no update or delete operation.
type SetRepository interface {
	// Initialize seeds the backing store with one placeholder row per
	// default (category, exercise) pair. It is idempotent: once the
	// store exists it is never overwritten.
	Initialize(ctx context.Context) error

	// Load returns every stored set, normalized. A missing or unreadable
	// backing store degrades to an empty result with a nil error; callers
	// surface that as a non-fatal notice.
	Load(ctx context.Context) ([]domain.WorkoutSet, error)

	// Append persists exactly one new set. Write failures are returned.
	Append(ctx context.Context, set domain.WorkoutSet) error
}
