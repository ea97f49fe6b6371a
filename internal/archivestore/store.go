// Package archivestore persists archived runs outside the in-memory
// engine archive. It is a host-side concern: the engine never depends on it.
package archivestore

import (
	"context"
	"strconv"

	"github.com/igorsergioJS/GA-PSO-web-app/internal/optimization"
)

// Store defines persistence operations for archived runs.
//
// Error handling conventions:
//   - Return nil on success.
//   - Return ErrNotFound from Get when the id is unknown.
//   - Wrap underlying errors with context using fmt.Errorf("...: %w", err).
type Store interface {
	// Init prepares the backend (creates tables, allocates maps).
	Init(ctx context.Context) error

	// Save stores an archived run keyed by its archive id, overwriting any
	// previous entry with the same id.
	Save(ctx context.Context, entry optimization.ArchiveEntry) error

	// Get retrieves the entry with the given id.
	Get(ctx context.Context, id int) (optimization.ArchiveEntry, error)

	// List returns all stored entries ordered by id.
	List(ctx context.Context) ([]optimization.ArchiveEntry, error)

	// Close releases backend resources.
	Close() error
}

// ErrNotFound is returned when a requested entry does not exist. Use
// errors.Is(err, ErrNotFound) to check for it.
var ErrNotFound = &NotFoundError{}

// NotFoundError reports a missing archive entry.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	if e.ID != 0 {
		return "archive entry not found: " + strconv.Itoa(e.ID)
	}
	return "archive entry not found"
}

func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}
