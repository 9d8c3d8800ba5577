package booking

import (
	"context"
	"time"
)

// Repository defines the persistence contract for booking records. Every
// lookup by secondary key is a scan behind this interface, so a future
// implementation can add a real index without touching the callers.
type Repository interface {
	// Create persists a new booking document.
	Create(ctx context.Context, record *Record) error

	// ListAll retrieves every booking in the store. Corrupt documents are
	// skipped, not fatal.
	ListAll(ctx context.Context) ([]Record, error)

	// ListByDate retrieves the bookings stored under the given day's
	// partition. A missing partition yields an empty slice.
	ListByDate(ctx context.Context, day time.Time) ([]Record, error)

	// FindByID retrieves a booking by its unique identifier.
	FindByID(ctx context.Context, id string) (*Record, error)

	// DeleteByID removes a booking document and reports whether one
	// existed.
	DeleteByID(ctx context.Context, id string) (bool, error)
}
