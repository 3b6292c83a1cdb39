package driven

import (
	"context"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

// ScanStore persists scan records.
type ScanStore interface {
	// Save stores or updates a record.
	Save(ctx context.Context, record domain.ScanRecord) error

	// Get retrieves a record by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.ScanRecord, error)

	// List returns records newest first. A limit of zero or less returns all.
	List(ctx context.Context, limit int) ([]domain.ScanRecord, error)

	// Delete removes a record.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error

	// Clear removes every record.
	Clear(ctx context.Context) error
}
