package driving

import (
	"context"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

// HistoryService exposes past scan results.
type HistoryService interface {
	// List returns the most recent records, newest first.
	List(ctx context.Context, limit int) ([]domain.ScanRecord, error)

	// Get retrieves a record by ID.
	Get(ctx context.Context, id string) (*domain.ScanRecord, error)

	// Delete removes a record.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error

	// Clear removes all records.
	Clear(ctx context.Context) error
}
