package services

import (
	"context"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driven"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// DefaultHistoryLimit is used when a caller asks for zero records.
const DefaultHistoryLimit = 20

// HistoryService exposes stored scan records.
type HistoryService struct {
	store driven.ScanStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.ScanStore) *HistoryService {
	return &HistoryService{store: store}
}

// List returns the most recent records. A non-positive limit uses the default.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.ScanRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.store.List(ctx, limit)
}

// Get retrieves a record by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.ScanRecord, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.Get(ctx, id)
}

// Delete removes a record.
func (s *HistoryService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return s.store.Delete(ctx, id)
}

// Clear removes all records.
func (s *HistoryService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}
