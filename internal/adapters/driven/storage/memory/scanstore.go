package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driven"
)

// Ensure ScanStore implements the interface.
var _ driven.ScanStore = (*ScanStore)(nil)

// ScanStore is an in-memory implementation of driven.ScanStore.
type ScanStore struct {
	mu      sync.RWMutex
	records map[string]domain.ScanRecord
}

// NewScanStore creates a new in-memory scan store.
func NewScanStore() *ScanStore {
	return &ScanStore{
		records: make(map[string]domain.ScanRecord),
	}
}

// Save stores or updates a record.
func (s *ScanStore) Save(_ context.Context, record domain.ScanRecord) error {
	if record.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.ID] = record
	return nil
}

// Get retrieves a record by ID.
func (s *ScanStore) Get(_ context.Context, id string) (*domain.ScanRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

// List returns records newest first.
func (s *ScanStore) List(_ context.Context, limit int) ([]domain.ScanRecord, error) {
	s.mu.RLock()
	result := make([]domain.ScanRecord, 0, len(s.records))
	for _, record := range s.records {
		result = append(result, record)
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Delete removes a record.
// Returns domain.ErrNotFound if it does not exist.
func (s *ScanStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.records, id)
	return nil
}

// Clear removes every record.
func (s *ScanStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string]domain.ScanRecord)
	return nil
}
