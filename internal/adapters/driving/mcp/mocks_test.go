package mcp

import (
	"context"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driven"
)

// mockExtractService implements driving.ExtractService for testing.
type mockExtractService struct {
	block   domain.IngredientBlock
	err     error
	text    string
	anchors []string
	stops   []string
}

func (m *mockExtractService) Extract(text string) (domain.IngredientBlock, error) {
	return m.ExtractWith(text, nil, nil)
}

func (m *mockExtractService) ExtractWith(text string, anchors, stops []string) (domain.IngredientBlock, error) {
	m.text = text
	m.anchors = anchors
	m.stops = stops
	return m.block, m.err
}

func (m *mockExtractService) ExtractWithSettings(
	text string,
	settings domain.ExtractionSettings,
) (domain.IngredientBlock, error) {
	return m.ExtractWith(text, settings.Anchors, settings.Stops)
}

func (m *mockExtractService) Settings() (domain.ExtractionSettings, error) {
	return domain.DefaultExtractionSettings(), m.err
}

// mockScanService implements driving.ScanService for testing.
type mockScanService struct {
	scanning bool
	ready    bool
	record   *domain.ScanRecord
	err      error
	stopped  bool
}

func (m *mockScanService) Bind(driven.Screen) { m.ready = true }
func (m *mockScanService) Unbind()            { m.ready = false }
func (m *mockScanService) IsReady() bool      { return m.ready }
func (m *mockScanService) IsScanning() bool   { return m.scanning }

func (m *mockScanService) Start(context.Context) (*domain.ScanRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	if !m.ready {
		m.scanning = true
	}
	return m.record, nil
}

func (m *mockScanService) Stop() {
	m.stopped = true
	m.scanning = false
}

func (m *mockScanService) ContentChanged(ctx context.Context) (*domain.ScanRecord, error) {
	return m.Start(ctx)
}

func (m *mockScanService) ProcessScreen(ctx context.Context) (*domain.ScanRecord, error) {
	return m.Start(ctx)
}

// mockHistoryService implements driving.HistoryService for testing.
type mockHistoryService struct {
	records []domain.ScanRecord
	err     error
}

func (m *mockHistoryService) List(_ context.Context, _ int) ([]domain.ScanRecord, error) {
	return m.records, m.err
}

func (m *mockHistoryService) Get(_ context.Context, id string) (*domain.ScanRecord, error) {
	for i := range m.records {
		if m.records[i].ID == id {
			return &m.records[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockHistoryService) Delete(_ context.Context, _ string) error { return nil }
func (m *mockHistoryService) Clear(_ context.Context) error            { return nil }
