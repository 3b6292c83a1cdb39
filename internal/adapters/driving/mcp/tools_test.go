package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

func newTestServer(t *testing.T, ports *Ports) *Server {
	t.Helper()
	server, err := NewServer(ports)
	require.NoError(t, err)
	return server
}

func TestServer_handleExtract(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the block", func(t *testing.T) {
		extract := &mockExtractService{block: domain.IngredientBlock{
			Text:   "Ingredients: sugar, cocoa",
			Start:  10,
			End:    36,
			Anchor: "ingredients",
			Stop:   "nutrition",
		}}
		server := newTestServer(t, &Ports{Extract: extract})

		input := ExtractInput{
			Text:    "Choco Bar Ingredients: sugar, cocoa Nutrition",
			Anchors: []string{"ingredients"},
			Stops:   []string{"nutrition"},
		}
		_, output, err := server.handleExtract(ctx, nil, input)

		require.NoError(t, err)
		assert.True(t, output.Found)
		assert.Equal(t, "Ingredients: sugar, cocoa", output.Block)
		assert.Equal(t, "ingredients", output.Anchor)
		assert.Equal(t, "nutrition", output.Stop)
		assert.Equal(t, 10, output.Start)
		assert.Equal(t, 36, output.End)
		assert.Equal(t, input.Text, extract.text)
		assert.Equal(t, []string{"ingredients"}, extract.anchors)
		assert.Equal(t, []string{"nutrition"}, extract.stops)
	})

	t.Run("not found", func(t *testing.T) {
		server := newTestServer(t, &Ports{Extract: &mockExtractService{}})

		_, output, err := server.handleExtract(ctx, nil, ExtractInput{Text: "just a photo"})

		require.NoError(t, err)
		assert.False(t, output.Found)
		assert.Empty(t, output.Block)
	})

	t.Run("service error", func(t *testing.T) {
		server := newTestServer(t, &Ports{Extract: &mockExtractService{err: errors.New("bad settings")}})

		_, _, err := server.handleExtract(ctx, nil, ExtractInput{Text: "x"})
		assert.EqualError(t, err, "bad settings")
	})
}

func TestServer_handleStartScan(t *testing.T) {
	ctx := context.Background()

	t.Run("without scan service", func(t *testing.T) {
		server := newTestServer(t, &Ports{Extract: &mockExtractService{}})

		_, _, err := server.handleStartScan(ctx, nil, ScanInput{})
		assert.ErrorIs(t, err, ErrScanUnavailable)
	})

	t.Run("returns the record", func(t *testing.T) {
		at := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
		scan := &mockScanService{ready: true, record: &domain.ScanRecord{
			ID:        "scan-1",
			Source:    "label.txt",
			Outcome:   domain.OutcomeBlock,
			Anchor:    "ingredients",
			Text:      "Ingredients: salt",
			RawLength: 40,
			CreatedAt: at,
		}}
		server := newTestServer(t, &Ports{Extract: &mockExtractService{}, Scan: scan})

		_, output, err := server.handleStartScan(ctx, nil, ScanInput{})

		require.NoError(t, err)
		require.NotNil(t, output.Record)
		assert.Equal(t, "scan-1", output.Record.ID)
		assert.Equal(t, "block", output.Record.Outcome)
		assert.Equal(t, "2026-05-01T09:30:00Z", output.Record.CreatedAt)
		assert.True(t, output.Ready)
	})

	t.Run("pending without screen", func(t *testing.T) {
		scan := &mockScanService{}
		server := newTestServer(t, &Ports{Extract: &mockExtractService{}, Scan: scan})

		_, output, err := server.handleStartScan(ctx, nil, ScanInput{})

		require.NoError(t, err)
		assert.Nil(t, output.Record)
		assert.True(t, output.Scanning)
		assert.False(t, output.Ready)
	})

	t.Run("scan error", func(t *testing.T) {
		scan := &mockScanService{ready: true, err: errors.New("capture failed")}
		server := newTestServer(t, &Ports{Extract: &mockExtractService{}, Scan: scan})

		_, _, err := server.handleStartScan(ctx, nil, ScanInput{})
		assert.EqualError(t, err, "capture failed")
	})
}

func TestServer_handleStopScan(t *testing.T) {
	scan := &mockScanService{scanning: true}
	server := newTestServer(t, &Ports{Extract: &mockExtractService{}, Scan: scan})

	_, output, err := server.handleStopScan(context.Background(), nil, ScanInput{})

	require.NoError(t, err)
	assert.True(t, scan.stopped)
	assert.False(t, output.Scanning)
}

func TestServer_handleScanStatus(t *testing.T) {
	scan := &mockScanService{scanning: true, ready: true}
	server := newTestServer(t, &Ports{Extract: &mockExtractService{}, Scan: scan})

	_, output, err := server.handleScanStatus(context.Background(), nil, ScanInput{})

	require.NoError(t, err)
	assert.True(t, output.Scanning)
	assert.True(t, output.Ready)

	server = newTestServer(t, &Ports{Extract: &mockExtractService{}})
	_, _, err = server.handleScanStatus(context.Background(), nil, ScanInput{})
	assert.ErrorIs(t, err, ErrScanUnavailable)
}
