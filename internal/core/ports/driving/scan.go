package driving

import (
	"context"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driven"
)

// ScanService controls the scanning session.
type ScanService interface {
	// Bind attaches the screen scans read from.
	Bind(screen driven.Screen)

	// Unbind detaches the current screen.
	Unbind()

	// IsReady reports whether a screen is bound.
	IsReady() bool

	// Start begins a scan and processes the screen immediately when bound.
	Start(ctx context.Context) (*domain.ScanRecord, error)

	// Stop cancels the pending scan.
	Stop()

	// IsScanning reports whether a scan is pending.
	IsScanning() bool

	// ContentChanged processes the screen if a scan is pending.
	// Returns nil, nil when no scan is pending.
	ContentChanged(ctx context.Context) (*domain.ScanRecord, error)

	// ProcessScreen captures, extracts and publishes one result.
	ProcessScreen(ctx context.Context) (*domain.ScanRecord, error)
}

// ScanStatus is a snapshot of the session state.
type ScanStatus struct {
	// Scanning indicates a scan is pending.
	Scanning bool `json:"scanning"`

	// Ready indicates a screen is bound.
	Ready bool `json:"ready"`
}
