// Package tui provides an interactive terminal user interface for eatwise.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Scan controls the scan session.
	Scan driving.ScanService

	// Events delivers scan results to the TUI.
	Events driving.EventStream

	// History lists past scans. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Scan == nil {
		return ErrMissingScanService
	}
	if p.Events == nil {
		return ErrMissingEventStream
	}
	return nil
}
