package mcp

import (
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Extract runs the extraction heuristic.
	Extract driving.ExtractService

	// Scan controls the scan session.
	Scan driving.ScanService

	// History exposes past scan results.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Extract == nil {
		return ErrMissingExtractService
	}
	// Scan and History are optional
	return nil
}
