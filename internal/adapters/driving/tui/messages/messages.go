// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

// EventReceived carries one event published by the scan session.
type EventReceived struct {
	Event domain.Event
}

// EventsClosed signals that the event subscription ended.
type EventsClosed struct{}

// ScanRequested is a command to start a scan.
type ScanRequested struct{}

// ScanCompleted carries the result of a scan started from the TUI.
// Record is nil when the scan is left pending.
type ScanCompleted struct {
	Record *domain.ScanRecord
	Err    error
}

// HistoryLoaded carries recent scan records.
type HistoryLoaded struct {
	Records []domain.ScanRecord
	Err     error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewScan shows the latest ingredient block.
	ViewScan ViewType = iota
	// ViewHistory lists past scans.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewScan:
		return "scan"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
