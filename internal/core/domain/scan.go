package domain

import "time"

// ScanOutcome describes what a scan sent downstream.
type ScanOutcome string

// Available scan outcomes.
const (
	// OutcomeBlock means an ingredient block was found and sent.
	OutcomeBlock ScanOutcome = "block"

	// OutcomeRawFallback means no usable block was found but the raw text
	// was long enough to send for direct analysis.
	OutcomeRawFallback ScanOutcome = "raw_fallback"

	// OutcomeNotFound means nothing usable was found; a status was sent.
	OutcomeNotFound ScanOutcome = "not_found"

	// OutcomeNoContent means the screen produced no content.
	OutcomeNoContent ScanOutcome = "no_content"
)

// IsValid returns true if the outcome is recognised.
func (o ScanOutcome) IsValid() bool {
	switch o {
	case OutcomeBlock, OutcomeRawFallback, OutcomeNotFound, OutcomeNoContent:
		return true
	default:
		return false
	}
}

// Delivered reports whether ingredient text was sent downstream.
func (o ScanOutcome) Delivered() bool {
	return o == OutcomeBlock || o == OutcomeRawFallback
}

// String returns the string representation.
func (o ScanOutcome) String() string {
	return string(o)
}

// Description returns a human-readable description of the outcome.
func (o ScanOutcome) Description() string {
	switch o {
	case OutcomeBlock:
		return "Ingredient block found"
	case OutcomeRawFallback:
		return "Raw text sent for analysis"
	case OutcomeNotFound:
		return "No ingredients found"
	case OutcomeNoContent:
		return "No screen content"
	default:
		return "Unknown"
	}
}

// ScanRecord is the persisted result of processing one screen.
type ScanRecord struct {
	// ID uniquely identifies the record.
	ID string `json:"id"`

	// Source is where the screen text came from.
	Source string `json:"source"`

	// Outcome describes what was sent downstream.
	Outcome ScanOutcome `json:"outcome"`

	// Anchor is the anchor that matched, if any.
	Anchor string `json:"anchor,omitempty"`

	// Text is the payload that was sent (block, raw text or status).
	Text string `json:"text"`

	// RawLength is the length of the collected screen text in characters.
	RawLength int `json:"raw_length"`

	// CreatedAt is when the scan completed.
	CreatedAt time.Time `json:"created_at"`
}
