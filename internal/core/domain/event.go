package domain

import "time"

// EventType identifies the kind of message published by a scan.
type EventType string

// Available event types. The string values are the wire names used by
// the application shell.
const (
	// EventIngredientText carries an ingredient block or raw-text fallback.
	EventIngredientText EventType = "ingredientText"

	// EventStatus carries a user-visible status message.
	EventStatus EventType = "status"

	// EventError carries an error code and message.
	EventError EventType = "error"
)

// IsValid returns true if the event type is recognised.
func (t EventType) IsValid() bool {
	switch t {
	case EventIngredientText, EventStatus, EventError:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t EventType) String() string {
	return string(t)
}

// Event is a typed message pushed to the active subscriber.
type Event struct {
	// ID uniquely identifies the event.
	ID string `json:"id"`

	// Type is the kind of message.
	Type EventType `json:"type"`

	// Data is the ingredient text or status message.
	Data string `json:"data"`

	// Code is set for error events only.
	Code string `json:"code,omitempty"`

	// Timestamp is when the event was published.
	Timestamp time.Time `json:"timestamp"`
}

// Status messages published by a scan.
const (
	StatusNoContent     = "No screen content available. Make sure you're on a product page."
	StatusNoIngredients = "No ingredient list found. Scroll to show ingredients and try again."
)
