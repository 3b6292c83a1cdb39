package driven

import (
	"context"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

// Screen is the window a scan reads from.
type Screen interface {
	// Name identifies the screen for history records.
	Name() string

	// Capture returns the current text of the screen.
	// Returns domain.ErrNoContent when the screen has nothing to read.
	Capture(ctx context.Context) (*domain.ScreenText, error)
}
