package driven

import (
	"context"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

// TextSource turns a captured screen or document into flat screen text.
// Each source handles specific MIME types (e.g., HTML, Markdown, images).
type TextSource interface {
	// SupportedMIMETypes returns the MIME types this source handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// Format-specific sources should return 50-89.
	// Fallback sources should return 1-9.
	Priority() int

	// Collect extracts the visible and descriptive text of a capture.
	Collect(ctx context.Context, capture *domain.Capture) (*domain.ScreenText, error)
}

// TextSourceRegistry selects the appropriate text source for a capture.
type TextSourceRegistry interface {
	// Collect extracts text using the best matching source.
	// Returns domain.ErrUnsupportedType when no source handles the MIME type.
	Collect(ctx context.Context, capture *domain.Capture) (*domain.ScreenText, error)

	// Register adds a text source to the registry.
	Register(source TextSource)

	// SupportedMIMETypes returns all MIME types that can be collected.
	SupportedMIMETypes() []string
}
