// Package plaintext provides the fallback text source that passes captured
// bytes through unchanged.
package plaintext

import (
	"context"
	"time"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.TextSource = (*Source)(nil)

// Source handles plain text captures.
type Source struct{}

// New creates a new plain text source.
func New() *Source {
	return &Source{}
}

// SupportedMIMETypes returns the MIME types this source handles.
func (s *Source) SupportedMIMETypes() []string {
	return []string{
		"text/plain",
		"text/csv",
		"text/html",
		"text/markdown",
		"application/json",
		"application/xml",
	}
}

// Priority returns the selection priority.
func (s *Source) Priority() int {
	return 5 // Fallback source
}

// Collect returns the capture content as text.
func (s *Source) Collect(_ context.Context, capture *domain.Capture) (*domain.ScreenText, error) {
	if capture == nil {
		return nil, domain.ErrInvalidInput
	}

	return &domain.ScreenText{
		Source:     capture.Source,
		MIMEType:   capture.MIMEType,
		Text:       string(capture.Content),
		CapturedAt: time.Now(),
	}, nil
}
