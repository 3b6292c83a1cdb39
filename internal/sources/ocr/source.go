// Package ocr provides a text source for screenshots. Recognition uses
// Tesseract through gosseract and is only compiled with the tesseract
// build tag; other builds report domain.ErrNotImplemented.
package ocr

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.TextSource = (*Source)(nil)

// DefaultLanguages are the Tesseract models used when none are configured.
// Hindi is included so the Devanagari anchors can match.
var DefaultLanguages = []string{"eng", "hin"}

// Source handles image captures.
type Source struct {
	languages []string
}

// Option configures the OCR source.
type Option func(*Source)

// WithLanguages sets the Tesseract language models.
func WithLanguages(languages ...string) Option {
	return func(s *Source) {
		if len(languages) > 0 {
			s.languages = languages
		}
	}
}

// New creates a new OCR source.
func New(opts ...Option) *Source {
	s := &Source{languages: DefaultLanguages}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SupportedMIMETypes returns the MIME types this source handles.
func (s *Source) SupportedMIMETypes() []string {
	return []string{
		"image/png",
		"image/jpeg",
		"image/gif",
		"image/bmp",
		"image/tiff",
		"image/webp",
	}
}

// Priority returns the selection priority.
func (s *Source) Priority() int {
	return 50
}

// Languages returns the configured language models.
func (s *Source) Languages() []string {
	return append([]string(nil), s.languages...)
}

// Collect recognises the text of an image capture.
func (s *Source) Collect(ctx context.Context, capture *domain.Capture) (*domain.ScreenText, error) {
	if capture == nil {
		return nil, domain.ErrInvalidInput
	}
	if len(capture.Content) == 0 {
		return nil, domain.ErrNoContent
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	text, err := recognize(capture.Content, s.languages)
	if err != nil {
		return nil, fmt.Errorf("ocr %s: %w", capture.Source, err)
	}

	return &domain.ScreenText{
		Source:     capture.Source,
		MIMEType:   capture.MIMEType,
		Text:       text,
		CapturedAt: time.Now(),
	}, nil
}
