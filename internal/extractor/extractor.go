package extractor

import (
	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driven"
)

// Extractor finds ingredient blocks with a fixed keyword configuration.
// It is immutable after construction and safe for concurrent use.
type Extractor struct {
	anchors    domain.KeywordSet
	stops      domain.KeywordSet
	stopOffset int
	maxLength  int
}

// Option configures the extractor.
type Option func(*Extractor)

// WithAnchors sets the anchor phrases, tried in the given order.
func WithAnchors(anchors []string) Option {
	return func(e *Extractor) {
		e.anchors = domain.KeywordSet(anchors).Lowered()
	}
}

// WithStops sets the stop phrases.
func WithStops(stops []string) Option {
	return func(e *Extractor) {
		e.stops = domain.KeywordSet(stops).Lowered()
	}
}

// WithStopOffset sets how many characters past the anchor start stop
// phrases are searched from.
func WithStopOffset(offset int) Option {
	return func(e *Extractor) {
		if offset >= 0 {
			e.stopOffset = offset
		}
	}
}

// WithMaxLength sets the block length cap in characters.
func WithMaxLength(length int) Option {
	return func(e *Extractor) {
		if length > 0 {
			e.maxLength = length
		}
	}
}

// WithSettings applies every extraction setting at once.
func WithSettings(s domain.ExtractionSettings) Option {
	return func(e *Extractor) {
		WithAnchors(s.Anchors)(e)
		WithStops(s.Stops)(e)
		WithStopOffset(s.StopOffset)(e)
		WithMaxLength(s.MaxBlockLength)(e)
	}
}

// New creates an extractor using the built-in keyword lists unless
// overridden by options.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		anchors:    domain.DefaultAnchors().Lowered(),
		stops:      domain.DefaultStops().Lowered(),
		stopOffset: domain.DefaultStopOffset,
		maxLength:  domain.DefaultMaxBlockLength,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Locate returns the ingredient block with its offsets and the matched
// keywords. The zero block means no anchor occurred.
func (e *Extractor) Locate(text string) domain.IngredientBlock {
	return locate(text, e.anchors, e.stops, e.stopOffset, e.maxLength)
}

// Extract returns only the trimmed block text.
func (e *Extractor) Extract(text string) string {
	return e.Locate(text).Text
}

// Anchors returns the folded anchor phrases in priority order.
func (e *Extractor) Anchors() domain.KeywordSet {
	return e.anchors.Clone()
}

// Stops returns the folded stop phrases.
func (e *Extractor) Stops() domain.KeywordSet {
	return e.stops.Clone()
}

// Heuristic builds an extractor per call from the supplied settings,
// for services whose settings change at runtime.
type Heuristic struct{}

// Ensure Heuristic implements the interface.
var _ driven.BlockLocator = Heuristic{}

// Locate finds the block using settings.
func (Heuristic) Locate(text string, settings domain.ExtractionSettings) domain.IngredientBlock {
	return New(WithSettings(settings)).Locate(text)
}
