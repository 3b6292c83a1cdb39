package domain

import (
	"fmt"
	"time"
)

// Extraction defaults.
const (
	// DefaultStopOffset is how far past the anchor start stop phrases are
	// searched from, so a stop word inside the anchor phrase cannot end
	// the block immediately.
	DefaultStopOffset = 10

	// DefaultMaxBlockLength caps the extracted block in characters.
	DefaultMaxBlockLength = 2000

	// DefaultMinBlockLength is the block length a scan must exceed to be
	// treated as a real ingredient list.
	DefaultMinBlockLength = 20

	// DefaultFallbackMinLength is the raw text length a scan must exceed
	// before the whole text is sent when no block was found.
	DefaultFallbackMinLength = 100

	// DefaultMaxDepth bounds text-node tree traversal.
	DefaultMaxDepth = 50

	// DefaultWatchInterval is the minimum gap between watch-triggered scans.
	DefaultWatchInterval = 500 * time.Millisecond
)

// ExtractionSettings holds the extraction heuristic and fallback policy.
type ExtractionSettings struct {
	// Anchors mark the probable start of an ingredient list.
	Anchors KeywordSet

	// Stops mark the probable end of an ingredient list.
	Stops KeywordSet

	// StopOffset is the character offset from the anchor start at which
	// stop phrases are searched.
	StopOffset int

	// MaxBlockLength caps the block length in characters.
	MaxBlockLength int

	// MinBlockLength is the length a block must exceed to be sent.
	MinBlockLength int

	// FallbackMinLength is the raw length that must be exceeded to send
	// the full text when no block qualifies. Negative disables fallback.
	FallbackMinLength int
}

// Validate checks the settings for values the extractor cannot use.
func (s ExtractionSettings) Validate() error {
	if len(s.Anchors.Lowered()) == 0 {
		return fmt.Errorf("%w: at least one anchor phrase is required", ErrInvalidInput)
	}
	if s.StopOffset < 0 {
		return fmt.Errorf("%w: stop offset must not be negative", ErrInvalidInput)
	}
	if s.MaxBlockLength <= 0 {
		return fmt.Errorf("%w: max block length must be positive", ErrInvalidInput)
	}
	if s.MinBlockLength < 0 {
		return fmt.Errorf("%w: min block length must not be negative", ErrInvalidInput)
	}
	return nil
}

// FallbackEnabled reports whether raw text may be sent when no block qualifies.
func (s ExtractionSettings) FallbackEnabled() bool {
	return s.FallbackMinLength >= 0
}

// CollectorSettings holds text-tree traversal configuration.
type CollectorSettings struct {
	// MaxDepth is the deepest node level visited.
	MaxDepth int
}

// WatchSettings holds file watch configuration.
type WatchSettings struct {
	// Interval is the minimum gap between watch-triggered scans.
	Interval time.Duration
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Extraction holds the extraction heuristic settings.
	Extraction ExtractionSettings

	// Collector holds text-tree traversal settings.
	Collector CollectorSettings

	// Watch holds file watch settings.
	Watch WatchSettings
}

// DefaultExtractionSettings returns the built-in extraction policy.
func DefaultExtractionSettings() ExtractionSettings {
	return ExtractionSettings{
		Anchors:           DefaultAnchors(),
		Stops:             DefaultStops(),
		StopOffset:        DefaultStopOffset,
		MaxBlockLength:    DefaultMaxBlockLength,
		MinBlockLength:    DefaultMinBlockLength,
		FallbackMinLength: DefaultFallbackMinLength,
	}
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Extraction: DefaultExtractionSettings(),
		Collector: CollectorSettings{
			MaxDepth: DefaultMaxDepth,
		},
		Watch: WatchSettings{
			Interval: DefaultWatchInterval,
		},
	}
}
