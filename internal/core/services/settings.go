package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driven"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyAnchors           = "extraction.anchors"
	KeyStops             = "extraction.stops"
	KeyStopOffset        = "extraction.stop_offset"
	KeyMaxBlockLength    = "extraction.max_block_length"
	KeyMinBlockLength    = "extraction.min_block_length"
	KeyFallbackMinLength = "extraction.fallback_min_length"
	KeyMaxDepth          = "collector.max_depth"
	KeyWatchInterval     = "watch.interval"
)

var settingKeys = []string{
	KeyAnchors,
	KeyStops,
	KeyStopOffset,
	KeyMaxBlockLength,
	KeyMinBlockLength,
	KeyFallbackMinLength,
	KeyMaxDepth,
	KeyWatchInterval,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Missing or malformed
// values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	return &domain.AppSettings{
		Extraction: domain.ExtractionSettings{
			Anchors:           s.getKeywords(KeyAnchors, defaults.Extraction.Anchors),
			Stops:             s.getKeywords(KeyStops, defaults.Extraction.Stops),
			StopOffset:        s.getInt(KeyStopOffset, defaults.Extraction.StopOffset),
			MaxBlockLength:    s.getInt(KeyMaxBlockLength, defaults.Extraction.MaxBlockLength),
			MinBlockLength:    s.getInt(KeyMinBlockLength, defaults.Extraction.MinBlockLength),
			FallbackMinLength: s.getInt(KeyFallbackMinLength, defaults.Extraction.FallbackMinLength),
		},
		Collector: domain.CollectorSettings{
			MaxDepth: s.getInt(KeyMaxDepth, defaults.Collector.MaxDepth),
		},
		Watch: domain.WatchSettings{
			Interval: s.getDuration(KeyWatchInterval, defaults.Watch.Interval),
		},
	}, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if err := validate(settings); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyAnchors, []string(settings.Extraction.Anchors)},
		{KeyStops, []string(settings.Extraction.Stops)},
		{KeyStopOffset, settings.Extraction.StopOffset},
		{KeyMaxBlockLength, settings.Extraction.MaxBlockLength},
		{KeyMinBlockLength, settings.Extraction.MinBlockLength},
		{KeyFallbackMinLength, settings.Extraction.FallbackMinLength},
		{KeyMaxDepth, settings.Collector.MaxDepth},
		{KeyWatchInterval, settings.Watch.Interval.String()},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// Set updates one setting from its string form. Keyword lists are
// comma-separated.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	switch key {
	case KeyAnchors:
		settings.Extraction.Anchors = splitKeywords(value)
	case KeyStops:
		settings.Extraction.Stops = splitKeywords(value)
	case KeyStopOffset:
		err = setInt(&settings.Extraction.StopOffset, key, value)
	case KeyMaxBlockLength:
		err = setInt(&settings.Extraction.MaxBlockLength, key, value)
	case KeyMinBlockLength:
		err = setInt(&settings.Extraction.MinBlockLength, key, value)
	case KeyFallbackMinLength:
		err = setInt(&settings.Extraction.FallbackMinLength, key, value)
	case KeyMaxDepth:
		err = setInt(&settings.Collector.MaxDepth, key, value)
	case KeyWatchInterval:
		d, parseErr := time.ParseDuration(value)
		if parseErr != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, parseErr)
		}
		settings.Watch.Interval = d
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if err != nil {
		return err
	}

	return s.Save(settings)
}

// Keys returns the setting keys accepted by Set, sorted.
func (s *SettingsService) Keys() []string {
	keys := append([]string(nil), settingKeys...)
	sort.Strings(keys)
	return keys
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return validate(settings)
}

// Reset removes every stored setting so defaults apply again.
func (s *SettingsService) Reset() error {
	for _, key := range settingKeys {
		if err := s.configStore.Delete(key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func validate(settings *domain.AppSettings) error {
	if err := settings.Extraction.Validate(); err != nil {
		return err
	}
	if settings.Collector.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth must not be negative", domain.ErrInvalidInput)
	}
	if settings.Watch.Interval <= 0 {
		return fmt.Errorf("%w: watch interval must be positive", domain.ErrInvalidInput)
	}
	return nil
}

func splitKeywords(value string) domain.KeywordSet {
	var out domain.KeywordSet
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func setInt(dst *int, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
	}
	*dst = n
	return nil
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val, exists := s.configStore.Get(key)
	if !exists {
		return defaultVal
	}
	switch val.(type) {
	case int, int64, float64:
		return s.configStore.GetInt(key)
	default:
		return defaultVal
	}
}

func (s *SettingsService) getKeywords(key string, defaultVal domain.KeywordSet) domain.KeywordSet {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return domain.KeywordSet(s.configStore.GetStringSlice(key))
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}
