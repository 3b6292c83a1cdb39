package services

import (
	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driven"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driving"
)

// Ensure ExtractService implements the interface.
var _ driving.ExtractService = (*ExtractService)(nil)

// ExtractService runs the block locator with the configured settings.
type ExtractService struct {
	locator  driven.BlockLocator
	settings driving.SettingsService
}

// NewExtractService creates a new extract service. A nil settings
// service uses the built-in defaults.
func NewExtractService(locator driven.BlockLocator, settings driving.SettingsService) *ExtractService {
	return &ExtractService{
		locator:  locator,
		settings: settings,
	}
}

// Extract finds the ingredient block using the configured settings.
func (s *ExtractService) Extract(text string) (domain.IngredientBlock, error) {
	return s.ExtractWith(text, nil, nil)
}

// ExtractWith finds the ingredient block, overriding the keyword lists
// when they are non-empty.
func (s *ExtractService) ExtractWith(text string, anchors, stops []string) (domain.IngredientBlock, error) {
	settings, err := s.Settings()
	if err != nil {
		return domain.IngredientBlock{}, err
	}
	if len(anchors) > 0 {
		settings.Anchors = anchors
	}
	if len(stops) > 0 {
		settings.Stops = stops
	}

	return s.ExtractWithSettings(text, settings)
}

// ExtractWithSettings validates settings and runs the locator with them.
func (s *ExtractService) ExtractWithSettings(
	text string,
	settings domain.ExtractionSettings,
) (domain.IngredientBlock, error) {
	if err := settings.Validate(); err != nil {
		return domain.IngredientBlock{}, err
	}
	return s.locator.Locate(text, settings), nil
}

// Settings returns the configured extraction settings.
func (s *ExtractService) Settings() (domain.ExtractionSettings, error) {
	return extractionSettings(s.settings)
}

func extractionSettings(settings driving.SettingsService) (domain.ExtractionSettings, error) {
	if settings == nil {
		return domain.DefaultExtractionSettings(), nil
	}
	app, err := settings.Get()
	if err != nil {
		return domain.ExtractionSettings{}, err
	}
	return app.Extraction, nil
}
