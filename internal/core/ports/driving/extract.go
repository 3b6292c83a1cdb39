package driving

import "github.com/custodia-labs/eatwise-cli/internal/core/domain"

// ExtractService runs the extraction heuristic on caller-supplied text.
type ExtractService interface {
	// Extract finds the ingredient block using the configured settings.
	Extract(text string) (domain.IngredientBlock, error)

	// ExtractWith finds the ingredient block with ad-hoc keyword lists.
	// Empty lists fall back to the configured ones.
	ExtractWith(text string, anchors, stops []string) (domain.IngredientBlock, error)

	// ExtractWithSettings finds the ingredient block with a full settings value.
	// Returns domain.ErrInvalidInput if the settings are unusable.
	ExtractWithSettings(text string, settings domain.ExtractionSettings) (domain.IngredientBlock, error)

	// Settings returns the configured extraction settings.
	Settings() (domain.ExtractionSettings, error)
}
