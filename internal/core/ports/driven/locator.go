package driven

import "github.com/custodia-labs/eatwise-cli/internal/core/domain"

// BlockLocator finds the span of text most likely to hold an ingredient
// list. It must be pure: the same text and settings give the same block.
type BlockLocator interface {
	// Locate returns the block, or the zero block when no anchor occurs.
	Locate(text string, settings domain.ExtractionSettings) domain.IngredientBlock
}
