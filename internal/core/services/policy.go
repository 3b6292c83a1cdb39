package services

import "github.com/custodia-labs/eatwise-cli/internal/core/domain"

// Decide chooses what a scan sends downstream. A block longer than the
// minimum block length wins; otherwise raw text longer than the fallback
// threshold is sent whole; otherwise the user is told to scroll.
// Lengths are counted in characters.
func Decide(block, raw string, settings domain.ExtractionSettings) (domain.ScanOutcome, string) {
	if domain.RuneLen(block) > settings.MinBlockLength {
		return domain.OutcomeBlock, block
	}
	if settings.FallbackEnabled() && domain.RuneLen(raw) > settings.FallbackMinLength {
		return domain.OutcomeRawFallback, raw
	}
	return domain.OutcomeNotFound, domain.StatusNoIngredients
}
