package driven

import "github.com/custodia-labs/eatwise-cli/internal/core/domain"

// EventPublisher is the sink for scan events.
// Publish must never block the caller.
type EventPublisher interface {
	// Publish delivers an event, or drops it when nobody is listening.
	Publish(event domain.Event)

	// PublishIngredientText sends an ingredient block or raw-text fallback.
	PublishIngredientText(text string)

	// PublishStatus sends a user-visible status message.
	PublishStatus(message string)

	// PublishError sends an error with a machine-readable code.
	PublishError(code, message string)
}
