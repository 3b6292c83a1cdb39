package driving

import "github.com/custodia-labs/eatwise-cli/internal/core/domain"

// EventStream delivers scan events to a single listener.
type EventStream interface {
	// Subscribe returns a channel of events and a function that ends the
	// subscription. Subscribing again replaces and closes the previous
	// channel. A buffer below one is treated as one.
	Subscribe(buffer int) (<-chan domain.Event, func())

	// Dropped returns how many events were discarded.
	Dropped() uint64
}
