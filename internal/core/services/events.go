package services

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driven"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driving"
)

// Ensure EventBus implements the interfaces.
var (
	_ driving.EventStream   = (*EventBus)(nil)
	_ driven.EventPublisher = (*EventBus)(nil)
)

// EventBus delivers scan events to at most one subscriber.
// Publishing never blocks: with no subscriber, or a full buffer, the
// event is dropped and counted.
type EventBus struct {
	mu      sync.Mutex
	ch      chan domain.Event
	dropped atomic.Uint64
	now     func() time.Time
}

// NewEventBus creates an event bus with no subscriber.
func NewEventBus() *EventBus {
	return &EventBus{now: time.Now}
}

// Subscribe replaces the current subscriber. The previous channel is closed.
func (b *EventBus) Subscribe(buffer int) (<-chan domain.Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan domain.Event, buffer)

	b.mu.Lock()
	if b.ch != nil {
		close(b.ch)
	}
	b.ch = ch
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if b.ch == ch {
				close(b.ch)
				b.ch = nil
			}
		})
	}
}

// Publish delivers event to the subscriber. A missing ID or timestamp is filled in.
func (b *EventBus) Publish(event domain.Event) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ch == nil {
		b.dropped.Add(1)
		return
	}

	select {
	case b.ch <- event:
	default:
		b.dropped.Add(1)
	}
}

// PublishIngredientText sends an ingredient block or raw-text fallback.
func (b *EventBus) PublishIngredientText(text string) {
	b.Publish(domain.Event{Type: domain.EventIngredientText, Data: text})
}

// PublishStatus sends a user-visible status message.
func (b *EventBus) PublishStatus(message string) {
	b.Publish(domain.Event{Type: domain.EventStatus, Data: message})
}

// PublishError sends an error with a machine-readable code.
func (b *EventBus) PublishError(code, message string) {
	b.Publish(domain.Event{Type: domain.EventError, Code: code, Data: message})
}

// Dropped returns how many events were discarded.
func (b *EventBus) Dropped() uint64 {
	return b.dropped.Load()
}

// HasSubscriber reports whether a subscriber is attached.
func (b *EventBus) HasSubscriber() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ch != nil
}
