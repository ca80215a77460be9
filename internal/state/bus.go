package state

import (
	"io"
	"log/slog"
	"sync"

	"github.com/nexuslabs/showrunner/pkg/domain"
)

// Handler receives the payload of a published event.
type Handler func(payload any)

// Subscription identifies a registered handler so it can be removed.
type Subscription struct {
	event domain.EventName
	id    uint64
}

type subscriber struct {
	id uint64
	fn Handler
}

// Bus is the synchronous notification fan-out behind the state store.
// Handlers run in registration order, on the publishing goroutine, before
// Publish returns. A subscriber can therefore rely on the store already
// reflecting the change it is being told about.
type Bus struct {
	mu     sync.Mutex
	seq    uint64
	subs   map[domain.EventName][]subscriber
	logger *slog.Logger
}

// NewBus creates an empty bus.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Bus{
		subs:   make(map[domain.EventName][]subscriber),
		logger: logger,
	}
}

// Subscribe registers a handler for an event name. Handlers for the same
// event fire in the order they were registered.
func (b *Bus) Subscribe(event domain.EventName, fn Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	b.subs[event] = append(b.subs[event], subscriber{id: b.seq, fn: fn})
	return Subscription{event: event, id: b.seq}
}

// Unsubscribe removes a previously registered handler. Unknown
// subscriptions are ignored.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.subs[sub.event]
	for i, s := range list {
		if s.id == sub.id {
			b.subs[sub.event] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Publish delivers the payload to every subscriber of the event,
// synchronously and in registration order. Publishing with zero
// subscribers is a no-op, never an error.
func (b *Bus) Publish(event domain.EventName, payload any) {
	b.mu.Lock()
	list := make([]subscriber, len(b.subs[event]))
	copy(list, b.subs[event])
	b.mu.Unlock()

	if len(list) == 0 {
		return
	}

	b.logger.Debug("publishing event", "event", string(event), "subscribers", len(list))
	for _, s := range list {
		s.fn(payload)
	}
}
