// Package hub tracks live dashboard connections and fans accepted readings
// out to them. It is purely in-memory and process-local: a subscriber that
// connects after a broadcast never sees that reading, and there is no retry
// or replay. One failed delivery removes the subscriber.
package hub

import (
	"log"
	"sync"
	"time"

	"sensor-telemetry-service/internal/readings/core/domain"
)

// Sink receives readings for one subscriber. Implementations must bound how
// long a single Deliver can block (e.g. a write deadline); a returned error
// drops the subscriber from the registry.
type Sink interface {
	Deliver(r domain.Reading) error
}

// Subscriber is the registry's view of one live connection.
type Subscriber struct {
	ConnectionID string
	ConnectedAt  time.Time
	LastSeenAt   time.Time
}

type entry struct {
	sub  Subscriber
	sink Sink
}

type Hub struct {
	mu   sync.Mutex
	subs map[string]*entry
	now  func() time.Time
}

func New() *Hub {
	return &Hub{
		subs: make(map[string]*entry),
		now:  time.Now,
	}
}

// NewWithClock is for tests that pin timestamps.
func NewWithClock(now func() time.Time) *Hub {
	return &Hub{
		subs: make(map[string]*entry),
		now:  now,
	}
}

// Register adds a subscriber. Registering an id that is already present
// refreshes its LastSeenAt and swaps in the new sink instead of duplicating.
func (h *Hub) Register(connectionID string, sink Sink) Subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	if e, ok := h.subs[connectionID]; ok {
		e.sub.LastSeenAt = now
		e.sink = sink
		return e.sub
	}

	e := &entry{
		sub: Subscriber{
			ConnectionID: connectionID,
			ConnectedAt:  now,
			LastSeenAt:   now,
		},
		sink: sink,
	}
	h.subs[connectionID] = e

	return e.sub
}

// Unregister removes a subscriber. Unknown ids are a no-op: disconnect
// races with failed deliveries are expected.
func (h *Hub) Unregister(connectionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, connectionID)
}

// Touch refreshes a subscriber's liveness timestamp.
func (h *Hub) Touch(connectionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if e, ok := h.subs[connectionID]; ok {
		e.sub.LastSeenAt = h.now()
	}
}

// Broadcast delivers r to every registered subscriber in a single fan-out
// pass. Holding the lock for the whole pass serializes concurrent
// broadcasts, which is what gives each subscriber FIFO delivery. A failed
// delivery removes that subscriber and never blocks the others.
func (h *Hub) Broadcast(r domain.Reading) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, e := range h.subs {
		if err := e.sink.Deliver(r); err != nil {
			log.Printf("dropping subscriber %s: %v", id, err)
			delete(h.subs, id)
		}
	}
}

// Size reports the current live subscriber count.
func (h *Hub) Size() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
