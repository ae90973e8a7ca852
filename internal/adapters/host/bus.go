// Package host provides in-process implementations of the collaborator
// surfaces an embedding build host supplies: the build event source, the
// project resolution table, and the fault sink.
package host

import (
	"sync"

	"go.trai.ch/fresh/internal/core/ports"
)

var _ ports.BuildManager = (*BuildBus)(nil)

// BuildBus is an in-process build manager. An embedding host emits
// build-begin and build-done events on it; subscribed handlers receive them
// on the emitting goroutine, mirroring how an external build manager
// dispatches on its own thread.
type BuildBus struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]ports.BuildEventHandler
}

// NewBuildBus creates an empty bus.
func NewBuildBus() *BuildBus {
	return &BuildBus{
		handlers: make(map[int]ports.BuildEventHandler),
	}
}

// Subscribe registers the handler and returns its subscription.
func (b *BuildBus) Subscribe(handler ports.BuildEventHandler) (ports.Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[id] = handler

	return &busSubscription{bus: b, id: id}, nil
}

// EmitBuildBegin delivers a build-begin event to every subscribed handler.
func (b *BuildBus) EmitBuildBegin(ev ports.BuildEvent) {
	for _, handler := range b.snapshot() {
		handler.BuildBegin(ev)
	}
}

// EmitBuildDone delivers a build-done event to every subscribed handler.
func (b *BuildBus) EmitBuildDone(ev ports.BuildDoneEvent) {
	for _, handler := range b.snapshot() {
		handler.BuildDone(ev)
	}
}

// snapshot copies the handler set so delivery happens outside the lock and a
// handler disposing itself mid-delivery cannot deadlock.
func (b *BuildBus) snapshot() []ports.BuildEventHandler {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]ports.BuildEventHandler, 0, len(b.handlers))
	for _, handler := range b.handlers {
		out = append(out, handler)
	}
	return out
}

type busSubscription struct {
	bus  *BuildBus
	id   int
	once sync.Once
}

// Dispose removes the registration. Repeated calls are tolerated; only the
// first releases.
func (s *busSubscription) Dispose() error {
	s.once.Do(func() {
		s.bus.mu.Lock()
		defer s.bus.mu.Unlock()
		delete(s.bus.handlers, s.id)
	})
	return nil
}
