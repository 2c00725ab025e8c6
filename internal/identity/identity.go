// Package identity is the authentication collaborator boundary. The core
// only ever sees an opaque user id; everything else about sign-in lives
// outside this repository.
package identity

import "sync"

// Provider supplies the opaque user id that scopes per-user state such as
// bookmark sets. The core never interprets the id's structure.
type Provider interface {
	UserID() string
}

// Static is a Provider returning a fixed id from configuration.
type Static struct {
	id string
}

// NewStatic wraps a configured user id.
func NewStatic(id string) Static {
	return Static{id: id}
}

// UserID returns the configured id.
func (s Static) UserID() string {
	return s.id
}

// State describes the current identity.
type State struct {
	UserID   string
	SignedIn bool
}

// Bus notifies subscribers of identity changes. Handlers run synchronously
// on the publishing goroutine, in subscription order.
type Bus struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]func(State)
	order    []int
}

// NewBus constructs an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[int]func(State))}
}

// Subscribe registers a handler and returns its unsubscribe function.
// Unsubscribing more than once is harmless.
func (b *Bus) Subscribe(handler func(State)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	b.order = append(b.order, id)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers, id)
	}
}

// Publish invokes every subscribed handler with the new state.
func (b *Bus) Publish(state State) {
	b.mu.Lock()
	handlers := make([]func(State), 0, len(b.handlers))
	for _, id := range b.order {
		if handler, ok := b.handlers[id]; ok {
			handlers = append(handlers, handler)
		}
	}
	b.mu.Unlock()

	for _, handler := range handlers {
		handler(state)
	}
}
