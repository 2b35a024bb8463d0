// Package events carries user-visible signals (completion celebrations,
// toast-worthy notices) from the engine to whatever surface wants to
// present them. The engine only publishes; it never assumes a listener.
package events

import "sync"

const (
	KindCompletion = "completion"
	KindInfo       = "info"
	KindError      = "error"
)

type Event struct {
	Kind    string `json:"kind"`
	UserID  uint   `json:"userId"`
	HabitID string `json:"habitId,omitempty"`
	Date    string `json:"date,omitempty"`
	Message string `json:"message"`
}

// Bus is a synchronous fan-out: Publish delivers to every subscriber in
// subscription order before returning.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Event)
	order  []int
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(Event))}
}

// Subscribe registers a listener and returns its unsubscribe function.
func (bus *Bus) Subscribe(listener func(Event)) func() {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	id := bus.nextID
	bus.nextID++
	bus.subs[id] = listener
	bus.order = append(bus.order, id)

	return func() {
		bus.mu.Lock()
		defer bus.mu.Unlock()
		delete(bus.subs, id)
	}
}

func (bus *Bus) Publish(event Event) {
	bus.mu.Lock()
	listeners := make([]func(Event), 0, len(bus.order))
	for _, id := range bus.order {
		if listener, ok := bus.subs[id]; ok {
			listeners = append(listeners, listener)
		}
	}
	bus.mu.Unlock()

	for _, listener := range listeners {
		listener(event)
	}
}
