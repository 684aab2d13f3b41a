package kura

import "sync"

// EntityDeleted is published after an entity and its components are gone.
type EntityDeleted struct {
	ID EntityID
}

// SlotRetired is published when deleting an entity exhausted the generation
// of its slot. The index is never handed out again.
type SlotRetired struct {
	Index uint64
}

// EventBus delivers typed events to subscribed handlers. Handlers run
// synchronously, in subscription order, on the goroutine that publishes.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[TypeID][]any
}

// Subscribe registers handler for events of type T.
//
// Parameters:
//   - bus: The EventBus instance to subscribe to.
//   - handler: A function that takes a single argument of type `T`.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	id := TypeOf[T]()
	bus.mu.Lock()
	defer bus.mu.Unlock()
	if bus.handlers == nil {
		bus.handlers = make(map[TypeID][]any)
	}
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish sends event to every handler subscribed to T.
func Publish[T any](bus *EventBus, event T) {
	bus.mu.RLock()
	hs := bus.handlers[TypeOf[T]()]
	bus.mu.RUnlock()
	for _, h := range hs {
		h.(func(T))(event)
	}
}
