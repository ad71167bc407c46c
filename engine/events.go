package engine

import (
	"time"

	"github.com/goldenmunch/attract/components"
)

// EventType represents the type of simulation event
type EventType uint8

const (
	// EventCollectibleSpawned signals a new collectible
	// Trigger: spawner (interval or seed timer) | Payload: Collectible
	EventCollectibleSpawned EventType = iota

	// EventCollectibleConsumed signals a collision
	// Trigger: pursuer | Payload: Collectible, Points, Score
	EventCollectibleConsumed

	// EventMilestone signals a new thousands band being celebrated
	// Trigger: milestone check | Payload: Thousands, Score
	EventMilestone

	// EventBridgeSync signals a published snapshot
	// Trigger: bridge sync | Payload: Score
	EventBridgeSync
)

func (t EventType) String() string {
	switch t {
	case EventCollectibleSpawned:
		return "collectible_spawned"
	case EventCollectibleConsumed:
		return "collectible_consumed"
	case EventMilestone:
		return "milestone"
	case EventBridgeSync:
		return "bridge_sync"
	default:
		return "unknown"
	}
}

// Event is emitted during Update and dispatched after it completes
type Event struct {
	Type        EventType
	At          time.Duration
	Collectible components.Collectible
	Points      int
	Score       int
	Thousands   int
}

// Handler processes routed events
type Handler interface {
	// HandleEvent is called synchronously on the host loop goroutine
	HandleEvent(ev Event)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// HandlerFunc adapts a function to Handler for a fixed set of types
type HandlerFunc struct {
	Types []EventType
	Fn    func(Event)
}

func (h HandlerFunc) HandleEvent(ev Event)    { h.Fn(ev) }
func (h HandlerFunc) EventTypes() []EventType { return h.Types }

// Router dispatches events to registered handlers in registration order
type Router struct {
	handlers map[EventType][]Handler
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{handlers: make(map[EventType][]Handler)}
}

// Register adds a handler for its declared event types
func (r *Router) Register(h Handler) {
	for _, t := range h.EventTypes() {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// Dispatch routes events in FIFO order
func (r *Router) Dispatch(events []Event) {
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
