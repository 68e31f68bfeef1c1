// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	GameStarted       Type = "game_started"
	GameReset         Type = "game_reset"
	LanderLanded      Type = "lander_landed"
	LanderCrashed     Type = "lander_crashed"
	FuelExhausted     Type = "fuel_exhausted"
	TerrainGenerated  Type = "terrain_generated"
	DifficultyChanged Type = "difficulty_changed"
	RenderModeChanged Type = "render_mode_changed"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// NewBaseEvent creates an event with no payload beyond its type.
func NewBaseEvent(eventType Type, source interface{}) *BaseEvent {
	return &BaseEvent{
		EventType: eventType,
		Source:    source,
	}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	// Call each handler
	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// TouchdownEvent contains information about a landing outcome. It
// carries the full outcome so handlers never need to call back into
// the session that published it.
type TouchdownEvent struct {
	BaseEvent
	LanderID        uint64
	OnPad           bool
	VerticalSpeed   float64
	HorizontalSpeed float64
	ContactHeight   float64
	Score           int
}

// NewTouchdownEvent creates a new touchdown event for a landing or crash
func NewTouchdownEvent(eventType Type, source interface{}, landerID uint64, onPad bool, vSpeed, hSpeed, contactHeight float64, score int) *TouchdownEvent {
	return &TouchdownEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		LanderID:        landerID,
		OnPad:           onPad,
		VerticalSpeed:   vSpeed,
		HorizontalSpeed: hSpeed,
		ContactHeight:   contactHeight,
		Score:           score,
	}
}

// TerrainEvent contains information about terrain regeneration
type TerrainEvent struct {
	BaseEvent
	Mode3D        bool
	SegmentCount  int
	TriangleCount int
}

// NewTerrainEvent creates a new terrain regeneration event
func NewTerrainEvent(source interface{}, mode3D bool, segments, triangles int) *TerrainEvent {
	return &TerrainEvent{
		BaseEvent: BaseEvent{
			EventType: TerrainGenerated,
			Source:    source,
		},
		Mode3D:        mode3D,
		SegmentCount:  segments,
		TriangleCount: triangles,
	}
}

// DifficultyEvent contains information about a difficulty change
type DifficultyEvent struct {
	BaseEvent
	Difficulty string
	Gravity    float64
}

// NewDifficultyEvent creates a new difficulty change event
func NewDifficultyEvent(source interface{}, difficulty string, gravity float64) *DifficultyEvent {
	return &DifficultyEvent{
		BaseEvent: BaseEvent{
			EventType: DifficultyChanged,
			Source:    source,
		},
		Difficulty: difficulty,
		Gravity:    gravity,
	}
}
