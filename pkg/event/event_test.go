// pkg/event/event_test.go
package event

import (
	"sync"
	"testing"
)

// TestNewEventBus tests the creation of a new event bus
func TestNewEventBus_Creation_ReturnsInitializedBus(t *testing.T) {
	bus := NewEventBus()

	if bus == nil {
		t.Fatal("NewEventBus() returned nil")
	}

	if bus.handlers == nil {
		t.Error("handlers map not initialized")
	}
}

// TestBaseEvent tests the BaseEvent functionality
func TestBaseEvent_GetType_ReturnsCorrectType(t *testing.T) {
	tests := []struct {
		name      string
		eventType Type
		source    interface{}
	}{
		{
			name:      "LanderLanded event",
			eventType: LanderLanded,
			source:    "test_source",
		},
		{
			name:      "LanderCrashed event",
			eventType: LanderCrashed,
			source:    123,
		},
		{
			name:      "Empty source",
			eventType: GameStarted,
			source:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &BaseEvent{
				EventType: tt.eventType,
				Source:    tt.source,
			}

			if event.GetType() != tt.eventType {
				t.Errorf("GetType() = %v, want %v", event.GetType(), tt.eventType)
			}

			if event.GetSource() != tt.source {
				t.Errorf("GetSource() = %v, want %v", event.GetSource(), tt.source)
			}
		})
	}
}

// TestBusSubscribe tests event subscription functionality
func TestBusSubscribe_MultipleHandlers_AllRegistered(t *testing.T) {
	bus := NewEventBus()

	handler1 := func(e Event) {}
	handler2 := func(e Event) {}
	handler3 := func(e Event) {}

	bus.Subscribe(LanderLanded, handler1)
	bus.Subscribe(LanderLanded, handler2)
	bus.Subscribe(FuelExhausted, handler3)

	bus.mu.RLock()
	landedHandlers := bus.handlers[LanderLanded]
	fuelHandlers := bus.handlers[FuelExhausted]
	bus.mu.RUnlock()

	if len(landedHandlers) != 2 {
		t.Errorf("expected 2 handlers for LanderLanded, got %d", len(landedHandlers))
	}

	if len(fuelHandlers) != 1 {
		t.Errorf("expected 1 handler for FuelExhausted, got %d", len(fuelHandlers))
	}
}

// TestBusPublish tests event publishing functionality
func TestBusPublish_WithSubscribers_CallsAllHandlers(t *testing.T) {
	bus := NewEventBus()
	var callCount int
	var receivedEvents []Event

	handler1 := func(e Event) {
		callCount++
		receivedEvents = append(receivedEvents, e)
	}

	handler2 := func(e Event) {
		callCount++
		receivedEvents = append(receivedEvents, e)
	}

	bus.Subscribe(LanderLanded, handler1)
	bus.Subscribe(LanderLanded, handler2)

	event := &BaseEvent{
		EventType: LanderLanded,
		Source:    "test",
	}

	bus.Publish(event)

	if callCount != 2 {
		t.Errorf("expected 2 handler calls, got %d", callCount)
	}

	for _, e := range receivedEvents {
		if e.GetType() != LanderLanded {
			t.Errorf("expected event type %v, got %v", LanderLanded, e.GetType())
		}
	}
}

// TestBusPublish_NoSubscribers tests publishing without subscribers
func TestBusPublish_NoSubscribers_NoError(t *testing.T) {
	bus := NewEventBus()

	event := &BaseEvent{
		EventType: GameReset,
		Source:    "test",
	}

	// Should not panic or error
	bus.Publish(event)
}

// TestBusPublish_WrongEventType tests publishing to a non-subscribed event type
func TestBusPublish_WrongEventType_HandlersNotCalled(t *testing.T) {
	bus := NewEventBus()
	var called bool

	bus.Subscribe(LanderCrashed, func(e Event) { called = true })

	bus.Publish(&BaseEvent{EventType: LanderLanded, Source: "test"})

	if called {
		t.Error("handler for LanderCrashed should not fire for LanderLanded")
	}
}

// TestBusConcurrency tests concurrent publish and subscribe
func TestBusConcurrency_ParallelPublishSubscribe_NoRace(t *testing.T) {
	bus := NewEventBus()
	var mu sync.Mutex
	count := 0

	bus.Subscribe(TerrainGenerated, func(e Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Publish(NewTerrainEvent("test", false, 10, 0))
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if count != 10 {
		t.Errorf("expected 10 handler calls, got %d", count)
	}
}

// TestTouchdownEvent tests the touchdown event constructor
func TestTouchdownEvent_Fields_SetCorrectly(t *testing.T) {
	e := NewTouchdownEvent(LanderCrashed, "game", 7, false, 5.2, 0.4, 12.5, 0)

	if e.GetType() != LanderCrashed {
		t.Errorf("GetType() = %v, want %v", e.GetType(), LanderCrashed)
	}
	if e.LanderID != 7 {
		t.Errorf("LanderID = %d, want 7", e.LanderID)
	}
	if e.OnPad {
		t.Error("OnPad should be false")
	}
	if e.VerticalSpeed != 5.2 || e.HorizontalSpeed != 0.4 {
		t.Errorf("velocity fields = (%v, %v), want (5.2, 0.4)", e.VerticalSpeed, e.HorizontalSpeed)
	}
	if e.ContactHeight != 12.5 {
		t.Errorf("ContactHeight = %v, want 12.5", e.ContactHeight)
	}
	if e.Score != 0 {
		t.Errorf("Score = %d, want 0 for a crash", e.Score)
	}
}
