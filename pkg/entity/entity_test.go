// pkg/entity/entity_test.go
package entity

import (
	"sync"
	"testing"

	"github.com/opd-ai/go-lander/pkg/physics"
)

func TestBaseEntity_Accessors(t *testing.T) {
	tests := []struct {
		name     string
		entityID ID
		label    string
		position physics.Vector3D
	}{
		{
			name:     "zero_values",
			entityID: 0,
			label:    "",
			position: physics.Vector3D{},
		},
		{
			name:     "typical_entity",
			entityID: 42,
			label:    "Lander",
			position: physics.Vector3D{X: 20, Y: 22, Z: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &BaseEntity{
				ID:       tt.entityID,
				Name:     tt.label,
				Position: tt.position,
			}

			if got := e.GetID(); got != tt.entityID {
				t.Errorf("GetID() = %v, want %v", got, tt.entityID)
			}
			if got := e.GetName(); got != tt.label {
				t.Errorf("GetName() = %q, want %q", got, tt.label)
			}
			if got := e.GetPosition(); got != tt.position {
				t.Errorf("GetPosition() = %v, want %v", got, tt.position)
			}
		})
	}
}

func TestRegistry_SequentialIDs(t *testing.T) {
	reg := NewRegistry()

	for want := ID(1); want <= 5; want++ {
		if got := reg.Next(); got != want {
			t.Errorf("Next() = %v, want %v", got, want)
		}
	}
}

func TestRegistry_IndependentSessions(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	a.Next()
	a.Next()

	if got := b.Next(); got != 1 {
		t.Errorf("fresh registry Next() = %v, want 1", got)
	}
}

func TestRegistry_ConcurrentUnique(t *testing.T) {
	reg := NewRegistry()

	const workers = 8
	const perWorker = 100

	var wg sync.WaitGroup
	ids := make(chan ID, workers*perWorker)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				ids <- reg.Next()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[ID]bool, workers*perWorker)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate ID issued: %v", id)
		}
		seen[id] = true
	}
	if len(seen) != workers*perWorker {
		t.Errorf("issued %d unique IDs, want %d", len(seen), workers*perWorker)
	}
}
