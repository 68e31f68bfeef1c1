// pkg/entity/entity.go
package entity

import (
	"sync"

	"github.com/opd-ai/go-lander/pkg/physics"
)

// ID is a unique identifier for an entity within a session.
type ID uint64

// Entity is the base interface for all simulated objects.
type Entity interface {
	GetID() ID
	GetName() string
	GetPosition() physics.Vector3D
	Update(deltaTime float64)
	Render(r Renderer)
}

// Registry issues entity IDs scoped to a single session. Two sessions
// each start their numbering at 1, so IDs are stable across resets and
// independent of how many sessions ran before.
type Registry struct {
	mu   sync.Mutex
	next ID
}

// NewRegistry returns a registry whose first issued ID is 1.
func NewRegistry() *Registry {
	return &Registry{}
}

// Next returns the next unused ID.
func (r *Registry) Next() ID {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	return r.next
}

// BaseEntity contains the fields shared by all entities.
type BaseEntity struct {
	ID       ID
	Name     string
	Position physics.Vector3D
	Active   bool
}

// GetID returns the entity's unique identifier.
func (e *BaseEntity) GetID() ID {
	return e.ID
}

// GetName returns the entity's display name.
func (e *BaseEntity) GetName() string {
	return e.Name
}

// GetPosition returns the entity's position in meters.
func (e *BaseEntity) GetPosition() physics.Vector3D {
	return e.Position
}

// Update is a no-op for entities without motion of their own.
func (e *BaseEntity) Update(deltaTime float64) {}

// Render is a no-op for entities without a visual representation.
func (e *BaseEntity) Render(r Renderer) {}
