// pkg/physics/backend.go
package physics

// Surface answers height and pad queries at a horizontal world position.
// The z coordinate is ignored by 2D terrain implementations.
type Surface interface {
	// HeightAt returns the terrain height under (x, z). ok is false when
	// no terrain primitive covers the query point; the caller treats that
	// as open space, not an error.
	HeightAt(x, z float64) (height float64, ok bool)

	// PadAt reports whether the terrain under (x, z) is part of the
	// designated landing pad.
	PadAt(x, z float64) bool
}

// Contact is the transient result of a collision query, consumed
// immediately by landing validation.
type Contact struct {
	Collided bool
	Height   float64
	OnPad    bool
}

// Backend is the polymorphic physics capability behind the simulation.
// The kinematic backend is the baseline; an adapter over an external
// dynamics engine can implement the same contract.
type Backend interface {
	// Integrate advances the body by dt seconds under gravity, thrust
	// and drag. Terminal bodies are frozen and left untouched.
	Integrate(b *Body, dt float64)

	// DetectContact tests the body's lower extent against the surface
	// at its current horizontal position.
	DetectContact(b *Body, s Surface) Contact

	// ApplyThrust sets the commanded thrust level on the body.
	ApplyThrust(b *Body, level float64)

	// Sync reconciles the body with any backend-internal state after a
	// step. The kinematic backend mutates the body directly, so it has
	// nothing to reconcile.
	Sync(b *Body)
}
