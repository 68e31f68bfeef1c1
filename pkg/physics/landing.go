// pkg/physics/landing.go
package physics

import "math"

// Landing safety thresholds. A touchdown on the pad at or below both
// speeds is survivable; anything else, or any contact off the pad, is a
// crash.
const (
	SafeVerticalSpeed   = 2.0 // m/s
	SafeHorizontalSpeed = 1.0 // m/s
)

// ValidateLanding classifies a contact as a safe landing or a crash and
// drives the body into the matching terminal state. In both outcomes the
// body is snapped to rest on the contact height with zero velocity; the
// kinematic model does not simulate post-crash tumbling.
// It returns true for a safe landing.
func ValidateLanding(b *Body, contact Contact) bool {
	if !contact.Collided || b.Terminal() {
		return false
	}

	safe := contact.OnPad &&
		math.Abs(b.Velocity.Y) <= SafeVerticalSpeed &&
		b.Velocity.Horizontal() <= SafeHorizontalSpeed

	// Rest exactly on the surface regardless of outcome.
	b.Position.Y = contact.Height + b.HalfHeight()
	b.Velocity = Vector3D{}
	b.ThrustActive = false
	b.ThrustLevel = 0

	if safe {
		b.Landed = true
	} else {
		b.Crashed = true
	}
	return safe
}
