// pkg/physics/kinematic.go
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// KinematicBackend is the closed-form integrator: semi-implicit Euler
// with gravity, oriented thrust, and optional quadratic drag. It is the
// baseline Backend implementation.
type KinematicBackend struct {
	Gravity    float64 // positive magnitude, m/s²
	AirDensity float64 // kg/m³; 0 in vacuum, which disables drag
	TimeScale  float64 // simulation speed multiplier, 1.0 = real time
	Mode3D     bool
}

// NewKinematicBackend creates a kinematic backend with the given gravity
// and no atmosphere.
func NewKinematicBackend(gravity float64, mode3D bool) *KinematicBackend {
	return &KinematicBackend{
		Gravity:   gravity,
		TimeScale: 1.0,
		Mode3D:    mode3D,
	}
}

// Integrate advances the body by dt seconds. Velocity is updated first
// (gravity, thrust, drag), then position from the new velocity; this
// ordering is what makes repeated small steps converge on the free-fall
// and projectile closed forms.
func (kb *KinematicBackend) Integrate(b *Body, dt float64) {
	if b.Terminal() {
		return
	}

	if dt > MaxDeltaTime {
		dt = MaxDeltaTime
	}
	dt *= kb.TimeScale

	// Gravity pulls along -Y.
	b.Velocity.Y -= kb.Gravity * dt

	if b.ThrustActive {
		kb.applyThrustAcceleration(b, dt)
		kb.consumeFuel(b, dt)
	}

	if kb.AirDensity > 0 {
		kb.applyDrag(b, dt)
	}

	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// applyThrustAcceleration accelerates the body along its thrust axis.
func (kb *KinematicBackend) applyThrustAcceleration(b *Body, dt float64) {
	maxThrust := b.Mass * ThrustToWeightRatio * kb.Gravity
	accel := maxThrust * b.ThrustLevel / b.Mass

	dir := kb.thrustDirection(b)
	b.Velocity = b.Velocity.Add(dir.Scale(accel * dt))
}

// thrustDirection derives the unit thrust vector from the body's
// orientation: a Z-axis tilt in 2D, the full Euler composition in 3D.
func (kb *KinematicBackend) thrustDirection(b *Body) Vector3D {
	if !kb.Mode3D {
		rz := b.Rotation.Z * math.Pi / 180.0
		return Vector3D{X: -math.Sin(rz), Y: math.Cos(rz)}
	}

	quat := mgl64.AnglesToQuat(
		b.Rotation.Z*math.Pi/180.0,
		b.Rotation.Y*math.Pi/180.0,
		b.Rotation.X*math.Pi/180.0,
		mgl64.ZYX,
	)
	return FromMgl(quat.Rotate(mgl64.Vec3{0, 1, 0}))
}

// consumeFuel burns fuel proportionally to thrust level and forces the
// engine off when the tank runs dry.
func (kb *KinematicBackend) consumeFuel(b *Body, dt float64) {
	b.Fuel -= b.ConsumptionRate * b.ThrustLevel * dt
	if b.Fuel <= 0 {
		b.Fuel = 0
		b.ThrustActive = false
		b.ThrustLevel = 0
	}
}

// applyDrag opposes each velocity component with quadratic drag scaled
// by the body's cross-sectional area. Inert on the Moon (AirDensity 0).
func (kb *KinematicBackend) applyDrag(b *Body, dt float64) {
	area := b.Width * b.Height

	for _, c := range []*float64{&b.Velocity.X, &b.Velocity.Y, &b.Velocity.Z} {
		speed := *c
		if speed == 0 {
			continue
		}
		force := 0.5 * kb.AirDensity * speed * math.Abs(speed) * dragCoefficient * area
		*c -= force / b.Mass * dt
	}
}

// DetectContact tests the body's lower extent against the surface at
// its current horizontal position. Called once per step, after
// integration, so the contact matches the already-advanced position.
func (kb *KinematicBackend) DetectContact(b *Body, s Surface) Contact {
	height, ok := s.HeightAt(b.Position.X, b.Position.Z)
	if !ok {
		// No terrain coverage: the body free-falls, by design.
		return Contact{}
	}

	lower := b.Position.Y - b.HalfHeight()
	if lower > height {
		return Contact{}
	}

	return Contact{
		Collided: true,
		Height:   height,
		OnPad:    s.PadAt(b.Position.X, b.Position.Z),
	}
}

// ApplyThrust sets the commanded thrust level on the body.
func (kb *KinematicBackend) ApplyThrust(b *Body, level float64) {
	b.ApplyThrust(level)
}

// Sync is a no-op: the kinematic backend owns no state outside the body.
func (kb *KinematicBackend) Sync(b *Body) {}
