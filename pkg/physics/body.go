// pkg/physics/body.go
package physics

// Simulation constants shared by both backends.
const (
	// MaxDeltaTime bounds a single integration step so a stalled host
	// frame cannot produce a runaway position update.
	MaxDeltaTime = 0.1

	// ThrustToWeightRatio relates maximum thrust force to the vehicle's
	// weight under the current gravity.
	ThrustToWeightRatio = 2.5

	// PixelsPerMeter converts between the 2D screen-space terrain
	// representation and physics meters.
	PixelsPerMeter = 20.0

	dragCoefficient = 0.5
)

// Body tracks the kinematic and resource state of the vehicle.
// Position and velocity are meters and m/s; rotation is degrees,
// normalized to [0,360).
type Body struct {
	Position Vector3D
	Velocity Vector3D
	Rotation Vector3D

	Mass            float64 // kg, constant per session
	Fuel            float64 // kg
	MaxFuel         float64 // kg
	ConsumptionRate float64 // kg/s at full thrust
	ThrustLevel     float64 // [0,1]
	ThrustActive    bool

	// Box extents in meters, for collision and drag cross-section.
	Width  float64
	Height float64
	Depth  float64

	Landed  bool
	Crashed bool
}

// NewBody creates a vehicle body with the reference lander parameters:
// a one-tonne craft with a full tank burning 10 kg/s at maximum thrust.
func NewBody() *Body {
	return &Body{
		Mass:            1000.0,
		Fuel:            1000.0,
		MaxFuel:         1000.0,
		ConsumptionRate: 10.0,
		Width:           1.0,
		Height:          1.5,
		Depth:           1.0,
	}
}

// Terminal reports whether the body has reached a terminal state
// (landed or crashed) and is physically frozen.
func (b *Body) Terminal() bool {
	return b.Landed || b.Crashed
}

// HalfHeight returns half the body's vertical extent, the offset from
// its center to its lowest point.
func (b *Body) HalfHeight() float64 {
	return b.Height / 2
}

// ApplyThrust sets the thrust level, clamped to [0,1]. Thrust cannot be
// engaged with an empty tank or after touchdown.
func (b *Body) ApplyThrust(level float64) {
	if b.Terminal() || b.Fuel <= 0 {
		b.ThrustActive = false
		b.ThrustLevel = 0
		return
	}

	if level < 0 {
		level = 0
	} else if level > 1 {
		level = 1
	}

	b.ThrustLevel = level
	b.ThrustActive = level > 0
}

// RotateLeft rotates the body counterclockwise around the Z axis
func (b *Body) RotateLeft(degrees float64) {
	if b.Terminal() {
		return
	}
	b.Rotation.Z += degrees
	b.normalizeRotation()
}

// RotateRight rotates the body clockwise around the Z axis
func (b *Body) RotateRight(degrees float64) {
	if b.Terminal() {
		return
	}
	b.Rotation.Z -= degrees
	b.normalizeRotation()
}

// normalizeRotation keeps every rotation component in [0,360)
func (b *Body) normalizeRotation() {
	b.Rotation.X = normalizeDegrees(b.Rotation.X)
	b.Rotation.Y = normalizeDegrees(b.Rotation.Y)
	b.Rotation.Z = normalizeDegrees(b.Rotation.Z)
}

func normalizeDegrees(deg float64) float64 {
	for deg >= 360.0 {
		deg -= 360.0
	}
	for deg < 0.0 {
		deg += 360.0
	}
	return deg
}

// Reset restores the body to its initial flight state at the given
// start position: zero velocity, level attitude, full tank, flags cleared.
func (b *Body) Reset(start Vector3D) {
	b.Position = start
	b.Velocity = Vector3D{}
	b.Rotation = Vector3D{}
	b.ThrustLevel = 0
	b.ThrustActive = false
	b.Fuel = b.MaxFuel
	b.Landed = false
	b.Crashed = false
}
