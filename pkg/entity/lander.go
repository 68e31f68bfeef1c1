// pkg/entity/lander.go
package entity

import (
	"github.com/opd-ai/go-lander/pkg/physics"
)

// Lander is the player-controlled vehicle. The embedded physics body
// owns all dynamic state; the entity layer adds identity and the pixel
// footprint renderers draw with.
type Lander struct {
	BaseEntity
	Body *physics.Body
}

// NewLander creates a lander at the given start position with a full
// tank and no motion.
func NewLander(id ID, start physics.Vector3D) *Lander {
	body := physics.NewBody()
	body.Position = start
	return &Lander{
		BaseEntity: BaseEntity{
			ID:       id,
			Name:     "Lander",
			Position: start,
			Active:   true,
		},
		Body: body,
	}
}

// GetPosition returns the body's position in meters.
func (l *Lander) GetPosition() physics.Vector3D {
	return l.Body.Position
}

// GetVelocity returns the body's velocity in meters per second.
func (l *Lander) GetVelocity() physics.Vector3D {
	return l.Body.Velocity
}

// GetRotation returns the body's rotation in degrees per axis.
func (l *Lander) GetRotation() physics.Vector3D {
	return l.Body.Rotation
}

// FuelFraction returns remaining fuel as a fraction of the full tank.
func (l *Lander) FuelFraction() float64 {
	if l.Body.MaxFuel == 0 {
		return 0
	}
	return l.Body.Fuel / l.Body.MaxFuel
}

// PixelWidth returns the sprite width in screen pixels.
func (l *Lander) PixelWidth() float64 {
	return l.Body.Width * physics.PixelsPerMeter
}

// PixelHeight returns the sprite height in screen pixels.
func (l *Lander) PixelHeight() float64 {
	return l.Body.Height * physics.PixelsPerMeter
}

// PixelDepth returns the sprite depth in screen pixels.
func (l *Lander) PixelDepth() float64 {
	return l.Body.Depth * physics.PixelsPerMeter
}

// Update mirrors the body's position into the entity layer. The physics
// backend moves the body; this keeps GetPosition via Entity consistent.
func (l *Lander) Update(deltaTime float64) {
	l.Position = l.Body.Position
}

// Render draws the lander through the active renderer.
func (l *Lander) Render(r Renderer) {
	r.RenderLander(l)
}

// Reset returns the lander to the start position with a full tank.
func (l *Lander) Reset(start physics.Vector3D) {
	l.Body.Reset(start)
	l.Position = start
	l.Active = true
}
