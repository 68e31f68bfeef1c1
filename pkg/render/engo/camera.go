// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-lander/pkg/physics"
)

// CameraSystem manages the view, keeping the lander in frame during
// the descent.
type CameraSystem struct {
	// Target to follow, in meters.
	target    physics.Vector3D
	targetSet bool

	// Camera properties
	zoom    float32
	minZoom float32
	maxZoom float32

	// Smooth following
	followSpeed float32
	smoothing   bool

	// Current camera state, in meters.
	currentPos physics.Vector3D
}

// NewCameraSystem creates a new camera system
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{
		zoom:        1.0,
		minZoom:     0.5,
		maxZoom:     3.0,
		followSpeed: 2.0,
		smoothing:   true,
	}
}

// Add satisfies the ecs.System interface
func (cs *CameraSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for camera system
}

// Remove satisfies the ecs.System interface
func (cs *CameraSystem) Remove(basic ecs.BasicEntity) {
	// Not used for camera system
}

// Update updates the camera position and zoom
func (cs *CameraSystem) Update(dt float32) {
	cs.handleZoomInput()

	if cs.targetSet {
		cs.updateCameraPosition(dt)
	}
}

// handleZoomInput processes zoom-related input
func (cs *CameraSystem) handleZoomInput() {
	scrollY := engo.Input.Mouse.ScrollY
	if scrollY != 0 {
		zoomFactor := float32(1.0 + scrollY*0.1)
		cs.SetZoom(cs.zoom * zoomFactor)
	}

	if engo.Input.Button("resetZoom").JustPressed() {
		cs.SetZoom(1.0)
	}
}

// updateCameraPosition smoothly moves the camera toward the target
func (cs *CameraSystem) updateCameraPosition(dt float32) {
	if cs.smoothing {
		dx := cs.target.X - cs.currentPos.X
		dy := cs.target.Y - cs.currentPos.Y

		cs.currentPos.X += dx * float64(cs.followSpeed) * float64(dt)
		cs.currentPos.Y += dy * float64(cs.followSpeed) * float64(dt)
	} else {
		cs.currentPos = cs.target
	}
}

// SetTarget sets the position for the camera to follow
func (cs *CameraSystem) SetTarget(target physics.Vector3D) {
	cs.target = target
	cs.targetSet = true

	// If this is the first target, position camera immediately
	if !cs.smoothing || (cs.currentPos.X == 0 && cs.currentPos.Y == 0) {
		cs.currentPos = target
	}
}

// ClearTarget clears the camera target
func (cs *CameraSystem) ClearTarget() {
	cs.targetSet = false
}

// SetZoom sets the camera zoom level
func (cs *CameraSystem) SetZoom(zoom float32) {
	cs.zoom = cs.clampZoom(zoom)
}

// GetZoom returns the current zoom level
func (cs *CameraSystem) GetZoom() float32 {
	return cs.zoom
}

// clampZoom ensures zoom is within valid bounds
func (cs *CameraSystem) clampZoom(zoom float32) float32 {
	if zoom < cs.minZoom {
		return cs.minZoom
	}
	if zoom > cs.maxZoom {
		return cs.maxZoom
	}
	return zoom
}

// SetFollowSpeed sets the camera follow speed
func (cs *CameraSystem) SetFollowSpeed(speed float32) {
	cs.followSpeed = speed
}

// GetFollowSpeed returns the current follow speed
func (cs *CameraSystem) GetFollowSpeed() float32 {
	return cs.followSpeed
}

// EnableSmoothing enables or disables camera smoothing
func (cs *CameraSystem) EnableSmoothing(enabled bool) {
	cs.smoothing = enabled
}

// IsSmoothing returns whether camera smoothing is enabled
func (cs *CameraSystem) IsSmoothing() bool {
	return cs.smoothing
}

// GetCurrentPosition returns the current camera position in meters
func (cs *CameraSystem) GetCurrentPosition() physics.Vector3D {
	return cs.currentPos
}

// WorldToScreen converts a position in meters to screen pixels relative
// to the camera.
func (cs *CameraSystem) WorldToScreen(worldPos physics.Vector3D) physics.Vector2D {
	relativeX := (worldPos.X - cs.currentPos.X) * physics.PixelsPerMeter
	relativeY := (worldPos.Y - cs.currentPos.Y) * physics.PixelsPerMeter

	// Screen Y grows downward.
	screenX := relativeX*float64(cs.zoom) + float64(engo.GameWidth()/2)
	screenY := -relativeY*float64(cs.zoom) + float64(engo.GameHeight()/2)

	return physics.Vector2D{X: screenX, Y: screenY}
}

// ScreenToWorld converts screen pixels to a position in meters.
func (cs *CameraSystem) ScreenToWorld(screenPos physics.Vector2D) physics.Vector3D {
	relativeX := screenPos.X - float64(engo.GameWidth()/2)
	relativeY := -(screenPos.Y - float64(engo.GameHeight()/2))

	relativeX /= float64(cs.zoom) * physics.PixelsPerMeter
	relativeY /= float64(cs.zoom) * physics.PixelsPerMeter

	return physics.Vector3D{
		X: relativeX + cs.currentPos.X,
		Y: relativeY + cs.currentPos.Y,
		Z: cs.currentPos.Z,
	}
}

// SetZoomLimits sets the minimum and maximum zoom levels
func (cs *CameraSystem) SetZoomLimits(min, max float32) {
	cs.minZoom = min
	cs.maxZoom = max
	cs.zoom = cs.clampZoom(cs.zoom)
}

// GetZoomLimits returns the current zoom limits
func (cs *CameraSystem) GetZoomLimits() (float32, float32) {
	return cs.minZoom, cs.maxZoom
}

// SetupCameraControls sets up camera control key bindings
func SetupCameraControls() {
	engo.Input.RegisterButton("resetZoom", engo.KeyF)
}
