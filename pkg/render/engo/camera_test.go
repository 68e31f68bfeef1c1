// pkg/render/engo/camera_test.go
package engo

import (
	"math"
	"testing"

	"github.com/opd-ai/go-lander/pkg/physics"
)

func TestNewCameraSystem(t *testing.T) {
	camera := NewCameraSystem()

	if camera.zoom != 1.0 {
		t.Errorf("Expected default zoom 1.0, got %f", camera.zoom)
	}
	if camera.minZoom != 0.5 {
		t.Errorf("Expected default minZoom 0.5, got %f", camera.minZoom)
	}
	if camera.maxZoom != 3.0 {
		t.Errorf("Expected default maxZoom 3.0, got %f", camera.maxZoom)
	}
	if camera.followSpeed != 2.0 {
		t.Errorf("Expected default followSpeed 2.0, got %f", camera.followSpeed)
	}
	if !camera.smoothing {
		t.Error("Expected smoothing to be enabled by default")
	}
	if camera.targetSet {
		t.Error("Expected targetSet to be false by default")
	}
}

func TestCameraSystem_SetTarget_ClearTarget(t *testing.T) {
	camera := NewCameraSystem()
	target := physics.Vector3D{X: 20, Y: 15}

	camera.SetTarget(target)

	if !camera.targetSet {
		t.Error("SetTarget did not mark target as set")
	}
	if camera.target != target {
		t.Errorf("target = %v, want %v", camera.target, target)
	}
	// First target positions the camera immediately.
	if camera.currentPos != target {
		t.Errorf("currentPos = %v, want %v on first target", camera.currentPos, target)
	}

	camera.ClearTarget()
	if camera.targetSet {
		t.Error("ClearTarget did not clear the target")
	}
}

func TestCameraSystem_ZoomOperations(t *testing.T) {
	camera := NewCameraSystem()

	camera.SetZoom(2.0)
	if camera.GetZoom() != 2.0 {
		t.Errorf("GetZoom() = %f, want 2.0", camera.GetZoom())
	}

	// Values beyond the limits are clamped.
	camera.SetZoom(100)
	if camera.GetZoom() != 3.0 {
		t.Errorf("GetZoom() = %f, want clamped 3.0", camera.GetZoom())
	}
	camera.SetZoom(0.01)
	if camera.GetZoom() != 0.5 {
		t.Errorf("GetZoom() = %f, want clamped 0.5", camera.GetZoom())
	}
}

func TestCameraSystem_ZoomLimits(t *testing.T) {
	camera := NewCameraSystem()
	camera.SetZoom(3.0)

	// Shrinking the limits re-clamps the current zoom.
	camera.SetZoomLimits(1.0, 2.0)

	min, max := camera.GetZoomLimits()
	if min != 1.0 || max != 2.0 {
		t.Errorf("limits = (%f, %f), want (1.0, 2.0)", min, max)
	}
	if camera.GetZoom() != 2.0 {
		t.Errorf("zoom = %f, want re-clamped 2.0", camera.GetZoom())
	}
}

func TestCameraSystem_Smoothing(t *testing.T) {
	camera := NewCameraSystem()
	camera.SetTarget(physics.Vector3D{X: 0, Y: 0})
	camera.SetTarget(physics.Vector3D{X: 100, Y: 100})

	// With smoothing the camera lags behind the target.
	camera.updateCameraPosition(0.1)
	if camera.currentPos.X >= 100 {
		t.Error("smoothed camera reached target in one step")
	}
	if camera.currentPos.X <= 0 {
		t.Error("smoothed camera did not move toward target")
	}

	// Without smoothing it snaps.
	camera.EnableSmoothing(false)
	camera.updateCameraPosition(0.1)
	if camera.currentPos != camera.target {
		t.Errorf("unsmoothed camera at %v, want %v", camera.currentPos, camera.target)
	}
}

func TestCameraSystem_FollowSpeed(t *testing.T) {
	camera := NewCameraSystem()

	camera.SetFollowSpeed(5.0)
	if camera.GetFollowSpeed() != 5.0 {
		t.Errorf("GetFollowSpeed() = %f, want 5.0", camera.GetFollowSpeed())
	}
}

func TestCameraSystem_CoordinateRoundTrip(t *testing.T) {
	camera := NewCameraSystem()
	camera.EnableSmoothing(false)
	camera.SetTarget(physics.Vector3D{X: 20, Y: 10})
	camera.updateCameraPosition(0)

	tests := []struct {
		name  string
		world physics.Vector3D
	}{
		{"camera_center", physics.Vector3D{X: 20, Y: 10}},
		{"above_pad", physics.Vector3D{X: 20, Y: 22.5}},
		{"off_center", physics.Vector3D{X: 5, Y: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := camera.WorldToScreen(tt.world)
			back := camera.ScreenToWorld(screen)

			if math.Abs(back.X-tt.world.X) > 1e-6 || math.Abs(back.Y-tt.world.Y) > 1e-6 {
				t.Errorf("round trip %v -> %v -> %v", tt.world, screen, back)
			}
		})
	}
}

func TestCameraSystem_WorldToScreen_YFlips(t *testing.T) {
	camera := NewCameraSystem()
	camera.EnableSmoothing(false)
	camera.SetTarget(physics.Vector3D{X: 0, Y: 0})
	camera.updateCameraPosition(0)

	low := camera.WorldToScreen(physics.Vector3D{X: 0, Y: 1})
	high := camera.WorldToScreen(physics.Vector3D{X: 0, Y: 10})

	// Higher altitude means a smaller screen Y.
	if high.Y >= low.Y {
		t.Errorf("screen Y did not flip: alt 10 -> %f, alt 1 -> %f", high.Y, low.Y)
	}
}
