package entity

import (
	"github.com/opd-ai/go-lander/pkg/terrain"
)

// HUD carries the per-frame telemetry a renderer may display.
type HUD struct {
	Fuel       float64
	MaxFuel    float64
	Altitude   float64
	VSpeed     float64
	HSpeed     float64
	Score      int
	Elapsed    float64
	StateLabel string
}

// Renderer draws the scene. Implementations range from a no-op null
// renderer to the windowed engo renderer.
type Renderer interface {
	Clear()
	RenderTerrain(t *terrain.Terrain)
	RenderLander(l *Lander)
	RenderHUD(hud HUD)
	Present()
}
