// pkg/render/engo/hud.go
package engo

import (
	"fmt"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-lander/pkg/entity"
)

// HUDSystem manages the heads-up display: fuel gauge, descent
// telemetry, and session state.
type HUDSystem struct {
	renderSystem *common.RenderSystem

	// HUD entities, rebuilt every frame
	hudEntities []*renderEntity

	// Latest telemetry
	telemetry entity.HUD

	// Font for text rendering; gauges render without one
	font *common.Font

	// Colors
	hudColor    color.RGBA
	safeColor   color.RGBA
	dangerColor color.RGBA
	panelColor  color.RGBA
}

// NewHUDSystem creates a new HUD system
func NewHUDSystem(renderSystem *common.RenderSystem) *HUDSystem {
	return &HUDSystem{
		renderSystem: renderSystem,
		hudColor:     color.RGBA{255, 255, 255, 255},
		safeColor:    color.RGBA{0, 220, 100, 255},
		dangerColor:  color.RGBA{230, 60, 60, 255},
		panelColor:   color.RGBA{0, 0, 0, 128},
	}
}

// Add satisfies the ecs.System interface
func (hud *HUDSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for HUD system
}

// Remove satisfies the ecs.System interface
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {
	// Not used for HUD system
}

// UpdateTelemetry stores the telemetry to draw on the next frame.
func (hud *HUDSystem) UpdateTelemetry(t entity.HUD) {
	hud.telemetry = t
}

// Update rebuilds the HUD entities from the latest telemetry
func (hud *HUDSystem) Update(dt float32) {
	hud.clearHUDEntities()

	hud.renderFuelGauge()
	hud.renderSpeedIndicators()
	hud.renderStatusText()
}

// clearHUDEntities removes the previous frame's HUD entities.
func (hud *HUDSystem) clearHUDEntities() {
	for _, e := range hud.hudEntities {
		hud.renderSystem.Remove(e.BasicEntity)
	}
	hud.hudEntities = hud.hudEntities[:0]
}

// renderFuelGauge draws the fuel bar in the top-left corner.
func (hud *HUDSystem) renderFuelGauge() {
	const barWidth, barHeight = 200.0, 16.0

	hud.renderRect(10, 10, barWidth, barHeight, hud.panelColor)

	fraction := 0.0
	if hud.telemetry.MaxFuel > 0 {
		fraction = hud.telemetry.Fuel / hud.telemetry.MaxFuel
	}

	fillColor := hud.safeColor
	if fraction < 0.25 {
		fillColor = hud.dangerColor
	}
	hud.renderRect(10, 10, float32(barWidth*fraction), barHeight, fillColor)
}

// renderSpeedIndicators draws vertical and horizontal speed bars,
// colored by whether each is inside its touchdown tolerance.
func (hud *HUDSystem) renderSpeedIndicators() {
	hud.renderSpeedBar(10, 32, hud.telemetry.VSpeed, 2.0)
	hud.renderSpeedBar(10, 46, hud.telemetry.HSpeed, 1.0)
}

// renderSpeedBar draws one speed magnitude as a horizontal bar scaled
// against its safe limit.
func (hud *HUDSystem) renderSpeedBar(x, y float32, speed, safeLimit float64) {
	const fullScale = 10.0 // m/s at full bar width
	const barWidth, barHeight = 200.0, 10.0

	magnitude := speed
	if magnitude < 0 {
		magnitude = -magnitude
	}

	fraction := magnitude / fullScale
	if fraction > 1 {
		fraction = 1
	}

	barColor := hud.safeColor
	if magnitude > safeLimit {
		barColor = hud.dangerColor
	}

	hud.renderRect(x, y, barWidth, barHeight, hud.panelColor)
	hud.renderRect(x, y, float32(barWidth*fraction), barHeight, barColor)
}

// renderStatusText draws the textual telemetry when a font is loaded.
func (hud *HUDSystem) renderStatusText() {
	if hud.font == nil {
		return
	}

	status := fmt.Sprintf(
		"%s\nAlt: %.1f m\nVSpeed: %.2f m/s\nHSpeed: %.2f m/s\nScore: %d\nTime: %.1f s",
		hud.telemetry.StateLabel,
		hud.telemetry.Altitude,
		hud.telemetry.VSpeed,
		hud.telemetry.HSpeed,
		hud.telemetry.Score,
		hud.telemetry.Elapsed,
	)

	hud.renderText(status, 10, 64, hud.hudColor)
}

// renderText renders text at the specified position
func (hud *HUDSystem) renderText(text string, x, y float32, textColor color.RGBA) {
	re := &renderEntity{
		BasicEntity: ecs.NewBasic(),
		RenderComponent: common.RenderComponent{
			Drawable: common.Text{
				Font: hud.font,
				Text: text,
			},
			Color: textColor,
		},
		SpaceComponent: common.SpaceComponent{
			Position: engo.Point{X: x, Y: y},
		},
	}

	hud.renderSystem.Add(&re.BasicEntity, &re.RenderComponent, &re.SpaceComponent)
	hud.hudEntities = append(hud.hudEntities, re)
}

// renderRect renders a filled rectangle
func (hud *HUDSystem) renderRect(x, y, width, height float32, rectColor color.RGBA) {
	re := &renderEntity{
		BasicEntity: ecs.NewBasic(),
		RenderComponent: common.RenderComponent{
			Drawable: common.Rectangle{},
			Color:    rectColor,
		},
		SpaceComponent: common.SpaceComponent{
			Position: engo.Point{X: x, Y: y},
			Width:    width,
			Height:   height,
		},
	}

	hud.renderSystem.Add(&re.BasicEntity, &re.RenderComponent, &re.SpaceComponent)
	hud.hudEntities = append(hud.hudEntities, re)
}

// SetFont sets the font used for HUD text rendering
func (hud *HUDSystem) SetFont(font *common.Font) {
	hud.font = font
}

// Telemetry returns the most recent telemetry shown by the HUD.
func (hud *HUDSystem) Telemetry() entity.HUD {
	return hud.telemetry
}
