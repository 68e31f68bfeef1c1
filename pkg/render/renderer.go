// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-lander/pkg/entity"
	"github.com/opd-ai/go-lander/pkg/logging"
	"github.com/opd-ai/go-lander/pkg/terrain"
)

// NullRenderer is a simple implementation of entity.Renderer.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	ctx := context.Background()
	d.logger.Debug(ctx, "Clear called")
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	ctx := context.Background()
	d.logger.Debug(ctx, "Present called")
}

// RenderTerrain implements entity.Renderer.
func (d *NullRenderer) RenderTerrain(t *terrain.Terrain) {
	ctx := context.Background()
	if t == nil {
		d.logger.Debug(ctx, "RenderTerrain called with nil terrain")
		return
	}
	d.logger.Debug(ctx, "RenderTerrain called",
		"mode3D", t.Mode3D(),
		"segments", len(t.Segments()),
		"triangles", len(t.Triangles()),
	)
}

// RenderLander implements entity.Renderer.
func (d *NullRenderer) RenderLander(l *entity.Lander) {
	ctx := context.Background()
	if l == nil {
		d.logger.Debug(ctx, "RenderLander called with nil lander")
		return
	}
	d.logger.Debug(ctx, "RenderLander called",
		"lander_id", l.ID,
		"position_x", l.Body.Position.X,
		"position_y", l.Body.Position.Y,
	)
}

// RenderHUD implements entity.Renderer.
func (d *NullRenderer) RenderHUD(hud entity.HUD) {
	ctx := context.Background()
	d.logger.Debug(ctx, "RenderHUD called",
		"fuel", hud.Fuel,
		"altitude", hud.Altitude,
		"state", hud.StateLabel,
	)
}

// NullRendererInstance is a global instance of NullRenderer for convenience.
var NullRendererInstance entity.Renderer = NewNullRenderer()
