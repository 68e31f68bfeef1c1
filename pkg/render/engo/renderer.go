// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-lander/pkg/entity"
	"github.com/opd-ai/go-lander/pkg/physics"
	"github.com/opd-ai/go-lander/pkg/terrain"
)

// terrainColumns is the number of vertical strips the ground is drawn
// with. Enough to resolve every segment edge at typical window widths.
const terrainColumns = 200

// renderEntity bundles an ECS entity with the components the render
// system needs, so updates can mutate them directly.
type renderEntity struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// EngoRenderer implements entity.Renderer using the Engo game engine
type EngoRenderer struct {
	world        *ecs.World
	renderSystem *common.RenderSystem

	// Entity management
	landerEntity    *renderEntity
	terrainEntities []*renderEntity
	terrainRef      *terrain.Terrain

	// Asset management
	assets *AssetManager
}

// NewEngoRenderer creates a new Engo-based renderer
func NewEngoRenderer(world *ecs.World) *EngoRenderer {
	return &EngoRenderer{
		world:  world,
		assets: NewAssetManager(),
	}
}

// Initialize sets up the renderer's systems
func (r *EngoRenderer) Initialize() error {
	r.renderSystem = &common.RenderSystem{}
	r.world.AddSystem(r.renderSystem)

	return r.assets.LoadAssets()
}

// RenderTerrain implements entity.Renderer. Ground entities are built
// once per generated terrain and reused until it is regenerated.
func (r *EngoRenderer) RenderTerrain(t *terrain.Terrain) {
	if t == nil || t == r.terrainRef {
		return
	}
	r.removeTerrainEntities()
	r.terrainRef = t
	r.buildTerrainEntities(t)
}

// buildTerrainEntities draws the ground as filled columns from the
// surface profile down to the window bottom. The 3D mesh is shown as
// its side profile through the pad center.
func (r *EngoRenderer) buildTerrainEntities(t *terrain.Terrain) {
	_, centerZ := t.Center()
	colWidth := t.Width() * physics.PixelsPerMeter / terrainColumns

	for i := 0; i < terrainColumns; i++ {
		worldX := (float64(i) + 0.5) / terrainColumns * t.Width()
		height, ok := t.HeightAt(worldX, centerZ)
		if !ok {
			continue
		}

		groundColor := color.RGBA{110, 110, 120, 255}
		if t.PadAt(worldX, centerZ) {
			groundColor = color.RGBA{80, 200, 120, 255}
		}

		topY := engo.GameHeight() - float32(height*physics.PixelsPerMeter)
		col := &renderEntity{
			BasicEntity: ecs.NewBasic(),
			RenderComponent: common.RenderComponent{
				Drawable: common.Rectangle{},
				Color:    groundColor,
			},
			SpaceComponent: common.SpaceComponent{
				Position: engo.Point{X: float32(i) * float32(colWidth), Y: topY},
				Width:    float32(colWidth) + 1,
				Height:   engo.GameHeight() - topY,
			},
		}

		r.renderSystem.Add(&col.BasicEntity, &col.RenderComponent, &col.SpaceComponent)
		r.terrainEntities = append(r.terrainEntities, col)
	}
}

// removeTerrainEntities drops the previous terrain from the render system.
func (r *EngoRenderer) removeTerrainEntities() {
	for _, e := range r.terrainEntities {
		r.renderSystem.Remove(e.BasicEntity)
	}
	r.terrainEntities = nil
}

// RenderLander implements entity.Renderer
func (r *EngoRenderer) RenderLander(l *entity.Lander) {
	if l == nil {
		return
	}
	re := r.getOrCreateLanderEntity(l)
	r.updateLanderComponents(re, l)
}

// getOrCreateLanderEntity lazily creates the vehicle's render entity.
func (r *EngoRenderer) getOrCreateLanderEntity(l *entity.Lander) *renderEntity {
	if r.landerEntity != nil {
		return r.landerEntity
	}

	re := &renderEntity{
		BasicEntity: ecs.NewBasic(),
		RenderComponent: common.RenderComponent{
			Drawable: r.assets.GetLanderSprite(false, false),
			Color:    color.RGBA{255, 255, 255, 255},
		},
		SpaceComponent: common.SpaceComponent{
			Width:  float32(l.PixelWidth()),
			Height: float32(l.PixelHeight()),
		},
	}
	r.renderSystem.Add(&re.BasicEntity, &re.RenderComponent, &re.SpaceComponent)
	r.landerEntity = re
	return re
}

// updateLanderComponents moves the sprite to the body's screen position
// and swaps the texture for the current flight state.
func (r *EngoRenderer) updateLanderComponents(re *renderEntity, l *entity.Lander) {
	body := l.Body
	screen := r.worldToScreen(body.Position)

	re.SpaceComponent.Position = engo.Point{
		X: screen.X - float32(l.PixelWidth())/2,
		Y: screen.Y - float32(l.PixelHeight())/2,
	}
	re.SpaceComponent.Rotation = float32(body.Rotation.Z)
	re.RenderComponent.Drawable = r.assets.GetLanderSprite(body.ThrustActive, body.Crashed)
}

// Clear implements entity.Renderer
func (r *EngoRenderer) Clear() {
	// Engo clears the frame itself; per-frame entity state is updated
	// in place.
}

// Present implements entity.Renderer
func (r *EngoRenderer) Present() {
	// Engo presents through its render system after all systems update.
}

// RenderHUD implements entity.Renderer. The HUD system owns the actual
// text entities; the renderer only forwards telemetry.
func (r *EngoRenderer) RenderHUD(hud entity.HUD) {
	// Handled by HUDSystem.
}

// worldToScreen converts a position in meters to window pixels. World Y
// grows upward from the terrain baseline, screen Y grows downward.
func (r *EngoRenderer) worldToScreen(pos physics.Vector3D) engo.Point {
	return engo.Point{
		X: float32(pos.X * physics.PixelsPerMeter),
		Y: engo.GameHeight() - float32(pos.Y*physics.PixelsPerMeter),
	}
}
