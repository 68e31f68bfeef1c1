// pkg/render/engo/scene.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-lander/pkg/engine"
	"github.com/opd-ai/go-lander/pkg/event"
)

// GameScene is the single Engo scene: it advances the local session
// every frame and mirrors it into the render systems.
type GameScene struct {
	world *ecs.World

	game     *engine.Game
	eventBus *event.Bus

	// Rendering components
	renderer *EngoRenderer
	camera   *CameraSystem
	input    *InputSystem
	hud      *HUDSystem
}

// NewGameScene creates a scene around an existing session.
func NewGameScene(game *engine.Game) *GameScene {
	return &GameScene{
		game:     game,
		eventBus: game.EventBus,
		world:    &ecs.World{},
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {
	// All textures are generated in memory; nothing to load from disk.
}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	scene.world = &ecs.World{}

	SetupInputBindings()
	SetupCameraControls()

	scene.renderer = NewEngoRenderer(scene.world)
	if err := scene.renderer.Initialize(); err != nil {
		panic("Failed to initialize renderer: " + err.Error())
	}

	scene.camera = NewCameraSystem()
	scene.world.AddSystem(scene.camera)

	scene.input = NewInputSystem(scene.game)
	scene.world.AddSystem(scene.input)

	scene.hud = NewHUDSystem(scene.renderer.renderSystem)
	scene.world.AddSystem(scene.hud)

	scene.world.AddSystem(&sessionSystem{scene: scene})

	scene.subscribeToEvents()
}

// subscribeToEvents wires session events into scene-side reactions.
func (scene *GameScene) subscribeToEvents() {
	// Regenerated terrain invalidates the ground entities; the
	// renderer rebuilds them on the next frame's RenderTerrain call.
	scene.eventBus.Subscribe(event.RenderModeChanged, func(e event.Event) {
		scene.camera.ClearTarget()
	})
}

// updateFrame advances the session and mirrors it into the renderer.
func (scene *GameScene) updateFrame() {
	scene.game.Tick()

	scene.renderer.Clear()
	scene.renderer.RenderTerrain(scene.game.Terrain)
	scene.renderer.RenderLander(scene.game.Lander)
	scene.camera.SetTarget(scene.game.Lander.GetPosition())
	scene.hud.UpdateTelemetry(scene.game.HUD())
	scene.renderer.Present()
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *GameScene) Exit() {
	// Nothing to release; the session owns its own state.
}

// sessionSystem drives the simulation from Engo's update loop.
type sessionSystem struct {
	scene *GameScene
}

// Remove satisfies the ecs.System interface
func (s *sessionSystem) Remove(basic ecs.BasicEntity) {}

// Update advances the session once per frame.
func (s *sessionSystem) Update(dt float32) {
	s.scene.updateFrame()
}

// Run opens the window and hands control to Engo until the player
// closes it.
func Run(title string, width, height int, fullscreen bool, game *engine.Game) {
	scene := NewGameScene(game)

	opts := engo.RunOptions{
		Title:      title,
		Width:      width,
		Height:     height,
		Fullscreen: fullscreen,
		VSync:      true,
	}

	engo.Run(opts, scene)
}
