// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-lander/pkg/config"
	"github.com/opd-ai/go-lander/pkg/engine"
)

// rotationRate is how fast the held rotation keys tilt the craft, in
// degrees per second.
const rotationRate = 90.0

// InputSystem translates keyboard state into flight commands on the
// local game session.
type InputSystem struct {
	game *engine.Game

	// Input state
	thrustHeld    bool
	turnLeftHeld  bool
	turnRightHeld bool
}

// NewInputSystem creates a new input system
func NewInputSystem(game *engine.Game) *InputSystem {
	return &InputSystem{
		game: game,
	}
}

// Add satisfies the ecs.System interface
func (is *InputSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for input system
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {
	// Not used for input system
}

// Update processes input and applies it to the session
func (is *InputSystem) Update(dt float32) {
	is.handleSessionInput()
	is.handleFlightInput(dt)
}

// handleSessionInput processes state-changing keys: start, reset,
// difficulty, and the render mode toggle.
func (is *InputSystem) handleSessionInput() {
	if engo.Input.Button("start").JustPressed() {
		switch is.game.State() {
		case engine.StateReady:
			is.game.Start()
		case engine.StateLanded, engine.StateCrashed:
			is.game.Reset()
		}
	}

	if engo.Input.Button("reset").JustPressed() {
		is.game.Reset()
	}

	if engo.Input.Button("modeToggle").JustPressed() {
		is.game.SetRenderMode(!is.game.Terrain.Mode3D())
	}

	if engo.Input.Button("quit").JustPressed() {
		engo.Exit()
	}

	if engo.Input.Button("difficultyEasy").JustPressed() {
		is.game.SetDifficulty(config.Easy)
	}
	if engo.Input.Button("difficultyNormal").JustPressed() {
		is.game.SetDifficulty(config.Normal)
	}
	if engo.Input.Button("difficultyHard").JustPressed() {
		is.game.SetDifficulty(config.Hard)
	}
}

// handleFlightInput processes the held movement keys.
func (is *InputSystem) handleFlightInput(dt float32) {
	is.thrustHeld = engo.Input.Button("thrust").Down()
	is.turnLeftHeld = engo.Input.Button("turnLeft").Down()
	is.turnRightHeld = engo.Input.Button("turnRight").Down()

	if is.thrustHeld {
		is.game.ApplyThrust(1.0)
	} else {
		is.game.ApplyThrust(0)
	}

	step := rotationRate * float64(dt)
	if is.turnLeftHeld {
		is.game.RotateLeft(step)
	}
	if is.turnRightHeld {
		is.game.RotateRight(step)
	}
}

// IsThrusting returns whether the thrust key is held
func (is *InputSystem) IsThrusting() bool {
	return is.thrustHeld
}

// SetupInputBindings sets up the key bindings for the game
func SetupInputBindings() {
	// Flight keys
	engo.Input.RegisterButton("thrust", engo.KeyW, engo.KeyArrowUp, engo.KeySpace)
	engo.Input.RegisterButton("turnLeft", engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton("turnRight", engo.KeyD, engo.KeyArrowRight)

	// Session keys
	engo.Input.RegisterButton("start", engo.KeyEnter)
	engo.Input.RegisterButton("reset", engo.KeyR)
	engo.Input.RegisterButton("modeToggle", engo.KeyTab)
	engo.Input.RegisterButton("quit", engo.KeyEscape)

	// Difficulty selection
	engo.Input.RegisterButton("difficultyEasy", engo.KeyOne)
	engo.Input.RegisterButton("difficultyNormal", engo.KeyTwo)
	engo.Input.RegisterButton("difficultyHard", engo.KeyThree)
}
