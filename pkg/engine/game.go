// pkg/engine/game.go
package engine

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/opd-ai/go-lander/pkg/config"
	"github.com/opd-ai/go-lander/pkg/entity"
	"github.com/opd-ai/go-lander/pkg/event"
	"github.com/opd-ai/go-lander/pkg/logging"
	"github.com/opd-ai/go-lander/pkg/physics"
	"github.com/opd-ai/go-lander/pkg/terrain"
)

// GameState tracks where a session is in its lifecycle.
type GameState int

const (
	StateReady GameState = iota
	StateFlying
	StateLanded
	StateCrashed
)

// String returns a display label for the state.
func (s GameState) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateFlying:
		return "Flying"
	case StateLanded:
		return "Landed"
	case StateCrashed:
		return "Crashed"
	default:
		return "Unknown"
	}
}

// maxScore is awarded for a safe landing with a full tank.
const maxScore = 1000

// Game owns one descent session: the lander, the terrain it falls
// toward, and the physics backend that moves it.
type Game struct {
	Config   *config.GameConfig
	Lander   *entity.Lander
	Terrain  *terrain.Terrain
	Backend  physics.Backend
	EventBus *event.Bus
	Registry *entity.Registry

	logger *logging.Logger
	ctx    context.Context

	mu          sync.RWMutex
	seeds       *rand.Rand
	pending     []event.Event
	state       GameState
	score       int
	elapsed     float64
	fuelUsed    float64
	lastUpdate  time.Time
	fuelFlagged bool
}

// NewGame creates a session from the configuration: generated terrain,
// a fueled lander hovering above the pad, and a kinematic backend tuned
// to the configured difficulty.
func NewGame(cfg *config.GameConfig) *Game {
	seed := cfg.TerrainConfig.Seed
	g := &Game{
		Config:   cfg,
		EventBus: event.NewEventBus(),
		Registry: entity.NewRegistry(),
		logger:   logging.NewLogger(),
		ctx:      context.Background(),
		seeds:    rand.New(rand.NewPCG(seed, seed^0x2545f4914f6cdd1d)),
		state:    StateReady,
	}

	g.initTerrain(cfg.TerrainConfig.Mode3D)
	g.initLander()
	g.initBackend()
	g.flushEvents()

	return g
}

// initTerrain generates a fresh surface for the requested mode and
// announces it on the bus. Each call draws the next seed from the
// session stream, so regeneration rolls new heights while the whole
// sequence stays reproducible from the configured seed.
func (g *Game) initTerrain(mode3D bool) {
	rc := g.Config.RenderConfig
	t := terrain.New(g.seeds.Uint64())
	if mode3D {
		t.Generate3D(rc.WindowWidth, rc.WindowLength, rc.WindowHeight)
	} else {
		t.Generate2D(rc.WindowWidth, rc.WindowHeight)
	}
	g.Terrain = t

	g.queue(event.NewTerrainEvent(g, mode3D,
		len(t.Segments()), len(t.Triangles())))
}

// initLander places a fresh lander at the start position above the pad
// and applies the configured vehicle parameters.
func (g *Game) initLander() {
	g.Lander = entity.NewLander(g.Registry.Next(), g.startPosition())

	lc := g.Config.LanderConfig
	body := g.Lander.Body
	body.Mass = lc.Mass
	body.MaxFuel = lc.MaxFuel
	body.Fuel = lc.MaxFuel
	body.ConsumptionRate = lc.ConsumptionRate
}

// initBackend builds the kinematic integrator from the physics and
// difficulty configuration.
func (g *Game) initBackend() {
	backend := physics.NewKinematicBackend(
		g.Config.Difficulty.Gravity(), g.Terrain.Mode3D())
	backend.AirDensity = g.Config.PhysicsConfig.AirDensity
	backend.TimeScale = g.Config.PhysicsConfig.TimeScale
	g.Backend = backend
}

// startPosition is the pad center raised by the configured altitude.
func (g *Game) startPosition() physics.Vector3D {
	x, z := g.Terrain.Center()
	return physics.Vector3D{
		X: x,
		Y: g.Terrain.PadHeight() + g.Config.LanderConfig.StartAltitude,
		Z: z,
	}
}

// queue holds an event for publication once the session lock is
// released. Callers must hold g.mu; publishing under the lock would
// deadlock any handler that reads the session back.
func (g *Game) queue(e event.Event) {
	g.pending = append(g.pending, e)
}

// flushEvents publishes queued events in order. Must be called
// without g.mu held.
func (g *Game) flushEvents() {
	g.mu.Lock()
	pending := g.pending
	g.pending = nil
	g.mu.Unlock()

	for _, e := range pending {
		g.EventBus.Publish(e)
	}
}

// Start begins the descent. Only valid from the ready state.
func (g *Game) Start() {
	g.mu.Lock()
	defer g.flushEvents()
	defer g.mu.Unlock()

	if g.state != StateReady {
		return
	}
	g.state = StateFlying
	g.lastUpdate = time.Now()

	g.queue(event.NewBaseEvent(event.GameStarted, g))
	g.logger.Info(g.ctx, "descent started",
		"difficulty", string(g.Config.Difficulty),
		"gravity", g.Config.Difficulty.Gravity(),
		"mode3D", g.Terrain.Mode3D(),
	)
}

// Update advances the simulation by deltaTime seconds. It is a no-op
// unless the session is flying.
func (g *Game) Update(deltaTime float64) {
	g.mu.Lock()
	defer g.flushEvents()
	defer g.mu.Unlock()

	if g.state != StateFlying {
		return
	}

	// Track simulated time with the same clamped, scaled step the
	// integrator applies, so telemetry matches physical time under
	// stalled frames and non-unit time scales.
	simDT := deltaTime
	if simDT > physics.MaxDeltaTime {
		simDT = physics.MaxDeltaTime
	}
	simDT *= g.Config.PhysicsConfig.TimeScale

	g.Backend.Integrate(g.Lander.Body, deltaTime)
	g.Lander.Update(simDT)
	g.elapsed += simDT

	g.checkFuel()
	g.checkContact()
}

// Tick advances the simulation by the wall-clock time since the last
// tick. Renderer loops call this once per frame.
func (g *Game) Tick() {
	g.mu.Lock()
	now := time.Now()
	dt := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now
	g.mu.Unlock()

	g.Update(dt)
}

// checkFuel publishes a single exhaustion event when the tank runs dry.
func (g *Game) checkFuel() {
	if g.fuelFlagged || g.Lander.Body.Fuel > 0 {
		return
	}
	g.fuelFlagged = true
	g.queue(event.NewBaseEvent(event.FuelExhausted, g))
	g.logger.Warn(g.ctx, "fuel exhausted", "elapsed", g.elapsed)
}

// checkContact queries the surface under the lander and classifies the
// touchdown when contact occurs.
func (g *Game) checkContact() {
	contact := g.Backend.DetectContact(g.Lander.Body, g.Terrain)
	if !contact.Collided {
		return
	}

	body := g.Lander.Body
	vSpeed := body.Velocity.Y
	hSpeed := body.Velocity.Horizontal()

	safe := physics.ValidateLanding(body, contact)
	g.Lander.Update(0)
	g.fuelUsed = body.MaxFuel - body.Fuel

	if safe {
		g.state = StateLanded
		g.score = int(g.Lander.FuelFraction() * maxScore)
		g.queue(event.NewTouchdownEvent(event.LanderLanded, g,
			uint64(g.Lander.GetID()), contact.OnPad, vSpeed, hSpeed, contact.Height, g.score))
		g.logger.Info(g.ctx, "touchdown",
			"verticalSpeed", vSpeed,
			"horizontalSpeed", hSpeed,
			"score", g.score,
		)
		return
	}

	g.state = StateCrashed
	g.score = 0
	g.queue(event.NewTouchdownEvent(event.LanderCrashed, g,
		uint64(g.Lander.GetID()), contact.OnPad, vSpeed, hSpeed, contact.Height, 0))
	g.logger.Info(g.ctx, "crash",
		"onPad", contact.OnPad,
		"verticalSpeed", vSpeed,
		"horizontalSpeed", hSpeed,
	)
}

// resetLocked rebuilds the session: freshly generated terrain, a reset
// vehicle above the new pad, and a new descent already in progress.
// Callers must hold g.mu.
func (g *Game) resetLocked() {
	g.initTerrain(g.Config.TerrainConfig.Mode3D)
	g.initBackend()
	g.Lander.Reset(g.startPosition())
	g.state = StateFlying
	g.lastUpdate = time.Now()
	g.score = 0
	g.elapsed = 0
	g.fuelUsed = 0
	g.fuelFlagged = false
}

// Reset regenerates the terrain, restores the vehicle to its start
// state, and immediately begins a new descent. Repeated resets yield
// the same vehicle state; only the terrain heights re-roll.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.flushEvents()
	defer g.mu.Unlock()

	g.resetLocked()
	g.queue(event.NewBaseEvent(event.GameReset, g))
}

// SetDifficulty switches the gravity profile and restarts the session
// under it: the change rebuilds the backend, so the descent begins
// over rather than continuing mid-flight with different physics.
func (g *Game) SetDifficulty(d config.Difficulty) {
	if !d.Valid() {
		return
	}

	g.mu.Lock()
	defer g.flushEvents()
	defer g.mu.Unlock()

	g.Config.Difficulty = d
	g.resetLocked()

	g.queue(event.NewDifficultyEvent(g, string(d), d.Gravity()))
	g.logger.Info(g.ctx, "difficulty changed", "difficulty", string(d), "gravity", d.Gravity())
}

// SetRenderMode rebuilds the session for the requested dimensionality.
// Terrain is regenerated and the lander returns to the start position.
func (g *Game) SetRenderMode(mode3D bool) {
	g.mu.Lock()
	defer g.flushEvents()
	defer g.mu.Unlock()

	if g.Terrain.Mode3D() == mode3D {
		return
	}

	g.Config.TerrainConfig.Mode3D = mode3D
	g.resetLocked()

	g.queue(event.NewBaseEvent(event.RenderModeChanged, g))
}

// ApplyThrust sets the throttle. Ignored unless flying.
func (g *Game) ApplyThrust(level float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateFlying {
		return
	}
	g.Backend.ApplyThrust(g.Lander.Body, level)
}

// RotateLeft tilts the lander counterclockwise. Ignored unless flying.
func (g *Game) RotateLeft(degrees float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateFlying {
		return
	}
	g.Lander.Body.RotateLeft(degrees)
}

// RotateRight tilts the lander clockwise. Ignored unless flying.
func (g *Game) RotateRight(degrees float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateFlying {
		return
	}
	g.Lander.Body.RotateRight(degrees)
}

// State returns the current session state.
func (g *Game) State() GameState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Score returns the landing score. Zero until a safe touchdown.
func (g *Game) Score() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.score
}

// Elapsed returns flight time in seconds.
func (g *Game) Elapsed() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.elapsed
}

// FuelUsed returns kilograms of fuel burned so far.
func (g *Game) FuelUsed() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.state == StateLanded || g.state == StateCrashed {
		return g.fuelUsed
	}
	body := g.Lander.Body
	return body.MaxFuel - body.Fuel
}

// Altitude returns the gap in meters between the lander's bottom and
// the surface directly below it, or zero when off the terrain.
func (g *Game) Altitude() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.altitudeLocked()
}

func (g *Game) altitudeLocked() float64 {
	body := g.Lander.Body
	height, ok := g.Terrain.HeightAt(body.Position.X, body.Position.Z)
	if !ok {
		return 0
	}
	alt := body.Position.Y - body.HalfHeight() - height
	if alt < 0 {
		return 0
	}
	return alt
}

// HUD assembles the telemetry renderers display each frame.
func (g *Game) HUD() entity.HUD {
	g.mu.RLock()
	defer g.mu.RUnlock()

	body := g.Lander.Body
	return entity.HUD{
		Fuel:       body.Fuel,
		MaxFuel:    body.MaxFuel,
		Altitude:   g.altitudeLocked(),
		VSpeed:     body.Velocity.Y,
		HSpeed:     body.Velocity.Horizontal(),
		Score:      g.score,
		Elapsed:    g.elapsed,
		StateLabel: g.state.String(),
	}
}
