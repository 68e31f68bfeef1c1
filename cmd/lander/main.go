// cmd/lander/main.go
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opd-ai/go-lander/pkg/config"
	"github.com/opd-ai/go-lander/pkg/engine"
	"github.com/opd-ai/go-lander/pkg/entity"
	"github.com/opd-ai/go-lander/pkg/event"
	"github.com/opd-ai/go-lander/pkg/logging"
	"github.com/opd-ai/go-lander/pkg/physics"
	"github.com/opd-ai/go-lander/pkg/render"
	engorender "github.com/opd-ai/go-lander/pkg/render/engo"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	difficulty := flag.String("difficulty", "", "Difficulty: 'easy', 'normal' or 'hard' (overrides config)")
	renderer := flag.String("renderer", "", "Renderer type: 'engo', 'terminal' or 'null' (overrides config)")
	mode3D := flag.Bool("3d", false, "Start in 3D terrain mode")
	seed := flag.Uint64("seed", 0, "Terrain generation seed (overrides config)")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode (Engo only)")
	flag.Parse()

	// Load configuration
	var gameConfig *config.GameConfig

	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		log.Printf("Configuration file not found, using default configuration")
		gameConfig = config.DefaultConfig()
	} else {
		var err error
		gameConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(logging.WrapError(err, "loading configuration from %s", *configPath))
		}
	}

	// Command line flags win over config and environment.
	if *difficulty != "" {
		d := config.Difficulty(*difficulty)
		if !d.Valid() {
			log.Fatalf("Unknown difficulty %q", *difficulty)
		}
		gameConfig.Difficulty = d
	}
	if *renderer != "" {
		gameConfig.RenderConfig.Renderer = *renderer
	}
	if *mode3D {
		gameConfig.TerrainConfig.Mode3D = true
	}
	if *seed != 0 {
		gameConfig.TerrainConfig.Seed = *seed
	}

	// Create the session
	game := engine.NewGame(gameConfig)

	game.EventBus.Subscribe(event.LanderLanded, func(e event.Event) {
		if touchdown, ok := e.(*event.TouchdownEvent); ok {
			log.Printf("Touchdown: vertical %.2f m/s, horizontal %.2f m/s, score %d",
				touchdown.VerticalSpeed, touchdown.HorizontalSpeed, touchdown.Score)
		}
	})

	game.EventBus.Subscribe(event.LanderCrashed, func(e event.Event) {
		if touchdown, ok := e.(*event.TouchdownEvent); ok {
			log.Printf("Crashed: vertical %.2f m/s, horizontal %.2f m/s, on pad: %v",
				touchdown.VerticalSpeed, touchdown.HorizontalSpeed, touchdown.OnPad)
		}
	})

	switch gameConfig.RenderConfig.Renderer {
	case "engo":
		startEngoRenderer(game, gameConfig, *fullscreen)
	case "null":
		startHeadless(game)
	case "terminal":
		fallthrough
	default:
		startTerminalRenderer(game)
	}
}

// startEngoRenderer opens the game window and blocks until it closes.
func startEngoRenderer(game *engine.Game, cfg *config.GameConfig, fullscreen bool) {
	engorender.Run(
		cfg.RenderConfig.Title,
		cfg.RenderConfig.WindowWidth,
		cfg.RenderConfig.WindowHeight,
		fullscreen,
		game,
	)
}

// startTerminalRenderer runs an ASCII view of the descent with no
// interactive controls: an unpowered drop onto the pad region.
func startTerminalRenderer(game *engine.Game) {
	worldHeight := float64(game.Config.RenderConfig.WindowHeight) / physics.PixelsPerMeter
	terminal := render.NewTerminalRenderer(80, 24, worldHeight)

	game.Start()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			game.Tick()
			drawFrame(terminal, game)
			if game.State() == engine.StateLanded || game.State() == engine.StateCrashed {
				log.Printf("Flight over: %s, score %d", game.State(), game.Score())
				return
			}
		case <-sigChan:
			log.Println("Interrupted")
			return
		}
	}
}

// startHeadless advances the simulation without drawing anything, for
// profiling and scripted runs.
func startHeadless(game *engine.Game) {
	game.Start()

	for game.State() == engine.StateFlying {
		game.Update(0.01)
	}

	log.Printf("Flight over: %s, elapsed %.2f s, fuel used %.1f kg, score %d",
		game.State(), game.Elapsed(), game.FuelUsed(), game.Score())
}

// drawFrame renders one terminal frame.
func drawFrame(r entity.Renderer, game *engine.Game) {
	r.Clear()
	r.RenderTerrain(game.Terrain)
	r.RenderLander(game.Lander)
	r.RenderHUD(game.HUD())
	r.Present()
}
