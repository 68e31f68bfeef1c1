// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Difficulty selects the gravity profile for a session.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
)

// Gravity returns the downward acceleration in m/s² for the difficulty.
// Unknown values fall back to Normal's lunar gravity.
func (d Difficulty) Gravity() float64 {
	switch d {
	case Easy:
		return 1.0
	case Hard:
		return 2.0
	default:
		return 1.62
	}
}

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Normal, Hard:
		return true
	}
	return false
}

// GameConfig contains configuration for a lander session.
type GameConfig struct {
	Difficulty    Difficulty    `json:"difficulty"`
	PhysicsConfig PhysicsConfig `json:"physics"`
	LanderConfig  LanderConfig  `json:"lander"`
	TerrainConfig TerrainConfig `json:"terrain"`
	RenderConfig  RenderConfig  `json:"render"`
}

// PhysicsConfig contains integrator-related configuration.
type PhysicsConfig struct {
	AirDensity float64 `json:"airDensity"`
	TimeScale  float64 `json:"timeScale"`
}

// LanderConfig contains vehicle parameters.
type LanderConfig struct {
	Mass            float64 `json:"mass"`
	MaxFuel         float64 `json:"maxFuel"`
	ConsumptionRate float64 `json:"consumptionRate"`
	StartAltitude   float64 `json:"startAltitude"`
}

// TerrainConfig contains terrain generation parameters.
type TerrainConfig struct {
	Seed   uint64 `json:"seed"`
	Mode3D bool   `json:"mode3D"`
}

// RenderConfig contains presentation configuration.
type RenderConfig struct {
	Renderer     string `json:"renderer"`
	WindowWidth  int    `json:"windowWidth"`
	WindowHeight int    `json:"windowHeight"`
	WindowLength int    `json:"windowLength"`
	Title        string `json:"title"`
}

// LoadConfig loads a configuration from a file and applies environment
// overrides on top of it.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyEnvOverrides()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves a configuration to a file.
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the standard lunar-gravity configuration.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Difficulty: Normal,
		PhysicsConfig: PhysicsConfig{
			AirDensity: 0,
			TimeScale:  1.0,
		},
		LanderConfig: LanderConfig{
			Mass:            1000,
			MaxFuel:         1000,
			ConsumptionRate: 10,
			StartAltitude:   20,
		},
		TerrainConfig: TerrainConfig{
			Seed:   0,
			Mode3D: false,
		},
		RenderConfig: RenderConfig{
			Renderer:     "engo",
			WindowWidth:  800,
			WindowHeight: 600,
			WindowLength: 800,
			Title:        "Lander",
		},
	}
}

// Validate checks that the configuration is usable.
func (c *GameConfig) Validate() error {
	if !c.Difficulty.Valid() {
		return fmt.Errorf("unknown difficulty %q", c.Difficulty)
	}
	if c.PhysicsConfig.TimeScale <= 0 {
		return fmt.Errorf("timeScale must be positive, got %v", c.PhysicsConfig.TimeScale)
	}
	if c.LanderConfig.Mass <= 0 {
		return fmt.Errorf("lander mass must be positive, got %v", c.LanderConfig.Mass)
	}
	if c.LanderConfig.MaxFuel < 0 {
		return fmt.Errorf("maxFuel must not be negative, got %v", c.LanderConfig.MaxFuel)
	}
	if c.RenderConfig.WindowWidth <= 0 || c.RenderConfig.WindowHeight <= 0 {
		return fmt.Errorf("window dimensions must be positive, got %dx%d",
			c.RenderConfig.WindowWidth, c.RenderConfig.WindowHeight)
	}
	return nil
}

// applyEnvOverrides layers LANDER_* environment variables over the
// loaded values. Malformed values are ignored.
func (c *GameConfig) applyEnvOverrides() {
	if v := os.Getenv("LANDER_DIFFICULTY"); v != "" {
		d := Difficulty(strings.ToLower(v))
		if d.Valid() {
			c.Difficulty = d
		}
	}
	if v := os.Getenv("LANDER_RENDERER"); v != "" {
		c.RenderConfig.Renderer = v
	}
	if v := os.Getenv("LANDER_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.TerrainConfig.Seed = seed
		}
	}
	if v := os.Getenv("LANDER_MODE3D"); v != "" {
		if mode3D, err := strconv.ParseBool(v); err == nil {
			c.TerrainConfig.Mode3D = mode3D
		}
	}
	if v := os.Getenv("LANDER_TIME_SCALE"); v != "" {
		if scale, err := strconv.ParseFloat(v, 64); err == nil && scale > 0 {
			c.PhysicsConfig.TimeScale = scale
		}
	}
}
