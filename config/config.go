// Package config assembles the simulation scenario from defaults, a TOML file, a .env file and
// CLACK_* environment variables
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/clack/constant"
	"github.com/lixenwraith/clack/core"
	"github.com/lixenwraith/clack/physics"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid configuration")

// EngineSettings tunes the collision engine and frame pacing
type EngineSettings struct {
	MaxPasses       int `toml:"max_passes"`
	FrameIntervalMs int `toml:"frame_interval_ms"`
}

// AudioSettings controls the collision clack
type AudioSettings struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0.0 - 1.0
}

// ServerSettings controls the spectator HTTP/websocket endpoint
type ServerSettings struct {
	Enabled bool   `toml:"enabled"`
	Address string `toml:"address"`
}

// Scenario is the complete runtime configuration
type Scenario struct {
	Big      physics.BodySpec         `toml:"big"`
	Small    physics.BodySpec         `toml:"small"`
	Boundary physics.BoundaryGeometry `toml:"boundary"`
	Engine   EngineSettings           `toml:"engine"`
	Audio    AudioSettings            `toml:"audio"`
	Server   ServerSettings           `toml:"server"`
}

// Default returns the heavy-block scenario
func Default() *Scenario {
	return &Scenario{
		Big: physics.BodySpec{
			Position: constant.BigPosition,
			Height:   constant.BigHeight,
			Width:    constant.BigWidth,
			Color:    core.MustParseHex(constant.BigColor),
			Mass:     constant.BigMass,
			Velocity: constant.BigVelocity,
		},
		Small: physics.BodySpec{
			Position: constant.SmallPosition,
			Height:   constant.SmallHeight,
			Width:    constant.SmallWidth,
			Color:    core.MustParseHex(constant.SmallColor),
			Mass:     constant.SmallMass,
			Velocity: constant.SmallVelocity,
		},
		Boundary: physics.BoundaryGeometry{
			Left:      constant.BoundaryLeft,
			Right:     constant.BoundaryRight,
			Height:    constant.BoundaryHeight,
			Y:         constant.BoundaryY,
			Thickness: constant.BoundaryThickness,
		},
		Engine: EngineSettings{
			MaxPasses:       constant.DefaultMaxResolvePasses,
			FrameIntervalMs: int(constant.FrameDeltaMillis),
		},
		Audio: AudioSettings{
			Enabled: true,
			Volume:  constant.DefaultMasterVolume,
		},
		Server: ServerSettings{
			Enabled: false,
			Address: "127.0.0.1:7777",
		},
	}
}

// Load layers the TOML file at path (optional, "" skips), the .env file at envPath (missing is
// fine) and the process environment over Default, then validates
func Load(path, envPath string) (*Scenario, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, err
		}
	}

	if envPath != "" {
		// godotenv never overrides variables already present in the environment
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode merges TOML data into cfg; unknown keys are rejected to catch typos
func (cfg *Scenario) decode(data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("config: %w: %s", ErrInvalid, strings.TrimSpace(strict.String()))
		}
		return fmt.Errorf("config parse: %w", err)
	}
	return nil
}

// Encode renders cfg as TOML
func (cfg *Scenario) Encode() ([]byte, error) {
	return toml.Marshal(cfg)
}

// Validate reports all invalid fields at once
func (cfg *Scenario) Validate() error {
	var problems []string

	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	for _, b := range []struct {
		name string
		spec physics.BodySpec
	}{{"big", cfg.Big}, {"small", cfg.Small}} {
		check(b.spec.Mass > 0, "%s.mass must be positive, got %v", b.name, b.spec.Mass)
		check(b.spec.Width > 0, "%s.width must be positive, got %v", b.name, b.spec.Width)
		check(b.spec.Height >= 0, "%s.height must not be negative, got %v", b.name, b.spec.Height)
	}

	bd := cfg.Boundary
	check(bd.Thickness >= 0, "boundary.thickness must not be negative, got %v", bd.Thickness)
	check(bd.Left+bd.Thickness/2 < bd.Right-bd.Thickness/2, "boundary interior is empty: left %v right %v", bd.Left, bd.Right)

	// Blocks must start inside the corridor, small left of big
	small, big := cfg.Small, cfg.Big
	smallLeft := small.Position - constant.StrokeWidth/2
	smallRight := small.Position + small.Width + constant.StrokeWidth/2
	bigLeft := big.Position - constant.StrokeWidth/2
	check(smallLeft >= bd.Left+bd.Thickness/2, "small block starts inside the wall")
	check(smallRight < bigLeft, "small block must start left of big block without overlap")

	check(cfg.Engine.MaxPasses > 0, "engine.max_passes must be positive, got %d", cfg.Engine.MaxPasses)
	check(cfg.Engine.FrameIntervalMs > 0, "engine.frame_interval_ms must be positive, got %d", cfg.Engine.FrameIntervalMs)
	check(cfg.Audio.Volume >= 0 && cfg.Audio.Volume <= 1, "audio.volume must be within [0, 1], got %v", cfg.Audio.Volume)
	check(!cfg.Server.Enabled || cfg.Server.Address != "", "server.address required when server is enabled")

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Build constructs the collision engine described by cfg
func (cfg *Scenario) Build() (*physics.Engine, error) {
	big, err := physics.NewRigidBody(cfg.Big)
	if err != nil {
		return nil, fmt.Errorf("big block: %w", err)
	}
	small, err := physics.NewRigidBody(cfg.Small)
	if err != nil {
		return nil, fmt.Errorf("small block: %w", err)
	}
	boundary, err := physics.NewStaticBoundary(cfg.Boundary)
	if err != nil {
		return nil, fmt.Errorf("boundary: %w", err)
	}
	return physics.NewEngine(big, small, boundary, cfg.Engine.MaxPasses), nil
}
