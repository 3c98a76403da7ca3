package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/clack/core"
	"github.com/lixenwraith/clack/physics"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default scenario to validate, got %v", err)
	}
	if cfg.Big.Mass != 1e8 || cfg.Big.Velocity != -0.1 {
		t.Errorf("Unexpected big block defaults: %+v", cfg.Big)
	}
	if cfg.Small.Color != (core.RGB{R: 0, G: 255, B: 255}) {
		t.Errorf("Expected cyan small block, got %v", cfg.Small.Color)
	}
	if cfg.Engine.FrameIntervalMs != 16 {
		t.Errorf("Expected 16ms frames, got %d", cfg.Engine.FrameIntervalMs)
	}
}

func TestValidateCollectsProblems(t *testing.T) {
	cfg := Default()
	cfg.Big.Mass = 0
	cfg.Small.Mass = -2
	cfg.Engine.MaxPasses = 0
	cfg.Audio.Volume = 1.5

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Expected ErrInvalid, got %v", err)
	}
	for _, want := range []string{"big.mass", "small.mass", "engine.max_passes", "audio.volume"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error to mention %s, got %v", want, err)
		}
	}
}

func TestValidateRejectsOverlappingStart(t *testing.T) {
	cfg := Default()
	cfg.Small.Position = 290

	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected overlapping start to be rejected, got %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.toml")
	data := `
[big]
mass = 10000.0
velocity = -0.5
color = "#112233"

[engine]
max_passes = 128

[audio]
enabled = false
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Big.Mass != 10000 || cfg.Big.Velocity != -0.5 {
		t.Errorf("Expected TOML overrides, got %+v", cfg.Big)
	}
	if cfg.Big.Color != (core.RGB{R: 0x11, G: 0x22, B: 0x33}) {
		t.Errorf("Expected parsed color, got %v", cfg.Big.Color)
	}
	// Untouched keys keep defaults
	if cfg.Big.Width != 60 || cfg.Small.Mass != 1 {
		t.Errorf("Expected defaults retained, got big=%+v small=%+v", cfg.Big, cfg.Small)
	}
	if cfg.Engine.MaxPasses != 128 || cfg.Audio.Enabled {
		t.Errorf("Expected engine/audio overrides, got %+v %+v", cfg.Engine, cfg.Audio)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[big]\nmas = 3.0\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(path, ""); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for unknown key, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml"), ""); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadDotEnv(t *testing.T) {
	const key = "CLACK_SMALL_MASS"
	os.Unsetenv(key)
	t.Cleanup(func() { os.Unsetenv(key) })

	envPath := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envPath, []byte(key+"=4\n"), 0644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	cfg, err := Load("", envPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Small.Mass != 4 {
		t.Errorf("Expected small mass 4 from .env, got %v", cfg.Small.Mass)
	}

	// Missing .env is not an error
	if _, err := Load("", filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("Expected missing .env to be ignored, got %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"CLACK_BIG_MASS":       "100",
		"CLACK_SMALL_VELOCITY": "0.25",
		"CLACK_MAX_PASSES":     "42",
		"CLACK_MASTER_VOLUME":  "150",
		"CLACK_SERVER_ENABLED": "true",
		"CLACK_BIG_COLOR":      "#010203",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	if err := cfg.applyEnv(lookup); err != nil {
		t.Fatalf("applyEnv failed: %v", err)
	}
	if cfg.Big.Mass != 100 || cfg.Small.Velocity != 0.25 || cfg.Engine.MaxPasses != 42 {
		t.Errorf("Expected numeric overrides, got big=%+v small=%+v engine=%+v", cfg.Big, cfg.Small, cfg.Engine)
	}
	if cfg.Audio.Volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %v", cfg.Audio.Volume)
	}
	if !cfg.Server.Enabled {
		t.Error("Expected server enabled")
	}
	if cfg.Big.Color != (core.RGB{R: 1, G: 2, B: 3}) {
		t.Errorf("Expected color override, got %v", cfg.Big.Color)
	}

	env = map[string]string{"CLACK_BIG_MASS": "heavy"}
	if err := Default().applyEnv(lookup); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for malformed value, got %v", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	orig := Default()
	orig.Small.Velocity = 0.5

	data, err := orig.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	back := &Scenario{}
	if err := back.decode(data); err != nil {
		t.Fatalf("decode failed: %v\n%s", err, data)
	}
	if *back != *orig {
		t.Errorf("Expected round trip to preserve scenario\nwant %+v\ngot  %+v", orig, back)
	}
}

func TestBuild(t *testing.T) {
	e, err := Default().Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if e.Big().Mass() != 1e8 || e.Small().Position() != 200 {
		t.Errorf("Unexpected engine bodies: big mass %v small pos %v", e.Big().Mass(), e.Small().Position())
	}
	if e.Boundary().CollisionLeft() != 102.5 {
		t.Errorf("Expected wall face 102.5, got %v", e.Boundary().CollisionLeft())
	}

	cfg := Default()
	cfg.Small.Mass = 0
	if _, err := cfg.Build(); !errors.Is(err, physics.ErrNonPositiveMass) {
		t.Errorf("Expected ErrNonPositiveMass, got %v", err)
	}
}
