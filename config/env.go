package config

import (
	"fmt"
	"strconv"

	"github.com/lixenwraith/clack/constant"
	"github.com/lixenwraith/clack/core"
)

// lookupFunc matches os.LookupEnv
type lookupFunc func(key string) (string, bool)

// envBinding maps one CLACK_* variable onto a field
type envBinding struct {
	key   string
	apply func(cfg *Scenario, raw string) error
}

func floatField(get func(*Scenario) *float64) func(*Scenario, string) error {
	return func(cfg *Scenario, raw string) error {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		*get(cfg) = v
		return nil
	}
}

func intField(get func(*Scenario) *int) func(*Scenario, string) error {
	return func(cfg *Scenario, raw string) error {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		*get(cfg) = v
		return nil
	}
}

func boolField(get func(*Scenario) *bool) func(*Scenario, string) error {
	return func(cfg *Scenario, raw string) error {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		*get(cfg) = v
		return nil
	}
}

func colorField(get func(*Scenario) *core.RGB) func(*Scenario, string) error {
	return func(cfg *Scenario, raw string) error {
		return get(cfg).UnmarshalText([]byte(raw))
	}
}

var envBindings = []envBinding{
	{"BIG_POSITION", floatField(func(c *Scenario) *float64 { return &c.Big.Position })},
	{"BIG_WIDTH", floatField(func(c *Scenario) *float64 { return &c.Big.Width })},
	{"BIG_HEIGHT", floatField(func(c *Scenario) *float64 { return &c.Big.Height })},
	{"BIG_MASS", floatField(func(c *Scenario) *float64 { return &c.Big.Mass })},
	{"BIG_VELOCITY", floatField(func(c *Scenario) *float64 { return &c.Big.Velocity })},
	{"BIG_COLOR", colorField(func(c *Scenario) *core.RGB { return &c.Big.Color })},
	{"SMALL_POSITION", floatField(func(c *Scenario) *float64 { return &c.Small.Position })},
	{"SMALL_WIDTH", floatField(func(c *Scenario) *float64 { return &c.Small.Width })},
	{"SMALL_HEIGHT", floatField(func(c *Scenario) *float64 { return &c.Small.Height })},
	{"SMALL_MASS", floatField(func(c *Scenario) *float64 { return &c.Small.Mass })},
	{"SMALL_VELOCITY", floatField(func(c *Scenario) *float64 { return &c.Small.Velocity })},
	{"SMALL_COLOR", colorField(func(c *Scenario) *core.RGB { return &c.Small.Color })},
	{"BOUNDARY_LEFT", floatField(func(c *Scenario) *float64 { return &c.Boundary.Left })},
	{"BOUNDARY_RIGHT", floatField(func(c *Scenario) *float64 { return &c.Boundary.Right })},
	{"BOUNDARY_THICKNESS", floatField(func(c *Scenario) *float64 { return &c.Boundary.Thickness })},
	{"MAX_PASSES", intField(func(c *Scenario) *int { return &c.Engine.MaxPasses })},
	{"FRAME_INTERVAL_MS", intField(func(c *Scenario) *int { return &c.Engine.FrameIntervalMs })},
	{"AUDIO_ENABLED", boolField(func(c *Scenario) *bool { return &c.Audio.Enabled })},
	{"SERVER_ENABLED", boolField(func(c *Scenario) *bool { return &c.Server.Enabled })},
	{"SERVER_ADDRESS", func(c *Scenario, raw string) error { c.Server.Address = raw; return nil }},
	// Volume is given as 0-100 like the other audio knobs
	{"MASTER_VOLUME", func(c *Scenario, raw string) error {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		c.Audio.Volume = float64(min(max(v, 0), 100)) / 100.0
		return nil
	}},
}

// applyEnv overrides fields from CLACK_* variables
func (cfg *Scenario) applyEnv(lookup lookupFunc) error {
	for _, b := range envBindings {
		key := constant.EnvPrefix + b.key
		raw, ok := lookup(key)
		if !ok || raw == "" {
			continue
		}
		if err := b.apply(cfg, raw); err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, raw, err)
		}
	}
	return nil
}
