package main

import (
	"fmt"
	"io"
	"time"

	"github.com/lixenwraith/clack/config"
	"github.com/lixenwraith/clack/constant"
	"github.com/lixenwraith/clack/engine"
	"github.com/lixenwraith/clack/render"
	"github.com/lixenwraith/clack/status"
)

// frameInterval converts the configured interval, falling back to the default frame rate
func frameInterval(cfg *config.Scenario) time.Duration {
	if cfg.Engine.FrameIntervalMs <= 0 {
		return constant.FrameUpdateInterval
	}
	return time.Duration(cfg.Engine.FrameIntervalMs) * time.Millisecond
}

// runHeadless steps the simulation on a mock clock as fast as possible and prints the result
func runHeadless(cfg *config.Scenario, frames int, out io.Writer) error {
	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	interval := frameInterval(cfg)
	reg := status.NewRegistry()

	runner, err := engine.NewRunner(cfg.Build, engine.NewPausableClock(mock), interval, reg, nil,
		render.NewLogSink(nil, constant.StatusLogEvery))
	if err != nil {
		return err
	}

	for i := 0; i < frames; i++ {
		runner.Step()
		mock.Advance(interval)
	}

	sim := runner.Sim()
	fmt.Fprintf(out, "%s %d\n", constant.CounterLabel, sim.Collisions())
	fmt.Fprintf(out, "momentum %.9g\n", sim.Momentum())
	if capped := reg.Ints.Get(status.KeyCappedFrames).Load(); capped > 0 {
		fmt.Fprintf(out, "capped frames %d\n", capped)
	}
	return nil
}
