package engine

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/clack/physics"
	"github.com/lixenwraith/clack/render"
	"github.com/lixenwraith/clack/status"
)

// Command is an input action forwarded to the frame loop
type Command uint8

const (
	CommandTogglePause Command = iota
	CommandRestart
	CommandToggleMute
)

// Sound receives the number of collisions resolved in a frame
type Sound interface {
	PlayCollisions(n int)
	ToggleMute() bool
}

// Builder creates a fresh simulation, used at start and on restart
type Builder func() (*physics.Engine, error)

// Runner owns the simulation and drives it once per frame
// Only the goroutine calling Run (or Step) touches the physics engine
type Runner struct {
	build    Builder
	sim      *physics.Engine
	clock    *PausableClock
	interval time.Duration
	sinks    []render.Sink
	sound    Sound
	commands chan Command

	// Cached metric pointers
	statFrames     *atomic.Int64
	statCollisions *atomic.Int64
	statBlocks     *atomic.Int64
	statWalls      *atomic.Int64
	statDegenerate *atomic.Int64
	statCapped     *atomic.Int64
	statMaxPasses  *atomic.Int64
	statMomentum   *status.AtomicFloat
	statTime       *status.AtomicFloat
	statFPS        *status.AtomicFloat
	statState      *status.AtomicString
}

// NewRunner builds the first simulation; sound may be nil
func NewRunner(build Builder, clock *PausableClock, interval time.Duration, reg *status.Registry, sound Sound, sinks ...render.Sink) (*Runner, error) {
	sim, err := build()
	if err != nil {
		return nil, fmt.Errorf("build simulation: %w", err)
	}
	r := &Runner{
		build:          build,
		sim:            sim,
		clock:          clock,
		interval:       interval,
		sinks:          sinks,
		sound:          sound,
		commands:       make(chan Command, 16),
		statFrames:     reg.Ints.Get(status.KeyFrames),
		statCollisions: reg.Ints.Get(status.KeyCollisions),
		statBlocks:     reg.Ints.Get(status.KeyBlockCollisions),
		statWalls:      reg.Ints.Get(status.KeyWallCollisions),
		statDegenerate: reg.Ints.Get(status.KeyDegenerate),
		statCapped:     reg.Ints.Get(status.KeyCappedFrames),
		statMaxPasses:  reg.Ints.Get(status.KeyMaxPasses),
		statMomentum:   reg.Floats.Get(status.KeyMomentum),
		statTime:       reg.Floats.Get(status.KeyTime),
		statFPS:        reg.Floats.Get(status.KeyFPS),
		statState:      reg.Strings.Get(status.KeyState),
	}
	r.statState.Store("running")
	return r, nil
}

// Commands returns the channel input handlers send to; sends never block the caller for long
func (r *Runner) Commands() chan<- Command {
	return r.commands
}

// Sim exposes the current simulation for read access from the frame goroutine
func (r *Runner) Sim() *physics.Engine {
	return r.sim
}

// Step runs one frame: update physics, record metrics, play sound, render
func (r *Runner) Step() physics.FrameReport {
	report := r.sim.Update(r.clock.Millis())
	r.record(report)

	if n := report.Collisions(); n > 0 && r.sound != nil {
		r.sound.PlayCollisions(n)
	}

	state := r.sim.State()
	state.Paused = r.clock.IsPaused()
	for _, sink := range r.sinks {
		if err := sink.Render(state); err != nil {
			log.Printf("[engine] render sink: %v", err)
		}
	}
	return report
}

// Run ticks Step every interval until ctx is done, applying queued commands between frames
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.Step()
	frames, since := 0, time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-r.commands:
			if err := r.apply(cmd); err != nil {
				return err
			}
		case <-ticker.C:
			r.Step()
			frames++
			if elapsed := time.Since(since); elapsed >= time.Second {
				r.statFPS.Set(float64(frames) / elapsed.Seconds())
				frames, since = 0, time.Now()
			}
		}
	}
}

// apply handles a single command on the frame goroutine
func (r *Runner) apply(cmd Command) error {
	switch cmd {
	case CommandTogglePause:
		if r.clock.Toggle() {
			r.statState.Store("paused")
		} else {
			r.statState.Store("running")
		}
	case CommandRestart:
		return r.Restart()
	case CommandToggleMute:
		if r.sound != nil {
			muted := r.sound.ToggleMute()
			log.Printf("[engine] sound muted=%v", muted)
		}
	default:
		log.Printf("[engine] unknown command %d", cmd)
	}
	return nil
}

// Restart replaces the simulation with a freshly built one
// The new engine records its first timestamp on the next Step
func (r *Runner) Restart() error {
	sim, err := r.build()
	if err != nil {
		return fmt.Errorf("rebuild simulation: %w", err)
	}
	r.sim = sim
	r.statCollisions.Store(0)
	r.statBlocks.Store(0)
	r.statWalls.Store(0)
	log.Printf("[engine] simulation restarted")
	return nil
}

func (r *Runner) record(report physics.FrameReport) {
	r.statFrames.Add(1)
	r.statCollisions.Store(int64(r.sim.Collisions()))
	r.statBlocks.Add(int64(report.Blocks))
	r.statWalls.Add(int64(report.Walls))
	r.statDegenerate.Add(int64(report.Degenerate))
	if report.Capped {
		r.statCapped.Add(1)
	}
	if p := int64(report.Passes); p > r.statMaxPasses.Load() {
		r.statMaxPasses.Store(p)
	}
	r.statMomentum.Set(r.sim.Momentum())
	r.statTime.Set(r.sim.State().Time)
}
