package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/clack/audio"
	"github.com/lixenwraith/clack/config"
	"github.com/lixenwraith/clack/core"
	"github.com/lixenwraith/clack/engine"
	"github.com/lixenwraith/clack/network"
	"github.com/lixenwraith/clack/render"
	"github.com/lixenwraith/clack/service"
	"github.com/lixenwraith/clack/status"
)

// runInteractive owns the terminal until the user quits
func runInteractive(cfg *config.Scenario) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Panic recovery: restore the terminal before the crash report
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()
	screen.HideCursor()

	reg := status.NewRegistry()
	sinks := []render.Sink{render.NewScreen(screen)}

	services := service.NewHub()
	if cfg.Audio.Enabled {
		services.Register(audio.NewService(cfg.Audio.Volume, *muteFlag))
	}
	if cfg.Server.Enabled {
		services.Register(network.NewService(network.DebugConfig(cfg.Server.Address), reg))
	}
	if err := services.StartAll(); err != nil {
		return err
	}
	defer services.StopAll()

	var sound engine.Sound
	if svc, ok := service.Find[*audio.Service](services, "audio"); ok {
		if sm, ok := svc.Manager(); ok {
			sound = sm
		}
	}
	if svc, ok := service.Find[*network.Service](services, "network"); ok {
		sinks = append(sinks, svc.Hub())
	}

	runner, err := engine.NewRunner(cfg.Build, engine.NewPausableClock(engine.NewMonotonicTimeProvider()),
		frameInterval(cfg), reg, sound, sinks...)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Input polling uses its own goroutine as it blocks on the terminal
	core.Go(func() {
		defer cancel()
		pollInput(screen, runner.Commands())
	})

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// pollInput translates key events to runner commands and returns on quit or screen close
func pollInput(screen tcell.Screen, commands chan<- engine.Command) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			cmd, quit, ok := keyCommand(ev)
			if quit {
				return
			}
			if ok {
				commands <- cmd
			}
		}
	}
}

// keyCommand maps a key press to a command
func keyCommand(ev *tcell.EventKey) (cmd engine.Command, quit, ok bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return 0, true, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return 0, true, false
		case ' ':
			return engine.CommandTogglePause, false, true
		case 'r', 'R':
			return engine.CommandRestart, false, true
		case 'm', 'M':
			return engine.CommandToggleMute, false, true
		}
	}
	return 0, false, false
}
