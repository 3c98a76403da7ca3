// Command clack simulates a heavy block pushing a light one against a wall and counts the collisions
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/lixenwraith/clack/config"
	"github.com/lixenwraith/clack/constant"
)

var (
	configPath   = flag.String("config", "", "TOML scenario file")
	envPath      = flag.String("env", ".env", "dotenv file with CLACK_* overrides")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/clack.log")
	headlessFlag = flag.Bool("headless", false, "Run without a terminal and print the final collision count")
	framesFlag   = flag.Int("frames", constant.HeadlessDefaultFrames, "Frames to simulate in headless mode")
	muteFlag     = flag.Bool("mute", false, "Start with sound muted")
	serveFlag    = flag.String("serve", "", "Spectator API address (enables the server)")
	colorFlag    = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configPath, *envPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "clack: %v\n", err)
		os.Exit(2)
	}
	if *serveFlag != "" {
		cfg.Server.Enabled = true
		cfg.Server.Address = *serveFlag
	}

	if *headlessFlag || !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := runHeadless(cfg, *framesFlag, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "clack: %v\n", err)
			os.Exit(1)
		}
		return
	}

	applyColorMode(*colorFlag)
	if err := runInteractive(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "clack: %v\n", err)
		os.Exit(1)
	}
}

// applyColorMode steers tcell's color detection through its environment switches
func applyColorMode(mode string) {
	switch mode {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	}
}
