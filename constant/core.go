package constant

import "time"

// Simulation loop timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FrameDeltaMillis is FrameUpdateInterval expressed in simulation time units
	FrameDeltaMillis = float64(FrameUpdateInterval) / float64(time.Millisecond)

	// HeadlessDefaultFrames is the frame count used by -headless when -frames is not given
	HeadlessDefaultFrames = 100000

	// StatusLogEvery is the headless log sink cadence in frames
	StatusLogEvery = 600
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "clack.log"
	// MaxLogSize triggers rotation of the log file on startup (10MB)
	MaxLogSize = 10 * 1024 * 1024
)

// EnvPrefix is prepended to every environment override key
const EnvPrefix = "CLACK_"
