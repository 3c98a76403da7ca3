package render

import (
	"log"

	"github.com/lixenwraith/clack/physics"
)

// LogSink writes a one-line summary every n frames, used when no terminal is attached
type LogSink struct {
	every  int
	frames int
	logger *log.Logger
}

// NewLogSink logs through logger (the standard logger when nil) every n frames
func NewLogSink(logger *log.Logger, every int) *LogSink {
	if every < 1 {
		every = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	return &LogSink{every: every, logger: logger}
}

func (l *LogSink) Render(state physics.State) error {
	l.frames++
	if l.frames%l.every != 0 {
		return nil
	}
	l.logger.Printf("[render] t=%.0fms collisions=%d momentum=%.6g big=%.3f small=%.3f paused=%v",
		state.Time, state.Collisions, state.Momentum, state.Big.Position, state.Small.Position, state.Paused)
	return nil
}
