// Package render draws simulation snapshots to the terminal and other observers
package render

import "github.com/lixenwraith/clack/physics"

// Sink consumes one snapshot per frame
// Render is called from the frame goroutine; implementations must not retain state past the call
type Sink interface {
	Render(state physics.State) error
}

// SinkFunc adapts a function to Sink
type SinkFunc func(state physics.State) error

func (f SinkFunc) Render(state physics.State) error { return f(state) }
