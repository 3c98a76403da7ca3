// Package status exposes simulation counters to the spectator API and the headless log
package status

import "sync/atomic"

// Metric keys written by the runner
const (
	KeyFrames          = "sim.frames"
	KeyCollisions      = "sim.collisions"
	KeyBlockCollisions = "sim.collisions.block"
	KeyWallCollisions  = "sim.collisions.wall"
	KeyDegenerate      = "sim.degenerate"
	KeyCappedFrames    = "sim.capped_frames"
	KeyMaxPasses       = "sim.max_passes_frame"
	KeyMomentum        = "sim.momentum"
	KeyTime            = "sim.time_ms"
	KeyFPS             = "render.fps"
	KeyState           = "sim.state"
	KeySpectators      = "net.spectators"
)

// Registry is the central metrics facade
// Writers cache pointers during init; the frame loop writes directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot copies every metric into a plain map for encoding
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = v.Get() })
	r.Strings.Range(func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}
