package physics

import (
	"log"
	"math"

	"github.com/lixenwraith/clack/constant"
	"github.com/lixenwraith/clack/vmath"
)

// FrameReport summarizes one Update call
type FrameReport struct {
	First      bool    // first frame only records the timestamp
	Delta      float64 // frame delta applied, 0 when no physics ran
	Passes     int     // resolution passes executed
	Blocks     int     // block/block collisions resolved
	Walls      int     // block/wall collisions resolved
	Degenerate int     // contacts skipped for lack of closing speed
	Capped     bool    // pass limit reached with contacts possibly unresolved
}

// Collisions returns the number of collisions resolved during the frame
func (r FrameReport) Collisions() int {
	return r.Blocks + r.Walls
}

// Engine advances a heavy block, a light block and the corridor wall with exact contact timing
// The big block sits to the right of the small one; the wall is on the left
// Not safe for concurrent use, a single goroutine drives Update
type Engine struct {
	big      *RigidBody
	small    *RigidBody
	boundary *StaticBoundary

	approach   float64 // small.velocity - big.velocity
	collisions uint64

	prevTime  float64
	hasPrev   bool
	maxPasses int
}

// NewEngine takes ownership of the bodies; maxPasses <= 0 selects the default cap
func NewEngine(big, small *RigidBody, boundary *StaticBoundary, maxPasses int) *Engine {
	if maxPasses <= 0 {
		maxPasses = constant.DefaultMaxResolvePasses
	}
	e := &Engine{
		big:       big,
		small:     small,
		boundary:  boundary,
		maxPasses: maxPasses,
	}
	e.updateApproach()
	return e
}

// Update is called once per frame with a monotonic timestamp in milliseconds
func (e *Engine) Update(timestamp float64) FrameReport {
	if !e.hasPrev {
		e.prevTime = timestamp
		e.hasPrev = true
		return FrameReport{First: true}
	}

	dt := timestamp - e.prevTime
	e.prevTime = timestamp
	if dt <= 0 {
		if dt < 0 {
			log.Printf("[physics] clock went backwards by %.3fms, frame skipped", -dt)
		}
		return FrameReport{}
	}

	e.big.Advance(dt)
	e.small.Advance(dt)

	report := e.resolve(dt)
	report.Delta = dt
	return report
}

// resolve runs passes until one detects no collision, each pass consuming contact time from dt
// Invariant on entry to every pass: both bodies sit at frame end and kept their current
// velocity over the last dt
func (e *Engine) resolve(dt float64) FrameReport {
	var report FrameReport
	for {
		if report.Passes >= e.maxPasses {
			report.Capped = true
			log.Printf("[physics] resolution capped at %d passes, %.6fms unresolved", e.maxPasses, dt)
			return report
		}
		report.Passes++

		fired := false
		if e.blocksTouching() {
			if e.resolveBlocks(&dt) {
				report.Blocks++
				fired = true
			} else {
				report.Degenerate++
			}
		}
		if e.wallTouching() {
			if e.resolveWall(&dt) {
				report.Walls++
				fired = true
			} else {
				report.Degenerate++
			}
		}
		if !fired {
			return report
		}
	}
}

func (e *Engine) blocksTouching() bool {
	return e.big.CollisionLeft() <= e.small.CollisionRight()
}

func (e *Engine) wallTouching() bool {
	return e.small.CollisionLeft() < e.boundary.CollisionLeft()
}

// resolveBlocks rewinds both blocks to the start of the remaining interval, moves them to
// contact, exchanges velocities and spends the rest of the interval
// Returns false without touching state when the blocks are not closing
func (e *Engine) resolveBlocks(dt *float64) bool {
	e.updateApproach()
	if e.approach <= 0 {
		if e.approach == 0 {
			log.Printf("[physics] blocks in contact with zero approach velocity")
		}
		return false
	}

	e.big.Advance(-*dt)
	e.small.Advance(-*dt)

	tc := contactTime(e.big.CollisionLeft()-e.small.CollisionRight(), e.approach, *dt)
	e.big.Advance(tc)
	e.small.Advance(tc)
	e.small.placeRightFaceAt(e.big.CollisionLeft())
	*dt -= tc

	total := e.Momentum()
	e.big.velocity = (total + e.small.mass*e.approach) / (e.big.mass + e.small.mass)
	e.small.velocity = e.big.velocity - e.approach

	e.big.Advance(*dt)
	e.small.Advance(*dt)
	e.collisions++
	e.updateApproach()
	return true
}

// resolveWall reflects the small block off the wall face
// Returns false without touching state when the small block is not moving into the wall
func (e *Engine) resolveWall(dt *float64) bool {
	v := e.small.velocity
	if v >= 0 {
		if v == 0 {
			log.Printf("[physics] small block resting in the wall face")
		}
		return false
	}

	e.small.Advance(-*dt)

	tc := contactTime(e.small.CollisionLeft()-e.boundary.CollisionLeft(), v, *dt)
	e.small.Advance(tc)
	e.small.placeLeftFaceAt(e.boundary.CollisionLeft())
	*dt -= tc

	e.small.velocity = -v
	e.small.Advance(*dt)
	e.collisions++
	e.updateApproach()
	return true
}

// contactTime is |gap/speed| clamped to [0, remaining]; zero speed yields 0
func contactTime(gap, speed, remaining float64) float64 {
	t, ok := vmath.SafeDiv(gap, speed)
	if !ok {
		return 0
	}
	return vmath.Clamp(math.Abs(t), 0, math.Max(remaining, 0))
}

func (e *Engine) updateApproach() {
	e.approach = e.small.velocity - e.big.velocity
}

// Momentum is the total linear momentum of both blocks
func (e *Engine) Momentum() float64 {
	return e.big.Momentum() + e.small.Momentum()
}

func (e *Engine) Big() *RigidBody { return e.big }
func (e *Engine) Small() *RigidBody { return e.small }
func (e *Engine) Boundary() *StaticBoundary { return e.boundary }
func (e *Engine) Collisions() uint64 { return e.collisions }
func (e *Engine) ApproachVelocity() float64 { return e.approach }
func (e *Engine) MaxPasses() int { return e.maxPasses }
