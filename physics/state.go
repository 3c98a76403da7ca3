package physics

import "github.com/lixenwraith/clack/core"

// BodyState is a read-only copy of a block for renderers
type BodyState struct {
	Position       float64  `json:"position"`
	Width          float64  `json:"width"`
	Height         float64  `json:"height"`
	Mass           float64  `json:"mass"`
	Velocity       float64  `json:"velocity"`
	Color          core.RGB `json:"color"`
	CollisionLeft  float64  `json:"collision_left"`
	CollisionRight float64  `json:"collision_right"`
}

// State is a snapshot of the whole simulation, safe to hand to other goroutines
type State struct {
	Big        BodyState        `json:"big"`
	Small      BodyState        `json:"small"`
	Boundary   BoundaryGeometry `json:"boundary"`
	Collisions uint64           `json:"collisions"`
	Momentum   float64          `json:"momentum"`
	Approach   float64          `json:"approach"`
	Time       float64          `json:"time"`
	Paused     bool             `json:"paused"`
}

func bodyState(b *RigidBody) BodyState {
	return BodyState{
		Position:       b.position,
		Width:          b.width,
		Height:         b.height,
		Mass:           b.mass,
		Velocity:       b.velocity,
		Color:          b.color,
		CollisionLeft:  b.CollisionLeft(),
		CollisionRight: b.CollisionRight(),
	}
}

// State captures the current simulation state; Time is the last frame timestamp
func (e *Engine) State() State {
	return State{
		Big:        bodyState(e.big),
		Small:      bodyState(e.small),
		Boundary:   e.boundary.Geometry(),
		Collisions: e.collisions,
		Momentum:   e.Momentum(),
		Approach:   e.approach,
		Time:       e.prevTime,
	}
}
