package physics

import (
	"fmt"

	"github.com/lixenwraith/clack/constant"
	"github.com/lixenwraith/clack/core"
)

// BodySpec is the construction-time description of a block
type BodySpec struct {
	Position float64  `toml:"position" json:"position"`
	Height   float64  `toml:"height" json:"height"`
	Width    float64  `toml:"width" json:"width"`
	Color    core.RGB `toml:"color" json:"color"`
	Mass     float64  `toml:"mass" json:"mass"`
	Velocity float64  `toml:"velocity" json:"velocity"`
}

// RigidBody is an axis-aligned block moving along x
// Position and velocity are written only by Engine
type RigidBody struct {
	position float64
	height   float64
	width    float64
	color    core.RGB
	mass     float64
	velocity float64
}

// NewRigidBody validates spec and returns the body
func NewRigidBody(spec BodySpec) (*RigidBody, error) {
	if !(spec.Mass > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrNonPositiveMass, spec.Mass)
	}
	if !(spec.Width > 0) {
		return nil, fmt.Errorf("%w: width %v", ErrInvalidGeometry, spec.Width)
	}
	return &RigidBody{
		position: spec.Position,
		height:   spec.Height,
		width:    spec.Width,
		color:    spec.Color,
		mass:     spec.Mass,
		velocity: spec.Velocity,
	}, nil
}

// Advance moves the body by dt at its current velocity; negative dt rewinds
func (b *RigidBody) Advance(dt float64) {
	b.position += dt * b.velocity
}

func (b *RigidBody) Momentum() float64 {
	return b.mass * b.velocity
}

// CollisionLeft is the left contact face, outset by half the stroke
func (b *RigidBody) CollisionLeft() float64 {
	return b.position - constant.StrokeWidth/2
}

// CollisionRight is the right contact face, outset by half the stroke
func (b *RigidBody) CollisionRight() float64 {
	return b.position + b.width + constant.StrokeWidth/2
}

func (b *RigidBody) Position() float64 { return b.position }
func (b *RigidBody) Velocity() float64 { return b.velocity }
func (b *RigidBody) Mass() float64 { return b.mass }
func (b *RigidBody) Width() float64 { return b.width }
func (b *RigidBody) Height() float64 { return b.height }
func (b *RigidBody) Color() core.RGB { return b.color }

// placeLeftFaceAt moves the body so CollisionLeft equals x
func (b *RigidBody) placeLeftFaceAt(x float64) {
	b.position = x + constant.StrokeWidth/2
}

// placeRightFaceAt moves the body so CollisionRight equals x
func (b *RigidBody) placeRightFaceAt(x float64) {
	b.position = x - b.width - constant.StrokeWidth/2
}
