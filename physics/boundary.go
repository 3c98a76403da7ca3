package physics

import "fmt"

// BoundaryGeometry describes the corridor: outer wall extents, floor height reference and wall thickness
// Height and Y only matter to renderers
type BoundaryGeometry struct {
	Left      float64 `toml:"left" json:"left"`
	Right     float64 `toml:"right" json:"right"`
	Height    float64 `toml:"height" json:"height"`
	Y         float64 `toml:"y" json:"y"`
	Thickness float64 `toml:"thickness" json:"thickness"`
}

// StaticBoundary is the immovable corridor; its contact faces are inset by half the wall thickness
type StaticBoundary struct {
	geom     BoundaryGeometry
	colLeft  float64
	colRight float64
}

// NewStaticBoundary validates and freezes geometry
func NewStaticBoundary(geom BoundaryGeometry) (*StaticBoundary, error) {
	if geom.Thickness < 0 {
		return nil, fmt.Errorf("%w: thickness %v", ErrInvalidGeometry, geom.Thickness)
	}
	colLeft := geom.Left + geom.Thickness/2
	colRight := geom.Right - geom.Thickness/2
	if !(colLeft < colRight) {
		return nil, fmt.Errorf("%w: corridor [%v, %v] has no interior", ErrInvalidGeometry, geom.Left, geom.Right)
	}
	return &StaticBoundary{geom: geom, colLeft: colLeft, colRight: colRight}, nil
}

func (s *StaticBoundary) CollisionLeft() float64  { return s.colLeft }
func (s *StaticBoundary) CollisionRight() float64 { return s.colRight }

// Geometry returns a copy of the construction geometry
func (s *StaticBoundary) Geometry() BoundaryGeometry { return s.geom }
