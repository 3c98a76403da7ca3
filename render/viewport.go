package render

import (
	"math"

	"github.com/lixenwraith/clack/constant"
	"github.com/lixenwraith/clack/physics"
	"github.com/lixenwraith/clack/vmath"
)

// Viewport maps world coordinates onto terminal cells
// The corridor plus a margin is stretched over the whole screen below the HUD rows
type Viewport struct {
	cols, rows  int
	left, right float64
	top, bottom float64
	firstRow    int
}

// NewViewport fits the boundary geometry into a cols x rows screen
func NewViewport(geom physics.BoundaryGeometry, cols, rows int) Viewport {
	return Viewport{
		cols:     cols,
		rows:     rows,
		left:     geom.Left - constant.ViewMarginWorld,
		right:    geom.Right + constant.ViewMarginWorld,
		top:      geom.Y - geom.Height - constant.ViewMarginWorld,
		bottom:   geom.Y + constant.ViewMarginWorld,
		firstRow: constant.HUDRows,
	}
}

// Col converts a world x coordinate to a screen column
func (v Viewport) Col(x float64) int {
	return int(math.Round(vmath.Remap(x, v.left, v.right, 0, float64(v.cols-1))))
}

// Row converts a world y coordinate (growing downwards) to a screen row
func (v Viewport) Row(y float64) int {
	return v.firstRow + int(math.Round(vmath.Remap(y, v.top, v.bottom, 0, float64(v.rows-1-v.firstRow))))
}

// Contains reports whether a cell lies on screen
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.cols && row >= 0 && row < v.rows
}
