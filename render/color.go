package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/clack/core"
)

// pausedDim scales every drawn color while the clock is paused
const pausedDim = 0.5

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// styleFor returns a foreground style, dimmed when paused
func styleFor(rgb core.RGB, paused bool) tcell.Style {
	if paused {
		rgb = rgb.Scale(pausedDim)
	}
	return tcell.StyleDefault.Foreground(RGBToTcell(rgb))
}
