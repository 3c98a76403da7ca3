package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/clack/constant"
	"github.com/lixenwraith/clack/core"
	"github.com/lixenwraith/clack/physics"
)

var (
	colorBoundary = core.RGBWhite
	colorHUD      = core.RGB{R: 200, G: 200, B: 200}
	colorPaused   = core.RGB{R: 255, G: 200, B: 0}
)

// Screen draws the corridor, both blocks and the collision counter on a tcell screen
type Screen struct {
	screen tcell.Screen
	paused bool
}

// NewScreen wraps an initialized tcell screen
func NewScreen(screen tcell.Screen) *Screen {
	return &Screen{screen: screen}
}

// Render clears and redraws the whole frame
func (s *Screen) Render(state physics.State) error {
	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= constant.HUDRows {
		return nil
	}
	s.paused = state.Paused
	vp := NewViewport(state.Boundary, cols, rows)

	s.screen.Clear()
	s.drawBoundary(vp, state.Boundary)
	s.drawBlock(vp, state.Boundary, state.Small)
	s.drawBlock(vp, state.Boundary, state.Big)
	s.drawHUD(state)
	s.screen.Show()
	return nil
}

// drawBoundary draws the floor and the left wall meeting in a corner
func (s *Screen) drawBoundary(vp Viewport, geom physics.BoundaryGeometry) {
	style := styleFor(colorBoundary, s.paused)
	wallCol := vp.Col(geom.Left)
	floorRow := vp.Row(geom.Y)
	topRow := vp.Row(geom.Y - geom.Height)

	for col := wallCol + 1; col <= vp.Col(geom.Right); col++ {
		s.set(vp, col, floorRow, constant.RuneFloor, style)
	}
	for row := topRow; row < floorRow; row++ {
		s.set(vp, wallCol, row, constant.RuneWall, style)
	}
	s.set(vp, wallCol, floorRow, constant.RuneCorner, style)
}

// drawBlock outlines a block resting on the floor
// Blocks narrower than a cell still get two columns so the outline stays visible
func (s *Screen) drawBlock(vp Viewport, geom physics.BoundaryGeometry, b physics.BodyState) {
	style := styleFor(b.Color, s.paused)
	x0 := vp.Col(b.Position)
	x1 := vp.Col(b.Position + b.Width)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	y1 := vp.Row(geom.Y) - 1
	y0 := vp.Row(geom.Y - b.Height)
	if y0 >= y1 {
		y0 = y1 - 1
	}

	for col := x0 + 1; col < x1; col++ {
		s.set(vp, col, y0, constant.RuneHorizontal, style)
		s.set(vp, col, y1, constant.RuneHorizontal, style)
	}
	for row := y0 + 1; row < y1; row++ {
		s.set(vp, x0, row, constant.RuneVertical, style)
		s.set(vp, x1, row, constant.RuneVertical, style)
	}
	s.set(vp, x0, y0, constant.RuneTopLeft, style)
	s.set(vp, x1, y0, constant.RuneTopRight, style)
	s.set(vp, x0, y1, constant.RuneBottomLeft, style)
	s.set(vp, x1, y1, constant.RuneBottomRight, style)
}

func (s *Screen) drawHUD(state physics.State) {
	s.text(0, 0, fmt.Sprintf("%s %d", constant.CounterLabel, state.Collisions), styleFor(colorHUD, false))
	if state.Paused {
		s.text(0, 1, constant.PausedLabel, styleFor(colorPaused, false).Bold(true))
		return
	}
	s.text(0, 1, constant.HelpLabel, styleFor(colorHUD, true))
}

func (s *Screen) text(x, y int, str string, style tcell.Style) {
	cols, _ := s.screen.Size()
	for _, r := range str {
		if x >= cols {
			return
		}
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// set draws inside the world area only, the HUD rows are reserved
func (s *Screen) set(vp Viewport, col, row int, r rune, style tcell.Style) {
	if !vp.Contains(col, row) || row < constant.HUDRows {
		return
	}
	s.screen.SetContent(col, row, r, nil, style)
}
