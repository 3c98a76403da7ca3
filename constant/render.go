package constant

// Terminal layout
const (
	// ViewMarginWorld pads the boundary extents when fitting the world to the screen
	ViewMarginWorld = 20.0

	// HUDRows are reserved at the top of the screen for counters
	HUDRows = 2

	CounterLabel = "# Collisions"
	PausedLabel  = "PAUSED"
	HelpLabel    = "q quit  space pause  r restart  m mute"
)

// Box drawing runes
const (
	RuneHorizontal  = '─'
	RuneVertical    = '│'
	RuneTopLeft     = '┌'
	RuneTopRight    = '┐'
	RuneBottomLeft  = '└'
	RuneBottomRight = '┘'
	RuneFloor       = '━'
	RuneWall        = '┃'
	RuneCorner      = '┗'
)
