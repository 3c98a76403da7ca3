package constant

// Collision geometry
const (
	// StrokeWidth is the outline thickness of a block; collision faces sit half of it outside the box
	StrokeWidth = 5.0

	// DefaultMaxResolvePasses bounds collision resolution passes within a single frame
	DefaultMaxResolvePasses = 1 << 16
)

// Default scenario, heavy block closing on a resting light block near the wall
const (
	BigPosition = 300.0
	BigHeight   = 90.0
	BigWidth    = 60.0
	BigColor    = "#ff00ff"
	BigMass     = 1e8
	BigVelocity = -0.1

	SmallPosition = 200.0
	SmallHeight   = 30.0
	SmallWidth    = 20.0
	SmallColor    = "#00ffff"
	SmallMass     = 1.0
	SmallVelocity = 0.0

	BoundaryLeft      = 100.0
	BoundaryRight     = 500.0
	BoundaryHeight    = 200.0
	BoundaryY         = 580.0
	BoundaryThickness = 5.0
)
