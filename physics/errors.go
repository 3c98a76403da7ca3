package physics

import "errors"

// Sentinel errors
var (
	ErrNonPositiveMass = errors.New("mass must be positive")
	ErrInvalidGeometry = errors.New("invalid geometry")
)
