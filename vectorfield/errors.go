package vectorfield

import "errors"

var (
	// ErrNilGrid is returned when a nil matrix is passed.
	ErrNilGrid = errors.New("vectorfield: grid is nil")

	// ErrShapeMismatch indicates that vx and vy differ in shape.
	ErrShapeMismatch = errors.New("vectorfield: component shapes differ")

	// ErrGridTooSmall is returned when a derivative needs at least two
	// samples along each axis, or a grid has no samples at all.
	ErrGridTooSmall = errors.New("vectorfield: grid too small")

	// ErrNoValidData is returned by FillMissing when every sample is missing.
	ErrNoValidData = errors.New("vectorfield: no valid samples")
)
