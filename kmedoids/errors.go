// Package kmedoids - sentinel errors.
//
// All exported functions return these sentinels (optionally wrapped with
// context via %w); callers match them with errors.Is. No function panics on
// user input.
package kmedoids

import "errors"

var (
	// ErrEmptyDataset is returned when a dataset has no points.
	ErrEmptyDataset = errors.New("kmedoids: dataset is empty")

	// ErrDimensionMismatch indicates points or medoids of inconsistent
	// dimensionality, or a zero-dimensional point.
	ErrDimensionMismatch = errors.New("kmedoids: dimension mismatch")

	// ErrNonFinite indicates a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("kmedoids: NaN or Inf coordinate")

	// ErrInsufficientData is returned when the dataset has fewer than K points.
	ErrInsufficientData = errors.New("kmedoids: fewer points than clusters")

	// ErrInvalidK is returned when K < 1.
	ErrInvalidK = errors.New("kmedoids: K must be positive")

	// ErrInvalidMedoids is returned when a fixed medoid set does not hold
	// exactly K distinct indices.
	ErrInvalidMedoids = errors.New("kmedoids: medoid set must hold K distinct indices")

	// ErrMedoidOutOfRange is returned when a medoid index is outside [0, N).
	ErrMedoidOutOfRange = errors.New("kmedoids: medoid index out of range")

	// ErrNoMedoids is returned when a cost or assignment is requested
	// against an empty medoid list.
	ErrNoMedoids = errors.New("kmedoids: no medoids given")

	// ErrPaletteTooSmall is returned when a label palette has fewer than K entries.
	ErrPaletteTooSmall = errors.New("kmedoids: palette smaller than K")
)
