package vectorfield

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// DefaultNoData is the sentinel written by the simulation for cells
// without a value.
const DefaultNoData = 1e35

// FillMissing replaces every missing sample of f (NaN, or ≥ noData) with the
// mean of the remaining samples, in place, and returns how many were replaced.
//
// Errors: ErrNilGrid; ErrNoValidData when every sample is missing.
//
// Complexity: O(R·C).
func FillMissing(f *mat.Dense, noData float64) (int, error) {
	if f == nil {
		return 0, ErrNilGrid
	}
	r, c := f.Dims()

	var (
		valid = make([]float64, 0, r*c)
		i, j  int
		v     float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v = f.At(i, j); !missing(v, noData) {
				valid = append(valid, v)
			}
		}
	}
	if len(valid) == 0 {
		return 0, ErrNoValidData
	}
	if len(valid) == r*c {
		return 0, nil
	}

	var (
		mean     = stat.Mean(valid, nil)
		replaced int
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if missing(f.At(i, j), noData) {
				f.Set(i, j, mean)
				replaced++
			}
		}
	}

	return replaced, nil
}

func missing(v, noData float64) bool {
	return math.IsNaN(v) || v >= noData
}

// Range returns the smallest and largest sample of f, e.g. the bounds of a
// linear colour bar.
//
// Errors: ErrNilGrid; ErrGridTooSmall for an empty grid.
func Range(f *mat.Dense) (lo, hi float64, err error) {
	if f == nil {
		return 0, 0, ErrNilGrid
	}
	if f.IsEmpty() {
		return 0, 0, ErrGridTooSmall
	}
	return mat.Min(f), mat.Max(f), nil
}
