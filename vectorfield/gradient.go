package vectorfield

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Gradient returns the partial derivatives of f along rows and columns.
//
// Scheme (unit spacing):
//
//	interior: (f[k+1] − f[k−1]) / 2
//	edges:    f[1] − f[0]  and  f[n−1] − f[n−2]
//
// Errors: ErrNilGrid; ErrGridTooSmall when f has fewer than 2 rows or columns.
//
// Complexity: O(R·C).
func Gradient(f *mat.Dense) (dRows, dCols *mat.Dense, err error) {
	if f == nil {
		return nil, nil, ErrNilGrid
	}
	r, c := f.Dims()
	if r < 2 || c < 2 {
		return nil, nil, fmt.Errorf("gradient of %d×%d grid: %w", r, c, ErrGridTooSmall)
	}

	dRows = mat.NewDense(r, c, nil)
	dCols = mat.NewDense(r, c, nil)

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			switch i {
			case 0:
				dRows.Set(i, j, f.At(1, j)-f.At(0, j))
			case r - 1:
				dRows.Set(i, j, f.At(r-1, j)-f.At(r-2, j))
			default:
				dRows.Set(i, j, (f.At(i+1, j)-f.At(i-1, j))/2)
			}

			switch j {
			case 0:
				dCols.Set(i, j, f.At(i, 1)-f.At(i, 0))
			case c - 1:
				dCols.Set(i, j, f.At(i, c-1)-f.At(i, c-2))
			default:
				dCols.Set(i, j, (f.At(i, j+1)-f.At(i, j-1))/2)
			}
		}
	}

	return dRows, dCols, nil
}

// Divergence returns ∂vx/∂row + ∂vy/∂col.
//
// Errors: ErrNilGrid, ErrShapeMismatch, ErrGridTooSmall.
func Divergence(vx, vy *mat.Dense) (*mat.Dense, error) {
	if err := checkPair(vx, vy); err != nil {
		return nil, err
	}
	dxRows, _, err := Gradient(vx)
	if err != nil {
		return nil, err
	}
	_, dyCols, err := Gradient(vy)
	if err != nil {
		return nil, err
	}

	var out mat.Dense
	out.Add(dxRows, dyCols)
	return &out, nil
}

// Vorticity returns ∂vy/∂row − ∂vx/∂col. For a planar field the z-derivatives
// vanish and this is the only non-zero component of the curl.
//
// Errors: ErrNilGrid, ErrShapeMismatch, ErrGridTooSmall.
func Vorticity(vx, vy *mat.Dense) (*mat.Dense, error) {
	if err := checkPair(vx, vy); err != nil {
		return nil, err
	}
	_, dxCols, err := Gradient(vx)
	if err != nil {
		return nil, err
	}
	dyRows, _, err := Gradient(vy)
	if err != nil {
		return nil, err
	}

	var out mat.Dense
	out.Sub(dyRows, dxCols)
	return &out, nil
}

// checkPair verifies both components are present and equally shaped.
func checkPair(vx, vy *mat.Dense) error {
	if vx == nil || vy == nil {
		return ErrNilGrid
	}
	rx, cx := vx.Dims()
	ry, cy := vy.Dims()
	if rx != ry || cx != cy {
		return fmt.Errorf("vx %d×%d, vy %d×%d: %w", rx, cx, ry, cy, ErrShapeMismatch)
	}
	return nil
}
