package vectorfield

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ColorCode encodes direction and strength of the field as an RGBA image
// with one pixel per grid cell (column → x, row → y).
//
// Encoding:
//   - Hue        H = (atan2(vx, vy) + π) / 2π, in [0, 1].
//   - Saturation S = 1.
//   - Value      V = (|v| − min|v|) / (max|v| − min|v|) · 255; 0 everywhere
//     when all magnitudes are equal.
//   - RGB channels are truncated to uint8; alpha is 255.
//
// Errors: ErrNilGrid, ErrShapeMismatch, ErrGridTooSmall (empty grid).
//
// Complexity: O(R·C).
func ColorCode(vx, vy *mat.Dense) (*image.RGBA, error) {
	if err := checkPair(vx, vy); err != nil {
		return nil, err
	}
	if vx.IsEmpty() {
		return nil, fmt.Errorf("color code: %w", ErrGridTooSmall)
	}
	r, c := vx.Dims()

	var (
		mag  = make([]float64, r*c)
		i, j int
		x, y float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			x, y = vx.At(i, j), vy.At(i, j)
			mag[i*c+j] = math.Hypot(x, y)
		}
	}
	var (
		lo   = floats.Min(mag)
		span = floats.Max(mag) - lo
		img  = image.NewRGBA(image.Rect(0, 0, c, r))
		h, v float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			h = (math.Atan2(vx.At(i, j), vy.At(i, j)) + math.Pi) / (2 * math.Pi)
			v = 0
			if span > 0 {
				v = (mag[i*c+j] - lo) / span * 255
			}
			rr, gg, bb := hsvToRGB(h, 1, v)
			img.SetRGBA(j, i, color.RGBA{R: toUint8(rr), G: toUint8(gg), B: toUint8(bb), A: 255})
		}
	}

	return img, nil
}

// hsvToRGB converts h∈[0,1], s∈[0,1] and v (any scale) to r,g,b on the
// scale of v, using the six-sector formula.
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}
	var (
		sector = math.Floor(h * 6)
		f      = h*6 - sector
		p      = v * (1 - s)
		q      = v * (1 - s*f)
		t      = v * (1 - s*(1-f))
	)
	switch int(sector) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// toUint8 truncates toward zero after clamping to [0, 255].
func toUint8(x float64) uint8 {
	switch {
	case math.IsNaN(x) || x <= 0:
		return 0
	case x >= 255:
		return 255
	default:
		return uint8(x)
	}
}
