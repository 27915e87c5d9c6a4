package affine

import (
	"fmt"

	"github.com/terrapix/gridmath"
)

// Resolution is a per-axis signed pixel size.
type Resolution struct {
	X, Y float64
}

// ResXY creates a Resolution with explicit per-axis values, used verbatim.
func ResXY(x, y float64) Resolution {
	return Resolution{X: x, Y: y}
}

// Res creates a Resolution from a single scalar pixel size following the
// raster convention: the Y resolution is the negated value, reflecting
// top-down image coordinates.
func Res(r float64) Resolution {
	return Resolution{X: r, Y: -r}
}

// FromAxis builds the pixel-to-world transform of an axis-aligned grid from
// the pixel-center coordinates of its two axes. fallback supplies the
// resolution for single-sample axes and may be nil, in which case a
// single-sample axis is an error. The resulting transform has no rotation or
// shear.
func FromAxis(xCoords, yCoords []float64, fallback *Resolution) (*Affine, error) {
	var fx, fy *float64
	if fallback != nil {
		fx, fy = &fallback.X, &fallback.Y
	}

	xres, xoff, err := gridmath.DataResolutionAndOffset(xCoords, fx)
	if err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	yres, yoff, err := gridmath.DataResolutionAndOffset(yCoords, fy)
	if err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}

	return NewAffine(xoff, xres, 0, yoff, 0, yres), nil
}
