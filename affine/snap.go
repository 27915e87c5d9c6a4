package affine

import "github.com/terrapix/gridmath"

// XY is an ordered pair of coordinates. X and Y are tracked independently
// through every operation of this package.
type XY struct {
	X, Y float64
}

// SplitTranslation splits a translation into an integer whole component and
// the fractional remainder, per axis, such that whole + part == t. The whole
// components are exactly integral, ties at .5 round toward +Inf.
func SplitTranslation(t XY) (whole, part XY) {
	whole = XY{X: gridmath.RoundHalfUp(t.X), Y: gridmath.RoundHalfUp(t.Y)}
	part = XY{X: t.X - whole.X, Y: t.Y - whole.Y}
	return whole, part
}

// SnapAffine snaps the scale and translation components of a transform to
// clean values. Scales are snapped to integers or unit fractions within stol,
// but only when the transform is axis-aligned, rotation and shear elements
// are never touched. Translations within ttol of an integer are snapped to
// it. When nothing is within tolerance the exact same instance is returned,
// so callers can detect "unchanged" by pointer identity.
//
// gridmath.DefaultTranslationTol and gridmath.DefaultScaleTol are the usual
// tolerances.
func SnapAffine(a *Affine, ttol, stol float64) *Affine {
	out := *a

	if a.IsAxisAligned() {
		out[1] = gridmath.SnapScale(a[1], stol)
		out[5] = gridmath.SnapScale(a[5], stol)
	}
	out[0] = gridmath.MaybeInt(a[0], ttol)
	out[3] = gridmath.MaybeInt(a[3], ttol)

	if out == *a {
		return a
	}
	return &out
}
