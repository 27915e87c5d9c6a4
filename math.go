// Package gridmath provides the numeric primitives used to map between pixel
// index space and continuous world coordinates: integer alignment, tolerance
// based snapping of floating point values, 1D axis binning and resolution
// inference from pixel-center coordinates.
package gridmath

import "math"

const (
	// DefaultTol is the tolerance used by snapping helpers when the caller has
	// no better value.
	DefaultTol = 1e-6

	// DefaultTranslationTol and DefaultScaleTol are the tolerances used by
	// affine snapping for the translation and scale components.
	DefaultTranslationTol = 1e-3
	DefaultScaleTol       = 1e-6
)

// RoundHalfUp rounds x to the nearest integer, breaking ties toward +Inf.
// All snapping in this package uses this convention, not round-half-to-even.
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// AlignUp returns the smallest multiple of n that is >= x.
// x and n must be positive, n <= 0 is a caller error and is not checked.
func AlignUp(x, n int) int {
	return (x + n - 1) / n * n
}

// AlignDown returns the largest multiple of n that is <= x.
// x and n must be positive, n <= 0 is a caller error and is not checked.
func AlignDown(x, n int) int {
	return x / n * n
}

// MaybeZero replaces x with 0 when it is within tol of 0, otherwise returns x
// unchanged.
func MaybeZero(x, tol float64) float64 {
	if math.Abs(x) <= tol {
		return 0
	}
	return x
}

// IsAlmostInt reports whether x is within tol of an integer.
func IsAlmostInt(x, tol float64) bool {
	return math.Abs(x-RoundHalfUp(x)) <= tol
}

// MaybeInt replaces x with the nearest integer when it is within tol of one,
// otherwise returns x unchanged. The returned value is exactly integral when
// snapped.
func MaybeInt(x, tol float64) float64 {
	if IsAlmostInt(x, tol) {
		return RoundHalfUp(x)
	}
	return x
}

// SnapScale canonicalizes a scale factor toward an integer or a unit fraction
// 1/n. Scales with |s| >= 1 snap to the nearest integer, scales with |s| < 1
// snap to the nearest 1/n. Values further than tol from a clean scale are
// returned unchanged.
func SnapScale(s, tol float64) float64 {
	if s == 0 {
		return 0
	}
	if math.Abs(s) >= 1 {
		return MaybeInt(s, tol)
	}
	n := RoundHalfUp(1 / s)
	if n == 0 {
		return s
	}
	if math.Abs(1/n-s) <= tol {
		return 1 / n
	}
	return s
}
