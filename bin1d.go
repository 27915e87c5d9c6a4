package gridmath

import (
	"fmt"
	"math"
)

// Direction is the sign convention of a Bin1D: it determines whether
// increasing bin index moves toward positive or negative coordinates.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Bin1D is an equal-size binning scheme along one axis. Bin index i covers
// the half-open interval returned by Interval(i). It is an immutable value
// type, two Bin1D are equal iff size, origin and direction are all equal.
type Bin1D struct {
	Size      float64
	Origin    float64
	Direction Direction
}

// NewBin1D creates a binning scheme of the given bin width, anchored at
// origin. NewBin1D panics if size is not strictly positive or direction is
// not Forward or Backward.
func NewBin1D(size, origin float64, direction Direction) Bin1D {
	if !(size > 0) {
		panic(fmt.Sprintf("gridmath: Bin1D size must be > 0, got %v", size))
	}
	if direction != Forward && direction != Backward {
		panic(fmt.Sprintf("gridmath: Bin1D direction must be +1 or -1, got %d", direction))
	}
	return Bin1D{Size: size, Origin: origin, Direction: direction}
}

// Bin1DFromSampleBin reconstructs the binning scheme from a single observed
// bin: the scheme b it returns satisfies b.Interval(index) == (lo, hi).
func Bin1DFromSampleBin(index int, lo, hi float64, direction Direction) Bin1D {
	size := hi - lo
	origin := lo - float64(direction)*float64(index)*size
	return NewBin1D(size, origin, direction)
}

// Interval returns the half-open interval [lo, hi) covered by bin i.
// The endpoints are always returned in increasing order, direction only
// selects which physical interval the index refers to.
func (b Bin1D) Interval(i int) (lo, hi float64) {
	j := float64(b.Direction) * float64(i)
	lo = b.Origin + j*b.Size
	return lo, lo + b.Size
}

// Bin returns the index of the bin containing x. The lower edge of a bin
// belongs to that bin, a coordinate just below it belongs to the adjacent one.
func (b Bin1D) Bin(x float64) int {
	j := int(math.Floor((x - b.Origin) / b.Size))
	return int(b.Direction) * j
}
