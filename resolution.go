package gridmath

import "fmt"

// DataResolutionAndOffset infers the signed sample resolution and the
// coordinate of the low-index edge from pixel-center coordinates assumed
// evenly spaced and monotonic. A sequence of one sample has no slope of its
// own: fallbackRes supplies the resolution in that case, otherwise an error
// is returned. The offset is coords[0] - res/2, consistent with the sign of
// the resolution.
func DataResolutionAndOffset(coords []float64, fallbackRes *float64) (res, off float64, err error) {
	switch n := len(coords); {
	case n == 0:
		return 0, 0, fmt.Errorf("cannot infer resolution from empty sequence")
	case n == 1:
		if fallbackRes == nil {
			return 0, 0, fmt.Errorf("cannot infer resolution from a single sample without an explicit resolution")
		}
		res = *fallbackRes
	default:
		res = (coords[n-1] - coords[0]) / float64(n-1)
	}
	return res, coords[0] - res/2, nil
}
