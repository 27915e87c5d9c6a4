// Package grid provides axis-aligned tilings of a world coordinate plane.
// Cells are addressed by "i/j" URIs and located using the binning and affine
// primitives of this module.
package grid

import (
	"context"
	"fmt"
	"strings"

	"github.com/terrapix/gridmath/affine"
	"github.com/twpayne/go-geom"
)

// Cell is a rectangular area of the plane addressed by a URI.
type Cell struct {
	URI          string
	PixelToWorld *affine.Affine // Transform from cell-local pixel to world coordinates
	SizeX, SizeY int
	Bounds       *geom.Bounds // world-coordinate extent of the cell
}

type StreamedURI struct {
	URI   string
	Error error
}

type Grid interface {
	// Return the cell defined by the uri
	Cell(uri string) (*Cell, error)

	// Covers streams uris of cells intersecting the bounds of the AOI.
	// The uris are unique.
	Covers(ctx context.Context, aoi *geom.Bounds) (<-chan StreamedURI, error)
}

// NewGrid creates a new grid from parameters
func NewGrid(parameters map[string]string) (Grid, error) {
	grid, ok := parameters["grid"]
	if !ok {
		return nil, fmt.Errorf("missing 'grid' in parameters")
	}
	switch strings.ToLower(grid) {
	case "regular":
		return newRegularGrid(parameters)
	}

	return nil, fmt.Errorf("unsupported grid type: " + grid)
}
