package grid

import (
	"context"
	"fmt"
	"strconv"

	"github.com/terrapix/gridmath"
	"github.com/terrapix/gridmath/affine"
	"github.com/twpayne/go-geom"
)

const minCellSize = 1     // Arbitrarly defined for now, but strictly positive
const maxCellSize = 65536 // Arbitrarly defined for now

// RegularGrid tiles the plane with equal cells from an origin and a spatial
// resolution.
// parameters:
// - "cell_size" or ("cell_x_size", "cell_y_size"): size of the cell in pixels
// - "resolution" in world unit per pixel (positive, y axis points down)
// - "ox", "oy" origin in world unit
// - "max_cells" to bound the number of cells streamed by Covers
type RegularGrid struct {
	pixToWorld           *affine.Affine
	cellSizeX, cellSizeY int
	binX, binY           gridmath.Bin1D
	maxCells             int
}

func invalidError(desc string, args ...interface{}) error {
	return fmt.Errorf("Invalid RegularGrid:"+desc, args...)
}

func newRegularGrid(parameters map[string]string) (Grid, error) {
	grid := RegularGrid{maxCells: 9223372036854775807}

	// grid.CellSize
	{
		if cellSize, ok := parameters["cell_size"]; ok {
			grid.cellSizeX, _ = strconv.Atoi(cellSize)
			grid.cellSizeY = grid.cellSizeX

		} else {
			cellSizeX, okX := parameters["cell_x_size"]
			cellSizeY, okY := parameters["cell_y_size"]
			if okX && okY {
				grid.cellSizeX, _ = strconv.Atoi(cellSizeX)
				grid.cellSizeY, _ = strconv.Atoi(cellSizeY)
			}
		}
		if grid.cellSizeX < minCellSize || grid.cellSizeX > maxCellSize || grid.cellSizeY < minCellSize || grid.cellSizeY > maxCellSize {
			return nil, invalidError("CellSize parameters: must contain a valid 'cell_size', 'cell_x_size' or 'cell_y_size' in [%d, %d]", minCellSize, maxCellSize)
		}
	}

	// grid.Transform
	{
		// Resolution
		resolutions := parameters["resolution"]
		resolution, _ := strconv.ParseFloat(resolutions, 64)
		if resolution <= 0 {
			return nil, invalidError("Resolution parameters: must contain a valid 'resolution'")
		}

		//OriginX & OriginY
		var originX, originY float64
		var err error
		if ox, ok := parameters["ox"]; ok {
			originX, err = strconv.ParseFloat(ox, 64)
			if err != nil {
				return nil, invalidError("Ox invalid parameter: " + ox)
			}
		}
		if oy, ok := parameters["oy"]; ok {
			originY, err = strconv.ParseFloat(oy, 64)
			if err != nil {
				return nil, invalidError("Oy invalid parameter: " + oy)
			}
		}

		// Scale and translate, snapped so that noisy parameters land on a clean grid
		pixToWorld := affine.Translation(originX, originY).Multiply(affine.Scale(resolution, -resolution))
		grid.pixToWorld = affine.SnapAffine(pixToWorld, gridmath.DefaultTranslationTol, gridmath.DefaultScaleTol)
	}

	// Max cells
	if mc, ok := parameters["max_cells"]; ok {
		var err error
		if grid.maxCells, err = strconv.Atoi(mc); err != nil {
			return nil, invalidError("Max cells[%s]: %w", mc, err)
		}
	}

	// Cell indexing along each axis: columns grow with x, rows grow downward
	ox, oy := grid.pixToWorld.TranslationXY()
	cellWidth := grid.pixToWorld.Rx() * float64(grid.cellSizeX)
	cellHeight := -grid.pixToWorld.Ry() * float64(grid.cellSizeY)
	grid.binX = gridmath.NewBin1D(cellWidth, ox, gridmath.Forward)
	grid.binY = gridmath.Bin1DFromSampleBin(0, oy-cellHeight, oy, gridmath.Backward)

	return &grid, nil
}

// Cell implements Grid and returns a Cell in the regular grid with the provided URI (format : i/j)
func (rg *RegularGrid) Cell(uri string) (*Cell, error) {
	var i, j int
	if n, err := fmt.Sscanf(uri, "%d/%d", &i, &j); err != nil || n != 2 {
		return nil, invalidError("Cell format must be 'i/j' as integers")
	}

	cellToWorld := rg.pixToWorld.Multiply(affine.Translation(float64(i*rg.cellSizeX), float64(j*rg.cellSizeY)))

	xlo, xhi := rg.binX.Interval(i)
	ylo, yhi := rg.binY.Interval(j)
	bounds := geom.NewBounds(geom.XY)
	bounds.SetCoords([]float64{xlo, ylo}, []float64{xhi, yhi})

	return &Cell{
		URI:          uri,
		PixelToWorld: cellToWorld,
		SizeX:        rg.cellSizeX,
		SizeY:        rg.cellSizeY,
		Bounds:       bounds,
	}, nil
}

// Covers implements Grid
func (rg *RegularGrid) Covers(ctx context.Context, aoi *geom.Bounds) (<-chan StreamedURI, error) {
	if aoi == nil || aoi.IsEmpty() {
		return nil, fmt.Errorf("Covers: empty AOI")
	}

	// Bounds in cell coordinates: columns left to right, rows top to bottom.
	// The maximum along an axis lies on the boundary of the next cell, the
	// half-open bins still own it, so the ranges below are inclusive.
	i0, i1 := rg.binX.Bin(aoi.Min(0)), rg.binX.Bin(aoi.Max(0))
	j0, j1 := rg.binY.Bin(aoi.Max(1)), rg.binY.Bin(aoi.Min(1))

	if n := (i1 - i0 + 1) * (j1 - j0 + 1); n > rg.maxCells {
		return nil, fmt.Errorf("Covers: too many cells (needed:%d, provided:%d)", n, rg.maxCells)
	}

	uris := make(chan StreamedURI)

	go func() {
		defer close(uris)
		for j := j0; j <= j1; j++ {
			for i := i0; i <= i1; i++ {
				uris <- StreamedURI{URI: fmt.Sprintf("%d/%d", i, j)}
			}
			select {
			case <-ctx.Done():
				uris <- StreamedURI{Error: fmt.Errorf("RegularGrid.Covers: %w", ctx.Err())}
				return
			default:
			}
		}
	}()

	return uris, nil
}
