// Package rastergrid defines the Grid type, construction options, and
// sentinel errors for the raster implementation of core.Grid.
package rastergrid

import (
	"errors"

	"github.com/katalvlaran/lvlterra/core"
)

// Sentinel errors for rastergrid operations.
var (
	// ErrEmptyGrid indicates the input surface has no rows or no columns.
	ErrEmptyGrid = errors.New("rastergrid: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("rastergrid: all rows must have the same length")

	// ErrBadSpacing indicates a non-positive node spacing.
	ErrBadSpacing = errors.New("rastergrid: node spacing must be positive")
)

// slotsPerNode is the fixed neighbor-list width: 4 cardinal slots
// (E, N, W, S) followed by 4 diagonal slots (NE, NW, SW, SE).
const slotsPerNode = 8

// neighborOffsets holds the (dx, dy) offset per neighbor slot, cardinal
// slots first so diagonal-agnostic callers can truncate to the first 4.
var neighborOffsets = [slotsPerNode][2]int{
	{1, 0}, {0, 1}, {-1, 0}, {0, -1}, // E, N, W, S
	{1, 1}, {-1, 1}, {-1, -1}, {1, -1}, // NE, NW, SW, SE
}

// Options contains tunable parameters for raster construction.
type Options struct {
	// Spacing is the distance between cardinally adjacent nodes, in map
	// units. Must be positive.
	Spacing float64
}

// DefaultOptions returns an Options with unit node spacing.
func DefaultOptions() Options {
	return Options{Spacing: 1}
}

// Grid is a raster elevation surface viewed as a core.Grid. Geometry
// (Width, Height, Spacing, adjacency) is immutable once built; node
// statuses may be reclassified via SetStatus before running algorithms.
type Grid struct {
	width, height int
	spacing       float64
	elev          []float64             // row-major elevations, deep-copied
	status        []core.BoundaryStatus // per-node boundary classification
	neighbors     [][]int               // per-node fixed-size neighbor lists
}
