package rastergrid

import (
	"math"

	"github.com/katalvlaran/lvlterra/core"
)

// New constructs a Grid from a non-empty, rectangular 2D elevation slice.
// It deep-copies the input to ensure immutability. Perimeter nodes are
// classified core.FixedValueBoundary, interior nodes core.CoreNode; use
// SetStatus to reclassify. Returns ErrEmptyGrid if the surface has no
// rows or no columns, ErrNonRectangular if any row length differs,
// ErrBadSpacing if opts.Spacing ≤ 0.
// Algorithmic complexity: O(W×H) time and memory.
func New(values [][]float64, opts Options) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if opts.Spacing <= 0 {
		return nil, ErrBadSpacing
	}

	g := &Grid{
		width:   w,
		height:  h,
		spacing: opts.Spacing,
		elev:    make([]float64, w*h),
		status:  make([]core.BoundaryStatus, w*h),
	}
	// Flatten elevations row-major and classify the perimeter as open.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := g.Index(x, y)
			g.elev[i] = values[y][x]
			if x == 0 || x == w-1 || y == 0 || y == h-1 {
				g.status[i] = core.FixedValueBoundary
			}
		}
	}
	// Precompute fixed-size neighbor lists, core.NoNode off-grid.
	g.neighbors = make([][]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			list := make([]int, slotsPerNode)
			for s, d := range neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if g.InBounds(nx, ny) {
					list[s] = g.Index(nx, ny)
				} else {
					list[s] = core.NoNode
				}
			}
			g.neighbors[g.Index(x, y)] = list
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Spacing returns the cardinal node spacing in map units.
func (g *Grid) Spacing() float64 { return g.spacing }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x,y) to a row-major node id: y·Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major node id back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(node int) (x, y int) {
	return node % g.width, node / g.width
}

// NumNodes returns the total node count W×H.
func (g *Grid) NumNodes() int { return g.width * g.height }

// Status returns the boundary classification of the given node.
func (g *Grid) Status(node int) core.BoundaryStatus {
	return g.status[node]
}

// SetStatus reclassifies a single node, e.g. to close an edge of the
// domain before filling or routing.
func (g *Grid) SetStatus(node int, s core.BoundaryStatus) {
	g.status[node] = s
}

// Neighbors returns the node's fixed-size neighbor list: E, N, W, S,
// then NE, NW, SW, SE, with core.NoNode in off-grid slots. The returned
// slice is owned by the grid and must not be modified.
func (g *Grid) Neighbors(node int) []int {
	return g.neighbors[node]
}

// Link returns the id of the link leaving node through the given
// neighbor slot (0–3 cardinal, 4–7 diagonal), or core.NoLink when that
// slot is off-grid. Link ids are what FlowNetwork.LinkToReceiver holds
// for raster networks.
func (g *Grid) Link(node, slot int) int {
	if g.neighbors[node][slot] == core.NoNode {
		return core.NoLink
	}

	return node*slotsPerNode + slot
}

// LinkLength returns the length of the given link: Spacing for cardinal
// links, Spacing·√2 for diagonal links. The link id must come from Link.
func (g *Grid) LinkLength(link int) float64 {
	if link%slotsPerNode < 4 {
		return g.spacing
	}

	return g.spacing * math.Sqrt2
}

// CellArea returns the cell area associated with a node: Spacing².
func (g *Grid) CellArea(node int) float64 {
	return g.spacing * g.spacing
}

// Elevations returns a fresh row-major copy of the elevation surface,
// the form pitfill.Fill consumes and mutates.
func (g *Grid) Elevations() []float64 {
	out := make([]float64, len(g.elev))
	copy(out, g.elev)

	return out
}
