// File: rastergrid/rastergrid_test.go
package rastergrid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlterra/core"
	"github.com/katalvlaran/lvlterra/rastergrid"
)

// TestNew_InvalidInputs ensures New rejects bad surfaces and spacings.
func TestNew_InvalidInputs(t *testing.T) {
	if _, err := rastergrid.New(nil, rastergrid.DefaultOptions()); err != rastergrid.ErrEmptyGrid {
		t.Errorf("nil surface: got %v; want ErrEmptyGrid", err)
	}
	if _, err := rastergrid.New([][]float64{{1}, {}}, rastergrid.DefaultOptions()); err != rastergrid.ErrNonRectangular {
		t.Errorf("jagged surface: got %v; want ErrNonRectangular", err)
	}
	if _, err := rastergrid.New([][]float64{{1, 2}}, rastergrid.Options{Spacing: 0}); err != rastergrid.ErrBadSpacing {
		t.Errorf("zero spacing: got %v; want ErrBadSpacing", err)
	}
}

// TestStatusClassification verifies the default perimeter/interior split
// and SetStatus reclassification.
func TestStatusClassification(t *testing.T) {
	surface := [][]float64{
		{0, 0, 0},
		{0, 5, 0},
		{0, 0, 0},
	}
	g, err := rastergrid.New(surface, rastergrid.DefaultOptions())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	center := g.Index(1, 1)
	for node := 0; node < g.NumNodes(); node++ {
		want := core.FixedValueBoundary
		if node == center {
			want = core.CoreNode
		}
		if got := g.Status(node); got != want {
			t.Errorf("status(%d) = %v; want %v", node, got, want)
		}
	}

	g.SetStatus(center, core.ClosedBoundary)
	if !g.Status(center).IsClosed() {
		t.Error("SetStatus did not reclassify the center node")
	}
}

// TestNeighbors verifies neighbor lists: 8 slots, cardinal first,
// core.NoNode padding off-grid.
func TestNeighbors(t *testing.T) {
	surface := [][]float64{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
	}
	g, err := rastergrid.New(surface, rastergrid.DefaultOptions())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Center node 4 has the full 8-neighborhood: E,N,W,S then NE,NW,SW,SE.
	want := []int{5, 7, 3, 1, 8, 6, 0, 2}
	got := g.Neighbors(g.Index(1, 1))
	if len(got) != 8 {
		t.Fatalf("neighbor list length = %d; want 8", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbor slot %d = %d; want %d", i, got[i], want[i])
		}
	}

	// Corner node 0 (x=0,y=0): only E, N and NE exist.
	corner := g.Neighbors(g.Index(0, 0))
	wantCorner := []int{1, 3, core.NoNode, core.NoNode, 4, core.NoNode, core.NoNode, core.NoNode}
	for i := range wantCorner {
		if corner[i] != wantCorner[i] {
			t.Errorf("corner slot %d = %d; want %d", i, corner[i], wantCorner[i])
		}
	}
}

// TestLinksAndGeometry verifies link ids, lengths and cell areas for a
// non-unit spacing.
func TestLinksAndGeometry(t *testing.T) {
	surface := [][]float64{
		{0, 0},
		{0, 0},
	}
	g, err := rastergrid.New(surface, rastergrid.Options{Spacing: 2})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Cardinal link east out of node 0.
	link := g.Link(0, 0)
	if link == core.NoLink {
		t.Fatal("east link of node 0 must exist")
	}
	if got := g.LinkLength(link); got != 2 {
		t.Errorf("cardinal link length = %g; want 2", got)
	}

	// Diagonal link NE out of node 0.
	diag := g.Link(0, 4)
	if diag == core.NoLink {
		t.Fatal("NE link of node 0 must exist")
	}
	if got, want := g.LinkLength(diag), 2*math.Sqrt2; math.Abs(got-want) > 1e-12 {
		t.Errorf("diagonal link length = %g; want %g", got, want)
	}

	// Off-grid slot yields the sentinel.
	if got := g.Link(0, 2); got != core.NoLink {
		t.Errorf("west link of node 0 = %d; want core.NoLink", got)
	}

	if got := g.CellArea(0); got != 4 {
		t.Errorf("cell area = %g; want 4", got)
	}
}

// TestIndexRoundTrip checks the row-major Index/Coordinate mapping.
func TestIndexRoundTrip(t *testing.T) {
	surface := [][]float64{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	g, _ := rastergrid.New(surface, rastergrid.DefaultOptions())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			gx, gy := g.Coordinate(g.Index(x, y))
			if gx != x || gy != y {
				t.Fatalf("round trip (%d,%d) → (%d,%d)", x, y, gx, gy)
			}
		}
	}
}

// TestElevationsIsACopy ensures mutating the returned slice (as pitfill
// does) never writes back into the grid.
func TestElevationsIsACopy(t *testing.T) {
	surface := [][]float64{{1, 2, 3}}
	g, _ := rastergrid.New(surface, rastergrid.DefaultOptions())

	elev := g.Elevations()
	elev[0] = 99
	if again := g.Elevations(); again[0] != 1 {
		t.Errorf("grid elevation mutated through the copy: got %g; want 1", again[0])
	}
}
