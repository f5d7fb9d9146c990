// File: chi/example_test.go
package chi_test

import (
	"fmt"

	"github.com/katalvlaran/lvlterra/chi"
	"github.com/katalvlaran/lvlterra/core"
	"github.com/katalvlaran/lvlterra/rastergrid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Indexer.Calculate
////////////////////////////////////////////////////////////////////////////////

// ExampleIndexer_Calculate computes chi along a single west-draining
// channel on a 3×4 raster.
// Scenario:
//
//   - Top, bottom and right edges are closed; node 4 on the left edge is
//     the open outlet; core nodes 5 and 6 drain west toward it.
//   - Drainage areas: A(6)=1, A(5)=2, A(4)=2; θ=1; A0 derives to the
//     mean core cell area, 1.
//   - Uniform-spacing mode: chi accumulates (A0/A)^θ upstream, then
//     scales by the mean channel spacing (1 here).
//
// Complexity: O(n) beyond validation.
func ExampleIndexer_Calculate() {
	g, _ := rastergrid.New([][]float64{
		{0, 1, 2, 3},
		{0, 1, 2, 3},
		{0, 1, 2, 3},
	}, rastergrid.DefaultOptions())
	for _, node := range []int{0, 1, 2, 3, 7, 8, 9, 10, 11} {
		g.SetStatus(node, core.ClosedBoundary)
	}

	n := g.NumNodes()
	net := &core.FlowNetwork{
		Receiver:       make([]int, n),
		LinkToReceiver: make([]int, n),
		DrainageArea:   make([]float64, n),
		UpstreamOrder:  make([]int, n),
	}
	for node := 0; node < n; node++ {
		net.Receiver[node] = node
		net.LinkToReceiver[node] = core.NoLink
		net.UpstreamOrder[node] = node
	}
	net.Receiver[5], net.LinkToReceiver[5] = 4, g.Link(5, 2)
	net.Receiver[6], net.LinkToReceiver[6] = 5, g.Link(6, 2)
	net.DrainageArea[4], net.DrainageArea[5], net.DrainageArea[6] = 2, 2, 1

	ix, _ := chi.New(g, chi.WithMinDrainageArea(1), chi.WithReferenceConcavity(1))
	res, _ := ix.Calculate(net)

	for x := 0; x < g.Width(); x++ {
		fmt.Printf("%g ", res.Chi[g.Index(x, 1)])
	}
	fmt.Println()

	// Output:
	// 0.5 1 2 0
}
