package core

import "fmt"

// Validate checks the network's shape against a node count of n:
// all four slices have length n, every receiver and order entry lies in
// [0, n), drainage areas are non-negative, and UpstreamOrder is a
// permutation in which each node appears after its receiver (nodes that
// are their own receiver are exempt from the ordering constraint).
//
// Validation is O(n) time and O(n) memory; it performs no mutation.
// Acyclicity beyond the ordering check is the router's contract and is
// not re-verified here.
func (f *FlowNetwork) Validate(n int) error {
	if len(f.Receiver) != n || len(f.LinkToReceiver) != n ||
		len(f.DrainageArea) != n || len(f.UpstreamOrder) != n {
		return fmt.Errorf("%w: slice lengths (%d,%d,%d,%d) do not match node count %d",
			ErrInvalidNetwork,
			len(f.Receiver), len(f.LinkToReceiver), len(f.DrainageArea), len(f.UpstreamOrder), n)
	}
	for node, r := range f.Receiver {
		if r < 0 || r >= n {
			return fmt.Errorf("%w: receiver %d of node %d out of range", ErrInvalidNetwork, r, node)
		}
	}
	for node, a := range f.DrainageArea {
		if a < 0 {
			return fmt.Errorf("%w: negative drainage area %g at node %d", ErrInvalidNetwork, a, node)
		}
	}
	// position[node] = index of node within UpstreamOrder; doubles as the
	// permutation check (every node seen exactly once).
	position := make([]int, n)
	for i := range position {
		position[i] = NoNode
	}
	for i, node := range f.UpstreamOrder {
		if node < 0 || node >= n {
			return fmt.Errorf("%w: order entry %d at position %d out of range", ErrInvalidNetwork, node, i)
		}
		if position[node] != NoNode {
			return fmt.Errorf("%w: node %d appears twice in upstream order", ErrInvalidNetwork, node)
		}
		position[node] = i
	}
	for node, r := range f.Receiver {
		if r == node {
			continue // outlet: no downstream constraint
		}
		if position[r] >= position[node] {
			return fmt.Errorf("%w: node %d ordered before its receiver %d", ErrInvalidNetwork, node, r)
		}
	}

	return nil
}

// ValidateNeighbors scans every neighbor list of g and fails fast on a
// dangling neighbor id (outside [0, NumNodes) and not NoNode). Algorithm
// packages call this before mutating any output so that a malformed grid
// never corrupts a surface. O(n·d) time, O(1) memory.
func ValidateNeighbors(g Grid) error {
	n := g.NumNodes()
	for node := 0; node < n; node++ {
		for _, nb := range g.Neighbors(node) {
			if nb == NoNode {
				continue
			}
			if nb < 0 || nb >= n {
				return fmt.Errorf("%w: node %d lists dangling neighbor %d", ErrInvalidGrid, node, nb)
			}
		}
	}

	return nil
}

// MeanCoreCellArea returns the mean cell area over all CoreNode nodes of
// g, or 0 when the grid has no core nodes. The chi indexer uses this as
// the derived reference area A0 when none is configured.
func MeanCoreCellArea(g Grid) float64 {
	var sum float64
	var count int
	n := g.NumNodes()
	for node := 0; node < n; node++ {
		if g.Status(node) != CoreNode {
			continue
		}
		sum += g.CellArea(node)
		count++
	}
	if count == 0 {
		return 0
	}

	return sum / float64(count)
}
