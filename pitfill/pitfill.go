package pitfill

import (
	"container/heap"

	"github.com/katalvlaran/lvlterra/core"
)

// Fill raises elevations in elev until every node reachable from an open
// boundary has a non-increasing elevation path to one, and returns the
// same slice. Elevations are only ever raised, never lowered; nodes
// unreachable from any open boundary are left untouched. elev is indexed
// by node id and is mutated in place; copy first if the raw surface is
// still needed.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. len(elev) must equal g.NumNodes() (ErrLengthMismatch).
//  3. Every neighbor id must be in range or core.NoNode
//     (core.ErrInvalidGrid, wrapped). Checked before any mutation.
//
// A grid with no open-boundary node is a degenerate input, not an error:
// nothing is seeded, the queues drain immediately, and the surface is
// returned unchanged.
//
// Complexity:
//
//   - Time:  O(n log n) worst case, O(n) amortized on plateau-heavy surfaces
//   - Space: O(n)
func Fill(elev []float64, g core.Grid, opts ...Option) ([]float64, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate grid is non-nil.
	if g == nil {
		return nil, ErrNilGrid
	}

	// 3) Validate the elevation slice covers every node.
	if len(elev) != g.NumNodes() {
		return nil, ErrLengthMismatch
	}

	// 4) Fail fast on malformed adjacency before touching elev.
	if err := core.ValidateNeighbors(g); err != nil {
		return nil, err
	}

	// 5) Prepare per-invocation state and run the flood.
	r := &flood{
		g:       g,
		elev:    elev,
		visited: make([]bool, len(elev)),
		pq:      make(elevPQ, 0, len(elev)),
	}
	r.seed(cfg)
	r.process()

	return elev, nil
}

// flood holds the mutable state for a single Fill execution.
type flood struct {
	g       core.Grid // read-only adjacency and statuses
	elev    []float64 // the surface being raised, indexed by node id
	visited []bool    // node finalized: its output elevation is settled
	pq      elevPQ    // min-heap of not-yet-finalized frontier nodes
	plateau []int     // FIFO of nodes raised to the current flood level
	head    int       // FIFO read position (amortized O(1) pops)
	seq     int       // arrival counter for stable heap ordering
}

// seed marks every open-boundary node finalized and pushes it onto the
// heap at its own elevation; the flood grows inward from these. With
// closed blocking, closed nodes are pre-finalized too (never enqueued),
// making them impermeable.
func (r *flood) seed(cfg Options) {
	heap.Init(&r.pq)
	for node := 0; node < len(r.elev); node++ {
		status := r.g.Status(node)
		if status.IsOpenBoundary() {
			r.visited[node] = true
			r.push(node)
			continue
		}
		if !cfg.TraverseClosed && status.IsClosed() {
			r.visited[node] = true
		}
	}
}

// process is the core loop. It repeatedly takes the next front node,
// preferring the plateau FIFO and falling back to the heap minimum, and
// inspects its unvisited neighbors. A neighbor at or below the front is
// raised to the front's elevation and joins the FIFO (it shares the
// current flood level and must be drained before the heap resumes strict
// ordering); a higher neighbor enters the heap unchanged. Every
// reachable node is visited exactly once.
func (r *flood) process() {
	var node, nb int
	for r.head < len(r.plateau) || r.pq.Len() > 0 {
		if r.head < len(r.plateau) {
			node = r.plateau[r.head]
			r.head++
		} else {
			node = heap.Pop(&r.pq).(*elevItem).node
		}
		for _, nb = range r.g.Neighbors(node) {
			if nb == core.NoNode || r.visited[nb] {
				continue
			}
			r.visited[nb] = true
			if r.elev[nb] <= r.elev[node] {
				r.elev[nb] = r.elev[node]
				r.plateau = append(r.plateau, nb)
			} else {
				r.push(nb)
			}
		}
	}
}

// push enqueues node at its current elevation, stamping it with the
// arrival sequence so equal elevations pop in insertion order.
func (r *flood) push(node int) {
	heap.Push(&r.pq, &elevItem{elev: r.elev[node], seq: r.seq, node: node})
	r.seq++
}

// elevItem represents a frontier node keyed by its elevation. seq breaks
// elevation ties by arrival order, keeping the flood deterministic.
type elevItem struct {
	elev float64 // elevation at enqueue time (final for this node)
	seq  int     // arrival order, the tie-breaker
	node int     // node id
}

// elevPQ is a min-heap of *elevItem, ordered by elevation ascending,
// then by arrival sequence.
type elevPQ []*elevItem

// Len returns the number of items in the heap.
func (pq elevPQ) Len() int { return len(pq) }

// Less defines the comparison: lower elevation → higher priority, with
// arrival order breaking ties.
func (pq elevPQ) Less(i, j int) bool {
	if pq[i].elev != pq[j].elev {
		return pq[i].elev < pq[j].elev
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq elevPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *elevItem.
func (pq *elevPQ) Push(x interface{}) { *pq = append(*pq, x.(*elevItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *elevPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
