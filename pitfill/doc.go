// Package pitfill removes depressions ("pits") from terrain elevation
// surfaces using the priority-flood algorithm of Barnes et al. (2014).
//
// Priority-flood grows an inundation front inward from the open domain
// boundaries, always advancing through the lowest not-yet-finalized node.
// Any neighbor lying at or below the front is raised to the front's
// elevation and drained through a FIFO fast path, so plateaus cost O(1)
// per node instead of a heap operation. The result is a surface where
// every reachable node has a non-increasing elevation path to an open
// boundary.
//
// Complexity:
//
//   - Time:  O(n log n) worst case; O(n) amortized on surfaces dominated
//     by flats/plateaus (the FIFO fast path bypasses the heap).
//   - Space: O(n) for the visited flags and the two queues.
//
// Guarantees:
//
//   - Raise-only: output elevation ≥ input elevation at every node.
//   - Every visited node gains a non-increasing path to an open boundary;
//     a node's final elevation is the classic "water level" of depression
//     filling.
//   - Nodes unreachable from any open boundary are left untouched.
//   - No open boundary at all is a degenerate input, not an error: the
//     queues drain immediately and the surface is returned unchanged.
//   - Idempotent: filling a filled surface is a no-op.
//
// Concurrency:
//
//   - Fill is synchronous and runs to completion; its queues and visited
//     flags are owned by the single invocation. Concurrent Fill calls
//     over the same elevation slice are not supported; serialize them.
//
// Options:
//
//   - WithClosedBlocked(): treat closed-boundary nodes as barriers so the
//     flood neither crosses nor raises them. By default closed nodes are
//     traversable like any interior node; they are merely never seeded.
//
// Errors (sentinel):
//
//   - ErrNilGrid         if the provided grid is nil.
//   - ErrLengthMismatch  if the elevation slice disagrees with the grid.
//   - core.ErrInvalidGrid (wrapped) on dangling neighbor ids; detected
//     before any mutation, so a malformed grid never corrupts a surface.
package pitfill
