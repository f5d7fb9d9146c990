// Package chi computes the channel steepness index ("chi") of Perron &
// Royden (2013) along a precomputed drainage network.
//
// Chi at a node is the integral of (A0/A)^θ along the flow path from the
// node down to its outlet, where A is local drainage area, A0 a reference
// area, and θ the reference concavity. Because a receiver's chi is always
// finalized before its upstream contributors (the network's upstream
// ordering guarantees it), the integral reduces to a single downstream-
// to-upstream sweep.
//
// What:
//
//   - Indexer binds a core.Grid and stored defaults; Calculate runs one
//     sweep over a supplied core.FlowNetwork, with per-call overrides.
//   - Nodes whose drainage area falls below MinDrainageArea are outside
//     the channel network: their chi is 0 and their mask entry true.
//   - Two integration modes: uniform spacing (accumulate the integrand,
//     then scale by the mean channel node spacing; the default, which
//     avoids the quantization artifact of variable spacing) and exact
//     spacing (trapezoidal rule with true link lengths).
//
// Guarantees:
//
//   - Chi is monotone non-decreasing moving upstream along any flow path.
//   - Closed-boundary nodes always report chi 0 (they can otherwise pick
//     up spurious values when MinDrainageArea is below their cell area).
//   - Each Calculate returns fresh output slices: no accumulation across
//     calls, and stored defaults are never mutated by per-call options.
//   - A threshold excluding every node is degenerate, not an error: the
//     result is all-zero chi and an all-true mask.
//
// Concurrency:
//
//   - Calculate is synchronous and touches only its own fresh outputs,
//     so concurrent calls on one Indexer are safe as long as the grid
//     and network are not mutated underneath them.
//
// Options:
//
//   - WithReferenceConcavity(θ): exponent of the integrand (default 0.5).
//   - WithMinDrainageArea(a):    channel inclusion threshold (default 1e6).
//   - WithReferenceArea(a):      A0; zero (the default) derives the mean
//     core cell area from the grid.
//   - WithExactSpacing():        trapezoidal integration with true link
//     lengths instead of the mean-spacing mode.
//
// Errors (sentinel):
//
//   - ErrNilGrid          if the Indexer is constructed over a nil grid.
//   - ErrNilNetwork       if Calculate receives a nil flow network.
//   - ErrBadReferenceArea if A0 (explicit or derived) is not positive.
//   - core.ErrInvalidNetwork (wrapped) if the network fails shape/order
//     validation.
package chi
