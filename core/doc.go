// Package core defines the shared terrain-graph primitives consumed by
// every algorithm package in lvlterra: per-node boundary statuses, the
// Grid interface exposed by grid collaborators, and the FlowNetwork
// produced by an external steepest-descent flow router.
//
// What:
//
//   - BoundaryStatus classifies each node: core, fixed-value boundary,
//     fixed-gradient boundary, or closed boundary.
//   - Grid is the read-only view of a node/link grid: node count, status,
//     fixed-size neighbor lists, link lengths, and cell areas.
//   - FlowNetwork bundles the precomputed routing state: receiver per node,
//     link-to-receiver per node, drainage area per node, and an upstream
//     node ordering (downstream before upstream).
//   - NoNode and NoLink are the reserved sentinels for absent neighbors
//     and absent links.
//
// Why:
//
//   - Both pitfill and chi consume the same grid abstraction; declaring it
//     once keeps the algorithm packages leaf-like and mockable.
//   - Flow routing itself is out of scope for this library: the network is
//     supplied, validated for shape, and then trusted.
//
// Errors:
//
//   - ErrInvalidGrid: malformed adjacency (dangling neighbor ids).
//   - ErrInvalidNetwork: malformed flow network (shape mismatch, receiver
//     out of range, order not a valid downstream-first linearization,
//     negative drainage area).
package core
