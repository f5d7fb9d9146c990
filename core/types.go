// Package core declares BoundaryStatus, the Grid interface, FlowNetwork,
// the NoNode/NoLink sentinels, and the package's sentinel errors.
package core

import "errors"

// Sentinel errors for core terrain-graph operations.
var (
	// ErrInvalidGrid indicates malformed grid adjacency, such as a neighbor
	// id outside [0, NumNodes) that is not the NoNode sentinel.
	ErrInvalidGrid = errors.New("core: invalid grid adjacency")

	// ErrInvalidNetwork indicates a malformed flow network: slice lengths
	// disagreeing with the node count, a receiver or order entry out of
	// range, an ordering that lists a node before its receiver, or a
	// negative drainage area.
	ErrInvalidNetwork = errors.New("core: invalid flow network")
)

// Reserved sentinel ids for absent graph elements.
const (
	// NoNode marks an absent neighbor slot in a fixed-size neighbor list
	// (e.g. the missing west neighbor of a node on the west edge).
	NoNode = -1

	// NoLink marks a node with no link to its receiver, typically a
	// network outlet whose receiver is itself.
	NoLink = -1
)

// BoundaryStatus classifies a node's role at the domain boundary.
type BoundaryStatus uint8

const (
	// CoreNode is an interior node participating fully in computation.
	CoreNode BoundaryStatus = iota

	// FixedValueBoundary is an open boundary holding a prescribed value;
	// flow may exit the domain through it.
	FixedValueBoundary

	// FixedGradientBoundary is an open boundary holding a prescribed
	// gradient; flow may exit the domain through it.
	FixedGradientBoundary

	// ClosedBoundary is excluded from computation and impermeable to flow.
	ClosedBoundary
)

// IsOpenBoundary reports whether the status permits flow to exit the
// domain (fixed-value or fixed-gradient).
func (s BoundaryStatus) IsOpenBoundary() bool {
	return s == FixedValueBoundary || s == FixedGradientBoundary
}

// IsClosed reports whether the status excludes the node from computation.
func (s BoundaryStatus) IsClosed() bool {
	return s == ClosedBoundary
}

// String returns a human-readable status name, mainly for test output.
func (s BoundaryStatus) String() string {
	switch s {
	case CoreNode:
		return "core"
	case FixedValueBoundary:
		return "fixed-value"
	case FixedGradientBoundary:
		return "fixed-gradient"
	case ClosedBoundary:
		return "closed"
	default:
		return "unknown"
	}
}

// Grid is the read-only view of a node/link terrain grid that the
// algorithm packages consume. Implementations must return stable values
// for the lifetime of a computation; lvlterra never mutates a Grid.
//
// Node ids are dense integers in [0, NumNodes). Link ids are opaque
// integers meaningful only to LinkLength; NoLink is never passed to it.
type Grid interface {
	// NumNodes returns the total node count, including boundary nodes.
	NumNodes() int

	// Status returns the boundary classification of the given node.
	Status(node int) BoundaryStatus

	// Neighbors returns the fixed-size neighbor list of the given node,
	// cardinal neighbors first, then diagonals where the grid has them.
	// Absent positions hold NoNode. The returned slice must not be
	// modified by the caller.
	Neighbors(node int) []int

	// LinkLength returns the length of the given link. Lengths are
	// strictly positive for any valid link id.
	LinkLength(link int) float64

	// CellArea returns the surface area associated with the given node.
	CellArea(node int) float64
}

// FlowNetwork is the output of an external steepest-descent flow router,
// supplied as input to the chi indexer. All four slices are indexed by
// node id and must share the grid's node count.
//
// The receiver mapping is total: an outlet (or unresolved pit) is its own
// receiver and carries LinkToReceiver == NoLink. UpstreamOrder is a
// permutation of all node ids in which every node appears strictly after
// its receiver, i.e. downstream before upstream.
type FlowNetwork struct {
	// Receiver holds, per node, the steepest-descent neighbor the node
	// drains into; a node may be its own receiver at outlets.
	Receiver []int

	// LinkToReceiver holds, per node, the id of the link carrying flow to
	// the receiver, or NoLink where no such link exists.
	LinkToReceiver []int

	// DrainageArea holds, per node, the cumulative upstream contributing
	// area. It is non-decreasing moving downstream.
	DrainageArea []float64

	// UpstreamOrder is a permutation of node ids listing every node after
	// all nodes downstream of it.
	UpstreamOrder []int
}
