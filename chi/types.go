// Package chi defines configuration options and sentinel errors for the
// channel steepness indexer.
package chi

import "errors"

// Sentinel errors returned by New and Calculate.
var (
	// ErrNilGrid indicates a nil core.Grid was passed to New.
	ErrNilGrid = errors.New("chi: grid is nil")

	// ErrNilNetwork indicates a nil flow network was passed to Calculate.
	ErrNilNetwork = errors.New("chi: flow network is nil")

	// ErrBadReferenceArea indicates the reference area A0 (explicitly
	// configured or derived from the grid's core cells) is not positive.
	ErrBadReferenceArea = errors.New("chi: reference area must be positive")
)

// DefaultMinDrainageArea is the drainage-area threshold below which a
// node is considered hillslope rather than channel, in squared map units.
const DefaultMinDrainageArea = 1e6

// DefaultReferenceConcavity is the reference concavity θ used when none
// is configured.
const DefaultReferenceConcavity = 0.5

// Options configures a chi calculation.
//
// ReferenceConcavity – the exponent θ in the integrand (A0/A)^θ.
// MinDrainageArea    – nodes with drainage area below this threshold are
//
//	outside the channel network (chi 0, mask true).
//
// ReferenceArea      – the normalizing prefactor A0. Zero means "derive
//
//	from the grid": the mean cell area over core nodes.
//
// ExactSpacing       – integrate trapezoidally with true link lengths
//
//	instead of assuming the mean channel node spacing everywhere.
type Options struct {
	ReferenceConcavity float64
	MinDrainageArea    float64
	ReferenceArea      float64
	ExactSpacing       bool
}

// Option represents a functional option for configuring the Indexer or
// a single Calculate call.
type Option func(*Options)

// WithReferenceConcavity sets the reference concavity θ.
func WithReferenceConcavity(theta float64) Option {
	return func(o *Options) {
		o.ReferenceConcavity = theta
	}
}

// WithMinDrainageArea sets the channel inclusion threshold. A threshold
// admitting zero nodes is valid and yields an all-default result.
func WithMinDrainageArea(area float64) Option {
	return func(o *Options) {
		o.MinDrainageArea = area
	}
}

// WithReferenceArea sets the normalizing prefactor A0 explicitly. Pass
// zero (or omit) to derive the mean core cell area from the grid; a
// non-positive resolved value fails Calculate with ErrBadReferenceArea.
func WithReferenceArea(area float64) Option {
	return func(o *Options) {
		o.ReferenceArea = area
	}
}

// WithExactSpacing selects trapezoidal integration using each link's
// true length. The default mean-spacing mode is usually preferred: exact
// spacing can introduce a quantization effect on raster networks where
// link lengths alternate between spacing and spacing·√2.
func WithExactSpacing() Option {
	return func(o *Options) {
		o.ExactSpacing = true
	}
}

// DefaultOptions returns an Options struct initialized with the
// literature defaults: θ = 0.5, MinDrainageArea = 1e6, derived A0,
// mean-spacing integration.
func DefaultOptions() Options {
	return Options{
		ReferenceConcavity: DefaultReferenceConcavity,
		MinDrainageArea:    DefaultMinDrainageArea,
		ReferenceArea:      0,
		ExactSpacing:       false,
	}
}

// Result holds the two parallel per-node outputs of Calculate. Both
// slices are freshly allocated on every call.
type Result struct {
	// Chi is the steepness index per node; 0 outside the channel network
	// and at closed-boundary nodes.
	Chi []float64

	// OutsideChannel is true where the node is not part of the analyzed
	// channel network (below the drainage threshold), false on channel
	// nodes.
	OutsideChannel []bool
}
