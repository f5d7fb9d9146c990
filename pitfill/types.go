// Package pitfill defines configuration options and sentinel errors for
// the priority-flood depression filler.
package pitfill

import "errors"

// Sentinel errors returned by Fill.
var (
	// ErrNilGrid indicates a nil core.Grid was passed to Fill.
	ErrNilGrid = errors.New("pitfill: grid is nil")

	// ErrLengthMismatch indicates the elevation slice length differs from
	// the grid's node count.
	ErrLengthMismatch = errors.New("pitfill: elevation length does not match grid node count")
)

// Options configures the behavior of the filler.
//
// TraverseClosed – whether the flood may pass through (and raise)
// closed-boundary nodes reached from the interior. Defaults to true:
// closed nodes are never seeded but remain ordinary traversal targets.
// Set false (WithClosedBlocked) to treat them as impermeable barriers.
type Options struct {
	TraverseClosed bool
}

// Option represents a functional option for configuring Fill.
type Option func(*Options)

// WithClosedBlocked makes closed-boundary nodes impermeable: they are
// pre-marked finalized so the flood never crosses or raises them.
// Enclosed interiors sealed off by closed nodes then stay unmodified.
func WithClosedBlocked() Option {
	return func(o *Options) {
		o.TraverseClosed = false
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults: closed boundaries are traversable (TraverseClosed = true).
func DefaultOptions() Options {
	return Options{TraverseClosed: true}
}
