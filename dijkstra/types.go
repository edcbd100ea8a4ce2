// File: types.go
// Role: Options and sentinel errors for the array-scan Dijkstra engine.
//
// Options:
//
//	– Source:                  starting vertex id (required, must be a vertex in 1..n).
//	– WithNegativeWeightCheck: pre-scan edges and reject negative costs.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if no source was given.
//	– ErrNilGraph        if the graph pointer is nil.
//	– ErrVertexNotFound  if the source is not a vertex of the graph.
//	– ErrNegativeWeight  if the pre-scan is enabled and finds a negative cost.

package dijkstra

import (
	"errors"

	"github.com/katalvlaran/lvlpath/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source vertex was provided.
	ErrEmptySource = errors.New("dijkstra: source vertex is not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge cost was found by the
	// optional pre-scan.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source              – starting vertex id; core.None means unset.
// CheckNegativeWeight – if true, fail fast on any negative edge cost. Off by
//
//	default: a negative edge then silently yields wrong distances, as with
//	the classical algorithm.
type Options struct {
	Source              int
	CheckNegativeWeight bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex. Must be given.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithNegativeWeightCheck enables the O(E) negative-cost pre-scan.
func WithNegativeWeightCheck() Option {
	return func(o *Options) {
		o.CheckNegativeWeight = true
	}
}

// DefaultOptions returns Options for the given source with every check off.
func DefaultOptions(source int) Options {
	return Options{
		Source:              source,
		CheckNegativeWeight: false,
	}
}

// noVertex is the "no next frontier" marker of the selection scan.
const noVertex = core.None
