// File: types.go
// Role: Sentinels, errors, Edge, LookupMode and the frozen Graph type.

package core

import (
	"errors"
	"fmt"
	"math"
)

const (
	// Reserved is the vertex id the input format allocates but never uses.
	Reserved = 0

	// None marks "no predecessor" in a Result. It shares the value of Reserved.
	None = Reserved

	// Infinity is the distance of an unreached vertex.
	Infinity int64 = math.MaxInt64 / 4

	// MaxCost bounds the absolute value of any edge cost.
	MaxCost int64 = math.MaxInt32
)

// Sentinel errors for graph construction and queries.
var (
	// ErrInvalidVertex indicates a negative vertex id.
	ErrInvalidVertex = errors.New("core: invalid vertex id")

	// ErrInvalidEdge indicates an edge endpoint that is not in the vertex set.
	ErrInvalidEdge = errors.New("core: edge references unknown vertex")

	// ErrCostOutOfRange indicates an edge cost whose magnitude exceeds MaxCost.
	ErrCostOutOfRange = errors.New("core: edge cost out of range")

	// ErrEdgeNotFound indicates a query for an edge that does not exist.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBuilderFrozen indicates a Builder mutation after Build.
	ErrBuilderFrozen = errors.New("core: builder already built")

	// ErrNoPath indicates that a vertex is not reachable from the result source.
	ErrNoPath = errors.New("core: no path to vertex")
)

// InvalidEdgeError reports an AddEdge call whose endpoint is missing from the
// vertex set. Missing is the first endpoint found absent.
type InvalidEdgeError struct {
	Source      int
	Destination int
	Missing     int
}

// Error implements error.
func (e *InvalidEdgeError) Error() string {
	return fmt.Sprintf("core: edge %d→%d references unknown vertex %d", e.Source, e.Destination, e.Missing)
}

// Unwrap lets errors.Is match ErrInvalidEdge.
func (e *InvalidEdgeError) Unwrap() error { return ErrInvalidEdge }

// Edge is a weighted connection From→To.
type Edge struct {
	From int
	To   int
	Cost int64
}

// LookupMode selects how (source, destination) pairs address stored edges.
type LookupMode int

const (
	// LookupSymmetric treats (a,b) and (b,a) as the same edge.
	LookupSymmetric LookupMode = iota

	// LookupDirected treats every edge as one-way.
	LookupDirected
)

// String returns the config spelling of the mode.
func (m LookupMode) String() string {
	switch m {
	case LookupSymmetric:
		return "symmetric"
	case LookupDirected:
		return "directed"
	default:
		return fmt.Sprintf("LookupMode(%d)", int(m))
	}
}

// ParseLookupMode is the inverse of LookupMode.String.
func ParseLookupMode(s string) (LookupMode, error) {
	switch s {
	case "symmetric", "undirected":
		return LookupSymmetric, nil
	case "directed":
		return LookupDirected, nil
	default:
		return 0, fmt.Errorf("core: unknown lookup mode %q", s)
	}
}

// Option configures a Builder before any vertex is added.
type Option func(*Builder)

// WithLookup sets the edge lookup policy of the graph being built.
func WithLookup(mode LookupMode) Option {
	return func(b *Builder) { b.lookup = mode }
}

// edgeKey addresses one entry of the edge map.
type edgeKey struct {
	from, to int
}

// Graph is a frozen vertex set plus edge map. The zero value is an empty
// symmetric graph; real graphs come from Builder.Build.
//
// All fields are written only by the Builder before Build returns, so every
// method is safe for concurrent use.
type Graph struct {
	lookup   LookupMode
	vertices map[int]struct{}
	sorted   []int // ascending, Reserved excluded
	order    int   // highest vertex id
	edges    map[edgeKey]int64
}

// key normalizes (s,d) under the graph's lookup policy.
func (g *Graph) key(s, d int) edgeKey {
	if g.lookup == LookupSymmetric && s > d {
		s, d = d, s
	}

	return edgeKey{from: s, to: d}
}
