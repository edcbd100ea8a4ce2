package bellmanford

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by BellmanFord.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrVertexNotFound indicates that the source is not a vertex in 1..n.
	ErrVertexNotFound = errors.New("bellmanford: source vertex not found in graph")

	// ErrNegativeCycle indicates a negative-weight cycle reachable from the source.
	ErrNegativeCycle = errors.New("bellmanford: negative weight cycle")
)

// NegativeCycleError is returned when the detection pass can still relax an
// edge. Via→Vertex is the first such edge in visitation order; both lie on or
// downstream of a negative cycle.
type NegativeCycleError struct {
	Source int
	Via    int
	Vertex int
}

// Error implements error.
func (e *NegativeCycleError) Error() string {
	return fmt.Sprintf("bellmanford: negative weight cycle reachable from %d (edge %d→%d still relaxes)",
		e.Source, e.Via, e.Vertex)
}

// Unwrap lets errors.Is match ErrNegativeCycle.
func (e *NegativeCycleError) Unwrap() error { return ErrNegativeCycle }
