// File: builder.go
// Role: Two-phase construction of a Graph (vertices, then edges), then Build.
// Determinism:
//   - Edge overwrite is last-insert-wins; insertion order is otherwise irrelevant.

package core

import (
	"fmt"
	"sort"
)

// Builder accumulates vertices and edges for a single Graph.
// A Builder is not safe for concurrent use.
type Builder struct {
	lookup LookupMode
	g      *Graph
}

// NewBuilder returns an empty Builder. Options are applied in order.
//
// Complexity: O(1).
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{lookup: LookupSymmetric}
	for _, opt := range opts {
		opt(b)
	}
	b.g = &Graph{
		lookup:   b.lookup,
		vertices: make(map[int]struct{}),
		edges:    make(map[edgeKey]int64),
	}

	return b
}

// AddVertex inserts id into the vertex set. Adding an existing id is a no-op.
//
// Errors:
//   - ErrInvalidVertex if id < 0.
//   - ErrBuilderFrozen after Build.
func (b *Builder) AddVertex(id int) error {
	if b.g == nil {
		return ErrBuilderFrozen
	}
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidVertex, id)
	}
	b.g.vertices[id] = struct{}{}
	if id > b.g.order {
		b.g.order = id
	}

	return nil
}

// AddVertexRange adds every id in lo..hi inclusive.
func (b *Builder) AddVertexRange(lo, hi int) error {
	for id := lo; id <= hi; id++ {
		if err := b.AddVertex(id); err != nil {
			return err
		}
	}

	return nil
}

// AddEdge records source→destination with the given cost, replacing any cost
// previously stored under the same key. Under LookupSymmetric, 2→1 and 1→2
// share a key.
//
// Errors:
//   - *InvalidEdgeError (errors.Is ErrInvalidEdge) if an endpoint is unknown.
//   - ErrCostOutOfRange if |cost| > MaxCost.
//   - ErrBuilderFrozen after Build.
func (b *Builder) AddEdge(source, destination int, cost int64) error {
	if b.g == nil {
		return ErrBuilderFrozen
	}
	if _, ok := b.g.vertices[source]; !ok {
		return &InvalidEdgeError{Source: source, Destination: destination, Missing: source}
	}
	if _, ok := b.g.vertices[destination]; !ok {
		return &InvalidEdgeError{Source: source, Destination: destination, Missing: destination}
	}
	if cost > MaxCost || cost < -MaxCost {
		return fmt.Errorf("%w: edge %d→%d cost=%d", ErrCostOutOfRange, source, destination, cost)
	}
	b.g.edges[b.g.key(source, destination)] = cost

	return nil
}

// Build freezes the accumulated graph and returns it. The Builder rejects all
// further calls; a second Build returns nil.
//
// Complexity: O(V log V) to sort the vertex list.
func (b *Builder) Build() *Graph {
	g := b.g
	if g == nil {
		return nil
	}
	b.g = nil

	g.sorted = make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		if id == Reserved {
			continue
		}
		g.sorted = append(g.sorted, id)
	}
	sort.Ints(g.sorted)

	return g
}
