// File: methods.go
// Role: Read-only queries on a frozen Graph.
// Determinism:
//   - Vertices() ascending; Edges() sorted by (From, To).

package core

import (
	"fmt"
	"sort"
)

// Lookup reports the edge lookup policy the graph was built with.
func (g *Graph) Lookup() LookupMode { return g.lookup }

// Order returns the highest vertex id, which is n for a graph numbered 1..n.
// Engines size their per-vertex arrays as Order()+1.
func (g *Graph) Order() int { return g.order }

// HasVertex reports whether id is in the vertex set.
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns the vertex ids in ascending order, Reserved excluded.
// The slice is a copy.
func (g *Graph) Vertices() []int {
	out := make([]int, len(g.sorted))
	copy(out, g.sorted)

	return out
}

// HasEdge reports whether an edge is stored for (source, destination) under
// the graph's lookup policy.
//
// Complexity: O(1).
func (g *Graph) HasEdge(source, destination int) bool {
	_, ok := g.edges[g.key(source, destination)]

	return ok
}

// EdgeCost returns the cost stored for (source, destination).
// It fails with ErrEdgeNotFound when HasEdge is false.
func (g *Graph) EdgeCost(source, destination int) (int64, error) {
	c, ok := g.edges[g.key(source, destination)]
	if !ok {
		return 0, fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, source, destination)
	}

	return c, nil
}

// Cost is EdgeCost without the error allocation, for the engines' hot loops.
// ok is false when no edge is stored.
func (g *Graph) Cost(source, destination int) (c int64, ok bool) {
	c, ok = g.edges[g.key(source, destination)]

	return c, ok
}

// EdgeCount returns the number of stored edge keys. Under LookupSymmetric an
// insert of 1→2 followed by 2→1 counts once.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns every stored edge sorted by (From, To). Under LookupSymmetric
// each edge is reported once with From ≤ To.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for k, c := range g.edges {
		out = append(out, Edge{From: k.from, To: k.to, Cost: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}
