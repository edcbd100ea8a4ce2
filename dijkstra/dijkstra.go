// Package dijkstra implements Dijkstra's greedy shortest-path algorithm on a
// core.Graph with non-negative edge costs.
//
// This is the array-scan variant: instead of a heap, the next frontier vertex
// is picked by a linear scan over the unvisited ids. On the dense graphs this
// module targets that is O(V²) overall and needs no auxiliary structure.
//
// Complexity:
//
//   - Time:  O(V²). Each of at most V steps relaxes V candidates and scans V
//     ids for the next frontier.
//   - Space: O(V) for distance, predecessor and visited arrays.
//
// Notes on implementation choices:
//
//   - Ties in the selection scan go to the lowest id: a later vertex replaces
//     the candidate only when strictly closer.
//   - A vertex still at core.Infinity is never selected, so the run stops as
//     soon as only unreachable vertices remain.
//   - Negative costs are not detected unless WithNegativeWeightCheck is given.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

// Dijkstra computes shortest distances and predecessors from the source
// vertex (Options.Source) to all other vertices of g.
//
// Returns:
//
//   - res: Dist[v] is the minimum distance (core.Infinity if unreachable);
//     Prev[v] is the predecessor on that path (core.None for the source and
//     unreachable vertices). Dist[source] is 0.
//   - err: error if inputs are invalid or the optional check finds a negative
//     edge.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. With WithNegativeWeightCheck, no edge may be negative (ErrNegativeWeight).
func Dijkstra(g *core.Graph, opts ...Option) (*core.Result, error) {
	// 1) Build Options
	cfg := DefaultOptions(core.None)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided
	if cfg.Source == core.None {
		return nil, ErrEmptySource
	}

	// 3) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 4) Validate Source exists in the graph
	if cfg.Source < 0 || !g.HasVertex(cfg.Source) {
		return nil, ErrVertexNotFound
	}

	// 5) Optional pre-scan for negative costs.
	if cfg.CheckNegativeWeight {
		for _, e := range g.Edges() {
			if e.Cost < 0 {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Cost)
			}
		}
	}

	// 6) Initialize runner and run main loop.
	n := g.Order()
	r := &runner{
		g:       g,
		n:       n,
		res:     core.NewResult(n, cfg.Source),
		visited: make([]bool, n+1),
	}
	r.process(cfg.Source)

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph  // read-only input
	n       int          // highest vertex id
	res     *core.Result // distances and predecessors being built
	visited []bool       // finalized vertices, indexed by id
}

// process walks frontiers starting at source until every vertex is visited
// or none of the unvisited ones is reachable.
func (r *runner) process(source int) {
	u := source
	for remaining := r.n; remaining > 0; remaining-- {
		r.relax(u)
		r.visited[u] = true

		if u = r.next(); u == noVertex {
			return // disconnected remainder
		}
	}
}

// relax improves every unvisited neighbor i of u through the edge (u, i).
// From the source this sets Dist[i] to the edge cost, since every candidate is
// still at Infinity.
func (r *runner) relax(u int) {
	dist, prev := r.res.Dist, r.res.Prev
	var (
		i  int
		c  int64
		ok bool
	)
	for i = 1; i <= r.n; i++ {
		if i == u || r.visited[i] {
			continue
		}
		if c, ok = r.g.Cost(u, i); !ok {
			continue
		}
		if dist[u]+c < dist[i] {
			dist[i] = dist[u] + c
			prev[i] = u
		}
	}
}

// next returns the unvisited, reached vertex with the smallest distance, or
// noVertex. The scan is ascending and replaces the candidate only on a strict
// improvement, so the lowest id wins ties.
func (r *runner) next() int {
	dist := r.res.Dist
	best := noVertex
	for j := 1; j <= r.n; j++ {
		if r.visited[j] || dist[j] == core.Infinity {
			continue
		}
		if best == noVertex || dist[j] < dist[best] {
			best = j
		}
	}

	return best
}
