// Package bellmanford implements the Bellman-Ford single-source shortest-path
// algorithm over a core.Graph, including negative-cycle detection.
//
// The scan is dense: every pass probes every (u, j) pair through
// Graph.Cost, which matches the bounded, in-memory graphs this module targets.
//
// Complexity:
//
//   - Time:  O(V³) edge probes (V−1 passes × V sources × V destinations), plus
//     one detection pass of O(V²).
//   - Space: O(V) for the distance and predecessor arrays.
package bellmanford

import "github.com/katalvlaran/lvlpath/core"

// BellmanFord computes shortest distances and predecessors from source.
//
// Returns:
//
//   - res: Dist[source]=0, Prev[source]=core.None; unreached vertices keep
//     core.Infinity and core.None.
//   - err: ErrNilGraph, ErrVertexNotFound, or *NegativeCycleError. On a
//     negative cycle res is nil; no partial result is returned.
//
// Visitation order is fixed: the source first, then every other id in 1..n
// ascending. Destinations are probed in ascending order too, so ties resolve
// the same way on every run.
func BellmanFord(g *core.Graph, source int) (*core.Result, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if source == core.Reserved || !g.HasVertex(source) {
		return nil, ErrVertexNotFound
	}

	// 2) Initialize distances and visitation order.
	n := g.Order()
	r := &runner{
		g:     g,
		n:     n,
		res:   core.NewResult(n, source),
		order: visitOrder(n, source),
	}

	// 3) n−1 relaxation passes.
	for pass := 0; pass < n-1; pass++ {
		r.pass()
	}

	// 4) One more pass in the same order; any improvement means a cycle.
	if u, j, ok := r.detect(); ok {
		return nil, &NegativeCycleError{Source: source, Via: u, Vertex: j}
	}

	return r.res, nil
}

// runner holds the mutable state for a single BellmanFord execution.
type runner struct {
	g     *core.Graph
	n     int
	res   *core.Result
	order []int // source first, then 1..n ascending without source
}

// visitOrder returns [source, 1, 2, …, n] with source removed from its
// ascending position.
func visitOrder(n, source int) []int {
	order := make([]int, 0, n)
	order = append(order, source)
	for v := 1; v <= n; v++ {
		if v != source {
			order = append(order, v)
		}
	}

	return order
}

// pass relaxes every stored (u, j) once, in visitation order.
func (r *runner) pass() {
	dist, prev := r.res.Dist, r.res.Prev
	var (
		u, j int
		c    int64
		ok   bool
	)
	for _, u = range r.order {
		if dist[u] == core.Infinity {
			continue // unreached: nothing to propagate
		}
		for j = 1; j <= r.n; j++ {
			if c, ok = r.g.Cost(u, j); !ok {
				continue
			}
			if dist[u]+c < dist[j] {
				dist[j] = dist[u] + c
				prev[j] = u
			}
		}
	}
}

// detect reports the first (u, j) that would still relax.
func (r *runner) detect() (int, int, bool) {
	dist := r.res.Dist
	for _, u := range r.order {
		if dist[u] == core.Infinity {
			continue
		}
		for j := 1; j <= r.n; j++ {
			c, ok := r.g.Cost(u, j)
			if ok && dist[u]+c < dist[j] {
				return u, j, true
			}
		}
	}

	return 0, 0, false
}
