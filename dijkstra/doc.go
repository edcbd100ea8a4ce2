// Package dijkstra provides the array-scan form of Dijkstra's shortest-path
// algorithm for graphs built with core.Builder.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from one source vertex to every
//     reachable vertex, assuming non-negative edge costs.
//   - The frontier is chosen by a linear scan (lowest id wins ties), which
//     gives O(V²) time with no heap.
//   - The result has the same shape as bellmanford's: a *core.Result with
//     Dist[source]=0 and Prev[source]=core.None.
//
// API reference:
//
//	func Dijkstra(
//	    g *core.Graph,
//	    opts ...Option,
//	) (*core.Result, error)
//
//	  - g:    frozen graph from core.Builder.Build.
//	  - opts: zero or more functional options:
//	      • Source(int):               required, the starting vertex.
//	      • WithNegativeWeightCheck(): fail with ErrNegativeWeight on any negative cost.
//
// Negative costs:
//
//   - Without the check, a negative edge produces wrong distances rather than
//     an error. This is the classical algorithm's limitation; use bellmanford
//     when costs may be negative.
//
// Thread safety:
//
//   - A *core.Graph is immutable, so concurrent Dijkstra calls on the same
//     graph are safe.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source(1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Distance to 3: %d, parent: %d\n", res.Dist[3], res.Prev[3])
package dijkstra
