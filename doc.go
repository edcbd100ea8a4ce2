// Package lvlpath computes shortest paths over a small weighted graph with
// three classical engines that share one graph representation.
//
// 🚀 What is lvlpath?
//
//	A compact, zero-surprise shortest-path toolkit:
//		• Core: integer-id vertices, cost-weighted edges, symmetric or directed lookup
//		• Bellman-Ford: single source, negative weights, negative cycle detection
//		• Floyd-Warshall: all pairs, dense in-place matrix
//		• Dijkstra: single source, array-scan selection, non-negative weights
//		• pathio: the plain-text problem and result formats
//
// Under the hood, everything is organized into subpackages:
//
//	core/          Graph, Builder, Result, Infinity/None sentinels
//	bellmanford/   BellmanFord + NegativeCycleError
//	floydwarshall/ FloydWarshall, Closure, Matrix
//	dijkstra/      Dijkstra with functional options
//	pathio/        ReadProblem, WriteSingleSource, WriteAllPairs
//	cmd/lvlpath/   the command that runs every engine over one input file
//
// Quick ASCII example (symmetric lookup, source 1):
//
//	    1───4───2
//	     ╲      │
//	      7     2
//	       ╲    │
//	        ────3
//
//	Bellman-Ford / Dijkstra: dist = [0 4 6], prev = [0 1 2]
//	Floyd-Warshall:          [[0 4 6] [4 0 2] [6 2 0]]
//
// Vertex 0 is reserved and doubles as the "no predecessor" marker, so real
// vertices are numbered from 1. Unreachable distances stay at core.Infinity.
//
//	go get github.com/katalvlaran/lvlpath
package lvlpath
