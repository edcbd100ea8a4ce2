// Package core defines the Graph, Builder, Edge and Result types shared by
// every shortest-path engine in lvlpath.
//
// A Graph is assembled once through a Builder (all vertices first, then all
// edges) and frozen by Build. After that it is read-only: the engines in
// bellmanford, floydwarshall and dijkstra only query it, so one *Graph can be
// handed to several engines, even concurrently, without locks.
//
// Vertices:
//
//   - Vertices are plain int identifiers, numbered 1..n by convention.
//   - Reserved (0) is accepted by AddVertex but ignored by the engines; it
//     doubles as the None predecessor marker.
//
// Edge lookup policy (LookupMode):
//
//	– LookupSymmetric (default)
//	    (a,b) and (b,a) address the same edge. Inserting 1→2 also answers
//	    HasEdge(2,1), and a later insert of 2→1 overwrites the cost of 1→2.
//	    This is what the lvlpath input format expects.
//
//	– LookupDirected
//	    Edges are strictly one-way.
//
// Sentinels:
//
//   - Infinity (math.MaxInt64/4) is the unreached distance.
//   - MaxCost (math.MaxInt32) bounds |cost|; with n < 2^30 no real path sum
//     reaches Infinity, and Infinity+Infinity still fits in int64.
//   - None (0) is the "no predecessor" marker.
//
// Errors:
//
//	ErrInvalidVertex   - negative vertex id.
//	ErrInvalidEdge     - edge endpoint is not a vertex (see *InvalidEdgeError).
//	ErrCostOutOfRange  - |cost| > MaxCost.
//	ErrEdgeNotFound    - EdgeCost on a missing edge.
//	ErrBuilderFrozen   - Builder used after Build.
//	ErrNoPath          - Result.PathTo on an unreached vertex.
//
// Example:
//
//	b := core.NewBuilder()
//	_ = b.AddVertexRange(1, 3)
//	_ = b.AddEdge(1, 2, 4)
//	_ = b.AddEdge(2, 3, 2)
//	g := b.Build()
//	g.HasEdge(2, 1) // true under LookupSymmetric
package core
