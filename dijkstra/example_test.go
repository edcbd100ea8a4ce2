// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/dijkstra"
)

// ExampleDijkstra_triangle computes shortest paths on the sample triangle.
func ExampleDijkstra_triangle() {
	// 1) Vertices 0..3 (0 is reserved), symmetric lookup by default.
	b := core.NewBuilder()
	_ = b.AddVertexRange(0, 3)
	// 2) Edges 1—2(4), 2—3(2), 1—3(7).
	_ = b.AddEdge(1, 2, 4)
	_ = b.AddEdge(2, 3, 2)
	_ = b.AddEdge(1, 3, 7)

	// 3) Run from vertex 1.
	res, err := dijkstra.Dijkstra(b.Build(), dijkstra.Source(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) Vertex 3 is reached through 2 for 4+2=6, cheaper than the direct 7.
	fmt.Printf("dist[3]=%d, prev[3]=%d\n", res.Dist[3], res.Prev[3])
	// Output: dist[3]=6, prev[3]=2
}

// ExampleDijkstra_directed shows strict one-way edges.
func ExampleDijkstra_directed() {
	b := core.NewBuilder(core.WithLookup(core.LookupDirected))
	_ = b.AddVertexRange(1, 4)
	_ = b.AddEdge(1, 2, 2)
	_ = b.AddEdge(1, 3, 1)
	_ = b.AddEdge(3, 2, 1)
	_ = b.AddEdge(2, 4, 3)
	_ = b.AddEdge(3, 4, 5)

	res, err := dijkstra.Dijkstra(b.Build(), dijkstra.Source(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(4)
	fmt.Println(res.Dist[4], path)
	// Output: 5 [1 2 4]
}

// ExampleDijkstra_cityRoute finds the fastest drive between two of six
// intersections. The C-D road is closed, modelled as the largest allowed cost.
//
//	      [A]
//	     /   \
//	  4 /     \ 2
//	   /       \
//	 [B]---1---[C]    <-- C-D is closed
//	  | \        \10
//	5 |  \5      [E]
//	  |   \        \
//	 [D]   --------[F]
//	     6         3
func ExampleDijkstra_cityRoute() {
	names := []string{"", "A", "B", "C", "D", "E", "F"}
	roads := []struct {
		u, v    int
		minutes int64
	}{
		{1, 2, 4},
		{1, 3, 2},
		{2, 3, 1},
		{2, 4, 5},
		{3, 4, core.MaxCost},
		{3, 5, 10},
		{4, 6, 6},
		{5, 6, 3},
	}

	b := core.NewBuilder()
	_ = b.AddVertexRange(1, 6)
	for _, r := range roads {
		_ = b.AddEdge(r.u, r.v, r.minutes)
	}

	res, err := dijkstra.Dijkstra(b.Build(), dijkstra.Source(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, _ := res.PathTo(6)
	fmt.Println("Fastest route from A to F:")
	for i := 0; i < len(path)-1; i++ {
		u, v := path[i], path[i+1]
		fmt.Printf("  %s → %s : %d min\n", names[u], names[v], res.Dist[v]-res.Dist[u])
	}
	fmt.Printf("Total travel time: %d minutes\n", res.Dist[6])
	// Output:
	// Fastest route from A to F:
	//   A → C : 2 min
	//   C → B : 1 min
	//   B → D : 5 min
	//   D → F : 6 min
	// Total travel time: 14 minutes
}
