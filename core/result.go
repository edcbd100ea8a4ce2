// File: result.go
// Role: Single-source result shared by bellmanford and dijkstra.

package core

import "fmt"

// Result holds per-vertex distance and predecessor for one source.
// Both slices are indexed by vertex id and have length Order()+1; index
// Reserved is unused.
//
// Dist[v] is Infinity and Prev[v] is None when v was not reached.
// The source has Dist 0 and Prev None.
type Result struct {
	Source int
	Dist   []int64
	Prev   []int
}

// NewResult allocates a Result for vertices 1..n with every distance at
// Infinity and every predecessor at None, then sets the source distance to 0.
func NewResult(n, source int) *Result {
	r := &Result{
		Source: source,
		Dist:   make([]int64, n+1),
		Prev:   make([]int, n+1),
	}
	for i := range r.Dist {
		r.Dist[i] = Infinity
		r.Prev[i] = None
	}
	if source > Reserved && source <= n {
		r.Dist[source] = 0
	}

	return r
}

// Order returns n, the highest vertex id covered by the result.
func (r *Result) Order() int { return len(r.Dist) - 1 }

// Reachable reports whether v was reached from the source.
func (r *Result) Reachable(v int) bool {
	return v > Reserved && v < len(r.Dist) && r.Dist[v] < Infinity
}

// PathTo reconstructs the vertex sequence Source→…→v by following Prev.
//
// Errors:
//   - ErrNoPath if v is out of range or unreached.
//   - ErrNoPath if the predecessor chain does not end at Source within
//     Order() steps (a corrupted or cyclic chain).
//
// Complexity: O(path length).
func (r *Result) PathTo(v int) ([]int, error) {
	if !r.Reachable(v) {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, v)
	}

	path := []int{v}
	for cur, steps := v, 0; cur != r.Source; steps++ {
		if steps >= r.Order() {
			return nil, fmt.Errorf("%w: predecessor chain from %d does not reach %d", ErrNoPath, v, r.Source)
		}
		cur = r.Prev[cur]
		if cur == None {
			return nil, fmt.Errorf("%w: predecessor chain from %d breaks before %d", ErrNoPath, v, r.Source)
		}
		path = append(path, cur)
	}

	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
