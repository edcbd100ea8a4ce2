// Package floydwarshall computes all-pairs shortest paths over a core.Graph
// with the Floyd-Warshall dynamic program.
//
// Contract:
//   - The result is an n×n Matrix, n = Graph.Order(), zero-based: entry (i, j)
//     is the distance from vertex i+1 to vertex j+1.
//   - Diagonal entries start at 0; pairs without an edge start at core.Infinity.
//   - Loop order is fixed (k → i → j) with strict improvement, so results are
//     deterministic.
//   - Negative cycles are not detected unless WithNegativeCycleCheck is given;
//     without it a negative cycle shows up as negative diagonal entries.
//
// Complexity: Time O(n³), extra space O(1) beyond the n² result.
package floydwarshall

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

// Sentinel errors returned by this package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("floydwarshall: graph is nil")

	// ErrNilMatrix indicates that a nil *Matrix was passed to Closure.
	ErrNilMatrix = errors.New("floydwarshall: matrix is nil")

	// ErrOutOfRange indicates a matrix index or order outside the valid range.
	ErrOutOfRange = errors.New("floydwarshall: index out of range")

	// ErrNegativeCycle indicates a negative diagonal entry after the closure.
	// Returned only with WithNegativeCycleCheck.
	ErrNegativeCycle = errors.New("floydwarshall: negative weight cycle")
)

// Options configures FloydWarshall.
type Options struct {
	// CheckNegativeCycles rejects results whose diagonal went negative.
	CheckNegativeCycles bool
}

// Option represents a functional option for configuring FloydWarshall.
type Option func(*Options)

// WithNegativeCycleCheck makes FloydWarshall fail with ErrNegativeCycle
// instead of returning a matrix with negative diagonal entries.
func WithNegativeCycleCheck() Option {
	return func(o *Options) { o.CheckNegativeCycles = true }
}

// FloydWarshall builds the initial distance matrix from g and closes it
// in place.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrNegativeCycle (wrapped with the first offending vertex) if the check
//     is enabled and any vertex reaches itself at negative cost.
func FloydWarshall(g *core.Graph, opts ...Option) (*Matrix, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}

	// 1) Initialize: diag = 0, edge cost where present, Infinity otherwise.
	n := g.Order()
	m, err := NewMatrix(n)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		c    int64
		ok   bool
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if c, ok = g.Cost(i+1, j+1); ok {
				m.data[i*n+j] = c
			}
		}
	}

	// 2) Closure.
	closure(m)

	// 3) Optional diagonal scan.
	if cfg.CheckNegativeCycles {
		for i = 0; i < n; i++ {
			if m.data[i*n+i] < 0 {
				return nil, fmt.Errorf("%w: vertex %d reaches itself at cost %d", ErrNegativeCycle, i+1, m.data[i*n+i])
			}
		}
	}

	return m, nil
}

// Closure runs the Floyd-Warshall relaxation in place on a caller-assembled
// matrix. The diagonal should be 0 and missing edges core.Infinity.
func Closure(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	closure(m)

	return nil
}

// closure is the k → i → j triple loop over the flat buffer.
func closure(m *Matrix) {
	n := m.n
	data := m.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj       int64
	)
	for k = 0; k < n; k++ { // intermediate vertex
		baseK = k * n
		for i = 0; i < n; i++ { // source
			ik = data[i*n+k]
			if ik == core.Infinity {
				continue // i cannot reach k
			}
			baseI = i * n
			for j = 0; j < n; j++ { // destination
				kj = data[baseK+j]
				if kj == core.Infinity {
					continue
				}
				if ik+kj < data[baseI+j] {
					data[baseI+j] = ik + kj
				}
			}
		}
	}
}
