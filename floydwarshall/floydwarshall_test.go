package floydwarshall_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/bellmanford"
	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/floydwarshall"
)

const inf = core.Infinity

// build creates vertices 0..n and the given (src, dst, cost) edges.
func build(t *testing.T, mode core.LookupMode, n int, edges [][3]int64) *core.Graph {
	t.Helper()

	b := core.NewBuilder(core.WithLookup(mode))
	require.NoError(t, b.AddVertexRange(0, n))
	for _, e := range edges {
		require.NoError(t, b.AddEdge(int(e[0]), int(e[1]), e[2]))
	}

	return b.Build()
}

// ---------- 1. Errors ----------

func TestFloydWarshall_Errors(t *testing.T) {
	_, err := floydwarshall.FloydWarshall(nil)
	require.ErrorIs(t, err, floydwarshall.ErrNilGraph)

	require.ErrorIs(t, floydwarshall.Closure(nil), floydwarshall.ErrNilMatrix)
}

// ---------- 2. Known scenarios ----------

func TestFloydWarshall_TriangleSymmetric(t *testing.T) {
	g := build(t, core.LookupSymmetric, 3, [][3]int64{{1, 2, 4}, {2, 3, 2}, {1, 3, 7}})

	m, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{
		{0, 4, 6},
		{4, 0, 2},
		{6, 2, 0},
	}, m.Rows())
}

func TestFloydWarshall_TriangleDirected(t *testing.T) {
	g := build(t, core.LookupDirected, 3, [][3]int64{{1, 2, 4}, {2, 3, 2}, {1, 3, 7}})

	m, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{
		{0, 4, 6},
		{inf, 0, 2},
		{inf, inf, 0},
	}, m.Rows())
}

func TestFloydWarshall_DisconnectedVertex(t *testing.T) {
	g := build(t, core.LookupSymmetric, 4, [][3]int64{{1, 2, 4}, {2, 3, 2}, {1, 3, 7}})

	m, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		v, _ := m.At(i, 3)
		assert.Equal(t, inf, v, "row %d col 4", i+1)
		v, _ = m.At(3, i)
		assert.Equal(t, inf, v, "row 4 col %d", i+1)
	}
	v, _ := m.At(3, 3)
	assert.Equal(t, int64(0), v)
}

// Classic CLRS example (5 vertices, directed, negative edges, no negative cycle).
func TestFloydWarshall_CLRS(t *testing.T) {
	g := build(t, core.LookupDirected, 5, [][3]int64{
		{1, 2, 3}, {1, 3, 8}, {1, 5, -4},
		{2, 4, 1}, {2, 5, 7},
		{3, 2, 4},
		{4, 1, 2}, {4, 3, -5},
		{5, 4, 6},
	})

	m, err := floydwarshall.FloydWarshall(g, floydwarshall.WithNegativeCycleCheck())
	require.NoError(t, err)
	assert.Equal(t, [][]int64{
		{0, 1, -3, 2, -4},
		{3, 0, -4, 1, -1},
		{7, 4, 0, 5, 3},
		{2, -1, -5, 0, -2},
		{8, 5, 1, 6, 0},
	}, m.Rows())
}

// ---------- 3. Negative cycles ----------

func TestFloydWarshall_NegativeCycleUnchecked(t *testing.T) {
	g := build(t, core.LookupDirected, 3, [][3]int64{{1, 2, 1}, {2, 3, -3}, {3, 2, 1}})

	m, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err, "no check by default")

	d, _ := m.At(1, 1)
	assert.Less(t, d, int64(0), "the cycle shows up on the diagonal")
}

func TestFloydWarshall_NegativeCycleChecked(t *testing.T) {
	g := build(t, core.LookupDirected, 3, [][3]int64{{1, 2, 1}, {2, 3, -3}, {3, 2, 1}})

	_, err := floydwarshall.FloydWarshall(g, floydwarshall.WithNegativeCycleCheck())
	require.ErrorIs(t, err, floydwarshall.ErrNegativeCycle)
}

// ---------- 4. Properties ----------

func TestFloydWarshall_DiagonalZeroAndMatchesBellmanFord(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for trial := 0; trial < 20; trial++ {
		n := 1 + r.Intn(10)
		mode := core.LookupDirected
		if trial%2 == 0 {
			mode = core.LookupSymmetric
		}
		var edges [][3]int64
		for u := 1; u <= n; u++ {
			for v := 1; v <= n; v++ {
				if u != v && r.Float64() < 0.3 {
					edges = append(edges, [3]int64{int64(u), int64(v), int64(r.Intn(20))})
				}
			}
		}
		g := build(t, mode, n, edges)

		m, err := floydwarshall.FloydWarshall(g)
		require.NoError(t, err)

		for i := 1; i <= n; i++ {
			d, _ := m.At(i-1, i-1)
			require.Equal(t, int64(0), d, "diagonal %d", i)

			bf, err := bellmanford.BellmanFord(g, i)
			require.NoError(t, err)
			row, err := m.Row(i - 1)
			require.NoError(t, err)
			require.Equal(t, bf.Dist[1:], row, "trial %d source %d", trial, i)
		}
	}
}

// ---------- 5. Matrix ----------

func TestMatrix_Accessors(t *testing.T) {
	m, err := floydwarshall.NewMatrix(2)
	require.NoError(t, err)
	require.Equal(t, 2, m.Order())

	require.NoError(t, m.Set(0, 1, 5))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, floydwarshall.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), floydwarshall.ErrOutOfRange)
	_, err = m.Row(5)
	assert.ErrorIs(t, err, floydwarshall.ErrOutOfRange)
	_, err = floydwarshall.NewMatrix(-1)
	assert.ErrorIs(t, err, floydwarshall.ErrOutOfRange)

	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 9))
	v, _ = m.At(0, 1)
	assert.Equal(t, int64(5), v, "clone is independent")

	assert.Equal(t, "[0, 5]\n[∞, 0]\n", m.String())
}

func TestClosure_InPlace(t *testing.T) {
	m, err := floydwarshall.NewMatrix(3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 2))
	require.NoError(t, m.Set(1, 2, 3))

	require.NoError(t, floydwarshall.Closure(m))
	v, _ := m.At(0, 2)
	assert.Equal(t, int64(5), v)
}
