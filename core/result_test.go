package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/core"
)

func TestNewResult_Initial(t *testing.T) {
	r := core.NewResult(4, 2)

	assert.Equal(t, 4, r.Order())
	assert.Equal(t, 2, r.Source)
	assert.Equal(t, int64(0), r.Dist[2])
	for _, v := range []int{1, 3, 4} {
		assert.Equal(t, core.Infinity, r.Dist[v], "vertex %d", v)
		assert.Equal(t, core.None, r.Prev[v], "vertex %d", v)
	}
	assert.True(t, r.Reachable(2))
	assert.False(t, r.Reachable(1))
	assert.False(t, r.Reachable(core.Reserved))
	assert.False(t, r.Reachable(5))
}

func TestResult_PathTo(t *testing.T) {
	// 1 → 2 → 3, 4 unreached
	r := core.NewResult(4, 1)
	r.Dist[2], r.Prev[2] = 4, 1
	r.Dist[3], r.Prev[3] = 6, 2

	p, err := r.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, p)

	p, err = r.PathTo(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, p)

	_, err = r.PathTo(4)
	assert.ErrorIs(t, err, core.ErrNoPath)
}

func TestResult_PathToBrokenChain(t *testing.T) {
	r := core.NewResult(3, 1)
	r.Dist[3], r.Prev[3] = 5, 2 // 2 has no predecessor
	_, err := r.PathTo(3)
	assert.ErrorIs(t, err, core.ErrNoPath)

	// 2 ↔ 3 loop never reaches the source
	r.Dist[2], r.Prev[2] = 1, 3
	_, err = r.PathTo(3)
	assert.ErrorIs(t, err, core.ErrNoPath)
}
