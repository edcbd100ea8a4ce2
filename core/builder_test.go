package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlpath/core"
)

type BuilderSuite struct {
	suite.Suite
	b *core.Builder
}

func (s *BuilderSuite) SetupTest() {
	// Symmetric lookup by default; individual tests may override
	s.b = core.NewBuilder()
	s.Require().NoError(s.b.AddVertexRange(0, 3))
}

func (s *BuilderSuite) TestAddVertexIdempotent() {
	require := require.New(s.T())
	require.NoError(s.b.AddVertex(2))
	require.NoError(s.b.AddVertex(2))

	g := s.b.Build()
	require.Equal([]int{1, 2, 3}, g.Vertices(), "Reserved is excluded and duplicates collapse")
	require.True(g.HasVertex(core.Reserved), "vertex 0 may still be allocated")
	require.Equal(3, g.Order())
}

func (s *BuilderSuite) TestAddVertexNegative() {
	err := s.b.AddVertex(-1)
	s.Require().ErrorIs(err, core.ErrInvalidVertex)
}

func (s *BuilderSuite) TestAddEdgeUnknownVertex() {
	require := require.New(s.T())

	err := s.b.AddEdge(1, 9, 5)
	require.ErrorIs(err, core.ErrInvalidEdge)

	var iee *core.InvalidEdgeError
	require.True(errors.As(err, &iee))
	require.Equal(9, iee.Missing)
	require.Equal(1, iee.Source)

	err = s.b.AddEdge(7, 1, 5)
	require.True(errors.As(err, &iee))
	require.Equal(7, iee.Missing)
}

func (s *BuilderSuite) TestAddEdgeCostRange() {
	require := require.New(s.T())
	require.ErrorIs(s.b.AddEdge(1, 2, core.MaxCost+1), core.ErrCostOutOfRange)
	require.ErrorIs(s.b.AddEdge(1, 2, -core.MaxCost-1), core.ErrCostOutOfRange)
	require.NoError(s.b.AddEdge(1, 2, -core.MaxCost))
}

func (s *BuilderSuite) TestSymmetricLookup() {
	require := require.New(s.T())
	require.NoError(s.b.AddEdge(1, 2, 4))
	g := s.b.Build()

	require.True(g.HasEdge(1, 2))
	require.True(g.HasEdge(2, 1), "reverse direction is found under symmetric lookup")
	require.False(g.HasEdge(1, 3))

	c, err := g.EdgeCost(2, 1)
	require.NoError(err)
	require.Equal(int64(4), c)
}

func (s *BuilderSuite) TestSymmetricOverwrite() {
	require := require.New(s.T())
	require.NoError(s.b.AddEdge(1, 2, 4))
	require.NoError(s.b.AddEdge(2, 1, 9))
	g := s.b.Build()

	require.Equal(1, g.EdgeCount(), "1→2 and 2→1 share a key")
	c, ok := g.Cost(1, 2)
	require.True(ok)
	require.Equal(int64(9), c, "last insert wins")
}

func (s *BuilderSuite) TestDirectedLookup() {
	require := require.New(s.T())
	b := core.NewBuilder(core.WithLookup(core.LookupDirected))
	require.NoError(b.AddVertexRange(1, 2))
	require.NoError(b.AddEdge(1, 2, 4))
	require.NoError(b.AddEdge(2, 1, 9))
	g := b.Build()

	require.Equal(core.LookupDirected, g.Lookup())
	require.Equal(2, g.EdgeCount())
	c12, _ := g.Cost(1, 2)
	c21, _ := g.Cost(2, 1)
	require.Equal(int64(4), c12)
	require.Equal(int64(9), c21)
}

func (s *BuilderSuite) TestEdgeCostMissing() {
	g := s.b.Build()
	_, err := g.EdgeCost(1, 3)
	s.Require().ErrorIs(err, core.ErrEdgeNotFound)
}

func (s *BuilderSuite) TestFrozenAfterBuild() {
	require := require.New(s.T())
	g := s.b.Build()
	require.NotNil(g)

	require.ErrorIs(s.b.AddVertex(4), core.ErrBuilderFrozen)
	require.ErrorIs(s.b.AddEdge(1, 2, 1), core.ErrBuilderFrozen)
	require.Nil(s.b.Build(), "second Build returns nil")
	require.False(g.HasVertex(4), "frozen graph is unaffected")
}

func (s *BuilderSuite) TestEdgesSorted() {
	require := require.New(s.T())
	require.NoError(s.b.AddEdge(3, 2, 1))
	require.NoError(s.b.AddEdge(1, 3, 7))
	require.NoError(s.b.AddEdge(1, 2, 4))
	g := s.b.Build()

	require.Equal([]core.Edge{
		{From: 1, To: 2, Cost: 4},
		{From: 1, To: 3, Cost: 7},
		{From: 2, To: 3, Cost: 1}, // normalized From ≤ To
	}, g.Edges())
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderSuite))
}

func TestParseLookupMode(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want core.LookupMode
	}{
		{"symmetric", core.LookupSymmetric},
		{"undirected", core.LookupSymmetric},
		{"directed", core.LookupDirected},
	} {
		got, err := core.ParseLookupMode(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	_, err := core.ParseLookupMode("sideways")
	require.Error(t, err)
	require.Equal(t, "directed", core.LookupDirected.String())
}
