package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvpath/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph[string]
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph[string]()
}

func (s *GraphSuite) TestAddEdgeCreatesVerticesAndEdge() {
	require := require.New(s.T())

	s.g.AddEdge(VertexA, VertexB, 10)

	require.Equal([]string{VertexA, VertexB}, s.g.Vertices())
	require.Equal(map[string]float64{VertexB: 10}, s.g.Edges(VertexA))
	require.Empty(s.g.Edges(VertexB), "B has no outgoing edges")
	require.True(s.g.HasVertex(VertexB))
	require.Equal(1, s.g.EdgeCount())
}

func (s *GraphSuite) TestEdgesAreDirected() {
	require := require.New(s.T())

	s.g.AddEdge(VertexA, VertexB, 1)

	require.True(s.g.HasEdge(VertexA, VertexB))
	require.False(s.g.HasEdge(VertexB, VertexA), "A→B must not imply B→A")
}

func (s *GraphSuite) TestAddEdgeOverwritesWeight() {
	require := require.New(s.T())

	s.g.AddEdge(VertexA, VertexB, 5)
	s.g.AddEdge(VertexA, VertexB, 2)

	require.Equal(map[string]float64{VertexB: 2}, s.g.Edges(VertexA))
	require.Equal(1, s.g.EdgeCount(), "overwrite must not add a parallel edge")
	require.Len(s.g.Neighbors(VertexA), 1)
}

func (s *GraphSuite) TestOverwriteKeepsNeighborOrder() {
	require := require.New(s.T())

	s.g.AddEdge(VertexA, VertexB, 1)
	s.g.AddEdge(VertexA, VertexC, 2)
	s.g.AddEdge(VertexA, VertexB, 7)

	require.Equal([]core.Edge[string]{
		{From: VertexA, To: VertexB, Weight: 7},
		{From: VertexA, To: VertexC, Weight: 2},
	}, s.g.Neighbors(VertexA))
}

func (s *GraphSuite) TestUnknownVertexYieldsEmpty() {
	require := require.New(s.T())

	edges := s.g.Edges(VertexX)
	require.NotNil(edges)
	require.Empty(edges)
	require.Nil(s.g.Neighbors(VertexX))
	require.False(s.g.HasVertex(VertexX))

	_, ok := s.g.Weight(VertexX, VertexA)
	require.False(ok)
}

func (s *GraphSuite) TestNegativeWeightAccepted() {
	require := require.New(s.T())

	s.g.AddEdge(VertexA, VertexB, -3.5)

	w, ok := s.g.Weight(VertexA, VertexB)
	require.True(ok)
	require.Equal(-3.5, w)
}

func (s *GraphSuite) TestSelfLoop() {
	require := require.New(s.T())

	s.g.AddEdge(VertexA, VertexA, 1)

	require.Equal([]string{VertexA}, s.g.Vertices())
	require.True(s.g.HasEdge(VertexA, VertexA))
}

func (s *GraphSuite) TestClear() {
	require := require.New(s.T())

	s.g.AddEdge(VertexA, VertexB, 10)
	s.g.AddEdge(VertexB, VertexC, 5)

	s.g.Clear()

	require.Empty(s.g.Vertices())
	require.Empty(s.g.Edges(VertexA))
	require.Empty(s.g.Edges(VertexB))
	require.Zero(s.g.VertexCount())
	require.Zero(s.g.EdgeCount())

	// The graph is reusable after Clear.
	s.g.AddEdge(VertexC, VertexD, 1)
	require.Equal([]string{VertexC, VertexD}, s.g.Vertices())
}

func (s *GraphSuite) TestReturnedCollectionsAreCopies() {
	require := require.New(s.T())

	s.g.AddEdge(VertexA, VertexB, 1)

	vs := s.g.Vertices()
	vs[0] = VertexX
	edges := s.g.Edges(VertexA)
	edges[VertexC] = 9

	require.Equal([]string{VertexA, VertexB}, s.g.Vertices())
	require.Equal(map[string]float64{VertexB: 1}, s.g.Edges(VertexA))
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

// TestStructVertices checks that composite comparable values work as vertices.
func TestStructVertices(t *testing.T) {
	type cell struct{ r, c int }

	g := core.NewGraph[cell]()
	g.AddEdge(cell{0, 0}, cell{0, 1}, 3)
	g.AddEdge(cell{0, 0}, cell{1, 0}, 4)

	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, map[cell]float64{{0, 1}: 3, {1, 0}: 4}, g.Edges(cell{0, 0}))
}

// TestConcurrentReaders runs parallel readers against a populated graph.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph[int]()
	for i := 0; i < 100; i++ {
		g.AddEdge(i, i+1, float64(i))
	}

	done := make(chan int, 8)
	for r := 0; r < 8; r++ {
		go func() {
			n := 0
			for i := 0; i < 100; i++ {
				n += len(g.Edges(i))
			}
			done <- n
		}()
	}
	for r := 0; r < 8; r++ {
		require.Equal(t, 100, <-done)
	}
}
