package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/stepviz/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddEdge_Validation covers each rejection class of AddEdge.
func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 3))

	cases := []struct {
		name    string
		u, v    core.NodeID
		w       int64
		wantErr error
	}{
		{"zero weight", 1, 2, 0, core.ErrBadWeight},
		{"negative weight", 1, 2, -4, core.ErrBadWeight},
		{"weight above max", 1, 2, core.MaxWeight + 1, core.ErrBadWeight},
		{"weight at int64 limit", 1, 2, math.MaxInt64, core.ErrBadWeight},
		{"self loop", 2, 2, 1, core.ErrLoopNotAllowed},
		{"parallel edge", 0, 1, 7, core.ErrMultiEdgeNotAllowed},
		{"parallel edge reversed", 1, 0, 7, core.ErrMultiEdgeNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := g.AddEdge(tc.u, tc.v, tc.w)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	// rejected edges never leave partial state behind
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []core.NodeID{0, 1}, g.Nodes())
}

// TestAddEdge_WeightBounds accepts both ends of the weight range.
func TestAddEdge_WeightBounds(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, core.MinWeight))
	require.NoError(t, g.AddEdge(1, 2, core.MaxWeight))
	assert.ErrorIs(t, g.AddEdge(2, 3, core.MaxWeight+1), core.ErrBadWeight)

	// a path of maximal weights sums without overflow
	var s core.Snapshot
	s.TreeEdges = g.Edges()
	assert.Equal(t, core.MinWeight+core.MaxWeight, s.TreeWeight())
}

// TestAddEdge_Reciprocal verifies both arcs are recorded in insertion order.
func TestAddEdge_Reciprocal(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 2, 5))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(2, 1, 2))

	arcs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.Arc{{To: 2, W: 5}, {To: 1, W: 1}}, arcs)

	arcs, err = g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []core.Arc{{To: 0, W: 5}, {To: 1, W: 2}}, arcs)

	assert.Equal(t, 2, g.Degree(1))
	assert.Equal(t, 0, g.Degree(42))
}

// TestNodes_SortedAndIdempotent checks AddNode idempotence and id ordering.
func TestNodes_SortedAndIdempotent(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []core.NodeID{5, 3, 9, 3, 5} {
		require.NoError(t, g.AddNode(id))
	}
	assert.Equal(t, []core.NodeID{3, 5, 9}, g.Nodes())
	assert.Equal(t, 3, g.NodeCount())
	assert.True(t, g.HasNode(9))
	assert.False(t, g.HasNode(4))

	// isolated nodes still have (empty) adjacency
	arcs, err := g.Neighbors(9)
	require.NoError(t, err)
	assert.Empty(t, arcs)
}

// TestFreeze blocks every mutation after Freeze.
func TestFreeze(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1))
	assert.False(t, g.Frozen())

	g.Freeze()
	g.Freeze() // idempotent
	assert.True(t, g.Frozen())
	assert.ErrorIs(t, g.AddNode(7), core.ErrFrozen)
	assert.ErrorIs(t, g.AddEdge(1, 2, 1), core.ErrFrozen)
	assert.Equal(t, 2, g.NodeCount())
}

// TestNeighbors_Copies ensures callers cannot mutate adjacency through results.
func TestNeighbors_Copies(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1))

	arcs, err := g.Neighbors(0)
	require.NoError(t, err)
	arcs[0].To = 99

	again, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, core.NodeID(1), again[0].To)

	edges := g.Edges()
	edges[0].W = 100
	assert.Equal(t, int64(1), g.Edges()[0].W)
}

// TestMustNeighbors_Panics turns a missing adjacency entry into an invariant panic.
func TestMustNeighbors_Panics(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(0))

	assert.NotPanics(t, func() { g.MustNeighbors(0) })
	assert.Panics(t, func() { g.MustNeighbors(1) })

	_, err := g.Neighbors(1)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestClone_Unfrozen verifies clones are deep and mutable.
func TestClone_Unfrozen(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddNode(4))
	g.Freeze()

	c := g.Clone()
	assert.False(t, c.Frozen())
	assert.Equal(t, g.Nodes(), c.Nodes())
	assert.Equal(t, g.Edges(), c.Edges())

	require.NoError(t, c.AddEdge(1, 4, 3))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, c.EdgeCount())
	assert.Equal(t, 0, g.Degree(4))
}

// TestEdge_Helpers covers Other and Same.
func TestEdge_Helpers(t *testing.T) {
	e := core.Edge{U: 1, V: 2, W: 3}
	assert.Equal(t, core.NodeID(2), e.Other(1))
	assert.Equal(t, core.NodeID(1), e.Other(2))
	assert.True(t, e.Same(core.Edge{U: 2, V: 1}))
	assert.False(t, e.Same(core.Edge{U: 1, V: 3}))
}
