package stepper_test

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/katalvlaran/stepviz/builder"
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/dijkstra"
	"github.com/katalvlaran/stepviz/stepper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGraph(t testing.TB, edges ...[3]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(core.NodeID(e[0]), core.NodeID(e[1]), int64(e[2])))
	}

	return g
}

func randomGraph(t testing.TB, seed int64, n int) *core.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNode(core.NodeID(i)))
	}
	for i := 1; i < n; i++ {
		_ = g.AddEdge(core.NodeID(rng.Intn(i)), core.NodeID(i), int64(1+rng.Intn(9)))
	}
	for i := 0; i < n; i++ {
		_ = g.AddEdge(core.NodeID(rng.Intn(n)), core.NodeID(rng.Intn(n)), int64(1+rng.Intn(9)))
	}

	return g
}

// run drives s to completion and returns every snapshot, initial first.
func run(t testing.TB, s *stepper.State) (*stepper.State, []core.Snapshot) {
	t.Helper()
	g := s.Graph()
	limit := g.NodeCount() + 2*g.EdgeCount() + 1
	snaps := []core.Snapshot{s.Snapshot()}
	for i := 0; i < limit; i++ {
		next, snap, done := s.Step()
		snaps = append(snaps, snap)
		s = next
		if done {
			return s, snaps
		}
	}
	t.Fatalf("%v did not terminate within %d steps", s.Algorithm(), limit)

	return nil, nil
}

func TestAlgorithm_Names(t *testing.T) {
	for _, a := range stepper.Algorithms() {
		got, err := stepper.ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	a, err := stepper.ParseAlgorithm("  Dijkstra ")
	require.NoError(t, err)
	assert.Equal(t, stepper.Dijkstra, a)
	assert.True(t, a.NeedsEnd())
	assert.False(t, stepper.Prim.NeedsEnd())

	_, err = stepper.ParseAlgorithm("astar")
	assert.ErrorIs(t, err, stepper.ErrUnknownAlgorithm)
	assert.Equal(t, "algorithm(0)", stepper.Algorithm(0).String())
}

func TestAlgorithm_TextRoundTrip(t *testing.T) {
	b, err := json.Marshal(map[string]stepper.Algorithm{"alg": stepper.Kruskal})
	require.NoError(t, err)
	assert.JSONEq(t, `{"alg":"kruskal"}`, string(b))

	var out struct {
		Alg stepper.Algorithm `json:"alg"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"alg":"PRIM"}`), &out))
	assert.Equal(t, stepper.Prim, out.Alg)
	assert.Error(t, json.Unmarshal([]byte(`{"alg":"nope"}`), &out))

	_, err = stepper.Algorithm(9).MarshalText()
	assert.ErrorIs(t, err, stepper.ErrUnknownAlgorithm)
}

func TestInitialize_Errors(t *testing.T) {
	g := buildGraph(t, [3]int{0, 1, 1})

	_, err := stepper.Initialize(stepper.BFS, nil, 0)
	assert.ErrorIs(t, err, stepper.ErrGraphNil)

	_, err = stepper.Initialize(stepper.Algorithm(0), g, 0)
	assert.ErrorIs(t, err, stepper.ErrUnknownAlgorithm)

	for _, a := range stepper.Algorithms() {
		_, err = stepper.Initialize(a, g, 7, stepper.WithEnd(1))
		assert.ErrorIs(t, err, stepper.ErrInvalidNode, a.String())
	}

	_, err = stepper.Initialize(stepper.Dijkstra, g, 0)
	assert.ErrorIs(t, err, stepper.ErrEndRequired)
	assert.ErrorIs(t, err, stepper.ErrInvalidNode)

	_, err = stepper.Initialize(stepper.Dijkstra, g, 0, stepper.WithEnd(8))
	assert.ErrorIs(t, err, stepper.ErrInvalidNode)
	assert.NotErrorIs(t, err, stepper.ErrEndRequired)

	assert.False(t, g.Frozen(), "failed initialize must not freeze the graph")
}

func TestInitialize_FreezesGraph(t *testing.T) {
	g := buildGraph(t, [3]int{0, 1, 1})
	s, err := stepper.Initialize(stepper.BFS, g, 0)
	require.NoError(t, err)
	assert.True(t, g.Frozen())
	assert.Same(t, g, s.Graph())
	assert.ErrorIs(t, g.AddEdge(1, 2, 1), core.ErrFrozen)
}

func TestInitialize_Variants(t *testing.T) {
	g := buildGraph(t, [3]int{0, 1, 1}, [3]int{1, 2, 1})
	for _, a := range stepper.Algorithms() {
		s, err := stepper.Initialize(a, g, 0, stepper.WithEnd(2))
		require.NoError(t, err, a.String())
		assert.Equal(t, a, s.Algorithm())
		assert.Zero(t, s.Steps())
		assert.False(t, s.Done())
		assert.Equal(t, a == stepper.BFS, s.BFS() != nil)
		assert.Equal(t, a == stepper.DFS, s.DFS() != nil)
		assert.Equal(t, a == stepper.Dijkstra, s.Dijkstra() != nil)
		assert.Equal(t, a == stepper.Prim, s.Prim() != nil)
		assert.Equal(t, a == stepper.Kruskal, s.Kruskal() != nil)
		line, ok := stepper.Line(a, s.PC())
		assert.True(t, ok)
		assert.Equal(t, line, s.Line())
	}
}

func TestBFS_PathGraphScenario(t *testing.T) {
	g := buildGraph(t, [3]int{0, 1, 1}, [3]int{1, 2, 1}, [3]int{2, 3, 1})
	s, err := stepper.Initialize(stepper.BFS, g, 0)
	require.NoError(t, err)
	_, snaps := run(t, s)

	var seen [][]core.NodeID
	for _, sn := range snaps {
		if len(seen) == 0 || len(seen[len(seen)-1]) != len(sn.Highlighted) {
			seen = append(seen, sn.Highlighted)
		}
	}
	assert.Equal(t, [][]core.NodeID{{0}, {0, 1}, {0, 1, 2}, {0, 1, 2, 3}}, seen)
}

func TestDijkstra_Scenarios(t *testing.T) {
	tri := buildGraph(t, [3]int{0, 1, 1}, [3]int{1, 2, 2}, [3]int{0, 2, 5})
	s, err := stepper.Initialize(stepper.Dijkstra, tri, 0, stepper.WithEnd(2))
	require.NoError(t, err)
	final, snaps := run(t, s)
	assert.Equal(t, map[core.NodeID]int64{0: 0, 1: 1, 2: 3}, final.Dijkstra().Distances())
	assert.Equal(t, []core.NodeID{0, 1, 2}, snaps[len(snaps)-1].Path)

	split := buildGraph(t, [3]int{0, 1, 1})
	require.NoError(t, split.AddNode(2))
	s, err = stepper.Initialize(stepper.Dijkstra, split, 0, stepper.WithEnd(2))
	require.NoError(t, err)
	final, snaps = run(t, s)
	assert.True(t, final.Done())
	d, _ := final.Dijkstra().Dist(2)
	assert.Equal(t, dijkstra.Infinity, d)
	assert.Empty(t, snaps[len(snaps)-1].Path)
}

func TestKruskal_FourCycle(t *testing.T) {
	g := buildGraph(t, [3]int{0, 1, 3}, [3]int{1, 2, 1}, [3]int{2, 3, 9}, [3]int{3, 0, 2})
	s, err := stepper.Initialize(stepper.Kruskal, g, 0)
	require.NoError(t, err)
	_, snaps := run(t, s)

	last := snaps[len(snaps)-1]
	assert.Len(t, last.TreeEdges, 3)
	assert.False(t, last.InTree(core.Edge{U: 2, V: 3}))
}

func TestStep_DoneIsSamePointer(t *testing.T) {
	g := buildGraph(t, [3]int{0, 1, 1}, [3]int{1, 2, 4})
	for _, a := range stepper.Algorithms() {
		s, err := stepper.Initialize(a, g, 0, stepper.WithEnd(2))
		require.NoError(t, err)
		final, snaps := run(t, s)
		steps := final.Steps()

		again, snap, done := final.Step()
		assert.True(t, done, a.String())
		assert.Same(t, final, again, a.String())
		assert.Equal(t, snaps[len(snaps)-1], snap, a.String())
		assert.Equal(t, steps, again.Steps())
		assert.Equal(t, len(snaps)-1, steps)
	}
}

func TestStep_ReceiverUnchanged(t *testing.T) {
	g := buildGraph(t, [3]int{0, 1, 1}, [3]int{1, 2, 4})
	for _, a := range stepper.Algorithms() {
		s0, err := stepper.Initialize(a, g, 0, stepper.WithEnd(2))
		require.NoError(t, err)
		before, _ := json.Marshal(s0.Snapshot())
		pc := s0.PC()

		_, _, _ = s0.Step()
		after, _ := json.Marshal(s0.Snapshot())
		assert.Equal(t, before, after, a.String())
		assert.Equal(t, pc, s0.PC(), a.String())
		assert.Zero(t, s0.Steps())
	}
}

func TestDeterminism_AllAlgorithms(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := randomGraph(t, seed, 9)
		for _, a := range stepper.Algorithms() {
			encode := func() []byte {
				s, err := stepper.Initialize(a, g, 0, stepper.WithEnd(8))
				require.NoError(t, err)
				_, snaps := run(t, s)
				b, err := json.Marshal(snaps)
				require.NoError(t, err)

				return b
			}
			assert.Equal(t, encode(), encode(), "seed %d %v", seed, a)
		}
	}
}

func TestTraversals_VisitComponentOnce(t *testing.T) {
	g := buildGraph(t, [3]int{0, 1, 1}, [3]int{1, 2, 1}, [3]int{2, 0, 1}, [3]int{3, 4, 1})
	for _, a := range []stepper.Algorithm{stepper.BFS, stepper.DFS} {
		s, err := stepper.Initialize(a, g, 1)
		require.NoError(t, err)
		final, _ := run(t, s)

		var order []core.NodeID
		if a == stepper.BFS {
			order = final.BFS().Order()
		} else {
			order = final.DFS().Order()
		}
		assert.ElementsMatch(t, []core.NodeID{0, 1, 2}, order, a.String())
	}
}

// TestTopologies_AllAlgorithms runs every algorithm over the unit-weight
// builder topologies, where hop counts and tree sizes are known.
func TestTopologies_AllAlgorithms(t *testing.T) {
	cases := []struct {
		name string
		spec builder.TopologySpec
		end  core.NodeID
		dist int64
	}{
		{"Cycle8", builder.TopologySpec{Name: builder.TopologyCycle, Nodes: 8}, 4, 4},
		{"Grid3x3", builder.TopologySpec{Name: builder.TopologyGrid, Rows: 3, Cols: 3}, 8, 4},
		{"Complete6", builder.TopologySpec{Name: builder.TopologyComplete, Nodes: 6}, 5, 1},
		{"Wheel6", builder.TopologySpec{Name: builder.TopologyWheel, Nodes: 6}, 3, 1},
		{"Star5", builder.TopologySpec{Name: builder.TopologyStar, Nodes: 5}, 4, 1},
		{"Path5", builder.TopologySpec{Name: builder.TopologyPath, Nodes: 5}, 4, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cons, err := builder.Named(tc.spec)
			require.NoError(t, err)
			g, err := builder.BuildGraph(nil, cons)
			require.NoError(t, err)
			n := g.NodeCount()

			for _, a := range []stepper.Algorithm{stepper.BFS, stepper.DFS} {
				s, err := stepper.Initialize(a, g, 0)
				require.NoError(t, err)
				final, _ := run(t, s)
				order := final.BFS().Order()
				if a == stepper.DFS {
					order = final.DFS().Order()
				}
				assert.Len(t, order, n, a.String())
			}

			s, err := stepper.Initialize(stepper.Dijkstra, g, 0, stepper.WithEnd(tc.end))
			require.NoError(t, err)
			final, _ := run(t, s)
			d, _ := final.Dijkstra().Dist(tc.end)
			assert.Equal(t, tc.dist, d)
			assert.Len(t, final.Snapshot().Path, int(tc.dist)+1)

			for _, a := range []stepper.Algorithm{stepper.Prim, stepper.Kruskal} {
				s, err := stepper.Initialize(a, g, 0)
				require.NoError(t, err)
				final, _ := run(t, s)
				snap := final.Snapshot()
				assert.Len(t, snap.TreeEdges, n-1, a.String())
				assert.Equal(t, int64(n-1), snap.TreeWeight(), a.String())
			}
		})
	}
}

func TestLine_Bounds(t *testing.T) {
	for _, a := range stepper.Algorithms() {
		l := stepper.Listing(a)
		require.NotEmpty(t, l)
		_, ok := stepper.Line(a, len(l))
		assert.False(t, ok)
		_, ok = stepper.Line(a, -1)
		assert.False(t, ok)
		first, ok := stepper.Line(a, 0)
		assert.True(t, ok)
		assert.Equal(t, l[0], first)
	}
	assert.Panics(t, func() { stepper.Listing(stepper.Algorithm(42)) })
}
