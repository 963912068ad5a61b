package render_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/playback"
	"github.com/katalvlaran/stepviz/render"
	"github.com/katalvlaran/stepviz/stepper"
)

func TestCircleLayout(t *testing.T) {
	pos := render.CircleLayout([]core.NodeID{10, 20, 30, 40})
	require.Len(t, pos, 4)

	assert.InDelta(t, 600.0, pos[10].X, 1e-9)
	assert.InDelta(t, 300.0, pos[10].Y, 1e-9)
	assert.InDelta(t, 400.0, pos[20].X, 1e-9)
	assert.InDelta(t, 500.0, pos[20].Y, 1e-9)
	for _, p := range pos {
		r := math.Hypot(p.X-400, p.Y-300)
		assert.InDelta(t, 200.0, r, 1e-9)
	}
	assert.Empty(t, render.CircleLayout(nil))
}

func TestPalette(t *testing.T) {
	assert.Equal(t, render.ColorPath, render.NodeColor(true, true))
	assert.Equal(t, render.ColorHighlighted, render.NodeColor(false, true))
	assert.Equal(t, render.ColorNode, render.NodeColor(false, false))

	c, w := render.EdgeStyle(true, true)
	assert.Equal(t, render.ColorPath, c)
	assert.Equal(t, 4, w)
	c, _ = render.EdgeStyle(false, true)
	assert.Equal(t, render.ColorTree, c)
}

func TestDOT(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(0, 2, 5))
	snap := core.NewSnapshot([]core.NodeID{2}, []core.NodeID{0, 1}, nil)

	var buf bytes.Buffer
	require.NoError(t, render.DOT(&buf, g, snap))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "graph stepviz {"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `0 [fillcolor="#e67e22"`)
	assert.Contains(t, out, `2 [fillcolor="#e74c3c"`)
	assert.Contains(t, out, `0 -- 1 [label="1" color="#e67e22" penwidth=4]`)
	assert.Contains(t, out, `0 -- 2 [label="5" color="#bbbbbb" penwidth=2]`)
}

func TestText_MarksCurrentLine(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 3))
	s := playback.New()
	defer s.Close()
	_, err := s.Initialize(stepper.Kruskal, g, 0)
	require.NoError(t, err)
	f, err := s.Step()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Text(&buf, f))
	out := buf.String()

	assert.Contains(t, out, "kruskal  step 1  [stepping]")
	assert.Contains(t, out, render.Marker+"  6       T ← T ∪ {(u, v)}")
	assert.Equal(t, 1, strings.Count(out, render.Marker))
	assert.Contains(t, out, "highlighted: 0 1")
	assert.Contains(t, out, "tree:        0-1(3)  weight 3")
}

func TestText_Idle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Text(&buf, playback.Frame{}))
	assert.Equal(t, "[idle] no run\n", buf.String())
}
