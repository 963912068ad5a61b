package wire_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/playback"
	"github.com/katalvlaran/stepviz/stepper"
	"github.com/katalvlaran/stepviz/wire"
)

func sampleFrame() playback.Frame {
	return playback.Frame{
		RunID:     uuid.MustParse("2b1c6c0e-4c1e-4a55-9a3f-4b1f0e6a9d10"),
		Seq:       7,
		Step:      3,
		Algorithm: stepper.Prim,
		PC:        9,
		Line:      "        parent[v] ← u",
		Snapshot: core.NewSnapshot(
			[]core.NodeID{1, 2},
			[]core.NodeID{0, 1, 2},
			[]core.Edge{{U: 0, V: 1, W: 4}},
		),
		Status: playback.Stepping,
	}
}

func TestByName(t *testing.T) {
	for _, n := range wire.Names() {
		c, err := wire.ByName(n)
		require.NoError(t, err)
		assert.Equal(t, n, c.Name())
	}
	c, err := wire.ByName("")
	require.NoError(t, err)
	assert.Equal(t, "json", c.Name())
	c, err = wire.ByName(" MsgPack ")
	require.NoError(t, err)
	assert.True(t, c.Binary())

	_, err = wire.ByName("xml")
	assert.ErrorIs(t, err, wire.ErrUnknownCodec)
}

func TestJSON_FrameShape(t *testing.T) {
	b, err := wire.JSON().Encode(sampleFrame())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"runId": "2b1c6c0e-4c1e-4a55-9a3f-4b1f0e6a9d10",
		"seq": 7,
		"step": 3,
		"algorithm": "prim",
		"pc": 9,
		"line": "        parent[v] ← u",
		"snapshot": {
			"highlighted": [1, 2],
			"path": [0, 1, 2],
			"treeEdges": [{"u": 0, "v": 1, "w": 4}]
		},
		"done": false,
		"status": "stepping"
	}`, string(b))
}

func TestCodecs_FrameRoundTrip(t *testing.T) {
	want := sampleFrame()
	for _, c := range []wire.Codec{wire.JSON(), wire.MsgPack()} {
		b, err := c.Encode(want)
		require.NoError(t, err, c.Name())

		var got playback.Frame
		require.NoError(t, c.Decode(b, &got), c.Name())
		assert.Equal(t, want.RunID, got.RunID, c.Name())
		assert.Equal(t, want.Seq, got.Seq, c.Name())
		assert.Equal(t, want.Algorithm, got.Algorithm, c.Name())
		assert.Equal(t, want.Line, got.Line, c.Name())
		assert.Equal(t, want.Status, got.Status, c.Name())
		assert.Equal(t, want.Snapshot.Highlighted, got.Snapshot.Highlighted, c.Name())
		assert.Equal(t, want.Snapshot.Path, got.Snapshot.Path, c.Name())
		assert.Equal(t, want.Snapshot.TreeEdges, got.Snapshot.TreeEdges, c.Name())
	}
}

func TestMsgPack_SmallerThanJSON(t *testing.T) {
	f := sampleFrame()
	j, err := wire.JSON().Encode(f)
	require.NoError(t, err)
	m, err := wire.MsgPack().Encode(f)
	require.NoError(t, err)
	assert.Less(t, len(m), len(j))
}
