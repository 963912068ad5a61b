package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/logging"
)

const sample = `
[server]
addr = "0.0.0.0:9000"
cors_origins = ["http://localhost:3000"]
codec = "msgpack"

[playback]
interval = "250ms"
history_limit = 0

[graph]
nodes = 12
seed = 42
algorithm = "Dijkstra"
start = 2
end = 7

[logging]
logfile = "stepviz.log"
max_log_size = 10
level = "debug"
`

func TestDefault_Valid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, DefaultAddr, c.Server.Addr)
	assert.Equal(t, DefaultInterval, c.Playback.Interval.Duration)
	assert.Equal(t, logging.InfoLevel, c.Logging.Level)
	assert.Equal(t, 9, c.Graph.ResolveEnd(9))
}

func TestParse(t *testing.T) {
	c, err := Parse(sample)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", c.Server.Addr)
	assert.Equal(t, []string{"http://localhost:3000"}, c.Server.CORSOrigins)
	assert.Equal(t, "msgpack", c.Server.Codec)

	assert.Equal(t, 250*time.Millisecond, c.Playback.Interval.Duration)
	assert.Equal(t, DefaultMinInterval, c.Playback.MinInterval.Duration)
	assert.Equal(t, 0, c.Playback.HistoryLimit)

	assert.Equal(t, 12, c.Graph.Nodes)
	assert.Equal(t, int64(42), c.Graph.Seed)
	assert.Equal(t, "Dijkstra", c.Graph.Algorithm)
	assert.Equal(t, 7, c.Graph.ResolveEnd(11))

	assert.Equal(t, "stepviz.log", c.Logging.Logfile)
	assert.Equal(t, 10, c.Logging.MaxSize)
	assert.Equal(t, logging.DebugLevel, c.Logging.Level)
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		text string
		key  string
	}{
		{"Codec", "[server]\ncodec = \"xml\"", "server.codec"},
		{"Addr", "[server]\naddr = \"nope\"", "server.addr"},
		{"Interval", "[playback]\ninterval = \"0s\"", "playback.interval"},
		{"History", "[playback]\nhistory_limit = -2", "playback.history_limit"},
		{"IntervalBelowMin", "[playback]\ninterval = \"5ms\"\nmin_interval = \"10ms\"", "playback.interval"},
		{"Topology", "[graph]\ntopology = \"hypercube\"", "graph.topology"},
		{"P", "[graph]\np = 1.5", "graph.p"},
		{"Nodes", "[graph]\nnodes = 0", "graph.nodes"},
		{"Algorithm", "[graph]\nalgorithm = \"astar\"", "graph.algorithm"},
		{"Start", "[graph]\nstart = -1", "graph.start"},
		{"LogSize", "[logging]\nmax_log_size = -1", "logging.max_log_size"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tc.key)
		})
	}
}

func TestParse_IntervalBounds(t *testing.T) {
	_, err := Parse("[playback]\ninterval = \"5ms\"\nmin_interval = \"10ms\"")
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "may not be less than min_interval")

	c, err := Parse("[playback]\ninterval = \"10ms\"\nmin_interval = \"10ms\"")
	require.NoError(t, err)
	assert.Equal(t, c.Playback.MinInterval, c.Playback.Interval)

	c, err = Parse("[graph]\ntopology = \"grid\"\nrows = 3\ncols = 4")
	require.NoError(t, err)
	assert.Equal(t, "grid", c.Graph.Topology)
	assert.Equal(t, 3, c.Graph.Rows)
}

func TestParse_DecodeErrors(t *testing.T) {
	_, err := Parse("[playback]\ninterval = \"soon\"")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)

	_, err = Parse("[logging]\nlevel = \"loud\"")
	require.Error(t, err)

	_, err = Parse("[graph]\nnodez = 3")
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.Contains(t, err.Error(), "graph.nodez")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stepviz.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "stepviz.log"), c.Logging.Logfile)

	_, err = Load("")
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestDuration_Text(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte(" 1m30s ")))
	assert.Equal(t, 90*time.Second, d.Duration)
	b, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(b))
}
