package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/stepviz/builder"
	"github.com/katalvlaran/stepviz/logging"
)

var (
	// ErrInvalid wraps every validation failure reported by Validate.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrUnknownKey is returned when the TOML holds keys no section defines.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Defaults.
const (
	DefaultAddr         = "localhost:8080"
	DefaultCodec        = "json"
	DefaultInterval     = 500 * time.Millisecond
	DefaultMinInterval  = 10 * time.Millisecond
	DefaultHistoryLimit = 4096
	DefaultNodes        = 10
	DefaultAlgorithm    = "bfs"
)

// Duration is a time.Duration read from a TOML string such as "250ms".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	d.Duration = v

	return nil
}

// MarshalText formats the duration the way time.Duration prints it.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the whole configuration file.
type Config struct {
	Server   ServerConfig      `toml:"server"`
	Playback PlaybackConfig    `toml:"playback"`
	Graph    GraphConfig       `toml:"graph"`
	Logging  logging.LogConfig `toml:"logging"`
}

// ServerConfig configures the HTTP driver.
type ServerConfig struct {
	Addr        string   `toml:"addr" validate:"required,hostname_port"`
	CORSOrigins []string `toml:"cors_origins" validate:"dive,required"`
	Codec       string   `toml:"codec" validate:"required,codec"`
}

// PlaybackConfig configures new playback sessions. Interval may not be
// shorter than MinInterval.
type PlaybackConfig struct {
	Interval     Duration `toml:"interval" validate:"gt=0,gtefield=MinInterval"`
	MinInterval  Duration `toml:"min_interval" validate:"gt=0"`
	HistoryLimit int      `toml:"history_limit" validate:"gte=-1"`
}

// GraphConfig holds the graph generated at startup and the default run.
// End -1 selects the largest node id. Rows and Cols apply to the grid
// topology, P to sparse.
type GraphConfig struct {
	Topology  string  `toml:"topology" validate:"omitempty,topology"`
	Nodes     int     `toml:"nodes" validate:"gte=1,lte=1000"`
	Rows      int     `toml:"rows" validate:"gte=0,lte=100"`
	Cols      int     `toml:"cols" validate:"gte=0,lte=100"`
	P         float64 `toml:"p" validate:"gte=0,lte=1"`
	Seed      int64   `toml:"seed"`
	Algorithm string  `toml:"algorithm" validate:"required,algorithm"`
	Start     int     `toml:"start" validate:"gte=0"`
	End       int     `toml:"end" validate:"gte=-1"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:        DefaultAddr,
			CORSOrigins: []string{"*"},
			Codec:       DefaultCodec,
		},
		Playback: PlaybackConfig{
			Interval:     Duration{DefaultInterval},
			MinInterval:  Duration{DefaultMinInterval},
			HistoryLimit: DefaultHistoryLimit,
		},
		Graph: GraphConfig{
			Topology:  builder.TopologyRandom,
			Nodes:     DefaultNodes,
			Seed:      1,
			Algorithm: DefaultAlgorithm,
			End:       -1,
		},
		Logging: logging.LogConfig{Level: logging.InfoLevel},
	}
}

// Load reads filename over Default and validates the result. A relative
// [logging].logfile is resolved against the directory of filename.
func Load(filename string) (Config, error) {
	if filename == "" {
		return Config{}, fmt.Errorf("config: no TOML configuration file provided")
	}
	c := Default()
	md, err := toml.DecodeFile(filename, &c)
	if err != nil {
		return Config{}, fmt.Errorf("config: could not decode %s: %w", filename, err)
	}
	if err = checkUndecoded(md); err != nil {
		return Config{}, err
	}
	if c.Logging.Logfile != "" && !filepath.IsAbs(c.Logging.Logfile) {
		c.Logging.Logfile = filepath.Join(filepath.Dir(filename), c.Logging.Logfile)
	}
	if err = c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Parse decodes TOML text over Default and validates the result.
func Parse(text string) (Config, error) {
	c := Default()
	md, err := toml.Decode(text, &c)
	if err != nil {
		return Config{}, fmt.Errorf("config: could not decode TOML: %w", err)
	}
	if err = checkUndecoded(md); err != nil {
		return Config{}, err
	}
	if err = c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}

	return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(names, ", "))
}

// Constructor returns the builder constructor for the configured topology.
func (g GraphConfig) Constructor() (builder.Constructor, error) {
	return builder.Named(builder.TopologySpec{Name: g.Topology, Nodes: g.Nodes, Rows: g.Rows, Cols: g.Cols, P: g.P})
}

// ResolveEnd maps End -1 to maxID.
func (g GraphConfig) ResolveEnd(maxID int) int {
	if g.End < 0 {
		return maxID
	}

	return g.End
}
