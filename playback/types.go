package playback

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/logging"
	"github.com/katalvlaran/stepviz/stepper"
)

var (
	// ErrNotInitialized is returned by operations that need a run.
	ErrNotInitialized = errors.New("playback: no run initialized")

	// ErrBadInterval is returned by Play for an interval below the minimum.
	ErrBadInterval = errors.New("playback: play interval too short")

	// ErrPlaying is returned by manual Step and Back while the timer runs.
	ErrPlaying = errors.New("playback: session is playing")

	// ErrNoHistory is returned by Back when no earlier state is recorded.
	ErrNoHistory = errors.New("playback: no earlier step")

	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("playback: session closed")
)

// Status is the Session lifecycle state.
type Status uint8

const (
	Idle Status = iota
	Ready
	Stepping
	Playing
	Done
)

var statusNames = [...]string{"idle", "ready", "stepping", "playing", "done"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}

	return fmt.Sprintf("status(%d)", uint8(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(b []byte) error {
	n := strings.ToLower(string(b))
	for i, name := range statusNames {
		if name == n {
			*s = Status(i)
			return nil
		}
	}

	return fmt.Errorf("playback: unknown status %q", b)
}

// Frame is what observers receive after initialize, every step and every
// status change. Seq increases on every emission within a Session; Step is
// the number of steps the run has taken.
type Frame struct {
	RunID     uuid.UUID         `json:"runId" msgpack:"runId"`
	Seq       uint64            `json:"seq" msgpack:"seq"`
	Step      int               `json:"step" msgpack:"step"`
	Algorithm stepper.Algorithm `json:"algorithm" msgpack:"algorithm"`
	PC        int               `json:"pc" msgpack:"pc"`
	Line      string            `json:"line" msgpack:"line"`
	Snapshot  core.Snapshot     `json:"snapshot" msgpack:"snapshot"`
	Done      bool              `json:"done" msgpack:"done"`
	Status    Status            `json:"status" msgpack:"status"`
}

// Default option values.
const (
	DefaultHistoryLimit = 4096
	DefaultMinInterval  = 10 * time.Millisecond
)

type options struct {
	log          logging.Logger
	historyLimit int
	minInterval  time.Duration
}

// Option configures a Session.
type Option func(*options)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithHistoryLimit caps how many earlier states Back can return to. Zero
// disables history; a negative value removes the cap.
func WithHistoryLimit(n int) Option {
	return func(o *options) { o.historyLimit = n }
}

// WithMinInterval sets the shortest interval Play accepts.
func WithMinInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.minInterval = d
		}
	}
}
