package playback

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/logging"
	"github.com/katalvlaran/stepviz/stepper"
)

// Session owns one run and its play timer. The zero value is not usable;
// call New.
type Session struct {
	mu   sync.Mutex
	opts options

	status  Status
	runID   uuid.UUID
	cur     *stepper.State
	history []*stepper.State
	seq     uint64
	frame   Frame

	gen    uint64
	cancel context.CancelFunc

	observers map[uint64]func(Frame)
	nextObs   uint64
	closed    bool
}

// New returns an Idle Session.
func New(opts ...Option) *Session {
	o := options{
		log:          logging.Nop(),
		historyLimit: DefaultHistoryLimit,
		minInterval:  DefaultMinInterval,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Session{opts: o, observers: make(map[uint64]func(Frame))}
}

// Initialize discards any current run and timer and installs a fresh run
// under a new RunID. On error the Session is left exactly as it was.
func (s *Session) Initialize(alg stepper.Algorithm, g *core.Graph, start core.NodeID, opts ...stepper.Option) (Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Frame{}, ErrClosed
	}
	st, err := stepper.Initialize(alg, g, start, opts...)
	if err != nil {
		s.opts.log.Warningf("playback: initialize %v from %d rejected: %v", alg, start, err)
		return Frame{}, err
	}

	s.stopLocked()
	s.runID = uuid.New()
	s.cur = st
	s.history = nil
	s.status = Ready
	s.opts.log.Infof("playback: run %s: %v over %d nodes, %d edges from %d",
		s.runID, alg, g.NodeCount(), g.EdgeCount(), start)

	return s.emitLocked(st.Snapshot()), nil
}

// Step advances the run by one step. On a done run it returns the current
// frame and no error.
func (s *Session) Step() (Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.usableLocked(); err != nil {
		return Frame{}, err
	}
	if s.status == Playing {
		return Frame{}, ErrPlaying
	}
	if s.status == Done {
		return s.frame, nil
	}

	return s.stepLocked(), nil
}

// stepLocked performs one engine step and emits its frame.
func (s *Session) stepLocked() Frame {
	next, snap, done := s.cur.Step()
	if next != s.cur && s.opts.historyLimit != 0 {
		s.history = append(s.history, s.cur)
		if lim := s.opts.historyLimit; lim > 0 && len(s.history) > lim {
			s.history = append(s.history[:0], s.history[len(s.history)-lim:]...)
		}
	}
	s.cur = next

	switch {
	case done:
		if s.status == Playing {
			s.stopLocked()
		}
		s.status = Done
		s.opts.log.Infof("playback: run %s done after %d steps", s.runID, next.Steps())
	case s.status != Playing:
		s.status = Stepping
	}
	s.opts.log.Debugf("playback: run %s step %d pc=%d", s.runID, next.Steps(), next.PC())

	return s.emitLocked(snap)
}

// Play starts stepping every interval until the run is done or Pause is
// called. Play on a playing Session restarts the timer with the new
// interval; Play on a done run is a no-op.
func (s *Session) Play(interval time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.usableLocked(); err != nil {
		return err
	}
	if interval < s.opts.minInterval {
		return ErrBadInterval
	}
	if s.status == Done {
		return nil
	}

	s.stopLocked()
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	gen := s.gen
	s.status = Playing
	s.opts.log.Infof("playback: run %s playing every %v", s.runID, interval)
	s.emitLocked(s.cur.Snapshot())

	go s.loop(ctx, gen, interval)

	return nil
}

// loop is the play goroutine. It exits on cancel, on a stale generation and
// once the run is done.
func (s *Session) loop(ctx context.Context, gen uint64, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if !s.tick(gen) {
				return
			}
		}
	}
}

// tick runs one timed step and reports whether the loop should continue.
func (s *Session) tick(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.gen != gen || s.status != Playing {
		return false
	}
	s.stepLocked()

	return s.status == Playing
}

// Pause stops the timer and leaves the run where it is. Pausing a Session
// that is not playing does nothing.
func (s *Session) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.status != Playing {
		return nil
	}
	s.stopLocked()
	s.status = s.restingStatusLocked()
	s.opts.log.Infof("playback: run %s paused at step %d", s.runID, s.cur.Steps())
	s.emitLocked(s.cur.Snapshot())

	return nil
}

// Back restores the state before the last step.
func (s *Session) Back() (Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.usableLocked(); err != nil {
		return Frame{}, err
	}
	if s.status == Playing {
		return Frame{}, ErrPlaying
	}
	if len(s.history) == 0 {
		return Frame{}, ErrNoHistory
	}
	s.cur = s.history[len(s.history)-1]
	s.history[len(s.history)-1] = nil
	s.history = s.history[:len(s.history)-1]
	s.status = s.restingStatusLocked()
	s.opts.log.Debugf("playback: run %s back to step %d", s.runID, s.cur.Steps())

	return s.emitLocked(s.cur.Snapshot()), nil
}

// Reset drops the run and returns to Idle. Observers get an Idle frame.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.stopLocked()
	s.cur = nil
	s.history = nil
	s.status = Idle
	s.runID = uuid.Nil
	s.emitLocked(core.NewSnapshot(nil, nil, nil))
}

// Frame returns the last emitted frame and whether a run is installed.
func (s *Session) Frame() (Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.frame, s.cur != nil
}

// Status returns the lifecycle state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.status
}

// Done reports whether the current run has terminated.
func (s *Session) Done() bool { return s.Status() == Done }

// RunID returns the id of the current run, uuid.Nil when Idle.
func (s *Session) RunID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.runID
}

// State returns the current engine state, or nil when Idle.
func (s *Session) State() *stepper.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cur
}

// Subscribe registers fn for every future frame and returns a function that
// removes it. fn runs with the Session lock held.
func (s *Session) Subscribe(fn func(Frame)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return func() {}
	}
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// Close stops the timer and detaches all observers. It is idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.stopLocked()
	s.closed = true
	s.observers = map[uint64]func(Frame){}
	s.cur = nil
	s.history = nil
}

// stopLocked cancels the play goroutine, if any, and invalidates its
// generation. It never waits for the goroutine.
func (s *Session) stopLocked() {
	s.gen++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Session) usableLocked() error {
	if s.closed {
		return ErrClosed
	}
	if s.cur == nil {
		return ErrNotInitialized
	}

	return nil
}

// restingStatusLocked is the non-playing status matching the current run.
func (s *Session) restingStatusLocked() Status {
	switch {
	case s.cur.Done():
		return Done
	case s.cur.Steps() == 0:
		return Ready
	default:
		return Stepping
	}
}

// emitLocked records and broadcasts a frame for the current run.
func (s *Session) emitLocked(snap core.Snapshot) Frame {
	s.seq++
	f := Frame{
		RunID:    s.runID,
		Seq:      s.seq,
		Snapshot: snap,
		Status:   s.status,
	}
	if s.cur != nil {
		f.Step = s.cur.Steps()
		f.Algorithm = s.cur.Algorithm()
		f.PC = s.cur.PC()
		f.Line = s.cur.Line()
		f.Done = s.cur.Done()
	}
	s.frame = f
	for _, fn := range s.observers {
		fn(f)
	}

	return f
}
