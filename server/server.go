package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"github.com/zenazn/goji/web"
	"github.com/zenazn/goji/web/middleware"

	"github.com/katalvlaran/stepviz/builder"
	"github.com/katalvlaran/stepviz/config"
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/logging"
	"github.com/katalvlaran/stepviz/playback"
	"github.com/katalvlaran/stepviz/render"
	"github.com/katalvlaran/stepviz/stepper"
	"github.com/katalvlaran/stepviz/wire"
)

// Server hosts one playback.Session and the graph it runs on.
type Server struct {
	cfg      config.Config
	log      logging.Logger
	codec    wire.Codec
	session  *playback.Session
	hub      *wsHub
	unsub    func()
	validate *validator.Validate
	handler  http.Handler

	mu     sync.RWMutex
	graph  *core.Graph
	layout map[core.NodeID]render.Point

	closeOnce sync.Once
}

// New builds the startup graph from cfg.Graph, starts the configured run and
// wires the routes. log may be nil.
func New(cfg config.Config, log logging.Logger) (*Server, error) {
	if log == nil {
		log = logging.Nop()
	}
	codec, err := wire.ByName(cfg.Server.Codec)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:   cfg,
		log:   log,
		codec: codec,
		session: playback.New(
			playback.WithLogger(log),
			playback.WithHistoryLimit(cfg.Playback.HistoryLimit),
			playback.WithMinInterval(cfg.Playback.MinInterval.Duration),
		),
		validate: newRequestValidator(),
	}
	s.hub = newHub(log, s.checkOrigin, s.session.Frame)
	s.unsub = s.session.Subscribe(s.hub.publish)

	cons, err := cfg.Graph.Constructor()
	if err != nil {
		s.Close()
		return nil, err
	}
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(cfg.Graph.Seed)}, cons)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.replaceGraph(g)

	alg, err := stepper.ParseAlgorithm(cfg.Graph.Algorithm)
	if err != nil {
		s.Close()
		return nil, err
	}
	start := cfg.Graph.Start
	var end *int
	if cfg.Graph.End >= 0 {
		end = &cfg.Graph.End
	}
	if _, err = s.startRun(alg, &start, end); err != nil {
		s.Close()
		return nil, err
	}

	s.handler = s.routes()
	return s, nil
}

func (s *Server) routes() http.Handler {
	m := web.New()
	m.Use(middleware.RequestID)
	m.Use(s.logRequests)
	m.Use(middleware.Recoverer)

	m.Post("/api/graph", s.postGraph)
	m.Get("/api/graph", s.getGraph)
	m.Post("/api/run", s.postRun)
	m.Post("/api/step", s.postStep)
	m.Post("/api/back", s.postBack)
	m.Post("/api/play", s.postPlay)
	m.Post("/api/pause", s.postPause)
	m.Get("/api/state", s.getState)
	m.Get("/api/pseudocode/:algorithm", s.getPseudocode)
	m.Get("/api/dot", s.getDOT)
	m.Get("/ws", s.serveWS)
	m.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, fmt.Errorf("%w: no route for %s %s", ErrBadRequest, r.Method, r.URL.Path), http.StatusNotFound)
	})

	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	return c.Handler(m)
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.handler }

// Session exposes the hosted session.
func (s *Server) Session() *playback.Session { return s.session }

// Graph returns the current graph.
func (s *Server) Graph() *core.Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.graph
}

// ListenAndServe serves on cfg.Server.Addr until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.log.Infof("Web server listening at %s ...", s.cfg.Server.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Infof("Shutting down web server at %s", s.cfg.Server.Addr)
		s.hub.close()
		return srv.Shutdown(shutdownCtx)
	}
}

// Close stops the session and disconnects every WebSocket client.
func (s *Server) Close() {
	s.closeOnce.Do(func() {
		if s.unsub != nil {
			s.unsub()
		}
		s.session.Close()
		s.hub.close()
	})
}

// replaceGraph drops the current run and installs g. The session never
// holds a run on a graph other than s.graph.
func (s *Server) replaceGraph(g *core.Graph) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Reset()
	s.graph = g
	s.layout = render.CircleLayout(g.Nodes())
}

// startRun initializes the session on the current graph. A nil end on an
// algorithm that needs one selects the largest node id. s.mu stays read-locked
// until the session holds the run so a concurrent replaceGraph waits for it.
func (s *Server) startRun(alg stepper.Algorithm, start, end *int) (playback.Frame, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g := s.graph
	from := core.NodeID(s.cfg.Graph.Start)
	if start != nil {
		from = core.NodeID(*start)
	}
	var opts []stepper.Option
	switch {
	case end != nil && alg.NeedsEnd():
		opts = append(opts, stepper.WithEnd(core.NodeID(*end)))
	case alg.NeedsEnd():
		nodes := g.Nodes()
		opts = append(opts, stepper.WithEnd(nodes[len(nodes)-1]))
	}

	return s.session.Initialize(alg, g, from, opts...)
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, o := range s.cfg.Server.CORSOrigins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}

	return false
}

func (s *Server) logRequests(c *web.C, h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h.ServeHTTP(w, r)
		s.log.Debugf("[%s] %s %s (%s)", middleware.GetReqID(*c), r.Method, r.URL.Path, time.Since(start))
	}

	return http.HandlerFunc(fn)
}

func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return v
}
