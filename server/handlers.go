package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/zenazn/goji/web"
	"github.com/zenazn/goji/web/middleware"

	"github.com/katalvlaran/stepviz/builder"
	"github.com/katalvlaran/stepviz/playback"
	"github.com/katalvlaran/stepviz/render"
	"github.com/katalvlaran/stepviz/stepper"
	"github.com/katalvlaran/stepviz/wire"
)

const maxBodyBytes = 2 << 20

func (s *Server) postGraph(c web.C, w http.ResponseWriter, r *http.Request) {
	var req graphRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, r, err, 0)
		return
	}

	var (
		opts []builder.BuilderOption
		cons builder.Constructor
	)
	switch {
	case req.Edges != "":
		cons = builder.EdgeList(req.Edges)
	default:
		spec := builder.TopologySpec{Name: req.Topology, Nodes: req.Nodes, Rows: req.Rows, Cols: req.Cols, P: s.cfg.Graph.P}
		if spec.Nodes == 0 {
			spec.Nodes = s.cfg.Graph.Nodes
		}
		if req.P != nil {
			spec.P = *req.P
		}
		seed := time.Now().UnixNano()
		if req.Seed != nil {
			seed = *req.Seed
		}
		opts = append(opts, builder.WithSeed(seed))
		var err error
		if cons, err = builder.Named(spec); err != nil {
			s.writeError(w, r, err, 0)
			return
		}
	}
	g, err := builder.BuildGraph(opts, cons)
	if err != nil {
		s.writeError(w, r, err, 0)
		return
	}

	s.replaceGraph(g)
	s.log.Infof("[%s] new graph: %d nodes, %d edges", middleware.GetReqID(c), g.NodeCount(), g.EdgeCount())
	s.respond(w, r, http.StatusCreated, s.graphView())
}

func (s *Server) getGraph(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, http.StatusOK, s.graphView())
}

func (s *Server) graphView() graphView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.graph.Nodes()
	v := graphView{Nodes: make([]nodeView, len(ids)), Edges: s.graph.Edges()}
	for i, id := range ids {
		p := s.layout[id]
		v.Nodes[i] = nodeView{ID: id, X: p.X, Y: p.Y}
	}

	return v
}

func (s *Server) postRun(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, r, err, 0)
		return
	}
	alg, err := stepper.ParseAlgorithm(req.Algorithm)
	if err != nil {
		s.writeError(w, r, err, 0)
		return
	}
	f, err := s.startRun(alg, req.Start, req.End)
	if err != nil {
		s.writeError(w, r, err, 0)
		return
	}
	s.respond(w, r, http.StatusOK, f)
}

func (s *Server) postStep(w http.ResponseWriter, r *http.Request) {
	s.frameResult(w, r)(s.session.Step())
}

func (s *Server) postBack(w http.ResponseWriter, r *http.Request) {
	s.frameResult(w, r)(s.session.Back())
}

func (s *Server) postPlay(w http.ResponseWriter, r *http.Request) {
	var req playRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, r, err, 0)
		return
	}
	if err := s.session.Play(s.interval(req.IntervalMs)); err != nil {
		s.writeError(w, r, err, 0)
		return
	}
	s.getState(w, r)
}

func (s *Server) postPause(w http.ResponseWriter, r *http.Request) {
	if err := s.session.Pause(); err != nil {
		s.writeError(w, r, err, 0)
		return
	}
	s.getState(w, r)
}

func (s *Server) getState(w http.ResponseWriter, r *http.Request) {
	f, ok := s.session.Frame()
	if !ok {
		s.writeError(w, r, playback.ErrNotInitialized, 0)
		return
	}
	s.respond(w, r, http.StatusOK, f)
}

func (s *Server) getPseudocode(c web.C, w http.ResponseWriter, r *http.Request) {
	alg, err := stepper.ParseAlgorithm(c.URLParams["algorithm"])
	if err != nil {
		s.writeError(w, r, err, http.StatusNotFound)
		return
	}
	s.respond(w, r, http.StatusOK, pseudocodeView{Algorithm: alg, Lines: stepper.Listing(alg)})
}

func (s *Server) getDOT(w http.ResponseWriter, r *http.Request) {
	f, _ := s.session.Frame()
	var buf bytes.Buffer
	if err := render.DOT(&buf, s.Graph(), f.Snapshot); err != nil {
		s.writeError(w, r, err, 0)
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	codec, err := s.codecFor(r)
	if err != nil {
		s.writeError(w, r, err, 0)
		return
	}
	s.hub.handle(w, r, codec, s.control)
}

// control applies a WebSocket command. Results reach clients as frames.
func (s *Server) control(msg controlMessage) {
	if err := s.validate.Struct(msg); err != nil {
		s.log.Warningf("Ignoring WebSocket control message: %v", err)
		return
	}
	var err error
	switch msg.Op {
	case "step":
		_, err = s.session.Step()
	case "back":
		_, err = s.session.Back()
	case "play":
		err = s.session.Play(s.interval(msg.IntervalMs))
	case "pause":
		err = s.session.Pause()
	}
	if err != nil {
		s.log.Warningf("WebSocket %s failed: %v", msg.Op, err)
	}
}

func (s *Server) interval(ms int) time.Duration {
	if ms == 0 {
		return s.cfg.Playback.Interval.Duration
	}
	return time.Duration(ms) * time.Millisecond
}

func (s *Server) frameResult(w http.ResponseWriter, r *http.Request) func(playback.Frame, error) {
	return func(f playback.Frame, err error) {
		if err != nil {
			s.writeError(w, r, err, 0)
			return
		}
		s.respond(w, r, http.StatusOK, f)
	}
}

// decode reads an optional JSON body into v and validates it.
func (s *Server) decode(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return badRequestf("decode body: %v", err)
	}
	if err := s.validate.Struct(v); err != nil {
		return badRequestf("%v", err)
	}

	return nil
}

func (s *Server) codecFor(r *http.Request) (wire.Codec, error) {
	name := r.URL.Query().Get("codec")
	if name == "" {
		return s.codec, nil
	}
	return wire.ByName(name)
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	codec, err := s.codecFor(r)
	if err != nil {
		s.writeError(w, r, err, 0)
		return
	}
	data, err := codec.Encode(v)
	if err != nil {
		s.log.Errorf("Failed to encode %T as %s: %v", v, codec.Name(), err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", codec.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError sends err as a JSON body. status 0 derives the code from err.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	if status == 0 {
		status = statusOf(err)
	}
	if status >= http.StatusInternalServerError {
		s.log.Errorf("%s %s: %v", r.Method, r.URL.Path, err)
	} else {
		s.log.Debugf("%s %s: %v", r.Method, r.URL.Path, err)
	}
	data, _ := wire.JSON().Encode(errorBody{Error: err.Error()})
	w.Header().Set("Content-Type", wire.JSON().ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
