// SPDX-License-Identifier: MIT

package stepper

import (
	"fmt"

	"github.com/katalvlaran/stepviz/bfs"
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/dfs"
	"github.com/katalvlaran/stepviz/dijkstra"
	"github.com/katalvlaran/stepviz/prim_kruskal"
)

// State is the tagged union over the five per-algorithm states. Exactly one
// variant pointer is set, selected by alg.
type State struct {
	alg   Algorithm
	g     *core.Graph
	start core.NodeID
	opts  Options
	steps int

	bfs     *bfs.State
	dfs     *dfs.State
	dij     *dijkstra.State
	prim    *prim_kruskal.PrimState
	kruskal *prim_kruskal.KruskalState
}

// Initialize builds the initial state for alg over g.
//
// Steps:
//  1. Reject a nil graph and an invalid tag.
//  2. Check start, and end when alg.NeedsEnd(), against g.
//  3. Freeze g; it is shared read-only from here on.
//  4. Delegate to the algorithm constructor.
//
// Errors: ErrGraphNil, ErrUnknownAlgorithm, ErrInvalidNode, ErrEndRequired.
func Initialize(alg Algorithm, g *core.Graph, start core.NodeID, opts ...Option) (*State, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %d", ErrInvalidNode, start)
	}
	if alg.NeedsEnd() {
		if !o.HasEnd {
			return nil, ErrEndRequired
		}
		if !g.HasNode(o.End) {
			return nil, fmt.Errorf("%w: end %d", ErrInvalidNode, o.End)
		}
	}
	g.Freeze()

	s := &State{alg: alg, g: g, start: start, opts: o}
	var err error
	switch alg {
	case BFS:
		s.bfs, err = bfs.New(g, start)
	case DFS:
		s.dfs, err = dfs.New(g, start)
	case Dijkstra:
		s.dij, err = dijkstra.New(g, start, o.End)
	case Prim:
		s.prim, err = prim_kruskal.NewPrim(g, start)
	case Kruskal:
		s.kruskal, err = prim_kruskal.NewKruskal(g)
	}
	if err != nil {
		return nil, fmt.Errorf("stepper: initialize %v: %w", alg, err)
	}

	return s, nil
}

// Step advances the run by one unit of work and returns the next State, the
// snapshot to render and whether the run has terminated. The receiver is not
// modified. On a done State the receiver itself is returned with its
// snapshot and true.
func (s *State) Step() (*State, core.Snapshot, bool) {
	if s.Done() {
		return s, s.Snapshot(), true
	}

	n := *s
	n.steps++
	var (
		snap core.Snapshot
		done bool
	)
	switch s.alg {
	case BFS:
		n.bfs, snap, done = s.bfs.Step(s.g)
	case DFS:
		n.dfs, snap, done = s.dfs.Step(s.g)
	case Dijkstra:
		n.dij, snap, done = s.dij.Step(s.g)
	case Prim:
		n.prim, snap, done = s.prim.Step(s.g)
	case Kruskal:
		n.kruskal, snap, done = s.kruskal.Step(s.g)
	default:
		panic(fmt.Sprintf("stepper: step on %v", s.alg))
	}

	return &n, snap, done
}

// Done reports whether the run has terminated.
func (s *State) Done() bool {
	switch s.alg {
	case BFS:
		return s.bfs.Done()
	case DFS:
		return s.dfs.Done()
	case Dijkstra:
		return s.dij.Done()
	case Prim:
		return s.prim.Done()
	case Kruskal:
		return s.kruskal.Done()
	default:
		panic(fmt.Sprintf("stepper: done on %v", s.alg))
	}
}

// PC returns the pseudocode line index of the last executed line.
func (s *State) PC() int {
	switch s.alg {
	case BFS:
		return s.bfs.PC()
	case DFS:
		return s.dfs.PC()
	case Dijkstra:
		return s.dij.PC()
	case Prim:
		return s.prim.PC()
	case Kruskal:
		return s.kruskal.PC()
	default:
		panic(fmt.Sprintf("stepper: pc on %v", s.alg))
	}
}

// Snapshot returns the rendering projection of the current state.
func (s *State) Snapshot() core.Snapshot {
	switch s.alg {
	case BFS:
		return s.bfs.Snapshot()
	case DFS:
		return s.dfs.Snapshot()
	case Dijkstra:
		return s.dij.Snapshot()
	case Prim:
		return s.prim.Snapshot()
	case Kruskal:
		return s.kruskal.Snapshot()
	default:
		panic(fmt.Sprintf("stepper: snapshot on %v", s.alg))
	}
}

// Line returns the pseudocode text at PC.
func (s *State) Line() string {
	l, _ := Line(s.alg, s.PC())

	return l
}

// Algorithm returns the run's tag.
func (s *State) Algorithm() Algorithm { return s.alg }

// Graph returns the frozen graph the run operates on.
func (s *State) Graph() *core.Graph { return s.g }

// Start returns the start node passed to Initialize.
func (s *State) Start() core.NodeID { return s.start }

// End returns the end node, if one was given.
func (s *State) End() (core.NodeID, bool) { return s.opts.End, s.opts.HasEnd }

// Steps returns how many non-idempotent steps led to this state.
func (s *State) Steps() int { return s.steps }

// BFS returns the BFS variant, or nil for other runs.
func (s *State) BFS() *bfs.State { return s.bfs }

// DFS returns the DFS variant, or nil for other runs.
func (s *State) DFS() *dfs.State { return s.dfs }

// Dijkstra returns the Dijkstra variant, or nil for other runs.
func (s *State) Dijkstra() *dijkstra.State { return s.dij }

// Prim returns the Prim variant, or nil for other runs.
func (s *State) Prim() *prim_kruskal.PrimState { return s.prim }

// Kruskal returns the Kruskal variant, or nil for other runs.
func (s *State) Kruskal() *prim_kruskal.KruskalState { return s.kruskal }
