// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/stepviz/core"
)

// New validates start and end and returns the initial state: every node in Q
// with dist ∞ except start at 0, program counter at LineInitQueue.
//
// Steps:
//  1. Validate graph != nil, start ∈ V and end ∈ V.
//  2. dist[v] = Infinity for every v, then dist[start] = 0.
//
// Complexity: O(V).
func New(g *core.Graph, start, end core.NodeID) (*State, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, ErrStartVertexNotFound
	}
	if !g.HasNode(end) {
		return nil, ErrEndVertexNotFound
	}

	nodes := g.Nodes()
	s := &State{
		start:     start,
		end:       end,
		dist:      make(map[core.NodeID]int64, len(nodes)),
		prev:      make(map[core.NodeID]pred, len(nodes)),
		unvisited: make(map[core.NodeID]struct{}, len(nodes)),
		focus:     []core.NodeID{start},
		pc:        LineInitQueue,
	}
	for _, id := range nodes {
		s.dist[id] = Infinity
		s.unvisited[id] = struct{}{}
	}
	s.dist[start] = 0

	return s, nil
}

// Step advances the run by one unit of work. The receiver is never mutated.
// On a done state the receiver itself is returned with done=true.
//
// Steps:
//  1. Resume the edge scan of the current node; stop on the first
//     relaxation dist[u] + w < dist[v].
//  2. If Q is empty, rebuild the start→end path and terminate.
//  3. Extract the node of Q with the smallest dist and scan its edges.
//
// Complexity: O(V) per call for the clone and the linear extract-min.
// Sums stay below Infinity because edge weights are at most core.MaxWeight.
func (s *State) Step(g *core.Graph) (*State, core.Snapshot, bool) {
	if s.done {
		return s, s.Snapshot(), true
	}

	n := s.clone()
	if n.hasCurrent {
		if n.scan(g) {
			return n, n.Snapshot(), false
		}
		n.hasCurrent = false
	}

	if len(n.unvisited) == 0 {
		n.finish(g)

		return n, n.Snapshot(), true
	}

	u := n.extractMin()
	delete(n.unvisited, u)
	n.current, n.hasCurrent, n.next = u, true, 0
	if !n.scan(g) {
		n.hasCurrent = false
		n.focus = []core.NodeID{u}
		n.pc = LineForEach
	}

	return n, n.Snapshot(), false
}

// extractMin returns the node in Q with the smallest dist, lowest id on ties.
// Q must be non-empty.
func (s *State) extractMin() core.NodeID {
	var (
		best  core.NodeID
		bestD int64
		found bool
	)
	for id := range s.unvisited {
		d := s.dist[id]
		if !found || d < bestD || (d == bestD && id < best) {
			best, bestD, found = id, d, true
		}
	}

	return best
}

// scan resumes the edge cursor of the current node and stops after the first
// relaxation, reporting whether one happened. Nodes at ∞ relax nothing.
func (s *State) scan(g *core.Graph) bool {
	u := s.current
	arcs := g.MustNeighbors(u)
	du := s.dist[u]
	if du == Infinity {
		s.next = len(arcs)

		return false
	}
	for s.next < len(arcs) {
		a := arcs[s.next]
		s.next++
		dv, ok := s.dist[a.To]
		if !ok {
			panic(fmt.Errorf("%w: dijkstra: arc %d->%d leaves the node set", core.ErrInvariant, u, a.To))
		}
		if alt := du + a.W; alt < dv {
			s.dist[a.To] = alt
			s.prev[a.To] = pred{id: u, ok: true}
			s.focus = []core.NodeID{u, a.To}
			s.pc = LineSetPrev

			return true
		}
	}

	return false
}

// finish marks the run done and rebuilds the start→end path.
func (s *State) finish(g *core.Graph) {
	s.done = true
	s.pc = LineReconstruct
	s.focus = nil
	s.path = s.reconstruct(g.NodeCount())
}

// reconstruct walks prev back from end. It returns nil when end is
// unreachable and [start] when end == start.
func (s *State) reconstruct(limit int) []core.NodeID {
	if s.dist[s.end] == Infinity {
		return nil
	}

	rev := []core.NodeID{s.end}
	for at := s.end; at != s.start; {
		p := s.prev[at]
		if !p.ok || len(rev) > limit {
			panic(fmt.Errorf("%w: dijkstra: broken prev chain at %d", core.ErrInvariant, at))
		}
		at = p.id
		rev = append(rev, at)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
