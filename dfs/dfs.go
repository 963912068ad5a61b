// Package dfs implements the depth-first step function.
package dfs

import (
	"github.com/katalvlaran/stepviz/core"
)

// New validates the inputs and returns the initial DFS state:
// visited {start}, stack [(start, 0)], program counter at LineInitStack.
func New(g *core.Graph, start core.NodeID) (*State, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.NodeCount()
	s := &State{
		start:   start,
		visited: make(map[core.NodeID]bool, n),
		order:   make([]core.NodeID, 0, n),
		stack:   make([]Frame, 0, n),
		pc:      LineInitStack,
	}
	s.discover(start)

	return s, nil
}

// discover marks id visited and pushes its fresh frame.
func (s *State) discover(id core.NodeID) {
	s.visited[id] = true
	s.order = append(s.order, id)
	s.stack = append(s.stack, Frame{Node: id})
}

// Step pops one frame and examines at most one neighbor. The receiver is
// left untouched; on a done state the receiver itself is returned.
//
// Steps:
//  1. Empty stack: terminate at LineReturn.
//  2. Pop the top frame; an exhausted frame stays popped (LineHasNeighbor).
//  3. Push the frame back with its cursor advanced, then discover the
//     neighbor (LinePushNeighbor) or skip it (LineIfNotVisited).
//
// Complexity: O(V + stack) per call for the clone.
func (s *State) Step(g *core.Graph) (*State, core.Snapshot, bool) {
	if s.done {
		return s, s.Snapshot(), true
	}
	n := s.clone()

	if len(n.stack) == 0 {
		n.done = true
		n.pc = LineReturn

		return n, n.Snapshot(), true
	}

	top := n.stack[len(n.stack)-1]
	n.stack = n.stack[:len(n.stack)-1]

	arcs := g.MustNeighbors(top.Node)
	if top.Next >= len(arcs) {
		// frame exhausted: it stays popped
		n.pc = LineHasNeighbor

		return n, n.Snapshot(), false
	}

	n.stack = append(n.stack, Frame{Node: top.Node, Next: top.Next + 1})
	v := arcs[top.Next].To
	if n.visited[v] {
		n.pc = LineIfNotVisited

		return n, n.Snapshot(), false
	}
	n.discover(v)
	n.pc = LinePushNeighbor

	return n, n.Snapshot(), false
}
