// Package bfs implements the breadth-first step function.
package bfs

import (
	"github.com/katalvlaran/stepviz/core"
)

// New validates the inputs and returns the initial BFS state:
// queue [start], visited {start}, program counter at LineInitVisited.
//
// Steps:
//  1. Validate graph != nil and start ∈ V.
//  2. Mark start visited and enqueue it.
//
// Complexity: O(1) beyond the O(V) allocation.
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
		queue:   make([]core.NodeID, 0, n),
		pc:      LineInitVisited,
	}
	s.visit(start)

	return s, nil
}

// visit marks id visited and enqueues it.
func (s *State) visit(id core.NodeID) {
	s.visited[id] = true
	s.order = append(s.order, id)
	s.queue = append(s.queue, id)
}

// Step advances the traversal by one unit of work. The receiver is left
// untouched; the returned State reflects the transition. On a done state the
// receiver itself is returned together with done=true.
//
// Steps:
//  1. If a node is current, examine its next neighbor: enqueue it when
//     unvisited (LineEnqueue), otherwise report LineIfNotVisited.
//  2. If the queue is empty, terminate at LineReturn.
//  3. Dequeue the next frontier node and make it current (LineDequeue).
//
// Complexity: O(V) per call for the clone; V + 2E + 1 calls reach done.
func (s *State) Step(g *core.Graph) (*State, core.Snapshot, bool) {
	if s.done {
		return s, s.Snapshot(), true
	}
	n := s.clone()

	// (b) examine one neighbor of the current node
	if n.hasCurrent {
		arcs := g.MustNeighbors(n.current)
		if n.next < len(arcs) {
			v := arcs[n.next].To
			n.next++
			if n.visited[v] {
				n.pc = LineIfNotVisited
			} else {
				n.visit(v)
				n.pc = LineEnqueue
			}

			return n, n.Snapshot(), false
		}
		n.hasCurrent = false
	}

	// loop exit
	if len(n.queue) == 0 {
		n.done = true
		n.pc = LineReturn

		return n, n.Snapshot(), true
	}

	// (a) dequeue the next frontier node
	n.current = n.queue[0]
	n.queue = n.queue[1:]
	n.hasCurrent = true
	n.next = 0
	n.pc = LineDequeue

	return n, n.Snapshot(), false
}
