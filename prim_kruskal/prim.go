// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/stepviz/core"
)

// parentRef is one parent[] entry; ok == false means null.
type parentRef struct {
	id core.NodeID
	ok bool
}

// PrimState is one immutable configuration of Prim's algorithm.
type PrimState struct {
	root  core.NodeID
	nodes int

	key       map[core.NodeID]int64
	parent    map[core.NodeID]parentRef
	inTree    map[core.NodeID]bool
	unvisited map[core.NodeID]struct{}

	current    core.NodeID
	hasCurrent bool
	next       int

	focus []core.NodeID

	pc   int
	done bool
}

// NewPrim validates root and returns the initial state: every node in Q with
// key ∞ except root at 0, program counter at PrimLineInitQueue.
func NewPrim(g *core.Graph, root core.NodeID) (*PrimState, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(root) {
		return nil, ErrRootNotFound
	}

	nodes := g.Nodes()
	s := &PrimState{
		root:      root,
		nodes:     len(nodes),
		key:       make(map[core.NodeID]int64, len(nodes)),
		parent:    make(map[core.NodeID]parentRef, len(nodes)),
		inTree:    make(map[core.NodeID]bool, len(nodes)),
		unvisited: make(map[core.NodeID]struct{}, len(nodes)),
		focus:     []core.NodeID{root},
		pc:        PrimLineInitQueue,
	}
	for _, id := range nodes {
		s.key[id] = Infinity
		s.unvisited[id] = struct{}{}
	}
	s.key[root] = 0

	return s, nil
}

func (s *PrimState) clone() *PrimState {
	n := *s
	n.key = make(map[core.NodeID]int64, len(s.key))
	for k, v := range s.key {
		n.key[k] = v
	}
	n.parent = make(map[core.NodeID]parentRef, len(s.parent))
	for k, v := range s.parent {
		n.parent[k] = v
	}
	n.inTree = make(map[core.NodeID]bool, len(s.inTree))
	for k, v := range s.inTree {
		n.inTree[k] = v
	}
	n.unvisited = make(map[core.NodeID]struct{}, len(s.unvisited))
	for k := range s.unvisited {
		n.unvisited[k] = struct{}{}
	}
	n.focus = nil

	return &n
}

// Step advances Prim by one unit of work without mutating the receiver. On a
// done state the receiver is returned with done=true.
//
// Steps:
//  1. Resume the edge scan of the current node; stop on the first relaxation.
//  2. If Q is empty, terminate.
//  3. Extract the cheapest node of Q into the tree and scan its edges.
func (s *PrimState) Step(g *core.Graph) (*PrimState, core.Snapshot, bool) {
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
		n.done = true
		n.pc = PrimLineReturn

		return n, n.Snapshot(), true
	}

	u := n.extractMin()
	delete(n.unvisited, u)
	n.inTree[u] = true
	n.current, n.hasCurrent, n.next = u, true, 0
	if !n.scan(g) {
		n.hasCurrent = false
		n.focus = []core.NodeID{u}
		n.pc = PrimLineForEach
	}

	return n, n.Snapshot(), false
}

// extractMin picks the lowest key in Q, lowest id on ties.
func (s *PrimState) extractMin() core.NodeID {
	var (
		best  core.NodeID
		bestK int64
		found bool
	)
	for id := range s.unvisited {
		k := s.key[id]
		if !found || k < bestK || (k == bestK && id < best) {
			best, bestK, found = id, k, true
		}
	}

	return best
}

// scan relaxes at most one edge of the current node into the outside set.
func (s *PrimState) scan(g *core.Graph) bool {
	u := s.current
	arcs := g.MustNeighbors(u)
	for s.next < len(arcs) {
		a := arcs[s.next]
		s.next++
		kv, ok := s.key[a.To]
		if !ok {
			panic(fmt.Errorf("%w: prim: arc %d->%d leaves the node set", core.ErrInvariant, u, a.To))
		}
		if !s.inTree[a.To] && a.W < kv {
			s.key[a.To] = a.W
			s.parent[a.To] = parentRef{id: u, ok: true}
			s.focus = []core.NodeID{u, a.To}
			s.pc = PrimLineSetParent

			return true
		}
	}

	return false
}

// Root returns the start node.
func (s *PrimState) Root() core.NodeID { return s.root }

// PC returns the current pseudocode line.
func (s *PrimState) PC() int { return s.pc }

// Done reports whether Q is exhausted.
func (s *PrimState) Done() bool { return s.done }

// Key returns key[id] and whether id is a node of the graph.
func (s *PrimState) Key(id core.NodeID) (int64, bool) {
	k, ok := s.key[id]

	return k, ok
}

// Parent returns parent[id], if set.
func (s *PrimState) Parent(id core.NodeID) (core.NodeID, bool) {
	p := s.parent[id]

	return p.id, p.ok
}

// InTree reports whether id has been extracted into the tree.
func (s *PrimState) InTree(id core.NodeID) bool { return s.inTree[id] }

// Unvisited returns the nodes still in Q, ascending.
func (s *PrimState) Unvisited() []core.NodeID {
	out := make([]core.NodeID, 0, len(s.unvisited))
	for id := range s.unvisited {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// TreeEdges returns {(parent[v], v, key[v])} for tree nodes with a parent,
// ordered by v.
func (s *PrimState) TreeEdges() []core.Edge {
	out := make([]core.Edge, 0, len(s.inTree))
	for v, in := range s.inTree {
		if !in {
			continue
		}
		if p := s.parent[v]; p.ok {
			out = append(out, core.Edge{U: p.id, V: v, W: s.key[v]})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].V < out[j].V })

	return out
}

// Tree returns the final tree and its weight. It fails with ErrNotDone before
// termination and with ErrDisconnected, alongside the forest, when the graph
// has more than one component.
func (s *PrimState) Tree() ([]core.Edge, int64, error) {
	if !s.done {
		return nil, 0, ErrNotDone
	}
	edges := s.TreeEdges()
	if s.nodes > 1 && len(edges) < s.nodes-1 {
		return edges, treeWeight(edges), ErrDisconnected
	}

	return edges, treeWeight(edges), nil
}

// Snapshot highlights the nodes touched by the last step and carries the
// tree grown so far.
func (s *PrimState) Snapshot() core.Snapshot {
	return core.NewSnapshot(s.focus, nil, s.TreeEdges())
}
