// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/stepviz/core"
)

// KruskalState is one immutable configuration of Kruskal's algorithm.
type KruskalState struct {
	nodes  int
	sorted []core.Edge
	next   int
	dsu    *DisjointSet
	mst    []core.Edge

	focus []core.NodeID

	pc   int
	done bool
}

// NewKruskal sorts the edges by weight and places every node in its own set.
//
// Steps:
//  1. Validate graph != nil.
//  2. Copy graph.Edges() (insertion order) and sort.SliceStable by W, so
//     equal weights keep their original order.
//  3. make-set for every node; the program counter rests on KruskalLineMakeSet.
func NewKruskal(g *core.Graph) (*KruskalState, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].W < edges[j].W
	})
	nodes := g.Nodes()

	return &KruskalState{
		nodes:  len(nodes),
		sorted: edges,
		dsu:    NewDisjointSet(nodes...),
		mst:    make([]core.Edge, 0, len(nodes)),
		pc:     KruskalLineMakeSet,
	}, nil
}

func (s *KruskalState) clone() *KruskalState {
	n := *s
	n.dsu = s.dsu.Clone()
	n.mst = append(make([]core.Edge, 0, cap(s.mst)), s.mst...)
	n.focus = nil

	return &n
}

// Step considers exactly one edge, or terminates once every edge has been
// seen. The receiver is never mutated; on a done state it is returned as is.
// The graph argument is unused: the sorted edge list is captured by NewKruskal.
func (s *KruskalState) Step(_ *core.Graph) (*KruskalState, core.Snapshot, bool) {
	if s.done {
		return s, s.Snapshot(), true
	}

	n := s.clone()
	if n.next >= len(n.sorted) {
		n.done = true
		n.pc = KruskalLineReturn

		return n, n.Snapshot(), true
	}

	e := n.sorted[n.next]
	n.next++
	n.focus = []core.NodeID{e.U, e.V}
	if n.dsu.Union(e.U, e.V) {
		n.mst = append(n.mst, e)
		n.pc = KruskalLineAddTree
	} else {
		n.pc = KruskalLineIfDisjoint
	}

	return n, n.Snapshot(), false
}

// PC returns the current pseudocode line.
func (s *KruskalState) PC() int { return s.pc }

// Done reports whether every sorted edge has been considered.
func (s *KruskalState) Done() bool { return s.done }

// SortedEdges returns a copy of the edge list in processing order.
func (s *KruskalState) SortedEdges() []core.Edge {
	return append([]core.Edge(nil), s.sorted...)
}

// NextEdgeIndex returns the index of the next edge to consider.
func (s *KruskalState) NextEdgeIndex() int { return s.next }

// TreeEdges returns the accepted edges in acceptance order.
func (s *KruskalState) TreeEdges() []core.Edge {
	return append([]core.Edge(nil), s.mst...)
}

// Components returns the number of disjoint sets.
func (s *KruskalState) Components() int { return s.dsu.Sets() }

// DisjointSet returns a copy of the union-find forest.
func (s *KruskalState) DisjointSet() *DisjointSet { return s.dsu.Clone() }

// Tree mirrors PrimState.Tree.
func (s *KruskalState) Tree() ([]core.Edge, int64, error) {
	if !s.done {
		return nil, 0, ErrNotDone
	}
	edges := s.TreeEdges()
	if s.nodes > 1 && len(edges) < s.nodes-1 {
		return edges, treeWeight(edges), ErrDisconnected
	}

	return edges, treeWeight(edges), nil
}

// Snapshot highlights the endpoints of the last edge considered and carries
// the accepted edges.
func (s *KruskalState) Snapshot() core.Snapshot {
	return core.NewSnapshot(s.focus, nil, s.mst)
}
