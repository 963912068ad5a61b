// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: Snapshot, the read-only per-step rendering payload.
// Snapshots share no storage with algorithm state: NewSnapshot copies every
// input slice, so a renderer may keep or modify what it receives.

package core

import "sort"

// Snapshot is the projection of algorithm progress emitted after every step.
//
//	Highlighted - set of emphasized nodes, ascending, no duplicates.
//	Path        - node path; consecutive pairs form the path edges.
//	TreeEdges   - edges of the (partial) spanning tree, in algorithm order.
type Snapshot struct {
	Highlighted []NodeID `json:"highlighted" msgpack:"highlighted"`
	Path        []NodeID `json:"path" msgpack:"path"`
	TreeEdges   []Edge   `json:"treeEdges" msgpack:"treeEdges"`
}

// NewSnapshot builds a normalized Snapshot. highlighted is sorted and
// de-duplicated; path and tree are copied as given. Nil inputs become empty
// slices so equal progress always encodes identically.
func NewSnapshot(highlighted []NodeID, path []NodeID, tree []Edge) Snapshot {
	hl := make([]NodeID, 0, len(highlighted))
	hl = append(hl, highlighted...)
	sort.Slice(hl, func(i, j int) bool { return hl[i] < hl[j] })
	// in-place dedup of the sorted slice
	w := 0
	for i, id := range hl {
		if i > 0 && id == hl[w-1] {
			continue
		}
		hl[w] = id
		w++
	}
	hl = hl[:w]

	p := make([]NodeID, len(path))
	copy(p, path)
	te := make([]Edge, len(tree))
	copy(te, tree)

	return Snapshot{Highlighted: hl, Path: p, TreeEdges: te}
}

// IsHighlighted reports whether id is in the highlighted set.
func (s Snapshot) IsHighlighted(id NodeID) bool {
	i := sort.Search(len(s.Highlighted), func(i int) bool { return s.Highlighted[i] >= id })

	return i < len(s.Highlighted) && s.Highlighted[i] == id
}

// OnPath reports whether id is one of the path nodes.
func (s Snapshot) OnPath(id NodeID) bool {
	for _, p := range s.Path {
		if p == id {
			return true
		}
	}

	return false
}

// PathEdges returns the consecutive node pairs of Path as edges. Weights are
// left zero because the path carries node ids only.
func (s Snapshot) PathEdges() []Edge {
	if len(s.Path) < 2 {
		return []Edge{}
	}
	out := make([]Edge, 0, len(s.Path)-1)
	for i := 1; i < len(s.Path); i++ {
		out = append(out, Edge{U: s.Path[i-1], V: s.Path[i]})
	}

	return out
}

// PathIncludes reports whether e (in either orientation) joins two
// consecutive path nodes.
func (s Snapshot) PathIncludes(e Edge) bool {
	for i := 1; i < len(s.Path); i++ {
		if e.Same(Edge{U: s.Path[i-1], V: s.Path[i]}) {
			return true
		}
	}

	return false
}

// InTree reports whether e (in either orientation) is a tree edge.
func (s Snapshot) InTree(e Edge) bool {
	for _, t := range s.TreeEdges {
		if e.Same(t) {
			return true
		}
	}

	return false
}

// TreeWeight returns the sum of TreeEdges weights.
func (s Snapshot) TreeWeight() int64 {
	var total int64
	for _, e := range s.TreeEdges {
		total += e.W
	}

	return total
}
