// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/stepviz/core"
)

// DisjointSet is a union-find forest over node ids with path compression and
// union by rank. The zero value is not usable; call NewDisjointSet.
//
// Find compresses paths, so even read-only use mutates the structure. A
// DisjointSet must not be shared between goroutines without external locking.
type DisjointSet struct {
	parent map[core.NodeID]core.NodeID
	rank   map[core.NodeID]int
	sets   int
}

// NewDisjointSet returns a forest with one singleton set per id.
func NewDisjointSet(ids ...core.NodeID) *DisjointSet {
	d := &DisjointSet{
		parent: make(map[core.NodeID]core.NodeID, len(ids)),
		rank:   make(map[core.NodeID]int, len(ids)),
	}
	for _, id := range ids {
		d.MakeSet(id)
	}

	return d
}

// MakeSet adds x as a singleton. It is a no-op when x is already present.
func (d *DisjointSet) MakeSet(x core.NodeID) {
	if _, ok := d.parent[x]; ok {
		return
	}
	d.parent[x] = x
	d.rank[x] = 0
	d.sets++
}

// Contains reports whether x has been added.
func (d *DisjointSet) Contains(x core.NodeID) bool {
	_, ok := d.parent[x]

	return ok
}

// Find returns the representative of x's set. It panics when x was never
// added, since every caller passes ids taken from the same graph.
func (d *DisjointSet) Find(x core.NodeID) core.NodeID {
	if _, ok := d.parent[x]; !ok {
		panic(fmt.Errorf("%w: prim_kruskal: find on unknown element %d", core.ErrInvariant, x))
	}
	// iterative path halving
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets of x and y and reports whether they were disjoint.
func (d *DisjointSet) Union(x, y core.NodeID) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.sets--

	return true
}

// Connected reports whether x and y share a set.
func (d *DisjointSet) Connected(x, y core.NodeID) bool {
	return d.Find(x) == d.Find(y)
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Sets returns the number of disjoint sets.
func (d *DisjointSet) Sets() int { return d.sets }

// Clone returns an independent deep copy.
func (d *DisjointSet) Clone() *DisjointSet {
	c := &DisjointSet{
		parent: make(map[core.NodeID]core.NodeID, len(d.parent)),
		rank:   make(map[core.NodeID]int, len(d.rank)),
		sets:   d.sets,
	}
	for k, v := range d.parent {
		c.parent[k] = v
	}
	for k, v := range d.rank {
		c.rank[k] = v
	}

	return c
}
