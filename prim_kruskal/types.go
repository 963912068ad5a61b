// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"errors"
	"math"

	"github.com/katalvlaran/stepviz/core"
)

// ErrGraphNil indicates that a nil *core.Graph was passed to a constructor.
var ErrGraphNil = errors.New("prim_kruskal: graph is nil")

// ErrRootNotFound indicates that the Prim root is not a node of the graph.
var ErrRootNotFound = errors.New("prim_kruskal: root vertex not found")

// ErrNotDone is returned by Tree before the run has terminated.
var ErrNotDone = errors.New("prim_kruskal: run has not terminated")

// ErrDisconnected indicates that the graph is not connected, so the result is
// a spanning forest rather than a spanning tree. It applies when |V| > 1.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// Infinity is the key of a node with no known connection to the tree.
const Infinity int64 = math.MaxInt64

// Prim pseudocode line indexes.
const (
	PrimLineHeader = iota
	PrimLineInitKey
	PrimLineInitRoot
	PrimLineInitQueue
	PrimLineWhile
	PrimLineExtractMin
	PrimLineForEach
	PrimLineIfCheaper
	PrimLineSetKey
	PrimLineSetParent
	PrimLineReturn
)

var primListing = [...]string{
	PrimLineHeader:     "Prim(root):",
	PrimLineInitKey:    "  for each v: key[v] ← ∞, parent[v] ← null",
	PrimLineInitRoot:   "  key[root] ← 0",
	PrimLineInitQueue:  "  Q ← all nodes",
	PrimLineWhile:      "  while Q not empty:",
	PrimLineExtractMin: "    u ← extract-min(Q); inTree[u] ← true",
	PrimLineForEach:    "    for each (v, w) in adj[u]:",
	PrimLineIfCheaper:  "      if v not in tree and w < key[v]:",
	PrimLineSetKey:     "        key[v] ← w",
	PrimLineSetParent:  "        parent[v] ← u",
	PrimLineReturn:     "  return {(parent[v], v) : parent[v] ≠ null}",
}

// Kruskal pseudocode line indexes.
const (
	KruskalLineHeader = iota
	KruskalLineSort
	KruskalLineMakeSet
	KruskalLineForEach
	KruskalLineIfDisjoint
	KruskalLineUnion
	KruskalLineAddTree
	KruskalLineReturn
)

var kruskalListing = [...]string{
	KruskalLineHeader:     "Kruskal(G):",
	KruskalLineSort:       "  sort edges by weight",
	KruskalLineMakeSet:    "  for each v: make-set(v)",
	KruskalLineForEach:    "  for each (u, v, w) in sorted edges:",
	KruskalLineIfDisjoint: "    if find(u) ≠ find(v):",
	KruskalLineUnion:      "      union(u, v)",
	KruskalLineAddTree:    "      T ← T ∪ {(u, v)}",
	KruskalLineReturn:     "  return T",
}

// PrimPseudocode returns a copy of the Prim listing.
func PrimPseudocode() []string {
	out := make([]string, len(primListing))
	copy(out, primListing[:])

	return out
}

// KruskalPseudocode returns a copy of the Kruskal listing.
func KruskalPseudocode() []string {
	out := make([]string, len(kruskalListing))
	copy(out, kruskalListing[:])

	return out
}

// treeWeight sums the weights of edges.
func treeWeight(edges []core.Edge) int64 {
	var total int64
	for _, e := range edges {
		total += e.W
	}

	return total
}
