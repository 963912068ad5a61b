// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph model types, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadWeight indicates an edge weight outside [MinWeight, MaxWeight].
	ErrBadWeight = errors.New("core: edge weight out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrFrozen indicates a mutation of a graph that has already been frozen.
	ErrFrozen = errors.New("core: graph is frozen")

	// ErrInvariant indicates a broken Graph Model invariant observed at run time.
	ErrInvariant = errors.New("core: graph invariant violated")
)

// Admissible edge weights are MinWeight..MaxWeight inclusive. MaxWeight keeps
// any sum of weights along a simple path, or over a spanning tree, below
// math.MaxInt64 for every graph that fits in memory.
const (
	MinWeight int64 = 1
	MaxWeight int64 = math.MaxInt32
)

// NodeID uniquely identifies a node within its Graph.
type NodeID int

// Edge is an undirected, weighted connection between U and V.
type Edge struct {
	U NodeID `json:"u" msgpack:"u"`
	V NodeID `json:"v" msgpack:"v"`
	W int64  `json:"w" msgpack:"w"`
}

// Other returns the endpoint of e opposite to id.
func (e Edge) Other(id NodeID) NodeID {
	if e.U == id {
		return e.V
	}

	return e.U
}

// Same reports whether e and o connect the same unordered pair of nodes.
func (e Edge) Same(o Edge) bool {
	return (e.U == o.U && e.V == o.V) || (e.U == o.V && e.V == o.U)
}

// Arc is one adjacency entry: the far endpoint and the edge weight.
type Arc struct {
	To NodeID `json:"to" msgpack:"to"`
	W  int64  `json:"w" msgpack:"w"`
}

// Graph is the in-memory undirected weighted graph.
//
// mu protects nodes, edges and adjacency. Once frozen is set the graph
// never changes again.
type Graph struct {
	mu sync.RWMutex

	frozen bool

	nodes     map[NodeID]struct{} // node index
	edges     []Edge              // insertion order
	adjacency map[NodeID][]Arc    // node → arcs in insertion order
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[NodeID]struct{}),
		adjacency: make(map[NodeID][]Arc),
	}
}
