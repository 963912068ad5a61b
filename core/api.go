// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only queries. Every function takes the read lock and returns
// copies, so callers can never reach into the graph's storage.

package core

import (
	"fmt"
	"sort"
)

// HasNode reports whether id exists.
// Complexity: O(1)
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// Nodes returns all node ids in ascending order.
// Complexity: O(V log V)
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Neighbors returns the arcs leaving id, in edge insertion order.
// Returns ErrNodeNotFound if id is absent.
// Complexity: O(deg(id))
func (g *Graph) Neighbors(id NodeID) ([]Arc, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	arcs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	out := make([]Arc, len(arcs))
	copy(out, arcs)

	return out, nil
}

// MustNeighbors is Neighbors for callers that already proved id exists.
// A missing adjacency entry means the Graph Model invariant is broken, so it
// panics with an error wrapping ErrInvariant.
func (g *Graph) MustNeighbors(id NodeID) []Arc {
	arcs, err := g.Neighbors(id)
	if err != nil {
		panic(fmt.Errorf("%w: %v", ErrInvariant, err))
	}

	return arcs
}

// Degree returns the number of arcs leaving id (0 for unknown ids).
func (g *Graph) Degree(id NodeID) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}
