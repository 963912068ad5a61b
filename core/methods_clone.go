// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning. A clone is always mutable, even if the source is frozen,
// so callers can derive a new graph from one that is already running.

package core

// Clone returns a deep, unfrozen copy of g: nodes, edges and adjacency order.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	for id := range g.nodes {
		clone.nodes[id] = struct{}{}
	}
	clone.edges = make([]Edge, len(g.edges))
	copy(clone.edges, g.edges)
	for id, arcs := range g.adjacency {
		if arcs == nil {
			clone.adjacency[id] = nil
			continue
		}
		cp := make([]Arc, len(arcs))
		copy(cp, arcs)
		clone.adjacency[id] = cp
	}

	return clone
}
