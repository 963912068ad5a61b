// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Build-phase mutation (AddNode, AddEdge) and the Freeze transition.

package core

import "fmt"

// AddNode inserts id into the graph. Adding an existing id is a no-op.
// Returns ErrFrozen after Freeze.
// Complexity: O(1)
func (g *Graph) AddNode(id NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	g.addNodeLocked(id)

	return nil
}

// addNodeLocked registers id; caller must hold g.mu for writing.
func (g *Graph) addNodeLocked(id NodeID) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = struct{}{}
	g.adjacency[id] = nil
}

// AddEdge adds the undirected edge u-v with weight w, auto-adding both
// endpoints. Reciprocal arcs are appended to adjacency[u] and adjacency[v].
//
// Errors (checked in this order):
//   - ErrFrozen              if Freeze has been called.
//   - ErrBadWeight           if w < MinWeight or w > MaxWeight.
//   - ErrLoopNotAllowed      if u == v.
//   - ErrMultiEdgeNotAllowed if u-v already exists.
//
// Complexity: O(deg(u)) for the parallel-edge check.
func (g *Graph) AddEdge(u, v NodeID, w int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	if w < MinWeight || w > MaxWeight {
		return fmt.Errorf("%w: %d—%d weight=%d", ErrBadWeight, u, v, w)
	}
	if u == v {
		return fmt.Errorf("%w: node %d", ErrLoopNotAllowed, u)
	}
	for _, a := range g.adjacency[u] {
		if a.To == v {
			return fmt.Errorf("%w: %d—%d", ErrMultiEdgeNotAllowed, u, v)
		}
	}

	g.addNodeLocked(u)
	g.addNodeLocked(v)
	g.edges = append(g.edges, Edge{U: u, V: v, W: w})
	g.adjacency[u] = append(g.adjacency[u], Arc{To: v, W: w})
	g.adjacency[v] = append(g.adjacency[v], Arc{To: u, W: w})

	return nil
}

// Freeze marks the graph immutable. Calling Freeze more than once is harmless.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}
