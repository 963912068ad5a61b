// SPDX-License-Identifier: MIT

// Package core provides the immutable-once-frozen Graph model shared by every
// step function, plus the Snapshot value handed to renderers after each step.
//
// The Graph G = (V,E) is always undirected and positively weighted:
//
//   - Nodes are identified by unique integer ids (NodeID).
//   - Every Edge{U,V,W} implies the reciprocal arcs U→V and V→U.
//   - Weights are integers in [MinWeight, MaxWeight] = [1, 2³¹-1]; AddEdge
//     rejects anything else with ErrBadWeight.
//   - Self-loops and parallel edges are rejected (ErrLoopNotAllowed,
//     ErrMultiEdgeNotAllowed).
//
// Lifecycle:
//
//	g := core.NewGraph()
//	_ = g.AddEdge(0, 1, 4) // build phase: AddNode / AddEdge
//	g.Freeze()             // run phase: read-only, mutations return ErrFrozen
//
// Determinism:
//
//   - Nodes() returns ids in ascending order.
//   - Edges() returns edges in insertion order.
//   - Neighbors(u) returns arcs in the order the edges were added.
//
// Because every algorithm walks Neighbors in that fixed order, identical build
// sequences always yield identical step sequences.
//
// Concurrency:
//
//	A single sync.RWMutex guards the node index, edge list and adjacency. A frozen
//	graph may be read from any number of goroutines.
//
// Errors:
//
//	ErrNodeNotFound        - requested node does not exist.
//	ErrBadWeight           - edge weight outside [MinWeight, MaxWeight].
//	ErrLoopNotAllowed      - edge from a node to itself.
//	ErrMultiEdgeNotAllowed - a second edge between the same pair of nodes.
//	ErrFrozen              - mutation attempted after Freeze.
//	ErrInvariant           - adjacency lookup failed for a node a step function
//	                         referenced; raised as a panic by MustNeighbors.
package core
