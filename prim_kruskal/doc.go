// SPDX-License-Identifier: MIT

// Package prim_kruskal exposes the two classic minimum spanning tree
// algorithms as resumable step functions over an undirected, weighted
// *core.Graph.
//
// What & Why
//
//   - PrimState grows one tree from a root. Each step either relaxes one
//     edge into a node outside the tree (key[v] ← w, parent[v] ← u), or
//     extracts the cheapest outside node (ties go to the lowest id), adds it
//     to the tree and scans its edges up to the first relaxation.
//
//   - KruskalState walks the edge list in non-decreasing weight order. The
//     sort is stable, so equal weights keep insertion order. Each step
//     considers exactly one edge: it joins the tree when its endpoints sit in
//     different DisjointSet components and is skipped otherwise.
//
// Both runs terminate on every graph. On a disconnected graph Prim restarts
// from each unreachable node it extracts at key ∞, so both produce a
// minimum spanning forest; Tree reports ErrDisconnected in that case.
//
// Snapshots carry the tree built so far as TreeEdges and highlight the nodes
// touched by the last step.
//
// Complexity per step:
//
//   - Prim: O(|Q|) for the linear extract-min plus O(deg u) for the scan.
//   - Kruskal: O(α(V)) amortized for Find/Union, after an O(E log E) sort in
//     NewKruskal.
//
// Every step clones its state, so history and undo are trivial at the cost of
// O(V + E) copying per step.
package prim_kruskal
