// SPDX-License-Identifier: MIT

// Package dijkstra exposes Dijkstra's single-source shortest path algorithm
// as a resumable step function over an undirected *core.Graph with positive
// integer weights.
//
// Each call to (*State).Step performs one of:
//
//   - one successful relaxation while scanning the current node's edges;
//   - an extract-min of the unvisited node with the smallest tentative
//     distance (ties go to the lowest id), followed by a scan of its edges
//     that stops at the first relaxation;
//   - the final step, taken once Q is empty, which rebuilds the start→end
//     path from the prev chain.
//
// A step whose scan relaxes nothing highlights only the extracted node.
// Extract-min is a linear scan over Q; at visualization scale a heap buys
// nothing and obscures the listing.
//
// When end is unreachable the run still terminates normally and the final
// Snapshot carries an empty Path. Callers check Reachable explicitly.
//
// Example:
//
//	s, _ := dijkstra.New(g, 0, 5)
//	for done := false; !done; {
//		s, _, done = s.Step(g)
//	}
//	fmt.Println(s.Path(), s.Reachable())
package dijkstra
