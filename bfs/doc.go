// Package bfs exposes breadth-first search over a core.Graph as a resumable,
// single-step state machine.
//
// What
//
//   - New(g, start) builds the initial State: queue [start], visited {start}.
//   - (*State).Step(g) performs exactly one unit of work and returns a NEW
//     State; the receiver is never modified.
//   - One unit of work is either
//     (a) dequeue the next frontier node and reset its neighbor cursor, or
//     (b) examine exactly one neighbor of the current node, marking and
//     enqueueing it when unvisited.
//   - A final step moves the program counter to LineReturn once the queue is
//     empty and the current node has no neighbors left; from then on Step is
//     a no-op that keeps returning done=true.
//
// Snapshot
//
//	Highlighted = the visited set. Path and TreeEdges stay empty.
//
// Determinism
//
//	Neighbors are examined in core adjacency order (edge insertion order), so
//	the same graph and start always produce the same step sequence.
//
// Progress
//
//	Each non-final step either shrinks the queue or advances the cursor, so a
//	run over V nodes and E edges finishes in at most V + 2E + 1 steps.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node does not exist.
package bfs
