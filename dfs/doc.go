// Package dfs exposes iterative depth-first search over a core.Graph as a
// resumable, single-step state machine.
//
// The recursive textbook procedure is reframed with an explicit stack of
// frames (node, nextNeighborIndex), so stack depth is bounded by the heap and
// every step fits the uniform step-function contract:
//
//   - pop the top frame (u, i);
//   - if adj[u] has an i-th neighbor v: push (u, i+1) back, then, if v is
//     unvisited, mark it visited and push (v, 0);
//   - otherwise the frame is finished and stays popped.
//
// A final step moves the program counter to LineReturn once the stack is
// empty; afterwards Step is a no-op returning done=true.
//
// Visitation order follows adjacency order and is not symmetric with BFS
// insertion order.
//
// Snapshot
//
//	Highlighted = the visited set. Path = the active stack, bottom to top,
//	which is the current root-to-tip DFS path.
//
// Complexity:
//
//   - Steps:  at most 2E + V + 1 (one per examined arc, one per exhausted frame, one final).
//   - Memory: O(V) for the visited set and frame stack.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if start is missing.
package dfs
