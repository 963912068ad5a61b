// Package bfs defines the BFS state, its pseudocode listing and sentinel errors.
package bfs

import (
	"errors"
	"sort"

	"github.com/katalvlaran/stepviz/core"
)

// Sentinel errors for BFS initialization.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// Pseudocode line indexes used as program counter values.
const (
	LineHeader = iota
	LineInitQueue
	LineInitVisited
	LineWhile
	LineDequeue
	LineForEach
	LineIfNotVisited
	LineMarkVisited
	LineEnqueue
	LineReturn
)

var listing = [...]string{
	LineHeader:       "BFS(start):",
	LineInitQueue:    "  queue ← [start]",
	LineInitVisited:  "  visited[start] ← true",
	LineWhile:        "  while queue not empty:",
	LineDequeue:      "    u ← queue.dequeue()",
	LineForEach:      "    for each v in adj[u]:",
	LineIfNotVisited: "      if not visited[v]:",
	LineMarkVisited:  "        visited[v] ← true",
	LineEnqueue:      "        queue.enqueue(v)",
	LineReturn:       "  return visited",
}

// Pseudocode returns a copy of the BFS listing indexed by the Line constants.
func Pseudocode() []string {
	out := make([]string, len(listing))
	copy(out, listing[:])

	return out
}

// State is one immutable BFS configuration.
type State struct {
	start core.NodeID

	visited map[core.NodeID]bool
	order   []core.NodeID // first-visit order
	queue   []core.NodeID

	current    core.NodeID
	hasCurrent bool
	next       int // index into adj[current] of the next neighbor to examine

	pc   int
	done bool
}

// clone returns a deep copy that Step may mutate freely.
func (s *State) clone() *State {
	n := *s
	n.visited = make(map[core.NodeID]bool, len(s.visited))
	for id := range s.visited {
		n.visited[id] = true
	}
	n.order = append(make([]core.NodeID, 0, len(s.order)+1), s.order...)
	n.queue = append(make([]core.NodeID, 0, len(s.queue)+1), s.queue...)

	return &n
}

// Start returns the start node.
func (s *State) Start() core.NodeID { return s.start }

// PC returns the current pseudocode line.
func (s *State) PC() int { return s.pc }

// Done reports whether the traversal has terminated.
func (s *State) Done() bool { return s.done }

// IsVisited reports whether id has been marked visited.
func (s *State) IsVisited(id core.NodeID) bool { return s.visited[id] }

// Visited returns the visited set in ascending order.
func (s *State) Visited() []core.NodeID {
	out := make([]core.NodeID, 0, len(s.visited))
	for id := range s.visited {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Order returns nodes in the order they were first visited.
func (s *State) Order() []core.NodeID {
	return append([]core.NodeID(nil), s.order...)
}

// Queue returns the current frontier, front first.
func (s *State) Queue() []core.NodeID {
	return append([]core.NodeID(nil), s.queue...)
}

// Current returns the node whose neighbors are being examined, if any.
func (s *State) Current() (core.NodeID, bool) { return s.current, s.hasCurrent }

// NeighborIndex returns the cursor into the current node's adjacency list.
func (s *State) NeighborIndex() int { return s.next }

// Snapshot projects the state for rendering: the visited set is highlighted.
func (s *State) Snapshot() core.Snapshot {
	return core.NewSnapshot(s.order, nil, nil)
}
