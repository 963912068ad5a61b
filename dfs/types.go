// Package dfs defines the DFS state, its frames, pseudocode and sentinel errors.
package dfs

import (
	"errors"
	"sort"

	"github.com/katalvlaran/stepviz/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to New.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Pseudocode line indexes used as program counter values.
const (
	LineHeader = iota
	LineInitVisited
	LineInitStack
	LineWhile
	LinePop
	LineHasNeighbor
	LinePushBack
	LineNeighbor
	LineIfNotVisited
	LineMarkVisited
	LinePushNeighbor
	LineReturn
)

var listing = [...]string{
	LineHeader:       "DFS(start):",
	LineInitVisited:  "  visited[start] ← true",
	LineInitStack:    "  stack ← [(start, 0)]",
	LineWhile:        "  while stack not empty:",
	LinePop:          "    (u, i) ← stack.pop()",
	LineHasNeighbor:  "    if i < len(adj[u]):",
	LinePushBack:     "      stack.push((u, i+1))",
	LineNeighbor:     "      v ← adj[u][i]",
	LineIfNotVisited: "      if not visited[v]:",
	LineMarkVisited:  "        visited[v] ← true",
	LinePushNeighbor: "        stack.push((v, 0))",
	LineReturn:       "  return visited",
}

// Pseudocode returns a copy of the DFS listing indexed by the Line constants.
func Pseudocode() []string {
	out := make([]string, len(listing))
	copy(out, listing[:])

	return out
}

// Frame is one explicit-stack entry: a node and the index of the next
// neighbor to examine.
type Frame struct {
	Node core.NodeID
	Next int
}

// State is one immutable DFS configuration.
type State struct {
	start core.NodeID

	visited map[core.NodeID]bool
	order   []core.NodeID // discovery (pre-order) sequence
	stack   []Frame

	pc   int
	done bool
}

// clone returns a deep copy that Step may mutate freely.
func (s *State) clone() *State {
	n := *s
	n.visited = make(map[core.NodeID]bool, len(s.visited)+1)
	for id := range s.visited {
		n.visited[id] = true
	}
	n.order = append(make([]core.NodeID, 0, len(s.order)+1), s.order...)
	n.stack = append(make([]Frame, 0, len(s.stack)+1), s.stack...)

	return &n
}

// Start returns the start node.
func (s *State) Start() core.NodeID { return s.start }

// PC returns the current pseudocode line.
func (s *State) PC() int { return s.pc }

// Done reports whether the traversal has terminated.
func (s *State) Done() bool { return s.done }

// IsVisited reports whether id has been discovered.
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

// Order returns nodes in discovery order.
func (s *State) Order() []core.NodeID {
	return append([]core.NodeID(nil), s.order...)
}

// Stack returns a copy of the frame stack, bottom first.
func (s *State) Stack() []Frame {
	return append([]Frame(nil), s.stack...)
}

// Snapshot highlights the visited set and reports the active stack as Path.
func (s *State) Snapshot() core.Snapshot {
	path := make([]core.NodeID, 0, len(s.stack))
	for _, f := range s.stack {
		path = append(path, f.Node)
	}

	return core.NewSnapshot(s.order, path, nil)
}
