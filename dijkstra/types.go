// Package dijkstra defines the step-wise Dijkstra state, its pseudocode
// listing and sentinel errors.
//
// Distances are int64 with Infinity (math.MaxInt64) standing for "not yet
// reached". Prev uses a presence flag instead of a sentinel id, since every
// integer is a valid NodeID.
package dijkstra

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/stepviz/core"
)

// Sentinel errors returned by New.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to New.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrStartVertexNotFound indicates that the source vertex does not exist.
	ErrStartVertexNotFound = errors.New("dijkstra: start vertex not found in graph")

	// ErrEndVertexNotFound indicates that the target vertex does not exist.
	ErrEndVertexNotFound = errors.New("dijkstra: end vertex not found in graph")
)

// Infinity is the distance of a node that has not been reached.
const Infinity int64 = math.MaxInt64

// Pseudocode line indexes used as program counter values.
const (
	LineHeader = iota
	LineInitDist
	LineInitSource
	LineInitQueue
	LineWhile
	LineExtractMin
	LineForEach
	LineAlt
	LineIfShorter
	LineSetDist
	LineSetPrev
	LineReconstruct
)

var listing = [...]string{
	LineHeader:      "Dijkstra(start):",
	LineInitDist:    "  for each v: dist[v] ← ∞, prev[v] ← null",
	LineInitSource:  "  dist[start] ← 0",
	LineInitQueue:   "  Q ← all nodes",
	LineWhile:       "  while Q not empty:",
	LineExtractMin:  "    u ← extract-min(Q)",
	LineForEach:     "    for each (v, w) in adj[u]:",
	LineAlt:         "      alt ← dist[u] + w",
	LineIfShorter:   "      if alt < dist[v]:",
	LineSetDist:     "        dist[v] ← alt",
	LineSetPrev:     "        prev[v] ← u",
	LineReconstruct: "  reconstruct path from end ← prev[...]",
}

// Pseudocode returns a copy of the Dijkstra listing indexed by the Line constants.
func Pseudocode() []string {
	out := make([]string, len(listing))
	copy(out, listing[:])

	return out
}

// pred is one prev[] entry; ok == false means null.
type pred struct {
	id core.NodeID
	ok bool
}

// State is one immutable Dijkstra configuration.
type State struct {
	start, end core.NodeID

	dist      map[core.NodeID]int64
	prev      map[core.NodeID]pred
	unvisited map[core.NodeID]struct{}

	// relaxation scan of the most recently extracted node
	current    core.NodeID
	hasCurrent bool
	next       int

	focus []core.NodeID // nodes touched by the last step
	path  []core.NodeID // set once, on termination

	pc   int
	done bool
}

// clone returns a deep copy that Step may mutate freely.
func (s *State) clone() *State {
	n := *s
	n.dist = make(map[core.NodeID]int64, len(s.dist))
	for k, v := range s.dist {
		n.dist[k] = v
	}
	n.prev = make(map[core.NodeID]pred, len(s.prev))
	for k, v := range s.prev {
		n.prev[k] = v
	}
	n.unvisited = make(map[core.NodeID]struct{}, len(s.unvisited))
	for k := range s.unvisited {
		n.unvisited[k] = struct{}{}
	}
	n.focus = nil
	n.path = append([]core.NodeID(nil), s.path...)

	return &n
}

// Start returns the source node.
func (s *State) Start() core.NodeID { return s.start }

// End returns the target node.
func (s *State) End() core.NodeID { return s.end }

// PC returns the current pseudocode line.
func (s *State) PC() int { return s.pc }

// Done reports whether every node has been extracted and the path rebuilt.
func (s *State) Done() bool { return s.done }

// Dist returns the tentative distance of id (Infinity when unreached) and
// whether id belongs to the graph.
func (s *State) Dist(id core.NodeID) (int64, bool) {
	d, ok := s.dist[id]

	return d, ok
}

// Distances returns a copy of the whole dist map.
func (s *State) Distances() map[core.NodeID]int64 {
	out := make(map[core.NodeID]int64, len(s.dist))
	for k, v := range s.dist {
		out[k] = v
	}

	return out
}

// Prev returns the predecessor of id on the best known path, if any.
func (s *State) Prev(id core.NodeID) (core.NodeID, bool) {
	p := s.prev[id]

	return p.id, p.ok
}

// Unvisited returns the nodes still in Q, ascending.
func (s *State) Unvisited() []core.NodeID {
	out := make([]core.NodeID, 0, len(s.unvisited))
	for id := range s.unvisited {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Current returns the node whose edges are being relaxed, if any.
func (s *State) Current() (core.NodeID, bool) { return s.current, s.hasCurrent }

// Path returns the reconstructed start→end path. It is empty until the run
// is done, and stays empty when end is unreachable.
func (s *State) Path() []core.NodeID {
	return append([]core.NodeID(nil), s.path...)
}

// Reachable reports whether end has a finite distance.
func (s *State) Reachable() bool { return s.dist[s.end] != Infinity }

// Snapshot highlights the nodes touched by the last step; on termination it
// carries the reconstructed path instead.
func (s *State) Snapshot() core.Snapshot {
	if s.done {
		return core.NewSnapshot(nil, s.path, nil)
	}

	return core.NewSnapshot(s.focus, nil, nil)
}
