// SPDX-License-Identifier: MIT

package stepper

import (
	"fmt"
	"strings"
)

// Algorithm tags the five supported runs. The zero value is invalid.
type Algorithm uint8

const (
	BFS Algorithm = iota + 1
	DFS
	Dijkstra
	Prim
	Kruskal
)

var algorithmNames = [...]string{
	BFS:      "bfs",
	DFS:      "dfs",
	Dijkstra: "dijkstra",
	Prim:     "prim",
	Kruskal:  "kruskal",
}

// Algorithms lists every valid tag in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, Dijkstra, Prim, Kruskal}
}

// Valid reports whether a is one of the declared tags.
func (a Algorithm) Valid() bool { return a >= BFS && a <= Kruskal }

// String returns the lower-case name, or "algorithm(N)" for invalid tags.
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("algorithm(%d)", uint8(a))
	}

	return algorithmNames[a]
}

// NeedsEnd reports whether the run requires an end node.
func (a Algorithm) NeedsEnd() bool { return a == Dijkstra }

// ParseAlgorithm maps a case-insensitive name to its tag.
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, a := range Algorithms() {
		if algorithmNames[a] == n {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v

	return nil
}
