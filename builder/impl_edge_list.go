// SPDX-License-Identifier: MIT
//
// impl_edge_list.go - implementation of EdgeList(text) constructor.
//
// Input format, one edge per line:
//
//	u v [w]
//
//   • Fields are whitespace separated; u and v are integers; w defaults to 1.
//   • Blank lines, lines with fewer than two fields and lines starting with
//     '#' are skipped.
//   • Duplicate edges (either orientation) are ignored, first one wins.
//
// Contract:
//   • Non-integer fields, self-loops and w < 1 yield ErrBadEdgeList with the
//     1-based line number.
//   • Input without any edge yields ErrTooFewVertices.
//   • WeightFn options are ignored: weights come from the text.
//
// Complexity: O(L + Σdeg) for L input bytes.

package builder

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/stepviz/core"
)

// EdgeList returns a Constructor that parses text into edges.
func EdgeList(text string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		sc := bufio.NewScanner(strings.NewReader(text))
		lineNo, added := 0, 0
		for sc.Scan() {
			lineNo++
			line := strings.TrimSpace(sc.Text())
			if strings.HasPrefix(line, edgeListComment) {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) < 2 {
				continue
			}

			u, err := parseNode(fields[0])
			if err != nil {
				return fmt.Errorf("%s: line %d: %q: %w", methodEdgeList, lineNo, fields[0], ErrBadEdgeList)
			}
			v, err := parseNode(fields[1])
			if err != nil {
				return fmt.Errorf("%s: line %d: %q: %w", methodEdgeList, lineNo, fields[1], ErrBadEdgeList)
			}
			w := DefaultEdgeWeight
			if len(fields) > 2 {
				if w, err = strconv.ParseInt(fields[2], 10, 64); err != nil {
					return fmt.Errorf("%s: line %d: weight %q: %w", methodEdgeList, lineNo, fields[2], ErrBadEdgeList)
				}
			}

			err = g.AddEdge(u, v, w)
			switch {
			case err == nil:
				added++
			case errors.Is(err, core.ErrMultiEdgeNotAllowed):
			case errors.Is(err, core.ErrLoopNotAllowed), errors.Is(err, core.ErrBadWeight):
				return fmt.Errorf("%s: line %d: %v: %w", methodEdgeList, lineNo, err, ErrBadEdgeList)
			default:
				return fmt.Errorf("%s: line %d: %w", methodEdgeList, lineNo, err)
			}
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("%s: %w", methodEdgeList, err)
		}
		if added == 0 {
			return fmt.Errorf("%s: no edges: %w", methodEdgeList, ErrTooFewVertices)
		}

		return nil
	}
}

func parseNode(s string) (core.NodeID, error) {
	n, err := strconv.Atoi(s)

	return core.NodeID(n), err
}
