// SPDX-License-Identifier: MIT

package stepper

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when Initialize receives a nil graph.
	ErrGraphNil = errors.New("stepper: graph is nil")

	// ErrUnknownAlgorithm is returned for a tag or name outside Algorithms().
	ErrUnknownAlgorithm = errors.New("stepper: unknown algorithm")

	// ErrInvalidNode is returned when start or end is not a node of the graph.
	ErrInvalidNode = errors.New("stepper: invalid node")

	// ErrEndRequired is returned when a run that needs an end node has none.
	// It matches ErrInvalidNode under errors.Is.
	ErrEndRequired = fmt.Errorf("%w: end node required", ErrInvalidNode)
)
