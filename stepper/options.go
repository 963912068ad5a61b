// SPDX-License-Identifier: MIT

package stepper

import "github.com/katalvlaran/stepviz/core"

// Options holds optional Initialize parameters.
type Options struct {
	End    core.NodeID
	HasEnd bool
}

// Option mutates Options.
type Option func(*Options)

// WithEnd sets the target node. Only Dijkstra uses it; other runs ignore it.
func WithEnd(id core.NodeID) Option {
	return func(o *Options) {
		o.End = id
		o.HasEnd = true
	}
}
