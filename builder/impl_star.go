// SPDX-License-Identifier: MIT
//
// impl_star.go - implementation of Star(n) and Wheel(n) constructors.
//
// Canonical model:
//   • Star S_n: center idFn(0) joined to leaves idFn(1..n-1).
//   • Wheel W_n: a cycle over idFn(1..n-1) plus spokes from idFn(0).
//
// Contract:
//   • Star requires n ≥ 2, Wheel requires n ≥ 4, else ErrTooFewVertices.
//   • Spokes are added before rim edges, so the center's adjacency is
//     ordered by leaf index.
//
// Complexity: O(n) time, O(n) space.

package builder

import "github.com/katalvlaran/stepviz/core"

// Star returns a Constructor that builds the star S_n with n nodes.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodStar, n, minStarNodes); err != nil {
			return err
		}
		ids, err := addNodes(g, cfg, methodStar, n)
		if err != nil {
			return err
		}

		return addSpokes(g, cfg, methodStar, ids)
	}
}

// Wheel returns a Constructor that builds the wheel W_n with n nodes.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodWheel, n, minWheelNodes); err != nil {
			return err
		}
		ids, err := addNodes(g, cfg, methodWheel, n)
		if err != nil {
			return err
		}
		if err = addSpokes(g, cfg, methodWheel, ids); err != nil {
			return err
		}
		rim := ids[1:]
		for i := range rim {
			if err = addEdge(g, cfg, methodWheel, rim[i], rim[(i+1)%len(rim)], DefaultWeightFn); err != nil {
				return err
			}
		}

		return nil
	}
}

func addSpokes(g *core.Graph, cfg builderConfig, method string, ids []core.NodeID) error {
	for _, leaf := range ids[1:] {
		if err := addEdge(g, cfg, method, ids[0], leaf, DefaultWeightFn); err != nil {
			return err
		}
	}

	return nil
}
