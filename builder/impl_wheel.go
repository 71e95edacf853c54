// SPDX-License-Identifier: MIT
// Package: netgraph/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + "Center", i.e., a cycle of size (n-1) plus a hub node.
//   • Therefore n ≥ 4 (the rim must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • Builds the rim over cfg.idFn(0..n-2) exactly like Cycle(n-1).
//   • Adds hub node "Center" (root) and spokes Center → rim[i] by index.
//
// Complexity: O(n) nodes + O(2n-2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netgraph/core"
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + "Center".
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}

		rim := idsFrom(cfg.idFn, 0, n-1)
		if err := ring(g, cfg, MethodWheel, rim); err != nil {
			return err
		}

		if _, err := g.AddNode(CenterVertexID, core.WithRoot()); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", MethodWheel, CenterVertexID, err)
		}
		for _, id := range rim {
			if err := addEdge(g, cfg, MethodWheel, CenterVertexID, id); err != nil {
				return err
			}
		}

		return nil
	}
}
