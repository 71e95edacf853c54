// SPDX-License-Identifier: MIT
// Package: netgraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub node with fixed ID "Center", marked as the graph root.
//   - Adds leaves via cfg.idFn in ascending index order for i = 1..n-1.
//   - Emits spokes Center → leaf[i] in stable order; core links make each
//     spoke traversable from both ends.
//
// Complexity: O(n) nodes + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netgraph/core"
)

// Star returns a Constructor that builds a star topology with n nodes:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		if _, err := g.AddNode(CenterVertexID, core.WithRoot()); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", MethodStar, CenterVertexID, err)
		}

		leaves := idsFrom(cfg.idFn, 1, n)
		if err := addNodes(g, MethodStar, leaves); err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err := addEdge(g, cfg, MethodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
