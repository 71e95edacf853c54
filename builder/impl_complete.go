// SPDX-License-Identifier: MIT
// Package: netgraph/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); K_1 is a single isolated node.
//   • Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   • Emits one edge per unordered pair, i → j for i < j, lexicographic in (i,j).
//
// Complexity: O(n) nodes + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netgraph/core"
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		ids := idsFrom(cfg.idFn, 0, n)
		if err := addNodes(g, MethodComplete, ids); err != nil {
			return err
		}

		return addCompleteEdges(g, cfg, MethodComplete, ids)
	}
}
