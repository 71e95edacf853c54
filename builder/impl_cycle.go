// SPDX-License-Identifier: MIT
// Package: netgraph/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i → (i+1)%n for i=0..n-1.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netgraph/core"
)

// Cycle returns a Constructor that builds an n-node simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		return ring(g, cfg, MethodCycle, idsFrom(cfg.idFn, 0, n))
	}
}

// ring adds ids in order and closes them into a cycle.
func ring(g *core.Graph, cfg builderConfig, method string, ids []string) error {
	if err := addNodes(g, method, ids); err != nil {
		return err
	}
	for i := range ids {
		if err := addEdge(g, cfg, method, ids[i], ids[(i+1)%len(ids)]); err != nil {
			return err
		}
	}

	return nil
}
