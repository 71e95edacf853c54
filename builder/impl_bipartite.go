// SPDX-License-Identifier: MIT
// Package: netgraph/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left ids are leftPrefix+i, right ids rightPrefix+j ("L0".., "R0"..);
//     cfg.idFn is not consulted so the two sides never collide.
//   • Emits L[i] → R[j] for every i, then every j.
//
// Complexity: O(n1+n2) nodes + O(n1·n2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netgraph/core"
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < MinPartition || n2 < MinPartition {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartition, ErrTooFewVertices)
		}

		left := makeIDs(cfg.leftPrefix, n1)
		right := makeIDs(cfg.rightPrefix, n2)
		if err := addNodes(g, MethodCompleteBipartite, left); err != nil {
			return err
		}
		if err := addNodes(g, MethodCompleteBipartite, right); err != nil {
			return err
		}

		for _, u := range left {
			for _, v := range right {
				if err := addEdge(g, cfg, MethodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
