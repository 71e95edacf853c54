// SPDX-License-Identifier: MIT
// Package: netgraph/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Node IDs are coordinates "r,c" (row-major). This is a deliberate
//     exception to cfg.idFn to keep coordinates explicit.
//   • For each cell in row-major order emits the right edge (r,c)→(r,c+1)
//     and then the down edge (r,c)→(r+1,c) when they exist.
//   • Nodes sit on their lattice coordinates (x=c, y=r) so a spring layout
//     starts from an untangled grid.
//
// Complexity: O(R·C) nodes + O(2·R·C) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netgraph/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := gridVertexID(r, c)
				if _, err := g.AddNode(id, core.WithPosition(float64(c), float64(r))); err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w", MethodGrid, id, err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridVertexID(r, c)
				if c+1 < cols {
					if err := addEdge(g, cfg, MethodGrid, u, gridVertexID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, MethodGrid, u, gridVertexID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
