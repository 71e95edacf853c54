// SPDX-License-Identifier: MIT

// Package layout provides Spring, a force-directed layout for core.Graph.
//
// Each Update iteration:
//
//  1. Repulses every pair of nodes closer than Repulsion with force K²/d².
//  2. Attracts the endpoints of every edge with force (d² − K²)/K scaled by
//     1/edge.Length and by (weight·edge.Weight·0.5 + 1).
//  3. Moves every non-fixed node by Force × accumulated force, clamped per
//     axis to [−limit, +limit], and refreshes its screen position X, Y.
//
// Nodes closer than 0.1 are nudged apart by a small random offset so the
// animation never stalls on coincident positions. Pass WithSeed for
// reproducible runs.
//
// Usage:
//
//	g := layout.NewGraph()
//	g.AddEdge("A", "B")
//	for i := 0; i < 100; i++ {
//	    g.UpdateDefault()
//	}
//	fmt.Println(g.Bounds())
//
// Spring carries no locks; like the Graph that drives it, it has one owner.
package layout
