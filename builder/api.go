// SPDX-License-Identifier: MIT
// Package: netgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Topology factories live in impl_*.go; ByKind maps CLI kind names onto them.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors wrapped with context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add nodes through cfg.idFn (except documented fixed IDs like "Center").
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Graph option violations recorded by core.NewGraph surface here as well,
// so callers get a single error path.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := g.Err(); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Kinds lists the topology names understood by ByKind, in display order.
var Kinds = []string{
	KindStar, KindCycle, KindPath, KindWheel,
	KindComplete, KindGrid, KindBipartite, KindRandom,
}

// ByKind resolves a topology name into a Constructor sized by n.
//
// Sizing rules:
//   - grid builds an n×n lattice.
//   - bipartite builds K_{n,n}.
//   - random samples G(n,p); the other kinds ignore p.
//
// Unknown names yield ErrUnknownKind.
func ByKind(kind string, n int, p float64) (Constructor, error) {
	switch kind {
	case KindStar:
		return Star(n), nil
	case KindCycle:
		return Cycle(n), nil
	case KindPath:
		return Path(n), nil
	case KindWheel:
		return Wheel(n), nil
	case KindComplete:
		return Complete(n), nil
	case KindGrid:
		return Grid(n, n), nil
	case KindBipartite:
		return CompleteBipartite(n, n), nil
	case KindRandom:
		return RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("ByKind(%q): %w", kind, ErrUnknownKind)
	}
}
