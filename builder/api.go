// SPDX-License-Identifier: MIT
// Package: graphd/builder
//
// api.go - public entry-point for the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors live in impl_*.go; options resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; option constructors panic on nil functions.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphd/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, respect the graph's
// directed/weighted flags and return sentinel errors wrapped with context.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
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

// edgeOptions returns the per-edge options for the next emitted edge:
// a generated weight on weighted graphs, nothing otherwise.
func edgeOptions(g *core.Graph, cfg builderConfig) []core.EdgeOption {
	if !g.Weighted() {
		return nil
	}

	return []core.EdgeOption{core.WithWeight(cfg.weightFn(cfg.rng))}
}

// addVertices inserts idFn(0..n-1) in ascending index order.
func addVertices(g *core.Graph, method string, n int, cfg builderConfig) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// connect adds u→v with the configured weight policy.
func connect(g *core.Graph, method, u, v string, cfg builderConfig) error {
	if _, err := g.AddEdge(u, v, edgeOptions(g, cfg)...); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, u, v, err)
	}

	return nil
}
