// SPDX-License-Identifier: MIT
// Package: graphd/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub vertex has the fixed ID CenterVertexID; leaves use cfg.idFn(1..n-1).
//   - Emits spokes Center → leaf[i]; directed graphs also get leaf[i] → Center.
//
// Complexity: O(n) vertices + O(n-1) edges (undirected) or O(2n-2) (directed).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphd/core"
)

// CenterVertexID is the hub identifier used by Star.
const CenterVertexID = "Center"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}

		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := connect(g, methodStar, CenterVertexID, leaf, cfg); err != nil {
				return err
			}
			if g.Directed() {
				if err := connect(g, methodStar, leaf, CenterVertexID, cfg); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
