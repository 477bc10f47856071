// SPDX-License-Identifier: MIT
// Package: graphd/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//   - On directed graphs the ring is oriented, so every vertex is balanced.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphd/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		ids, err := addVertices(g, methodCycle, n, cfg)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = connect(g, methodCycle, ids[i], ids[(i+1)%n], cfg); err != nil {
				return err
			}
		}

		return nil
	}
}
