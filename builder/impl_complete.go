// SPDX-License-Identifier: MIT
// Package: graphd/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits each unordered pair {i,j} with i<j exactly once in lexicographic (i,j) order,
//     and mirrors to j→i only if g.Directed() is true.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphd/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids, err := addVertices(g, methodComplete, n, cfg)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = connect(g, methodComplete, ids[i], ids[j], cfg); err != nil {
					return err
				}
				if g.Directed() {
					if err = connect(g, methodComplete, ids[j], ids[i], cfg); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
