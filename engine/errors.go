// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphd/core"
	"github.com/katalvlaran/graphd/dijkstra"
	"github.com/katalvlaran/graphd/euler"
	"github.com/katalvlaran/graphd/loader"
)

// classify tags a library error with the matching engine sentinel,
// keeping the original in the chain.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var kind error
	switch {
	case errors.Is(err, core.ErrVertexNotFound), errors.Is(err, dijkstra.ErrVertexNotFound):
		kind = ErrVertexNotFound
	case errors.Is(err, core.ErrVertexExists):
		kind = ErrVertexExists
	case errors.Is(err, dijkstra.ErrNoPath):
		kind = ErrNoPath
	case errors.Is(err, euler.ErrNotEulerian):
		kind = ErrNotEulerian
	case errors.Is(err, core.ErrEmptyVertexID),
		errors.Is(err, core.ErrBadWeight),
		errors.Is(err, dijkstra.ErrNegativeWeight),
		errors.Is(err, dijkstra.ErrEmptySource),
		errors.Is(err, loader.ErrInvalidItem),
		errors.Is(err, loader.ErrLineTooLong):
		kind = ErrInvalidInput
	default:
		return err
	}

	return fmt.Errorf("%w: %w", kind, err)
}
