// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/graphd/core"
)

// Apply inserts b into g: new vertices first, then edges in batch order.
// Weights are honored on weighted graphs and ignored otherwise; weighted
// edges without a weight get core.DefaultWeight.
//
// The batch is validated up front, so an ErrInvalidItem leaves g untouched.
//
// Complexity: O(|b.Vertices| + |b.Edges| + E·log E) for the result listing.
func Apply(g *core.Graph, b *Batch) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if b == nil {
		return nil, ErrNilBatch
	}
	if err := validate(b); err != nil {
		return nil, err
	}

	for _, v := range b.Vertices {
		if g.HasVertex(v) {
			continue
		}
		if err := g.AddVertex(v); err != nil && !errors.Is(err, core.ErrVertexExists) {
			return nil, fmt.Errorf("loader: add vertex %q: %w", v, err)
		}
	}

	weighted := g.Weighted()
	for _, e := range b.Edges {
		var opts []core.EdgeOption
		if weighted && e.Weight != nil {
			opts = append(opts, core.WithWeight(*e.Weight))
		}
		if _, err := g.AddEdge(e.From, e.To, opts...); err != nil {
			return nil, fmt.Errorf("loader: add edge %s→%s: %w", e.From, e.To, err)
		}
	}

	return Snapshot(g, b.Skipped), nil
}

// Snapshot lists the vertices and edges of g as a Result.
func Snapshot(g *core.Graph, skipped int) *Result {
	edges := g.Edges()
	res := &Result{
		Vertices: g.Vertices(),
		Edges:    make([]EdgeItem, 0, len(edges)),
		Skipped:  skipped,
	}
	weighted := g.Weighted()
	for _, e := range edges {
		item := EdgeItem{From: e.From, To: e.To}
		if weighted {
			w := e.Weight
			item.Weight = &w
		}
		res.Edges = append(res.Edges, item)
	}

	return res
}

func validate(b *Batch) error {
	for _, v := range b.Vertices {
		if v == "" {
			return fmt.Errorf("%w: empty vertex ID", ErrInvalidItem)
		}
	}
	for i, e := range b.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("%w: edge %d has an empty endpoint", ErrInvalidItem, i)
		}
		if e.Weight != nil && (math.IsNaN(*e.Weight) || math.IsInf(*e.Weight, 0)) {
			return fmt.Errorf("%w: edge %s→%s weight %g", ErrInvalidItem, e.From, e.To, *e.Weight)
		}
	}

	return nil
}
