// SPDX-License-Identifier: MIT

package loader

import "errors"

// MaxLineBytes bounds a single line of text input.
const MaxLineBytes = 1 << 20

// Sentinel errors.
var (
	// ErrNilGraph is returned by Apply for a nil graph.
	ErrNilGraph = errors.New("loader: graph is nil")

	// ErrNilBatch is returned by Apply for a nil batch.
	ErrNilBatch = errors.New("loader: batch is nil")

	// ErrLineTooLong is returned when a text line exceeds MaxLineBytes.
	ErrLineTooLong = errors.New("loader: line exceeds MaxLineBytes")

	// ErrInvalidItem is returned when a structured item has an empty vertex ID
	// or a non-finite weight.
	ErrInvalidItem = errors.New("loader: invalid batch item")
)

// EdgeItem is one edge of a batch. Weight is nil when absent.
type EdgeItem struct {
	From   string
	To     string
	Weight *float64
}

// Batch is a parsed, not yet applied, set of vertices and edges.
type Batch struct {
	// Vertices in first-seen order, including edge endpoints.
	Vertices []string
	Edges    []EdgeItem
	// Skipped counts malformed text lines.
	Skipped int
}

// Result describes the graph after Apply.
type Result struct {
	// Vertices of the whole graph, sorted.
	Vertices []string
	// Edges of the whole graph in creation order; Weight is set only on weighted graphs.
	Edges   []EdgeItem
	Skipped int
}
