// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building and querying graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so graphs can be mutated across goroutines
// with minimal contention.
//
// This file declares Vertex, Edge, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrVertexExists   - AddVertex on an ID that is already registered.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrBadWeight      - weight supplied to an unweighted graph, or weight is NaN/±Inf.
package core

import (
	"errors"
	"sync"
)

// DefaultWeight is the weight carried by every edge of an unweighted graph and by
// edges of a weighted graph that were added without an explicit weight.
const DefaultWeight float64 = 1

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrVertexExists indicates AddVertex was called for an ID already in the graph.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates an explicit weight on an unweighted graph, or a non-finite weight.
	ErrBadWeight = errors.New("core: bad edge weight")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// Edge represents a connection between two vertices.
//
// From/To keep the orientation used at insertion time. For undirected graphs the
// pair is unordered: the same Edge is reachable from both endpoints.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of traversing the edge. DefaultWeight when the graph is unweighted.
	Weight float64

	// Directed mirrors the owning graph's directedness.
	Directed bool
}

// IsLoop reports whether the edge connects a vertex to itself.
func (e *Edge) IsLoop() bool { return e.From == e.To }

// Other returns the endpoint opposite to id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of the graph
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows explicit edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	weight    float64
	hasWeight bool
}

// WithWeight sets an explicit weight for the edge. Only valid on weighted graphs.
func WithWeight(w float64) EdgeOption {
	return func(c *edgeConfig) {
		c.weight = w
		c.hasWeight = true
	}
}

// Graph is the core in-memory graph data structure.
//
// It supports directed vs. undirected and weighted vs. unweighted graphs.
// Self-loops are always permitted; parallel edges are not: a repeated AddEdge
// between the same endpoints overwrites the stored weight.
//
// muVert protects the vertices map; muEdgeAdj protects edges and both adjacency indexes.
// Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, adjacency and reverse

	// Configuration flags, immutable after NewGraph.
	directed bool
	weighted bool

	// Storage
	nextEdgeID uint64             // edge ID generator (guarded by muEdgeAdj)
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[from][to] = edgeID; undirected edges are mirrored.
	adjacency map[string]map[string]string

	// reverse[to][from] = edgeID; identical to adjacency for undirected graphs.
	reverse map[string]map[string]string
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected and unweighted.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
		reverse:   make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
