// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).

package core

import "sort"

// AddVertex registers a new vertex.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, reject an already registered ID (ErrVertexExists).
//   - Stage 3: Under muEdgeAdj write lock, bootstrap adjacency buckets.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexExists: if the vertex is already present. The graph is unchanged.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return ErrVertexExists
	}
	g.registerVertex(id)

	return nil
}

// ensureVertex registers id if missing and reports whether it was created.
// Used by AddEdge, which auto-creates endpoints.
func (g *Graph) ensureVertex(id string) bool {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return false
	}
	g.registerVertex(id)

	return true
}

// registerVertex must be called under muVert write lock.
func (g *Graph) registerVertex(id string) {
	g.vertices[id] = &Vertex{ID: id}

	g.muEdgeAdj.Lock()
	ensureBuckets(g, id)
	g.muEdgeAdj.Unlock()
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V·logV)
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Degree returns the in-, out- and undirected degree of id.
//
// Policy:
//   - Directed graphs: in = distinct predecessors, out = distinct successors,
//     undirected = 0. A self-loop counts once on each side.
//   - Undirected graphs: in = out = 0, undirected = number of incident edges,
//     with a self-loop counted once (not twice).
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Degree(id string) (in, out, undirected int, err error) {
	if id == "" {
		return 0, 0, 0, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, 0, 0, ErrVertexNotFound
	}

	if g.directed {
		return len(g.reverse[id]), len(g.adjacency[id]), 0, nil
	}

	// The mirrored bucket holds one entry per neighbor; a loop is a single self entry.
	return 0, 0, len(g.adjacency[id]), nil
}
