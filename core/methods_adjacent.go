// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Successors, Predecessors, NeighborIDs, Neighbors) and adjacency helpers.
// Determinism:
//   - Every ID slice is sorted lexicographically ascending.
//   - Neighbors() sorts edges by creation order.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// Successors returns the IDs reachable from id over one edge.
// For undirected graphs this is the plain neighbor set. A self-loop lists id itself.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Successors(id string) ([]string, error) {
	return g.bucketIDs(id, false)
}

// Predecessors returns the IDs with an edge into id.
// For undirected graphs it equals Successors.
func (g *Graph) Predecessors(id string) ([]string, error) {
	return g.bucketIDs(id, true)
}

// NeighborIDs returns the union of predecessors and successors of id,
// sorted and without duplicates.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	seen := make(map[string]struct{}, len(g.adjacency[id])+len(g.reverse[id]))
	for v := range g.adjacency[id] {
		seen[v] = struct{}{}
	}
	for v := range g.reverse[id] {
		seen[v] = struct{}{}
	}

	return sortedKeys(seen), nil
}

// Neighbors returns copies of the edges leaving id (incident edges when undirected),
// ordered by creation.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]Edge, 0, len(g.adjacency[id]))
	for _, eid := range g.adjacency[id] {
		out = append(out, *g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out, nil
}

func (g *Graph) bucketIDs(id string, incoming bool) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	bucket := g.adjacency[id]
	if incoming {
		bucket = g.reverse[id]
	}
	ids := make([]string, 0, len(bucket))
	for v := range bucket {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// ensureBuckets guarantees that adjacency[id] and reverse[id] are initialized.
// Must be called ONLY under muEdgeAdj write lock.
func ensureBuckets(g *Graph, id string) {
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]string)
	}
	if g.reverse[id] == nil {
		g.reverse[id] = make(map[string]string)
	}
}

func sortedKeys(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for v := range set {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids
}
