// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edge/Edges, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by insertion order of their IDs.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"sort"
	"strconv"
)

// edgeIDPrefix is a private textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge connects from and to, creating either endpoint when missing, and
// returns the edge ID.
//
// Steps:
//  1. Validate IDs and the optional weight against the graph's weighted flag.
//  2. Ensure both endpoints exist.
//  3. Under muEdgeAdj, look the pair up. An existing edge has its weight overwritten
//     and keeps its ID; otherwise a new edge is stored and indexed in adjacency/reverse
//     (mirrored when undirected).
//
// Errors:
//   - ErrEmptyVertexID: from or to is empty.
//   - ErrBadWeight: WithWeight on an unweighted graph, or a NaN/±Inf weight.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}

	cfg := edgeConfig{weight: DefaultWeight}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hasWeight {
		if !g.weighted {
			return "", ErrBadWeight
		}
		if math.IsNaN(cfg.weight) || math.IsInf(cfg.weight, 0) {
			return "", ErrBadWeight
		}
	}

	g.ensureVertex(from)
	g.ensureVertex(to)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if eid, ok := g.adjacency[from][to]; ok {
		g.edges[eid].Weight = cfg.weight
		return eid, nil
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: cfg.weight, Directed: g.directed}

	ensureBuckets(g, from)
	ensureBuckets(g, to)
	g.adjacency[from][to] = eid
	g.reverse[to][from] = eid
	if !g.directed {
		g.adjacency[to][from] = eid
		g.reverse[from][to] = eid
	}

	return eid, nil
}

// HasEdge reports whether an edge from 'from' to 'to' exists.
// On undirected graphs the check is symmetric.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Edge returns a copy of the edge between from and to.
// Errors: ErrEdgeNotFound when absent.
func (g *Graph) Edge(from, to string) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	eid, ok := g.adjacency[from][to]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *g.edges[eid], nil
}

// Edges returns copies of all edges ordered by creation.
// Complexity: O(E·logE)
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// nextEdgeID must be called under muEdgeAdj write lock.
func nextEdgeID(g *Graph) string {
	g.nextEdgeID++
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}

// edgeSeq extracts the numeric sequence of an edge ID so "e10" sorts after "e9".
func edgeSeq(eid string) uint64 {
	n, _ := strconv.ParseUint(eid[1:], 10, 64)
	return n
}
