// SPDX-License-Identifier: MIT

package euler

import (
	"fmt"

	"github.com/katalvlaran/graphd/core"
)

// arc is one traversable direction of an edge.
type arc struct {
	edge string
	to   string
}

// Walk returns an Eulerian circuit (first == last vertex) or trail over g
// together with its class, using Hierholzer's algorithm.
//
// Start vertex:
//   - Eulerian: the smallest active vertex ID.
//   - SemiEulerian undirected: the smaller of the two odd vertices.
//   - SemiEulerian directed: the vertex with out−in = +1.
//
// Arcs are consumed in edge creation order, so the result is deterministic.
// An edgeless single-vertex graph yields the one-vertex walk.
//
// Errors: ErrNilGraph, ErrNotEulerian.
// Complexity: O(V + E).
func Walk(g *core.Graph) ([]string, Class, error) {
	a, err := analyze(g)
	if err != nil {
		return nil, Neither, err
	}
	if a.class == Neither {
		return nil, Neither, ErrNotEulerian
	}
	if len(a.edges) == 0 {
		return []string{a.vertices[0]}, a.class, nil
	}

	adj := make(map[string][]arc, len(a.active))
	for _, e := range a.edges {
		adj[e.From] = append(adj[e.From], arc{edge: e.ID, to: e.To})
		if !e.Directed && !e.IsLoop() {
			adj[e.To] = append(adj[e.To], arc{edge: e.ID, to: e.From})
		}
	}

	walk := hierholzer(adj, a.start(g.Directed()), len(a.edges))
	if len(walk) != len(a.edges)+1 {
		return nil, Neither, fmt.Errorf("euler: walk covers %d of %d edges: %w", len(walk)-1, len(a.edges), ErrNotEulerian)
	}

	return walk, a.class, nil
}

func (a *analysis) start(directed bool) string {
	if a.class == SemiEulerian {
		for _, v := range a.active {
			if directed && a.degree[v] == 1 {
				return v
			}
			if !directed && a.degree[v]%2 != 0 {
				return v
			}
		}
	}

	return a.active[0]
}

// hierholzer consumes every arc reachable from start exactly once (an undirected
// edge is consumed through either of its two arcs) and returns the vertex sequence.
func hierholzer(adj map[string][]arc, start string, edges int) []string {
	used := make(map[string]bool, edges)
	next := make(map[string]int, len(adj))

	circuit := make([]string, 0, edges+1)
	stack := []string{start}

	for len(stack) > 0 {
		u := stack[len(stack)-1]

		// skip arcs whose edge was already walked from the other endpoint
		arcs := adj[u]
		for next[u] < len(arcs) && used[arcs[next[u]].edge] {
			next[u]++
		}

		if next[u] == len(arcs) {
			// no more edges: backtrack
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
			continue
		}

		a := arcs[next[u]]
		next[u]++
		used[a.edge] = true
		stack = append(stack, a.to)
	}

	// circuit was collected in reverse
	for i, j := 0, len(circuit)-1; i < j; i, j = i+1, j-1 {
		circuit[i], circuit[j] = circuit[j], circuit[i]
	}

	return circuit
}
