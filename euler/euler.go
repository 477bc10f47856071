// SPDX-License-Identifier: MIT
// Package euler implements one decision procedure for both graph kinds:
//
//  1. Degree parity (undirected; a loop adds 2) or out−in balance (directed).
//  2. Connectivity over every vertex of the graph, via bfs: undirected
//     connected; directed strongly connected for circuits and weakly
//     connected for trails. An isolated vertex next to any edge breaks it.
//  3. Eulerian: connected and every vertex even / balanced.
//     SemiEulerian: connected and exactly two odd vertices / exactly one
//     vertex with out−in = +1 and one with out−in = −1.
//
// A graph without edges is Eulerian only when it has exactly one vertex.
package euler

import (
	"fmt"

	"github.com/katalvlaran/graphd/bfs"
	"github.com/katalvlaran/graphd/core"
)

// analysis holds the per-vertex facts shared by Classify and Walk.
type analysis struct {
	class    Class
	vertices []string
	edges    []core.Edge
	active   []string       // vertices with at least one incident edge, sorted
	degree   map[string]int // undirected degree or out−in balance
}

// Classify reports whether g is Eulerian, SemiEulerian or Neither.
//
// Complexity: O(V + E·log d) dominated by the bfs connectivity passes.
func Classify(g *core.Graph) (Class, error) {
	a, err := analyze(g)
	if err != nil {
		return Neither, err
	}

	return a.class, nil
}

func analyze(g *core.Graph) (*analysis, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	a := &analysis{
		vertices: g.Vertices(),
		edges:    g.Edges(),
	}
	if len(a.edges) == 0 {
		if len(a.vertices) == 1 {
			a.class = Eulerian
		}
		return a, nil
	}

	a.degree = make(map[string]int, len(a.vertices))
	touched := make(map[string]bool, len(a.vertices))
	for _, e := range a.edges {
		touched[e.From], touched[e.To] = true, true
		if g.Directed() {
			a.degree[e.From]++
			a.degree[e.To]--
			continue
		}
		// A loop contributes 2 to its vertex, which never changes parity.
		a.degree[e.From]++
		a.degree[e.To]++
	}
	for _, v := range a.vertices {
		if touched[v] {
			a.active = append(a.active, v)
		}
	}

	if g.Directed() {
		return a, a.classifyDirected(g)
	}

	return a, a.classifyUndirected(g)
}

func (a *analysis) classifyUndirected(g *core.Graph) error {
	odd := 0
	for _, v := range a.active {
		if a.degree[v]%2 != 0 {
			odd++
		}
	}
	if odd != 0 && odd != 2 {
		return nil
	}

	connected, err := a.reachesAll(g, bfs.Both)
	if err != nil || !connected {
		return err
	}
	if odd == 0 {
		a.class = Eulerian
	} else {
		a.class = SemiEulerian
	}

	return nil
}

func (a *analysis) classifyDirected(g *core.Graph) error {
	plus, minus, unbalanced := 0, 0, 0
	for _, v := range a.active {
		switch b := a.degree[v]; {
		case b == 0:
		case b == 1:
			plus++
		case b == -1:
			minus++
		default:
			unbalanced++
		}
	}
	if unbalanced > 0 {
		return nil
	}

	weak, err := a.reachesAll(g, bfs.Both)
	if err != nil || !weak {
		return err
	}

	switch {
	case plus == 0 && minus == 0:
		out, err := a.reachesAll(g, bfs.Outgoing)
		if err != nil || !out {
			return err
		}
		in, err := a.reachesAll(g, bfs.Incoming)
		if err != nil || !in {
			return err
		}
		a.class = Eulerian
	case plus == 1 && minus == 1:
		a.class = SemiEulerian
	}

	return nil
}

// reachesAll runs bfs from the first active vertex in direction dir and
// reports whether every vertex of the graph was reached.
func (a *analysis) reachesAll(g *core.Graph, dir bfs.Direction) (bool, error) {
	// an edgeless vertex is unreachable from any edge
	if len(a.active) < len(a.vertices) {
		return false, nil
	}
	res, err := bfs.BFS(g, a.active[0], bfs.WithDirection(dir))
	if err != nil {
		return false, fmt.Errorf("euler: connectivity from %q: %w", a.active[0], err)
	}
	for _, v := range a.vertices {
		if _, ok := res.Depth[v]; !ok {
			return false, nil
		}
	}

	return true, nil
}
