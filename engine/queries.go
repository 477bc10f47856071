// SPDX-License-Identifier: MIT

package engine

import (
	"slices"
	"time"

	"github.com/katalvlaran/graphd/core"
	"github.com/katalvlaran/graphd/dijkstra"
	"github.com/katalvlaran/graphd/euler"
)

// GraphInfo returns the order, size and mode of the active graph.
func (e *GraphEngine) GraphInfo() Info {
	g, m := e.current()

	return Info{
		ID:       m.ID,
		Order:    g.Order(),
		Size:     g.Size(),
		Directed: m.Directed,
		Weighted: m.Weighted,
	}
}

// Adjacency returns the neighborhood of vertex.
//
// Errors: ErrVertexNotFound.
func (e *GraphEngine) Adjacency(vertex string) (n Neighborhood, err error) {
	defer e.track(OpAdjacency, time.Now(), &err)

	g, m := e.current()
	if !g.HasVertex(vertex) {
		return Neighborhood{}, classify(core.ErrVertexNotFound)
	}
	out, err := g.Successors(vertex)
	if err != nil {
		return Neighborhood{}, classify(err)
	}
	in := slices.Clone(out)
	if m.Directed {
		if in, err = g.Predecessors(vertex); err != nil {
			return Neighborhood{}, classify(err)
		}
	}

	// each field owns its slice
	return Neighborhood{Vertex: vertex, Neighbors: slices.Clone(out), In: in, Out: out}, nil
}

// Degree returns the degree of vertex; a self-loop counts once.
//
// Errors: ErrVertexNotFound.
func (e *GraphEngine) Degree(vertex string) (d DegreeReport, err error) {
	defer e.track(OpDegree, time.Now(), &err)

	g, m := e.current()
	if !g.HasVertex(vertex) {
		return DegreeReport{}, classify(core.ErrVertexNotFound)
	}
	in, out, undirected, err := g.Degree(vertex)
	if err != nil {
		return DegreeReport{}, classify(err)
	}
	if m.Directed {
		return DegreeReport{Vertex: vertex, Directed: true, In: in, Out: out}, nil
	}

	return DegreeReport{Vertex: vertex, Degree: undirected}, nil
}

// ShortestPath returns the minimum-weight path from start to end.
// Unweighted graphs count hops.
//
// Errors: ErrVertexNotFound, ErrNoPath, ErrInvalidInput (negative weights).
func (e *GraphEngine) ShortestPath(start, end string) (p dijkstra.Path, err error) {
	defer e.track(OpShortestPath, time.Now(), &err)

	g, _ := e.current()
	if !g.HasVertex(start) || !g.HasVertex(end) {
		return dijkstra.Path{}, classify(dijkstra.ErrVertexNotFound)
	}
	if p, err = dijkstra.ShortestPath(g, start, end); err != nil {
		return dijkstra.Path{}, classify(err)
	}

	return p, nil
}

// VerifyAdjacent reports whether an edge joins v1 and v2 in either direction.
//
// Errors: ErrVertexNotFound.
func (e *GraphEngine) VerifyAdjacent(v1, v2 string) (ok bool, err error) {
	defer e.track(OpVerifyAdjacent, time.Now(), &err)

	g, _ := e.current()
	if !g.HasVertex(v1) || !g.HasVertex(v2) {
		return false, classify(core.ErrVertexNotFound)
	}

	return g.HasEdge(v1, v2) || g.HasEdge(v2, v1), nil
}

// ClassifyEulerian classifies the active graph.
func (e *GraphEngine) ClassifyEulerian() (c euler.Class, err error) {
	defer e.track(OpClassifyEulerian, time.Now(), &err)

	g, _ := e.current()
	if c, err = euler.Classify(g); err != nil {
		return euler.Neither, classify(err)
	}

	return c, nil
}

// EulerianWalk returns an Eulerian circuit or trail of the active graph.
//
// Errors: ErrNotEulerian.
func (e *GraphEngine) EulerianWalk() (walk []string, c euler.Class, err error) {
	defer e.track(OpEulerianWalk, time.Now(), &err)

	g, _ := e.current()
	if walk, c, err = euler.Walk(g); err != nil {
		return nil, c, classify(err)
	}

	return walk, c, nil
}
