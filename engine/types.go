// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors, matched with errors.Is by the transports.
var (
	ErrVertexNotFound = errors.New("engine: vertex not found")
	ErrVertexExists   = errors.New("engine: vertex already exists")
	ErrNoPath         = errors.New("engine: no path between vertices")
	ErrInvalidInput   = errors.New("engine: invalid input")
	ErrNotEulerian    = errors.New("engine: graph is neither Eulerian nor semi-Eulerian")
)

// Mode identifies the active graph: a fresh ID per Create/Reset plus its flags.
type Mode struct {
	ID       string
	Directed bool
	Weighted bool
}

// Info summarizes the active graph.
type Info struct {
	ID       string
	Order    int
	Size     int
	Directed bool
	Weighted bool
}

// Neighborhood lists the vertices adjacent to Vertex.
// Neighbors are the successors (every neighbor when undirected);
// In and Out split predecessors and successors on directed graphs and
// equal Neighbors otherwise.
type Neighborhood struct {
	Vertex    string
	Neighbors []string
	In        []string
	Out       []string
}

// DegreeReport is the degree of Vertex. Degree is set on undirected graphs,
// In and Out on directed ones.
type DegreeReport struct {
	Vertex   string
	Directed bool
	Degree   int
	In       int
	Out      int
}

// String renders the report as a sentence.
func (d DegreeReport) String() string {
	if d.Directed {
		return fmt.Sprintf("vertex %s has in-degree %d and out-degree %d", d.Vertex, d.In, d.Out)
	}

	return fmt.Sprintf("vertex %s has degree %d", d.Vertex, d.Degree)
}

// Observer receives per-operation timings and graph size updates.
type Observer interface {
	ObserveOperation(op string, elapsed time.Duration, err error)
	ObserveGraph(order, size int)
}

type nopObserver struct{}

func (nopObserver) ObserveOperation(string, time.Duration, error) {}
func (nopObserver) ObserveGraph(int, int)                         {}

// Operation names reported to the Observer.
const (
	OpCreateGraph         = "create_graph"
	OpCreateGraphFromText = "create_graph_from_text"
	OpReset               = "reset_graph"
	OpAddVertex           = "add_vertex"
	OpAddEdge             = "add_edge"
	OpBatchItems          = "insert_batch_items"
	OpBatchText           = "insert_batch_text"
	OpAdjacency           = "adjacency"
	OpDegree              = "degree"
	OpShortestPath        = "shortest_path"
	OpVerifyAdjacent      = "verify_adjacent"
	OpClassifyEulerian    = "check_eulerian"
	OpEulerianWalk        = "eulerian_path"
)
