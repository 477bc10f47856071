// Package core provides a thread-safe in-memory Graph implementation with a
// minimal, composable API surface.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted, per-edge WithWeight)
//   - Self-loops, always permitted
//   - At most one edge per ordered (directed) or unordered (undirected) pair;
//     re-adding an edge overwrites its weight
//   - Constant-time edge operations via nested maps:
//     adjacency[from][to] = edgeID and reverse[to][from] = edgeID
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Directed graphs index only “from→to” in adjacency and “to←from” in reverse.
//	    Undirected graphs mirror every edge in both indexes.
//
//	– WithWeighted()
//	    Permits WithWeight(w) on AddEdge; otherwise AddEdge(..., WithWeight(w)) → ErrBadWeight.
//	    Edges added without WithWeight carry DefaultWeight (1).
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1), ErrVertexExists on duplicates
//	HasVertex(id string) bool          // O(1)
//
//	// Edge lifecycle
//	AddEdge(from,to string, opts ...EdgeOption) (edgeID string, err error) // O(1), auto-creates endpoints
//	HasEdge(from,to string) bool       // O(1)
//	Edge(from,to string) (Edge, error) // O(1)
//
//	// Query
//	Successors(id) / Predecessors(id) / NeighborIDs(id) ([]string, error) // sorted
//	Neighbors(id string) ([]Edge, error)  // outgoing (incident when undirected)
//	Vertices() []string                   // O(V·log V)
//	Edges() []Edge                        // O(E·log E), creation order
//
//	// Counts & degrees
//	Degree(id string) (in,out,undirected int, err error) // loops counted once
//	Order() int                           // O(1)
//	Size() int                            // O(1)
//	Stats() GraphStats                    // O(E)
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrVertexExists   – AddVertex on a registered ID
//	ErrEdgeNotFound   – missing edge
//	ErrBadWeight      – explicit weight on an unweighted graph, or non-finite weight
package core
