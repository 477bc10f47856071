// Package dijkstra provides Dijkstra's shortest-path algorithm on core graphs
// with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distances from a single source vertex to all
//     reachable vertices in O((V + E) log V) time.
//   - ShortestPath answers the point-to-point question the server and CLI need: it stops
//     as soon as the target is settled and rebuilds the route from the predecessor map.
//   - Unweighted graphs are searched the same way; every edge weighs core.DefaultWeight,
//     so the result is the hop-count shortest path.
//
// Key features:
//
//   - Functional options (Source, Target, WithReturnPath, WithMaxDistance, WithInfEdgeThreshold).
//   - Directed graphs follow only from→to edges; undirected graphs follow every incident edge.
//   - Lazy decrease-key: duplicates are pushed into the heap and stale entries skipped.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     Source option missing.
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrVertexNotFound:  source or target vertex absent.
//   - ErrNoPath:          both endpoints present but the target is unreachable.
//   - ErrNegativeWeight:  an edge with negative weight exists (O(E) pre-scan).
//   - ErrBadMaxDistance:  WithMaxDistance(<0).
//   - ErrBadInfThreshold: WithInfEdgeThreshold(<=0).
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]float64, prev map[string]string, err error)
//	func ShortestPath(g *core.Graph, start, end string) (Path, error)
//
// Example:
//
//	g := core.NewGraph(core.WithWeighted())
//	_, _ = g.AddEdge("A", "B", core.WithWeight(4))
//	_, _ = g.AddEdge("A", "C", core.WithWeight(1))
//	_, _ = g.AddEdge("C", "B", core.WithWeight(2))
//	p, err := dijkstra.ShortestPath(g, "A", "B")
//	// p.Weight == 3, p.Vertices == [A C B]
package dijkstra
