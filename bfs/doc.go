// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort with an error).
//   - WithFilterNeighbor prunes individual edges; WithMaxDepth bounds the search.
//   - WithDirection picks successors (Outgoing), predecessors (Incoming) or both.
//
// Connectivity
//
//	The euler package runs BFS with Outgoing and Incoming to test strong
//	connectivity and with Both to test weak connectivity of a digraph.
//	On undirected graphs every Direction walks the same edges.
//
// Determinism
//
//	core.Graph returns neighbor IDs sorted lexicographically and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d)   (neighbor IDs are sorted per vertex)
//   - Memory: O(V)
//
// Usage
//
//	result, err := bfs.BFS(
//	    g, "start",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithDirection(bfs.Both),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      for invalid options (negative MaxDepth, unknown Direction).
//   - ErrNeighbors            if a neighbor lookup fails.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
