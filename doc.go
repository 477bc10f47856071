// Package graphd is an in-memory graph construction and analysis service.
//
// The library packages can be used on their own:
//
//	core/     — thread-safe Graph: vertices, edges, weights, directed/undirected modes
//	loader/   — text ("u v" / "u v w" per line) and structured batch ingestion
//	bfs/      — breadth-first traversal with depth limits, filters and hooks
//	dijkstra/ — single-source shortest paths over non-negative weights
//	euler/    — Eulerian classification and Hierholzer walk construction
//	builder/  — deterministic graph constructors (path, cycle, star, complete)
//	engine/   — one mutable graph behind a concurrency-safe operation API
//
// The service itself lives in cmd/graphd, with HTTP transport, configuration,
// logging and metrics under internal/.
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
//	a 4-cycle: every vertex has degree 2, so the graph is Eulerian and
//	A → B → C → D → A is a circuit.
//
//	go install github.com/katalvlaran/graphd/cmd/graphd@latest
package graphd
