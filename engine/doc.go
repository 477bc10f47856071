// Package engine owns the single active graph of a graphd process and exposes
// the mutation and query operations the transports call.
//
// A GraphEngine holds one *core.Graph together with its Mode (generation ID,
// directed and weighted flags). CreateGraph, CreateGraphFromText and Reset swap
// the graph reference under a write lock; every other operation captures the
// current reference under a read lock and then works against that snapshot,
// relying on core's own locking for individual reads and writes.
//
// Errors returned by the engine match one of its sentinels with errors.Is
// (ErrVertexNotFound, ErrVertexExists, ErrNoPath, ErrInvalidInput, ErrNotEulerian)
// while still wrapping the library error underneath.
//
// Logging goes through an optional *zap.Logger (WithLogger) and timings through
// an optional Observer (WithObserver); both default to no-ops.
package engine
