// SPDX-License-Identifier: MIT

package engine

import "go.uber.org/zap"

// Option configures a GraphEngine.
type Option func(*GraphEngine)

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(e *GraphEngine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithObserver sets the metrics observer; nil is ignored.
func WithObserver(o Observer) Option {
	return func(e *GraphEngine) {
		if o != nil {
			e.obs = o
		}
	}
}

// WithInitialMode sets the flags of the graph the engine starts with.
func WithInitialMode(directed, weighted bool) Option {
	return func(e *GraphEngine) {
		e.mode.Directed = directed
		e.mode.Weighted = weighted
	}
}
