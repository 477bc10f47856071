// SPDX-License-Identifier: MIT
// Package euler classifies graphs as Eulerian, semi-Eulerian or neither and
// builds the corresponding walk.

package euler

import "errors"

// Class is the Eulerian classification of a graph.
type Class int

const (
	// Neither means no walk uses every edge exactly once.
	Neither Class = iota
	// SemiEulerian graphs admit an open Eulerian trail but no circuit.
	SemiEulerian
	// Eulerian graphs admit a closed Eulerian circuit.
	Eulerian
)

// String returns the class name as reported by the HTTP API and the CLI.
func (c Class) String() string {
	switch c {
	case Eulerian:
		return "Eulerian"
	case SemiEulerian:
		return "SemiEulerian"
	default:
		return "Neither"
	}
}

// Sentinel errors.
var (
	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = errors.New("euler: graph is nil")

	// ErrNotEulerian is returned by Walk when the graph has neither a circuit nor a trail.
	ErrNotEulerian = errors.New("euler: graph is neither Eulerian nor semi-Eulerian")
)
