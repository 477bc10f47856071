// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for graphd/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep assertion sites short: one helper call per contract.

package core_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/katalvlaran/graphd/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
	VertexY = "Y"
)

// Common weights used across core tests.
const (
	Weight2   = 2.0
	Weight3_5 = 3.5
	Weight7   = 7.0
)

// NewWeightedDigraph returns a directed, weighted graph fixture.
func NewWeightedDigraph() *core.Graph {
	return core.NewGraph(core.WithDirected(true), core.WithWeighted())
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %d; want %d", op, got, want)
}

// MustSortedStrings FAILS the test if ids is not sorted ascending.
func MustSortedStrings(t *testing.T, ids []string, op string) {
	t.Helper()

	if sort.StringsAreSorted(ids) {
		return
	}

	t.Fatalf("%s: not sorted: %v", op, ids)
}
