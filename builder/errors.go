// SPDX-License-Identifier: MIT
// Package: graphd/builder
//
// errors.go - sentinel errors for the builder package.
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that construction could not proceed (e.g. a nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
