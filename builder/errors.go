// SPDX-License-Identifier: MIT
// Package: digraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is(err, ErrX).
//   - Builders attach context via %w wrapping at the call site;
//     sentinels themselves carry no parameters.
//   - Builders never panic at runtime; validation panics are confined
//     to option constructors (WithRand and friends).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// minimum the requested builder supports.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed
// interval [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic builder was invoked
// without an RNG; supply one via WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")
