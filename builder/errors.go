// SPDX-License-Identifier: MIT
// Package: colony/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`, e.g. "Cycle: n=2 < min=3: <sentinel>".

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, n1, n2)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic step requires an RNG
// (WithSeed or WithRand) and none was configured.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not be applied at all,
// e.g. a nil Constructor or a relation outside the topology.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a parameter outside its enumerated domain,
// e.g. an unknown PlatonicName.
var ErrOptionViolation = errors.New("builder: invalid option")
