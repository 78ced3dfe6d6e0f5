// SPDX-License-Identifier: MIT
// Package: colony/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng     = nil   (pure/deterministic unless seeded)
//   • shuffle = false (relations kept in emission order)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Permute relation order and endpoint orientation after all constructors ran.
	shuffle bool
}

// newBuilderConfig applies options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
