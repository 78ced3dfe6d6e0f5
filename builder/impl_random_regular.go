// SPDX-License-Identifier: MIT
// Package: colony/builder
//
// impl_random_regular.go — implementation of RandomRegular(n, d) constructor.
//
// Canonical model:
//   • d-regular simple topology via stub-matching with bounded retries.
//   • Pairs stubs after a shuffle; a pairing with a self-relation or a
//     repeated pair is discarded before any relation is emitted.
//
// Contract:
//   • n ≥ 1; 0 ≤ d < n; n·d even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • ErrConstructFailed after maxStubMatchingAttempts rejected pairings.
//
// Complexity:
//   • Per attempt O(n·d) time and space; attempts are constant-bounded.
//
// Determinism:
//   • Fixed attempt limit and trial order ⇒ identical outcome for the same seed.

package builder

import "fmt"

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 64
)

// RandomRegular returns a Constructor that builds a d-regular topology over n
// entities using stub matching.
func RandomRegular(n, d int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		base := t.AddEntities(n)
		stubCount := n * d
		if stubCount == 0 {
			return nil
		}
		stubs := make([]int, 0, stubCount)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		rng := cfg.rng
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}
			for i := 0; i < stubCount; i += 2 {
				if err := t.Relate(base+stubs[i], base+stubs[i+1]); err != nil {
					return fmt.Errorf("%s: %w", methodRandomRegular, err)
				}
			}

			return nil
		}

		return fmt.Errorf("%s: no simple pairing after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs contain neither a
// self-relation nor a repeated unordered pair.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
