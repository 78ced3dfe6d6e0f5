// SPDX-License-Identifier: MIT
// Package: colony/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is the first allocated id; leaves follow in ascending order.
//   - Emits spokes hub → leaf in increasing leaf order.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(t *Topology, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub := t.AddEntities(n)
		for leaf := hub + 1; leaf < hub+n; leaf++ {
			if err := t.Relate(hub, leaf); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}

		return nil
	}
}
