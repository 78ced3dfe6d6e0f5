// SPDX-License-Identifier: MIT
// Package: colony/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices): the rim C_{n-1} needs at least 3 entities.
//   • Rim ids are base..base+n-2 and emitted as in Cycle; the hub is base+n-1.
//   • Spokes hub → rim in increasing rim order.
//   • Every wheel contains triangles, so it is never bipartite.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // because outer cycle has size (n-1) which must be ≥ 3
)

// Wheel returns a Constructor that builds a wheel W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(t *Topology, _ builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		base := t.AddEntities(n)
		if err := ring(t, base, n-1); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}

		hub := base + n - 1
		for rim := base; rim < hub; rim++ {
			if err := t.Relate(hub, rim); err != nil {
				return fmt.Errorf("%s: %w", methodWheel, err)
			}
		}

		return nil
	}
}
