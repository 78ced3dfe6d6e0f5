// SPDX-License-Identifier: MIT
// Package: colony/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Allocates n fresh ids; emits i → (i+1)%n for i=0..n-1, offset by base.
//   • C_n is bipartite iff n is even.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-entity simple cycle C_n.
func Cycle(n int) Constructor {
	return func(t *Topology, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		base := t.AddEntities(n)
		if err := ring(t, base, n); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}

		return nil
	}
}

// ring relates base..base+n-1 in a closed loop; ids must already be allocated.
func ring(t *Topology, base, n int) error {
	for i := 0; i < n; i++ {
		if err := t.Relate(base+i, base+(i+1)%n); err != nil {
			return err
		}
	}

	return nil
}
