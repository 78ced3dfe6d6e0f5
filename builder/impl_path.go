// SPDX-License-Identifier: MIT
// Package: colony/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Allocates n fresh ids base..base+n-1.
//   • Emits relations in stable order (base+i-1, base+i) for i=1..n-1.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(t *Topology, _ builderConfig) error {
		// Validate parameter domain early.
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		base := t.AddEntities(n)
		for i := 1; i < n; i++ {
			if err := t.Relate(base+i-1, base+i); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		return nil
	}
}
