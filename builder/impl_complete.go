// SPDX-License-Identifier: MIT
// Package: colony/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j}, i<j, in lexicographic order.
//   • K_n is bipartite iff n ≤ 2.
//
// Complexity:
//   • Time: O(n²). Space: O(1) extra.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(t *Topology, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		base := t.AddEntities(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := t.Relate(base+i, base+j); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}

		return nil
	}
}
