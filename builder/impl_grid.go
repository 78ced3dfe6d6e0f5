// SPDX-License-Identifier: MIT
// Package: colony/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) gets id base + r*cols + c (row-major).
//   • For each cell in row-major order, emits the right neighbor then the bottom one.
//   • Grids are bipartite: (r+c) parity is a valid split.
//
// Complexity:
//   • Time: O(rows·cols). Space: O(1) extra.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(t *Topology, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		base := t.AddEntities(rows * cols)
		cell := func(r, c int) int { return base + r*cols + c }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := t.Relate(cell(r, c), cell(r, c+1)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows {
					if err := t.Relate(cell(r, c), cell(r+1, c)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}

		return nil
	}
}
