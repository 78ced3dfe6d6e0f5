// SPDX-License-Identifier: MIT
// Package: colony/builder
//
// impl_platonic.go — implementation of PlatonicSolid(name, withCenter) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}
//     (else ErrOptionViolation).
//   • Emits shell relations in the pre-sorted order of variants_platonic.go.
//   • withCenter appends one hub id after the shell and relates it to every
//     shell id in ascending order.
//
// Complexity:
//   • Time: O(V+E) with V≤21, E≤50.

package builder

import "fmt"

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor that builds the chosen Platonic shell,
// optionally with a central hub related to every shell entity.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(t *Topology, _ builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %v: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}

		base := t.AddEntities(n)
		for _, e := range platonicEdgeSets[name] {
			if err := t.Relate(base+e[0], base+e[1]); err != nil {
				return fmt.Errorf("%s: %w", methodPlatonicSolid, err)
			}
		}

		if withCenter {
			hub := t.AddEntities(1)
			for i := 0; i < n; i++ {
				if err := t.Relate(hub, base+i); err != nil {
					return fmt.Errorf("%s: %w", methodPlatonicSolid, err)
				}
			}
		}

		return nil
	}
}
