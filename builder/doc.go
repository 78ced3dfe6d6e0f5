// Package builder provides deterministic, composable constructors for
// relation topologies, used to assemble populations for tests, fixtures and
// the generate command.
//
// The package offers the following key components:
//
//   - Topology: an entity count plus an ordered list of relation pairs.
//   - Constructor: func(*Topology, builderConfig) error. Every constructor
//     appends a fresh component with its own ids, so constructors compose
//     into disjoint unions in call order.
//   - Families with known bipartiteness:
//     – Path(n), Star(n), Grid(r,c), CompleteBipartite(n1,n2): always bipartite.
//     – Cycle(n): bipartite iff n is even.
//     – Complete(n): bipartite iff n ≤ 2.
//     – Wheel(n): never bipartite (contains triangles).
//     – PlatonicSolid(name, withCenter): only the bare Cube is bipartite.
//     – RandomSparse(n,p): Erdős–Rényi sample, seeded.
//     – RandomRegular(n,d): d-regular sample by stub matching, seeded.
//   - Options:
//     – WithSeed / WithRand: RNG for stochastic constructors.
//     – WithShuffle: permute relation order and orientation after building.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical topology.
//   - Constructors validate their parameters and return sentinel errors
//     (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrOptionViolation, ErrConstructFailed); they never panic.
//   - Option constructors panic on meaningless input (nil RNG).
package builder
