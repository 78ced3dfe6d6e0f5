// Package core provides the Entity and Population types and the two-category
// consistency check (bipartiteness) over a population's relation graph.
//
// A Population is a dense arena of entities with ids 0..Size()-1. Relations
// are symmetric and stored as id lists, so entities never point at each
// other and cycles in the relation graph are plain integer cycles:
//
//	p, _ := core.NewPopulation(4)
//	p.AddRelation(0, 1)
//	p.AddRelation(1, 2)
//	p.AddRelation(2, 3)
//	p.AddRelation(3, 0)
//	p.IsBipartite() // true: 0,2 hold A and 1,3 hold B
//
// Coloring:
//
//   - Each IsBipartite/Color call resets every tag once, then starts a pass at
//     every still-untagged entity in ascending id order with CategoryA.
//   - A pass propagates the opposite category depth-first and stops at the
//     first entity required to hold both categories (a Conflict).
//   - The traversal uses an explicit stack, so long paths cannot exhaust the
//     goroutine stack.
//   - Tags stay as the last pass left them until the next call.
//
// Concurrency:
//
//	Population methods are safe for concurrent use: one mutex serializes
//	relation registration, queries and every reset+coloring sequence.
//	A standalone Entity (NewEntity) is not synchronized.
//
// Errors:
//
//	ErrOutOfRange   - an entity id outside 0..Size()-1.
//	ErrInvalidSize  - a negative population size.
package core
