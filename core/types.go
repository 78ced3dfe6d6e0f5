// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Category, Entity and Population declarations, sentinel errors and constructors.
// Policy:
//   - Entities live in a flat arena owned by their Population; relations are arena indices.
//   - Population serializes every mutation and every coloring pass behind one mutex.
//   - Entity itself carries no lock; it is safe only when owned by a single goroutine.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core population operations.
var (
	// ErrOutOfRange indicates an entity id outside 0..Size()-1.
	ErrOutOfRange = errors.New("core: entity id out of range")

	// ErrInvalidSize indicates a negative population size.
	ErrInvalidSize = errors.New("core: invalid population size")
)

// Category is one of the two opposing labels an entity can hold during a coloring pass.
type Category uint8

const (
	// CategoryA is the category every coloring root starts with.
	CategoryA Category = iota
	// CategoryB is the opposite of CategoryA.
	CategoryB
)

// Opposite returns the other category. Opposite(Opposite(c)) == c.
// Values outside {CategoryA, CategoryB} are returned unchanged.
func (c Category) Opposite() Category {
	switch c {
	case CategoryA:
		return CategoryB
	case CategoryB:
		return CategoryA
	default:
		return c
	}
}

// String renders the category as "A" or "B".
func (c Category) String() string {
	switch c {
	case CategoryA:
		return "A"
	case CategoryB:
		return "B"
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

// Entity is a node of the relation graph.
//
// The id is fixed at creation. The tag is optional: tagged == false means
// "unvisited in the current coloring pass". relations holds the ids of
// related entities in insertion order; duplicates and self-relations are kept.
type Entity struct {
	id        int
	tag       Category
	tagged    bool
	relations []int
}

// Population owns a dense arena of entities with ids 0..Size()-1.
//
// mu guards the arena: topology (relations) and the transient tags written
// by a coloring pass. A reset and the pass that follows it always run under
// a single critical section.
type Population struct {
	mu       sync.Mutex
	entities []Entity

	// Counters maintained by AddRelation.
	relations     int
	selfRelations int
}

// PopulationStats is a read-only snapshot returned by Population.Stats.
type PopulationStats struct {
	// Size is the number of entities.
	Size int
	// Relations is the number of AddRelation calls that succeeded.
	Relations int
	// SelfRelations counts relations whose endpoints are the same entity.
	SelfRelations int
	// Tagged counts entities holding a tag left by the last coloring pass.
	Tagged int
}

// NewEntity returns a fresh untagged entity with no relations.
func NewEntity(id int) *Entity {
	return &Entity{id: id}
}

// NewPopulation creates size entities with ids 0..size-1, all untagged and unrelated.
// Complexity: O(size).
func NewPopulation(size int) (*Population, error) {
	if size < 0 {
		return nil, fmt.Errorf("NewPopulation: size=%d: %w", size, ErrInvalidSize)
	}

	p := &Population{entities: make([]Entity, size)}
	for i := range p.entities {
		p.entities[i].id = i
	}

	return p, nil
}
