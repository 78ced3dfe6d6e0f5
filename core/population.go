// SPDX-License-Identifier: MIT
//
// File: population.go
// Role: Relation registration and id-keyed queries over the entity arena.
//
// Determinism:
//   - Relations() returns ids in insertion order.
//
// Concurrency:
//   - Every method takes Population.mu; none calls another locking method while holding it.

package core

import "fmt"

// AddRelation registers a symmetric relation between entities a and b.
//
// Implementation:
//   - Stage 1: Validate both ids against the arena (ErrOutOfRange).
//   - Stage 2: Append b to a's relations, then a to b's relations, under one lock.
//
// Behavior highlights:
//   - No transient one-sided state is observable: both sides are written in one critical section.
//   - Duplicates are kept; a self-relation (a == b) appends a to itself twice.
//
// Returns:
//   - sizeA, sizeB: relation counts of a and b after insertion. For a == b both
//     values are the entity's final count.
//
// Errors:
//   - ErrOutOfRange if either id is outside 0..Size()-1. The population is left unchanged.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (p *Population) AddRelation(a, b int) (int, int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.checkID(a); err != nil {
		return 0, 0, fmt.Errorf("AddRelation(%d,%d): %w", a, b, err)
	}
	if err := p.checkID(b); err != nil {
		return 0, 0, fmt.Errorf("AddRelation(%d,%d): %w", a, b, err)
	}

	ea, eb := &p.entities[a], &p.entities[b]
	ea.AddRelation(eb)
	eb.AddRelation(ea)

	p.relations++
	if a == b {
		p.selfRelations++
	}

	return ea.RelationCount(), eb.RelationCount(), nil
}

// Size returns the number of entities.
func (p *Population) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.entities)
}

// HasRelation reports whether b appears among a's relations.
// Because registration is symmetric, the answer is the same with a and b swapped.
func (p *Population) HasRelation(a, b int) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.checkID(a); err != nil {
		return false, fmt.Errorf("HasRelation(%d,%d): %w", a, b, err)
	}
	if err := p.checkID(b); err != nil {
		return false, fmt.Errorf("HasRelation(%d,%d): %w", a, b, err)
	}

	return p.entities[a].relatedTo(b), nil
}

// Relations returns a copy of the ids related to id, in insertion order.
func (p *Population) Relations(id int) ([]int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.checkID(id); err != nil {
		return nil, fmt.Errorf("Relations(%d): %w", id, err)
	}

	return p.entities[id].Relations(), nil
}

// Tag returns the tag left on id by the last coloring pass.
func (p *Population) Tag(id int) (Category, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.checkID(id); err != nil {
		return CategoryA, false, fmt.Errorf("Tag(%d): %w", id, err)
	}
	c, ok := p.entities[id].Tag()

	return c, ok, nil
}

// Entity returns a detached copy of entity id. Mutating the copy does not
// affect the population.
func (p *Population) Entity(id int) (*Entity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.checkID(id); err != nil {
		return nil, fmt.Errorf("Entity(%d): %w", id, err)
	}

	return p.entities[id].snapshot(), nil
}

// ClearAllTags removes every entity's tag.
// Complexity: O(Size()).
func (p *Population) ClearAllTags() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.clearTags()
}

// clearTags is ClearAllTags without locking; callers hold p.mu.
func (p *Population) clearTags() {
	for i := range p.entities {
		p.entities[i].ClearTag()
	}
}

// checkID validates id against the arena; callers hold p.mu.
func (p *Population) checkID(id int) error {
	if id < 0 || id >= len(p.entities) {
		return fmt.Errorf("id=%d not in [0,%d): %w", id, len(p.entities), ErrOutOfRange)
	}

	return nil
}
