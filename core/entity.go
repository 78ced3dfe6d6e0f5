// SPDX-License-Identifier: MIT
//
// File: entity.go
// Role: Entity tag bookkeeping and one-sided relation registration.
//
// Concurrency:
//   - Entity methods are not synchronized. Inside a Population they are only
//     called with Population.mu held.

package core

// ID returns the entity's stable identity.
func (e *Entity) ID() int { return e.id }

// ClearTag removes the tag. Idempotent.
func (e *Entity) ClearTag() {
	e.tagged = false
	e.tag = CategoryA
}

// SetTag overwrites any existing tag with c (last write wins) and returns the receiver.
func (e *Entity) SetTag(c Category) *Entity {
	e.tag = c
	e.tagged = true

	return e
}

// HasTag reports whether the entity holds a tag.
func (e *Entity) HasTag() bool { return e.tagged }

// Tag returns the current tag and whether one is present.
func (e *Entity) Tag() (Category, bool) { return e.tag, e.tagged }

// Check reports whether the entity is tagged with exactly c.
// An untagged entity never matches; use HasTag to tell absence from mismatch.
func (e *Entity) Check(c Category) bool {
	return e.tagged && e.tag == c
}

// AddRelation appends other's id to this entity's relations and returns the
// new relation count. It does not reciprocate; Population.AddRelation does.
func (e *Entity) AddRelation(other *Entity) int {
	e.relations = append(e.relations, other.id)

	return len(e.relations)
}

// HasRelation reports whether other's id appears among this entity's relations.
// Complexity: O(relations), compared by id.
func (e *Entity) HasRelation(other *Entity) bool {
	return e.relatedTo(other.id)
}

// Relations returns a copy of the related ids in insertion order.
func (e *Entity) Relations() []int {
	out := make([]int, len(e.relations))
	copy(out, e.relations)

	return out
}

// RelationCount returns the number of registered relations, duplicates included.
func (e *Entity) RelationCount() int { return len(e.relations) }

// relatedTo is the id-keyed scan shared by HasRelation and Population.HasRelation.
func (e *Entity) relatedTo(id int) bool {
	for _, rid := range e.relations {
		if rid == id {
			return true
		}
	}

	return false
}

// snapshot returns a detached copy whose relations slice does not alias the arena.
func (e *Entity) snapshot() *Entity {
	return &Entity{
		id:        e.id,
		tag:       e.tag,
		tagged:    e.tagged,
		relations: e.Relations(),
	}
}
