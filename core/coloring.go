// SPDX-License-Identifier: MIT
//
// File: coloring.go
// Role: Two-category consistency check (bipartiteness) over the entity arena.
//
// Algorithm:
//   - One tag reset per query, then roots in ascending id order; roots already
//     tagged by an earlier component's pass are skipped.
//   - Each root starts with CategoryA and propagates the opposite category to
//     every relation depth-first, using an explicit stack of frames instead of
//     recursion so that path length is bounded by heap, not goroutine stack.
//   - The first entity asked to hold a category other than the one it already
//     holds ends the query with a Conflict. Tags are not rolled back.
//
// Complexity:
//   - Time O(V + E), Space O(V + E) for the frame stack (each relation is pushed
//     once per tagged endpoint).

package core

import (
	"context"
	"fmt"
)

// NoEntity marks the absent "via" entity of a coloring root.
const NoEntity = -1

// ColorHooks are optional callbacks fired by Population.Color.
// A non-nil error returned by a hook aborts the pass and is returned wrapped.
type ColorHooks struct {
	// OnRoot fires before a pass starts at an untagged root.
	OnRoot func(id int) error

	// OnTag fires right after id was tagged with c because of its relation
	// to via (NoEntity for roots).
	OnTag func(id, via int, c Category) error
}

// Conflict describes the relation that proved the population is not bipartite:
// Via (tagged Want.Opposite()) demanded Want from Entity, which already held Have.
type Conflict struct {
	Entity int
	Via    int
	Want   Category
	Have   Category
}

// String renders the conflict for diagnostics.
func (c *Conflict) String() string {
	return fmt.Sprintf("entity %d holds %s, relation to %d requires %s", c.Entity, c.Have, c.Via, c.Want)
}

// colorFrame is one pending consistency requirement: id must hold want because of via.
type colorFrame struct {
	id   int
	via  int
	want Category
}

// colorWalker encapsulates state during one Color call; callers hold p.mu.
type colorWalker struct {
	ctx   context.Context
	p     *Population
	hooks ColorHooks
	stack []colorFrame
}

// IsBipartite reports whether every related pair can hold opposing categories.
//
// The result does not depend on earlier calls; tags are reset at the start of
// each call and left as this call leaves them.
func (p *Population) IsBipartite() bool {
	conflict, err := p.Color(context.Background(), ColorHooks{})

	return err == nil && conflict == nil
}

// Color runs the consistency check and reports the first conflict found,
// or nil if the population is bipartite.
//
// Implementation:
//   - Stage 1: Lock the population and reset every tag.
//   - Stage 2: For each untagged root in ascending id order, fire OnRoot and run consistent(root, CategoryA).
//   - Stage 3: Return the first Conflict; remaining roots are never attempted.
//
// Errors:
//   - ctx.Err() if ctx is done before the pass completes.
//   - Wrapped hook errors.
func (p *Population) Color(ctx context.Context, hooks ColorHooks) (*Conflict, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.clearTags()

	w := &colorWalker{ctx: ctx, p: p, hooks: hooks}
	for root := range p.entities {
		if p.entities[root].HasTag() {
			continue
		}
		if hooks.OnRoot != nil {
			if err := hooks.OnRoot(root); err != nil {
				return nil, fmt.Errorf("core: OnRoot hook for %d: %w", root, err)
			}
		}
		conflict, err := w.consistent(root, CategoryA)
		if err != nil || conflict != nil {
			return conflict, err
		}
	}

	return nil, nil
}

// consistent requires root to hold want and propagates the opposite category
// through its component.
func (w *colorWalker) consistent(root int, want Category) (*Conflict, error) {
	w.stack = append(w.stack[:0], colorFrame{id: root, via: NoEntity, want: want})

	var (
		f    colorFrame
		e    *Entity
		next Category
		i    int
	)
	for len(w.stack) > 0 {
		f = w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		e = &w.p.entities[f.id]

		// Already tagged: either the cycle closes consistently or it is odd.
		if e.HasTag() {
			if !e.Check(f.want) {
				have, _ := e.Tag()
				return &Conflict{Entity: f.id, Via: f.via, Want: f.want, Have: have}, nil
			}
			continue
		}

		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		e.SetTag(f.want)
		if w.hooks.OnTag != nil {
			if err := w.hooks.OnTag(f.id, f.via, f.want); err != nil {
				return nil, fmt.Errorf("core: OnTag hook for %d: %w", f.id, err)
			}
		}

		// Push in reverse so relations are visited in insertion order.
		next = f.want.Opposite()
		for i = len(e.relations) - 1; i >= 0; i-- {
			w.stack = append(w.stack, colorFrame{id: e.relations[i], via: f.id, want: next})
		}
	}

	return nil, nil
}
