// Package twocolor runs the two-category consistency check over a
// core.Population and turns its outcome into diagnostics: the roots of the
// components visited, the two-set partition of a bipartite population, and
// for a non-bipartite one the conflicting relation plus an odd cycle.
//
// Key features:
//   - Check(p, opts...): one reset, one depth-first pass per component
//   - Hooks: OnRoot and OnTag with error aborts
//   - Cancellation via context.Context
//   - WithOddCycle: rebuilds an odd cycle from discovery links
//
// Complexity:
//
//   - Time:   O(V + E), plus O(V log V) to sort the partition.
//   - Memory: O(V + E) for the frame stack; O(V) more for discovery links.
package twocolor

import (
	"sort"

	"github.com/katalvlaran/colony/core"
)

// checker encapsulates state during one Check call.
type checker struct {
	opts CheckOptions
	res  *Result
	via  map[int]int // discovery links, only with OddCycle
}

// Check runs the consistency check on p and returns a Result.
// On a hook or context error the partially filled Result is returned with it.
func Check(p *core.Population, opts ...Option) (*Result, error) {
	// 1. Validate input population
	if p == nil {
		return nil, ErrPopulationNil
	}

	// 2. Apply options
	copts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&copts)
	}

	// 3. Run the pass, collecting roots, tags and links through hooks
	c := &checker{
		opts: copts,
		res: &Result{
			Partition: make(map[core.Category][]int, 2),
		},
	}
	if copts.OddCycle {
		c.via = make(map[int]int)
	}

	conflict, err := p.Color(copts.Ctx, core.ColorHooks{
		OnRoot: c.onRoot,
		OnTag:  c.onTag,
	})
	if err != nil {
		return c.res, err
	}

	// 4. Conflict: no partition, optional witness
	if conflict != nil {
		c.res.Partition = nil
		c.res.Conflict = conflict
		if copts.OddCycle {
			c.res.OddCycle = c.oddCycle(conflict)
		}

		return c.res, nil
	}

	// 5. Bipartite: stable partition output
	c.res.Bipartite = true
	for _, ids := range c.res.Partition {
		sort.Ints(ids)
	}

	return c.res, nil
}

func (c *checker) onRoot(id int) error {
	c.res.Roots = append(c.res.Roots, id)
	if c.opts.OnRoot != nil {
		return c.opts.OnRoot(id)
	}

	return nil
}

func (c *checker) onTag(id, via int, cat core.Category) error {
	c.res.Partition[cat] = append(c.res.Partition[cat], id)
	if c.via != nil {
		c.via[id] = via
	}
	if c.opts.OnTag != nil {
		return c.opts.OnTag(id, cat)
	}

	return nil
}

// oddCycle closes the two discovery paths of the conflicting endpoints at
// their lowest common ancestor. Both endpoints hold the same category, so the
// paths have equal parity and the closing relation makes the cycle odd.
func (c *checker) oddCycle(conflict *core.Conflict) []int {
	x, v := conflict.Entity, conflict.Via

	// Ancestors of x, nearest first, with their position on the path.
	up := []int{x}
	pos := map[int]int{x: 0}
	for cur := x; ; {
		parent, ok := c.via[cur]
		if !ok || parent == core.NoEntity {
			break
		}
		pos[parent] = len(up)
		up = append(up, parent)
		cur = parent
	}

	// Walk up from v until the x path is hit.
	var down []int
	cur := v
	for {
		if _, ok := pos[cur]; ok {
			break
		}
		down = append(down, cur)
		parent, ok := c.via[cur]
		if !ok || parent == core.NoEntity {
			// Not in the same discovery tree; cannot happen for a real conflict.
			return nil
		}
		cur = parent
	}

	cycle := append([]int(nil), up[:pos[cur]+1]...)
	for i := len(down) - 1; i >= 0; i-- {
		cycle = append(cycle, down[i])
	}

	return append(cycle, x)
}
