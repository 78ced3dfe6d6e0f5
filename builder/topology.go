// SPDX-License-Identifier: MIT
// Package: colony/builder
//
// topology.go — the value constructors write into.
//
// A Topology only records ids and relation pairs; it becomes a
// core.Population in Population(). Keeping the two apart lets the generate
// command emit scenario text without building the arena.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/colony/core"
)

// Topology is an entity count plus an ordered list of relation pairs over ids 0..Size()-1.
type Topology struct {
	size  int
	pairs [][2]int
}

// NewTopology returns an empty topology.
func NewTopology() *Topology {
	return &Topology{}
}

// Size returns the number of entities allocated so far.
func (t *Topology) Size() int { return t.size }

// Pairs returns a copy of the relation pairs in emission order.
func (t *Topology) Pairs() [][2]int {
	out := make([][2]int, len(t.pairs))
	copy(out, t.pairs)

	return out
}

// AddEntities allocates n fresh ids and returns the first one.
func (t *Topology) AddEntities(n int) int {
	first := t.size
	t.size += n

	return first
}

// Relate appends the relation a—b. Both ids must already be allocated.
func (t *Topology) Relate(a, b int) error {
	if a < 0 || a >= t.size || b < 0 || b >= t.size {
		return fmt.Errorf("Relate(%d,%d): size=%d: %w", a, b, t.size, ErrConstructFailed)
	}
	t.pairs = append(t.pairs, [2]int{a, b})

	return nil
}

// Population materializes the topology as a core.Population, registering
// relations in emission order.
// Complexity: O(Size() + len(Pairs())).
func (t *Topology) Population() (*core.Population, error) {
	p, err := core.NewPopulation(t.size)
	if err != nil {
		return nil, fmt.Errorf("Population: %w", err)
	}
	for _, pr := range t.pairs {
		if _, _, err = p.AddRelation(pr[0], pr[1]); err != nil {
			return nil, fmt.Errorf("Population: %w", err)
		}
	}

	return p, nil
}

// shuffle permutes relation order and endpoint orientation with rng.
func (t *Topology) shuffle(rng *rand.Rand) {
	rng.Shuffle(len(t.pairs), func(i, j int) {
		t.pairs[i], t.pairs[j] = t.pairs[j], t.pairs[i]
	})
	for i := range t.pairs {
		if rng.Intn(2) == 1 {
			t.pairs[i][0], t.pairs[i][1] = t.pairs[i][1], t.pairs[i][0]
		}
	}
}
