// SPDX-License-Identifier: MIT
// Package: colony/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(bopts, cons...). Creates t, resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go, one per file.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical topologies.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/colony/core"
)

// Constructor appends one component to t using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters before allocating ids and return sentinel errors (no panics).
//   - Allocate their own ids via t.AddEntities and relate only those ids.
//   - Emit relations in a stable, documented order.
type Constructor func(t *Topology, cfg builderConfig) error

// Build creates a new Topology, resolves the builder configuration from
// bopts, and applies all constructors in order. Any constructor error is
// wrapped with "Build: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//   - WithShuffle: O(E) after construction.
func Build(bopts []BuilderOption, cons ...Constructor) (*Topology, error) {
	t := NewTopology()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	if cfg.shuffle {
		if cfg.rng == nil {
			return nil, fmt.Errorf("Build: shuffle: %w", ErrNeedRandSource)
		}
		t.shuffle(cfg.rng)
	}

	return t, nil
}

// BuildPopulation is Build followed by Topology.Population.
func BuildPopulation(bopts []BuilderOption, cons ...Constructor) (*core.Population, error) {
	t, err := Build(bopts, cons...)
	if err != nil {
		return nil, err
	}

	return t.Population()
}
