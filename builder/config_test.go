// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, rng should be nil and shuffling off.
	cfgDefault := newBuilderConfig()
	assert.Nil(t, cfgDefault.rng)
	assert.False(t, cfgDefault.shuffle)

	// 2. WithRand should set rng.
	expRNG := rand.New(rand.NewSource(123))
	cfgWithRand := newBuilderConfig(WithRand(expRNG))
	assert.Same(t, expRNG, cfgWithRand.rng)

	// 3. WithSeed should produce reproducible RNG.
	cfgSeed1 := newBuilderConfig(WithSeed(42))
	cfgSeed2 := newBuilderConfig(WithSeed(42))
	assert.Equal(t, cfgSeed1.rng.Int63(), cfgSeed2.rng.Int63())

	// 4. Later options override earlier ones.
	cfgLast := newBuilderConfig(WithRand(expRNG), WithSeed(7))
	assert.NotSame(t, expRNG, cfgLast.rng)

	assert.True(t, newBuilderConfig(WithShuffle()).shuffle)
}
