package twocolor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colony/builder"
	"github.com/katalvlaran/colony/core"
	"github.com/katalvlaran/colony/twocolor"
)

// buildPopulation creates a population of size n with the given relations.
func buildPopulation(t *testing.T, n int, pairs ...[2]int) *core.Population {
	t.Helper()
	p, err := core.NewPopulation(n)
	require.NoError(t, err)
	for _, pr := range pairs {
		_, _, err = p.AddRelation(pr[0], pr[1])
		require.NoError(t, err)
	}

	return p
}

// requireOddCycle checks that cycle is a closed walk along relations of p with an odd edge count.
func requireOddCycle(t *testing.T, p *core.Population, cycle []int) {
	t.Helper()
	require.GreaterOrEqual(t, len(cycle), 2)
	require.Equal(t, cycle[0], cycle[len(cycle)-1], "cycle must be closed")
	edges := len(cycle) - 1
	require.Equal(t, 1, edges%2, "cycle %v must have an odd number of edges", cycle)
	for i := 1; i < len(cycle); i++ {
		ok, err := p.HasRelation(cycle[i-1], cycle[i])
		require.NoError(t, err)
		require.True(t, ok, "cycle %v: %d-%d is not a relation", cycle, cycle[i-1], cycle[i])
	}
}

func TestCheck_NilPopulation(t *testing.T) {
	res, err := twocolor.Check(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, twocolor.ErrPopulationNil)
}

func TestCheck_BipartitePartition(t *testing.T) {
	// Square 0-1-2-3 plus edge 4-5.
	p := buildPopulation(t, 6, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0}, [2]int{5, 4})

	res, err := twocolor.Check(p)
	require.NoError(t, err)
	assert.True(t, res.Bipartite)
	assert.Nil(t, res.Conflict)
	assert.Nil(t, res.OddCycle)
	assert.Equal(t, []int{0, 4}, res.Roots)
	assert.Equal(t, []int{0, 2, 4}, res.Partition[core.CategoryA])
	assert.Equal(t, []int{1, 3, 5}, res.Partition[core.CategoryB])
}

func TestCheck_ConflictAndOddCycle(t *testing.T) {
	p := buildPopulation(t, 3, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})

	res, err := twocolor.Check(p, twocolor.WithOddCycle())
	require.NoError(t, err)
	assert.False(t, res.Bipartite)
	assert.Nil(t, res.Partition)
	require.NotNil(t, res.Conflict)
	assert.Equal(t, []int{0}, res.Roots)
	assert.Equal(t, []int{0, 1, 2, 0}, res.OddCycle)
	requireOddCycle(t, p, res.OddCycle)

	// Without the option no witness is built.
	res, err = twocolor.Check(p)
	require.NoError(t, err)
	assert.NotNil(t, res.Conflict)
	assert.Nil(t, res.OddCycle)
}

func TestCheck_SelfRelationWitness(t *testing.T) {
	p := buildPopulation(t, 2, [2]int{0, 1}, [2]int{1, 1})

	res, err := twocolor.Check(p, twocolor.WithOddCycle())
	require.NoError(t, err)
	assert.False(t, res.Bipartite)
	assert.Equal(t, []int{1, 1}, res.OddCycle)
	requireOddCycle(t, p, res.OddCycle)
}

func TestCheck_OddCycleOnGeneratedFamilies(t *testing.T) {
	cases := []struct {
		name string
		cons []builder.Constructor
	}{
		{"C7", []builder.Constructor{builder.Cycle(7)}},
		{"K5", []builder.Constructor{builder.Complete(5)}},
		{"W6", []builder.Constructor{builder.Wheel(6)}},
		{"grid then C9", []builder.Constructor{builder.Grid(3, 4), builder.Cycle(9)}},
		{"path then K3", []builder.Constructor{builder.Path(10), builder.Complete(3)}},
		{"sparse", []builder.Constructor{builder.RandomSparse(40, 0.5)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := builder.BuildPopulation([]builder.BuilderOption{builder.WithSeed(7)}, tc.cons...)
			require.NoError(t, err)

			res, err := twocolor.Check(p, twocolor.WithOddCycle())
			require.NoError(t, err)
			require.False(t, res.Bipartite)
			requireOddCycle(t, p, res.OddCycle)
			assert.Equal(t, p.IsBipartite(), res.Bipartite)
		})
	}
}

func TestCheck_Hooks(t *testing.T) {
	p := buildPopulation(t, 4, [2]int{0, 1}, [2]int{2, 3})

	var roots, tagged []int
	res, err := twocolor.Check(p,
		twocolor.WithOnRoot(func(id int) error { roots = append(roots, id); return nil }),
		twocolor.WithOnTag(func(id int, _ core.Category) error { tagged = append(tagged, id); return nil }),
	)
	require.NoError(t, err)
	assert.True(t, res.Bipartite)
	assert.Equal(t, []int{0, 2}, roots)
	assert.Equal(t, []int{0, 1, 2, 3}, tagged)

	stop := errors.New("stop")
	res, err = twocolor.Check(p, twocolor.WithOnRoot(func(id int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	require.NotNil(t, res)
	assert.Equal(t, []int{0, 2}, res.Roots)
	assert.False(t, res.Bipartite)
}

func TestCheck_Context(t *testing.T) {
	p := buildPopulation(t, 2, [2]int{0, 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := twocolor.Check(p, twocolor.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	// A nil context keeps the default.
	res, err := twocolor.Check(p, twocolor.WithContext(nil))
	require.NoError(t, err)
	assert.True(t, res.Bipartite)
}
