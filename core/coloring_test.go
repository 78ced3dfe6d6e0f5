package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colony/core"
)

func TestIsBipartite_Shapes(t *testing.T) {
	cases := []struct {
		name  string
		size  int
		pairs [][2]int
		want  bool
	}{
		{"empty", 0, nil, true},
		{"isolated", 3, nil, true},
		{"single edge", 2, [][2]int{{0, 1}}, true},
		{"triangle", 3, [][2]int{{0, 1}, {1, 2}, {2, 0}}, false},
		{"square", 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, true},
		{"pentagon", 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}, false},
		{"duplicate edge", 2, [][2]int{{0, 1}, {1, 0}, {0, 1}}, true},
		{"self relation", 1, [][2]int{{0, 0}}, false},
		{"square with chord", 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}}, false},
		{"two squares", 8, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}}, true},
		{"square and triangle", 7, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 4}}, false},
		{"triangle first", 5, [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}}, false},
		{"odd cycle in later component", 6, [][2]int{{0, 1}, {2, 3}, {3, 4}, {4, 5}, {5, 3}}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := mustPopulation(t, tc.size, tc.pairs...)
			assert.Equal(t, tc.want, p.IsBipartite())
		})
	}
}

func TestIsBipartite_Idempotent(t *testing.T) {
	bip := mustPopulation(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})
	odd := mustPopulation(t, 3, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})

	for i := 0; i < 3; i++ {
		assert.True(t, bip.IsBipartite())
		assert.False(t, odd.IsBipartite())
	}
}

func TestIsBipartite_TagsFollowTheLastQuery(t *testing.T) {
	p := mustPopulation(t, 5, [2]int{0, 1}, [2]int{1, 2}, [2]int{3, 4})
	require.True(t, p.IsBipartite())

	want := []core.Category{core.CategoryA, core.CategoryB, core.CategoryA, core.CategoryA, core.CategoryB}
	for id, c := range want {
		got, tagged, err := p.Tag(id)
		require.NoError(t, err)
		assert.True(t, tagged)
		assert.Equal(t, c, got, "tag of %d", id)
	}

	// Every related pair holds opposing categories.
	for a := 0; a < p.Size(); a++ {
		rel, err := p.Relations(a)
		require.NoError(t, err)
		ca, _, _ := p.Tag(a)
		for _, b := range rel {
			cb, _, _ := p.Tag(b)
			assert.Equal(t, ca.Opposite(), cb, "relation %d-%d", a, b)
		}
	}
}

func TestIsBipartite_FailedQueryLeavesPartialTags(t *testing.T) {
	// Triangle on 0..2, untouched component on 3..4.
	p := mustPopulation(t, 5, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{3, 4})
	require.False(t, p.IsBipartite())

	// Roots after the failing one are never attempted.
	for _, id := range []int{3, 4} {
		_, tagged, err := p.Tag(id)
		require.NoError(t, err)
		assert.False(t, tagged, "entity %d", id)
	}
	assert.Equal(t, 3, p.Stats().Tagged)

	// The next query starts from a clean slate.
	require.False(t, p.IsBipartite())
	assert.Equal(t, 3, p.Stats().Tagged)
}

func TestColor_ConflictOnTriangle(t *testing.T) {
	p := mustPopulation(t, 3, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})

	conflict, err := p.Color(context.Background(), core.ColorHooks{})
	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, core.Conflict{Entity: 0, Via: 2, Want: core.CategoryB, Have: core.CategoryA}, *conflict)
	assert.Equal(t, "entity 0 holds A, relation to 2 requires B", conflict.String())
}

func TestColor_HooksSeeDepthFirstOrder(t *testing.T) {
	// 0 relates to 1 and 3; 1 relates to 2. Component {4} is separate.
	p := mustPopulation(t, 5, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 3})

	type tagEvent struct {
		id, via int
		c       core.Category
	}
	var (
		roots []int
		tags  []tagEvent
	)
	conflict, err := p.Color(context.Background(), core.ColorHooks{
		OnRoot: func(id int) error { roots = append(roots, id); return nil },
		OnTag: func(id, via int, c core.Category) error {
			tags = append(tags, tagEvent{id, via, c})
			return nil
		},
	})
	require.NoError(t, err)
	assert.Nil(t, conflict)

	assert.Equal(t, []int{0, 4}, roots)
	assert.Equal(t, []tagEvent{
		{0, core.NoEntity, core.CategoryA},
		{1, 0, core.CategoryB},
		{2, 1, core.CategoryA},
		{3, 0, core.CategoryB},
		{4, core.NoEntity, core.CategoryA},
	}, tags)
}

func TestColor_HookErrorsAbort(t *testing.T) {
	p := mustPopulation(t, 3, [2]int{0, 1})
	boom := errors.New("boom")

	_, err := p.Color(context.Background(), core.ColorHooks{
		OnTag: func(id, _ int, _ core.Category) error {
			if id == 1 {
				return boom
			}
			return nil
		},
	})
	assert.ErrorIs(t, err, boom)

	_, err = p.Color(context.Background(), core.ColorHooks{
		OnRoot: func(id int) error {
			if id == 2 {
				return boom
			}
			return nil
		},
	})
	assert.ErrorIs(t, err, boom)
}

func TestColor_Canceled(t *testing.T) {
	p := mustPopulation(t, 2, [2]int{0, 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conflict, err := p.Color(ctx, core.ColorHooks{})
	assert.Nil(t, conflict)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsBipartite_LongPathDoesNotRecurse(t *testing.T) {
	const n = 200000
	p, err := core.NewPopulation(n)
	require.NoError(t, err)
	for i := 1; i < n; i++ {
		_, _, err = p.AddRelation(i-1, i)
		require.NoError(t, err)
	}
	assert.True(t, p.IsBipartite())

	// Closing the path into an odd cycle (n is even, so add a chord 0-2).
	_, _, err = p.AddRelation(0, 2)
	require.NoError(t, err)
	assert.False(t, p.IsBipartite())
}
