package main

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colony/builder"
)

func TestNewLogger(t *testing.T) {
	l, err := newLogger("debug", "json")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(-1))

	l, err = newLogger("warn", "console")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(0))

	_, err = newLogger("loud", "console")
	assert.Error(t, err)
	_, err = newLogger("info", "xml")
	assert.Error(t, err)
}

func TestConstructorFor(t *testing.T) {
	for _, kind := range []string{"path", "cycle", "star", "wheel", "complete", "bipartite", "grid", "random", "regular"} {
		con, err := constructorFor(kind, 6, 2, 0.5)
		require.NoError(t, err, kind)
		_, err = builder.Build([]builder.BuilderOption{builder.WithSeed(1)}, con)
		assert.NoError(t, err, kind)
	}

	_, err := constructorFor("hexagon", 4, 3, 0)
	assert.Error(t, err)
}

func TestCLIParse(t *testing.T) {
	t.Setenv("COLONY_LOG_LEVEL", "debug")

	var c cli
	parser, err := kong.New(&c, kong.Name("colony"))
	require.NoError(t, err)

	kctx, err := parser.Parse([]string{"generate", "--kind=grid", "--n=2", "--m=3", "--scenarios=2"})
	require.NoError(t, err)
	assert.Equal(t, "generate", kctx.Command())
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "console", c.LogFormat)
	assert.Equal(t, "grid", c.Generate.Kind)
	assert.Equal(t, 2, c.Generate.Scenarios)

	_, err = parser.Parse([]string{"generate", "--kind=hexagon"})
	assert.Error(t, err)
}
