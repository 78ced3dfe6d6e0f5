package main

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/colony/builder"
	"github.com/katalvlaran/colony/scenario"
)

type generateCmd struct {
	Kind      string  `enum:"path,cycle,star,wheel,complete,bipartite,grid,random,regular" default:"cycle" help:"Topology (path, cycle, star, wheel, complete, bipartite, grid, random, regular)"`
	N         int     `default:"8" help:"Entity count; left side for bipartite, rows for grid"`
	M         int     `default:"4" help:"Right side for bipartite, columns for grid, degree for regular"`
	P         float64 `default:"0.1" help:"Relation probability for random"`
	Seed      int64   `default:"1" help:"Seed of the first scenario; scenario i uses seed+i"`
	Scenarios int     `default:"1" help:"Number of scenarios to write"`
	Shuffle   bool    `help:"Shuffle relation order and orientation"`
	Output    string  `short:"o" default:"-" placeholder:"PATH" help:"Output file, - for stdout"`
}

func (g *generateCmd) Run(e *env) (err error) {
	if g.Scenarios < 0 {
		return errors.Errorf("scenarios=%d must not be negative", g.Scenarios)
	}
	con, err := constructorFor(g.Kind, g.N, g.M, g.P)
	if err != nil {
		return err
	}

	all := make([]*scenario.Scenario, 0, g.Scenarios)
	for i := 0; i < g.Scenarios; i++ {
		if err = e.ctx.Err(); err != nil {
			return err
		}
		bopts := []builder.BuilderOption{builder.WithSeed(g.Seed + int64(i))}
		if g.Shuffle {
			bopts = append(bopts, builder.WithShuffle())
		}
		t, err := builder.Build(bopts, con)
		if err != nil {
			return errors.Wrapf(err, "scenario %d", i+1)
		}
		all = append(all, scenario.FromTopology(t))
	}

	var w io.Writer = os.Stdout
	if g.Output != "-" {
		f, createErr := os.Create(g.Output)
		if createErr != nil {
			return errors.Wrap(createErr, "create output")
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		w = f
	}
	bw := bufio.NewWriter(w)
	if err = scenario.Encode(bw, all...); err != nil {
		return err
	}
	e.logger.Debug("generated scenarios", zap.String("kind", g.Kind), zap.Int("count", len(all)))

	return errors.Wrap(bw.Flush(), "flush output")
}

func constructorFor(kind string, n, m int, p float64) (builder.Constructor, error) {
	switch kind {
	case "path":
		return builder.Path(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "star":
		return builder.Star(n), nil
	case "wheel":
		return builder.Wheel(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "bipartite":
		return builder.CompleteBipartite(n, m), nil
	case "grid":
		return builder.Grid(n, m), nil
	case "random":
		return builder.RandomSparse(n, p), nil
	case "regular":
		return builder.RandomRegular(n, m), nil
	}

	return nil, errors.Errorf("unknown kind %q", kind)
}
