package main

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/colony/scenario"
)

type checkCmd struct {
	Input         string `short:"i" default:"-" placeholder:"PATH" help:"Scenario input, - for stdin"`
	KeepGoing     bool   `name:"keep-going" help:"Skip scenarios with invalid ids instead of stopping"`
	MaxPopulation int    `name:"max-population" default:"16777216" env:"COLONY_MAX_POPULATION" help:"Reject scenarios declaring more bugs than this"`
}

func (c *checkCmd) Run(e *env) (err error) {
	in := io.Reader(os.Stdin)
	if c.Input != "-" {
		f, openErr := os.Open(c.Input)
		if openErr != nil {
			return errors.Wrap(openErr, "open input")
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		in = f
	}

	out := bufio.NewWriter(os.Stdout)
	defer func() {
		err = multierr.Append(err, errors.Wrap(out.Flush(), "flush output"))
	}()

	opts := []scenario.Option{
		scenario.WithLogger(e.logger.Named("scenario")),
		scenario.WithMetrics(scenario.NewMetrics(e.registry)),
		scenario.WithMaxPopulation(c.MaxPopulation),
	}
	if c.KeepGoing {
		opts = append(opts, scenario.WithKeepGoing())
	}

	sum, err := scenario.NewRunner(opts...).Run(e.ctx, in, out)
	e.logger.Info("check finished",
		zap.Int("scenarios", sum.Scenarios),
		zap.Int("bipartite", sum.Bipartite),
		zap.Int("rejected", sum.Rejected),
	)

	return err
}
