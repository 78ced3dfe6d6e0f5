// Command colony reads bug-colony scenarios and reports, for each one,
// whether its relations split the population into two consistent groups.
// It can also generate scenario input from the builder topologies.
//
//	colony check < scenarios.txt
//	colony generate --kind=cycle --n=9 | colony check
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type cli struct {
	LogLevel    string        `name:"log-level" default:"info" env:"COLONY_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`
	LogFormat   string        `name:"log-format" enum:"console,json" default:"console" env:"COLONY_LOG_FORMAT" help:"Log encoding (console, json)"`
	MetricsFile string        `name:"metrics-file" placeholder:"PATH" env:"COLONY_METRICS_FILE" help:"Write metrics in text exposition format to PATH on exit"`
	Timeout     time.Duration `default:"0s" env:"COLONY_TIMEOUT" help:"Abort after this long; 0 disables"`

	Check    checkCmd    `cmd:"" default:"withargs" help:"Evaluate scenarios and write one report per scenario"`
	Generate generateCmd `cmd:"" help:"Write generated scenarios in the input format"`
}

// env is bound into every command's Run.
type env struct {
	ctx      context.Context
	logger   *zap.Logger
	registry *prometheus.Registry
}

func main() {
	var params cli
	kctx := kong.Parse(&params,
		kong.Name("colony"),
		kong.Description("Two-group consistency check for bug colonies."),
		kong.UsageOnError(),
	)
	if err := params.run(kctx); err != nil {
		fmt.Fprintln(os.Stderr, "colony:", err)
		os.Exit(1)
	}
}

func (c *cli) run(kctx *kong.Context) (err error) {
	logger, err := newLogger(c.LogLevel, c.LogFormat)
	if err != nil {
		return err
	}
	// Sync on a terminal stderr reports EINVAL on some platforms.
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	e := &env{
		ctx:      ctx,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}
	err = kctx.Run(e)
	if err != nil {
		logger.Error("command failed", zap.String("command", kctx.Command()), zap.Error(err))
	}

	if c.MetricsFile != "" {
		err = multierr.Append(err, errors.Wrap(prometheus.WriteToTextfile(c.MetricsFile, e.registry), "write metrics"))
	}

	return err
}

func newLogger(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}

	var cfg zap.Config
	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console", "":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, errors.Errorf("log format %q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}
