package scenario

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/colony/core"
	"github.com/katalvlaran/colony/twocolor"
)

// DefaultMaxPopulation is the largest population size a Runner accepts by default.
const DefaultMaxPopulation = 1 << 24

// Summary counts what one Run produced.
type Summary struct {
	Scenarios int // reports written
	Bipartite int // reports that said "Suspicious bugs found!"
	Rejected  int // scenarios skipped for invalid ids or size
}

// Runner evaluates every scenario of an input stream and writes the reports.
type Runner struct {
	logger        *zap.Logger
	metrics       *Metrics
	keepGoing     bool
	maxPopulation int
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) {
		r.metrics = m
	}
}

// WithKeepGoing makes Run skip scenarios whose ids or size are invalid
// instead of stopping at the first one. Skipped scenarios write no report
// and their errors are combined into Run's returned error.
func WithKeepGoing() Option {
	return func(r *Runner) {
		r.keepGoing = true
	}
}

// WithMaxPopulation caps the accepted population size; n <= 0 keeps the default.
func WithMaxPopulation(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.maxPopulation = n
		}
	}
}

// NewRunner returns a Runner with a no-op logger and no metrics unless configured.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger:        zap.NewNop(),
		maxPopulation: DefaultMaxPopulation,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run reads the scenario count from in, then evaluates each scenario in order
// and writes its report to out. Malformed input, a cancelled ctx or a write
// failure stop the run; invalid ids stop it too unless WithKeepGoing is set.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (Summary, error) {
	var (
		sum      Summary
		rejected error
	)
	rd := NewReader(in)
	count, err := rd.ReadUint()
	if err != nil {
		return sum, errors.Wrap(err, "read scenario count")
	}
	r.logger.Debug("reading scenarios", zap.Uint64("count", count))

	for i := 1; uint64(i) <= count; i++ {
		if err = ctx.Err(); err != nil {
			return sum, multierr.Append(rejected, err)
		}

		s, err := Decode(rd)
		if err != nil {
			r.metrics.reject()
			return sum, multierr.Append(rejected, errors.Wrapf(err, "scenario #%d", i))
		}

		p, err := r.population(s)
		if err != nil {
			sum.Rejected++
			r.metrics.reject()
			r.logger.Warn("rejected scenario", zap.Int("scenario", i), zap.Error(err))
			err = errors.Wrapf(err, "scenario #%d", i)
			if !r.keepGoing {
				return sum, multierr.Append(rejected, err)
			}
			rejected = multierr.Append(rejected, err)
			continue
		}

		res, err := twocolor.Check(p, twocolor.WithContext(ctx))
		if err != nil {
			return sum, multierr.Append(rejected, errors.Wrapf(err, "scenario #%d", i))
		}
		r.metrics.observe(s, res.Bipartite)
		if ce := r.logger.Check(zap.DebugLevel, "evaluated scenario"); ce != nil {
			fields := []zap.Field{
				zap.Int("scenario", i),
				zap.Int("size", s.Size),
				zap.Int("relations", len(s.Pairs)),
				zap.Bool("bipartite", res.Bipartite),
			}
			if res.Conflict != nil {
				fields = append(fields, zap.Stringer("conflict", res.Conflict))
			}
			ce.Write(fields...)
		}

		if err = WriteReport(out, i, res.Bipartite); err != nil {
			return sum, multierr.Append(rejected, err)
		}
		sum.Scenarios++
		if res.Bipartite {
			sum.Bipartite++
		}
	}

	return sum, rejected
}

func (r *Runner) population(s *Scenario) (*core.Population, error) {
	if s.Size > r.maxPopulation {
		return nil, errors.Wrapf(ErrPopulationTooLarge, "size=%d limit=%d", s.Size, r.maxPopulation)
	}

	return s.Population()
}
