package scenario

import (
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/colony/builder"
	"github.com/katalvlaran/colony/core"
)

// maxPrealloc bounds the relation slice capacity taken from a declared count,
// so an inflated header cannot force a large allocation up front.
const maxPrealloc = 1 << 12

// Scenario is one decoded population description. Pairs hold the ids as
// written in the input, that is 1-based and not yet validated.
type Scenario struct {
	Size  int
	Pairs [][2]uint64
}

// Decode reads one scenario header and its relation lines from r.
func Decode(r *Reader) (*Scenario, error) {
	size, count, err := r.ReadPair()
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	if size > math.MaxInt32 {
		return nil, errors.Wrapf(ErrPopulationTooLarge, "size=%d", size)
	}

	s := &Scenario{
		Size:  int(size),
		Pairs: make([][2]uint64, 0, min(count, maxPrealloc)),
	}
	for i := uint64(0); i < count; i++ {
		a, b, err := r.ReadPair()
		if err != nil {
			return nil, errors.Wrapf(err, "read relation %d of %d", i+1, count)
		}
		s.Pairs = append(s.Pairs, [2]uint64{a, b})
	}

	return s, nil
}

// Population builds a core.Population from s, translating 1-based ids.
// An id of 0 or above Size yields an error wrapping core.ErrOutOfRange.
func (s *Scenario) Population() (*core.Population, error) {
	p, err := core.NewPopulation(s.Size)
	if err != nil {
		return nil, err
	}
	for i, pr := range s.Pairs {
		a, err := s.index(pr[0])
		if err != nil {
			return nil, errors.Wrapf(err, "relation %d", i+1)
		}
		b, err := s.index(pr[1])
		if err != nil {
			return nil, errors.Wrapf(err, "relation %d", i+1)
		}
		if _, _, err = p.AddRelation(a, b); err != nil {
			return nil, errors.Wrapf(err, "relation %d", i+1)
		}
	}

	return p, nil
}

func (s *Scenario) index(id uint64) (int, error) {
	if id == 0 || id > uint64(s.Size) {
		return 0, errors.Wrapf(core.ErrOutOfRange, "id %d not in [1,%d]", id, s.Size)
	}

	return int(id - 1), nil
}

// FromTopology converts a generated topology into a scenario with 1-based ids.
func FromTopology(t *builder.Topology) *Scenario {
	pairs := t.Pairs()
	s := &Scenario{Size: t.Size(), Pairs: make([][2]uint64, len(pairs))}
	for i, pr := range pairs {
		s.Pairs[i] = [2]uint64{uint64(pr[0]) + 1, uint64(pr[1]) + 1}
	}

	return s
}

// Encode writes scenarios in the input format Decode and Runner.Run consume.
func Encode(w io.Writer, scenarios ...*Scenario) error {
	if _, err := fmt.Fprintf(w, "%d\n", len(scenarios)); err != nil {
		return errors.Wrap(err, "write scenario count")
	}
	for i, s := range scenarios {
		if _, err := fmt.Fprintf(w, "%d %d\n", s.Size, len(s.Pairs)); err != nil {
			return errors.Wrapf(err, "write scenario %d header", i+1)
		}
		for _, pr := range s.Pairs {
			if _, err := fmt.Fprintf(w, "%d %d\n", pr[0], pr[1]); err != nil {
				return errors.Wrapf(err, "write scenario %d relation", i+1)
			}
		}
	}

	return nil
}
