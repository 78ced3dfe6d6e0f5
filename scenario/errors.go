package scenario

import "github.com/pkg/errors"

var (
	// ErrMalformedInput indicates a missing token or a token that is not an unsigned integer.
	ErrMalformedInput = errors.New("scenario: malformed input")

	// ErrPopulationTooLarge indicates a declared population size above the configured limit.
	ErrPopulationTooLarge = errors.New("scenario: population too large")
)
