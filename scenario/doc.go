// Package scenario is the text boundary around core: it reads scenario
// input with two primitives (ReadUint, ReadPair), evaluates each scenario's
// population, and writes one two-line report per scenario.
//
// Input format:
//
//	<scenario count>
//	<population size> <relation count>     repeated per scenario
//	<a> <b>                                 relation count lines, 1-based ids
//
// Output per scenario (index is 1-based):
//
//	Scenario #<index>
//	Suspicious bugs found!        when the population is bipartite
//	No suspicious bugs found!     otherwise
//
// Tokens are whitespace-delimited; line breaks carry no meaning.
//
// Errors:
//
//	ErrMalformedInput       - a missing or non-numeric token; the stream cannot be resynchronized.
//	ErrPopulationTooLarge   - a declared size above the Runner's limit.
//	core.ErrOutOfRange      - a relation id of 0 or above the population size.
package scenario
