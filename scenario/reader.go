package scenario

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Reader hands out whitespace-delimited unsigned integers from an input stream.
type Reader struct {
	sc  *bufio.Scanner
	pos int // tokens consumed so far
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &Reader{sc: sc}
}

// ReadUint parses the next token as a base-10 unsigned integer.
func (r *Reader) ReadUint() (uint64, error) {
	tok, err := r.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedInput, "token %d: %q is not an unsigned integer", r.pos, tok)
	}

	return v, nil
}

// ReadPair parses the next two tokens as unsigned integers.
func (r *Reader) ReadPair() (uint64, uint64, error) {
	a, err := r.ReadUint()
	if err != nil {
		return 0, 0, err
	}
	b, err := r.ReadUint()
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}

func (r *Reader) next() (string, error) {
	if r.sc.Scan() {
		r.pos++
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", errors.Wrapf(err, "token %d", r.pos+1)
	}

	return "", errors.Wrapf(ErrMalformedInput, "token %d: unexpected end of input", r.pos+1)
}
