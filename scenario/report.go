package scenario

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Report lines. A bipartite population is reported as suspicious.
const (
	MsgSuspicious   = "Suspicious bugs found!"
	MsgUnsuspicious = "No suspicious bugs found!"
)

// WriteReport writes the two report lines for the scenario at 1-based index.
func WriteReport(w io.Writer, index int, bipartite bool) error {
	msg := MsgUnsuspicious
	if bipartite {
		msg = MsgSuspicious
	}
	_, err := fmt.Fprintf(w, "Scenario #%d\n%s\n", index, msg)

	return errors.Wrapf(err, "write report #%d", index)
}
