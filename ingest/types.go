package ingest

import (
	"fmt"

	"github.com/jefelino/pref-match-web/assign"
)

// Warning is the ingestion-level non-fatal note; it is the same shape the
// solver's own PrepareInput surfaces, so a host can merge the two slices
// without translation.
type Warning = assign.Warning

// CellError reports a structurally malformed cell: a slot count that is not
// a non-negative integer, or a preference cell that cannot be interpreted
// as any of the three grammar forms at all. It
// is distinct from a Warning — a CellError means the file itself could not
// be parsed, not that a value inside it needed renormalizing.
type CellError struct {
	Row  int
	Col  int
	Text string
}

func (e CellError) Error() string {
	return fmt.Sprintf("ingest: malformed cell at row %d, col %d: %q", e.Row, e.Col, e.Text)
}

// Options configures parsing behavior.
type Options struct {
	// Verbose, when true, adds detail to the out-of-range and
	// duplicate-fixed warnings' Msg: the position, and for an out-of-range
	// rank its original value. The other warnings read the same either way.
	Verbose bool
}

// DefaultOptions returns the non-verbose default: validation warnings name
// the rule that fired but not the offending position or rank.
func DefaultOptions() Options {
	return Options{Verbose: false}
}
