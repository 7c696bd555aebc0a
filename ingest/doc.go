// Package ingest parses the tabular preference format consumed by the
// solver and applies the validation rules that turn a raw, possibly messy
// file into a well-formed assign.Input.
//
// # Format
//
// Row 1 begins with the literal header "Courses", followed by one position
// name per column. Row 2 begins with "Number of slots", followed by a
// non-negative integer per column. Every subsequent row starts with a
// person's name, followed by one cell per position:
//
//	N    a positive rank
//	*N   a fixed assignment at rank N — the person must be placed here
//	-... a forbidden cell — no preference entry is produced
//
// # Validation
//
// Four rules run after parsing, each surfaced as a non-fatal Warning rather
// than an error: a people/slot count mismatch, duplicate fixed entries for
// one person (the first is kept), ranks that fail the staircase property
// "for each n ≥ 1, at least n ranks are ≤ n" (renormalized to "count of
// strictly smaller ranks, plus one"), and out-of-range ranks (clamped to
// last place). Only a structurally malformed file produces an error: a
// missing header or slots row, the wrong number of columns, a non-numeric
// slot count, or a cell matching none of the three forms above.
package ingest
