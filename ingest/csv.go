package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jefelino/pref-match-web/assign"
)

// ErrEmptyFile is returned when the reader yields fewer than two rows, so
// the header and slots rows cannot both be present.
var ErrEmptyFile = errors.New("ingest: empty file")

// ErrMissingHeader is returned when row 1 is not a "Courses" header.
var ErrMissingHeader = errors.New(`ingest: row 1 must begin with "Courses"`)

// ErrMissingSlotsRow is returned when row 2 is not a "Number of slots" row.
var ErrMissingSlotsRow = errors.New(`ingest: row 2 must begin with "Number of slots"`)

// ErrColumnCountMismatch is returned when a row's column count does not
// match the header row.
var ErrColumnCountMismatch = errors.New("ingest: row has the wrong number of columns")

// ParseCSV parses r using the default Options.
func ParseCSV(r io.Reader) (assign.Input, []Warning, error) {
	return ParseCSVWithOptions(r, DefaultOptions())
}

// ParseCSVWithOptions parses r into an assign.Input, running every
// validation rule described in the package doc and collecting the warnings
// they produce. It returns an error only for structurally malformed input:
// a missing header row, a missing slots row, a row with the wrong number of
// columns, a non-numeric slot count, or a cell matching none of the three
// grammar forms.
func ParseCSVWithOptions(r io.Reader, opts Options) (assign.Input, []Warning, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // validated manually for a clearer error

	rows, err := reader.ReadAll()
	if err != nil {
		return assign.Input{}, nil, fmt.Errorf("ingest: reading csv: %w", err)
	}
	if len(rows) < 2 {
		return assign.Input{}, nil, ErrEmptyFile
	}

	header := rows[0]
	if len(header) < 1 || !strings.EqualFold(strings.TrimSpace(header[0]), "Courses") {
		return assign.Input{}, nil, ErrMissingHeader
	}
	positions := make([]assign.Position, 0, len(header)-1)
	for _, name := range header[1:] {
		positions = append(positions, assign.Position(strings.TrimSpace(name)))
	}

	slotsRow := rows[1]
	if len(slotsRow) < 1 || !strings.EqualFold(strings.TrimSpace(slotsRow[0]), "Number of slots") {
		return assign.Input{}, nil, ErrMissingSlotsRow
	}
	if len(slotsRow)-1 != len(positions) {
		return assign.Input{}, nil, ErrColumnCountMismatch
	}

	slots := make(assign.Slots, len(positions))
	for i, c := range positions {
		n, err := strconv.Atoi(strings.TrimSpace(slotsRow[i+1]))
		if err != nil || n < 0 {
			return assign.Input{}, nil, CellError{Row: 2, Col: i + 1, Text: slotsRow[i+1]}
		}
		if n > 0 {
			slots[c] = n
		}
	}

	preferences := make(map[assign.Person]map[assign.Position]assign.Preference, len(rows)-2)
	for rowIdx := 2; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if len(row)-1 != len(positions) {
			return assign.Input{}, nil, ErrColumnCountMismatch
		}
		person := assign.Person(strings.TrimSpace(row[0]))
		inner := make(map[assign.Position]assign.Preference, len(positions))
		for i, c := range positions {
			cell := strings.TrimSpace(row[i+1])
			pref, forbidden, err := parseCell(cell)
			if err != nil {
				return assign.Input{}, nil, CellError{Row: rowIdx + 1, Col: i + 1, Text: cell}
			}
			if !forbidden {
				inner[c] = pref
			}
		}
		preferences[person] = inner
	}

	var warnings []Warning
	warnings = append(warnings, validatePeopleSlotBalance(len(preferences), slots.Total())...)
	numPositions := len(positions)
	for person, inner := range preferences {
		warnings = append(warnings, validatePerson(person, inner, numPositions, opts)...)
	}

	return assign.Input{Slots: slots, Preferences: preferences}, warnings, nil
}

// parseCell interprets one preference cell: "N" a plain rank, "*N" a fixed
// rank, or a token beginning with "-" meaning forbidden (forbidden=true,
// the returned Preference is unused).
func parseCell(cell string) (pref assign.Preference, forbidden bool, err error) {
	if cell == "" || strings.HasPrefix(cell, "-") {
		return assign.Preference{}, true, nil
	}
	fixed := strings.HasPrefix(cell, "*")
	digits := strings.TrimPrefix(cell, "*")
	n, convErr := strconv.Atoi(digits)
	if convErr != nil || n < 1 {
		return assign.Preference{}, false, fmt.Errorf("ingest: invalid cell %q", cell)
	}
	return assign.Preference{Rank: assign.Rank(n), Fixed: fixed}, false, nil
}
