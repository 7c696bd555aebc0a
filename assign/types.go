package assign

import (
	"errors"

	"github.com/jefelino/pref-match-web/rankdist"
)

// Sentinel errors. The search itself has no runtime error conditions (every
// Input describes a legal, if possibly infeasible, search problem); the
// sentinels below guard only the convenience Solve entrypoint's own
// arguments.
var (
	// ErrNegativeBudget is returned by Solve when budget < 0.
	ErrNegativeBudget = errors.New("assign: negative step budget")
)

// Person identifies a person by an opaque, caller-assigned name.
type Person string

// Position identifies a position (course, seat, slot group) by an opaque,
// caller-assigned name.
type Position string

// Rank is a person's preference for a position. Lower is more preferred;
// ranks are always ≥ 1.
type Rank int

// Preference is one person's rating of one position.
type Preference struct {
	Position Position
	Rank     Rank
	// Fixed marks a hard constraint: the person must be placed here.
	Fixed bool
}

// Slots maps a position to its remaining (or, at the top level, initial)
// capacity. A position absent from Slots has no capacity.
type Slots map[Position]int

// Clone returns an independent copy of s.
func (s Slots) Clone() Slots {
	out := make(Slots, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Total sums every position's remaining capacity.
func (s Slots) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// Input is a full problem instance: the initial slot counts and every
// person's preferences. Input is immutable once constructed; PrepareInput
// never mutates it.
type Input struct {
	Slots       Slots
	Preferences map[Person]map[Position]Preference
}

// PlacedAt records where a person ended up and at what rank.
type PlacedAt struct {
	Position Position
	Rank     Rank
}

// Assignment is a complete or partial mapping from person to placement.
type Assignment map[Person]PlacedAt

// Clone returns an independent copy of a.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Branch is a candidate (person, position, rank) triple produced by
// SelectBranch.
type Branch struct {
	Person   Person
	Position Position
	Rank     Rank
}

// Best holds the current best known rank distribution together with every
// complete assignment that achieves it. A nil *Best means "no feasible
// assignment discovered yet"; Best is otherwise never constructed with an
// empty Assignments slice.
type Best struct {
	Distribution rankdist.Distribution
	Assignments  []Assignment
}

// Warning is a non-fatal note surfaced by PrepareInput (and, upstream, by
// ingestion) about a shape of the input worth a host's attention. A Warning
// never prevents the solver from running.
type Warning struct {
	Person   Person
	Position Position
	Msg      string
}
