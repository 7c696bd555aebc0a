package ingest

import (
	"fmt"
	"sort"

	"github.com/jefelino/pref-match-web/assign"
)

// validatePeopleSlotBalance implements §6's "warn if total people != total
// slots" rule. Slack in either direction is tolerated; only a mismatch is
// worth a warning, and it is a single instance-wide warning rather than one
// per person.
func validatePeopleSlotBalance(people, slots int) []Warning {
	if people == slots {
		return nil
	}
	return []Warning{{
		Msg: fmt.Sprintf("people count (%d) does not match total slots (%d)", people, slots),
	}}
}

// validatePerson runs the three per-person rules — duplicate fixed entries,
// the staircase/renormalization rule, and out-of-range clamping — against
// one person's remaining preference map, mutating it in place.
func validatePerson(person assign.Person, inner map[assign.Position]assign.Preference, numPositions int, opts Options) []Warning {
	if len(inner) == 0 {
		return []Warning{{Person: person, Msg: "person has no retained preferences and can never be placed"}}
	}

	var warnings []Warning
	warnings = append(warnings, clampOutOfRange(person, inner, numPositions, opts)...)
	warnings = append(warnings, dedupeFixed(person, inner, opts)...)
	warnings = append(warnings, renormalizeStaircase(person, inner)...)
	return warnings
}

// clampOutOfRange maps any rank outside [1, numPositions] to last place
// (numPositions), in deterministic (sorted) position order.
func clampOutOfRange(person assign.Person, inner map[assign.Position]assign.Preference, numPositions int, opts Options) []Warning {
	if numPositions <= 0 {
		return nil
	}
	var warnings []Warning
	for _, c := range sortedPositions(inner) {
		pref := inner[c]
		if int(pref.Rank) >= 1 && int(pref.Rank) <= numPositions {
			continue
		}
		msg := "rank out of range, clamped to last place"
		if opts.Verbose {
			msg = fmt.Sprintf("%s: position %q had rank %d", msg, c, pref.Rank)
		}
		pref.Rank = assign.Rank(numPositions)
		inner[c] = pref
		warnings = append(warnings, Warning{Person: person, Position: c, Msg: msg})
	}
	return warnings
}

// dedupeFixed keeps only the first fixed preference (in deterministic
// position order) and demotes the rest to ordinary, non-forcing
// preferences.
func dedupeFixed(person assign.Person, inner map[assign.Position]assign.Preference, opts Options) []Warning {
	var warnings []Warning
	seenFixed := false
	for _, c := range sortedPositions(inner) {
		pref := inner[c]
		if !pref.Fixed {
			continue
		}
		if !seenFixed {
			seenFixed = true
			continue
		}
		msg := "duplicate fixed preference demoted to a regular rank"
		if opts.Verbose {
			msg = fmt.Sprintf("%s: position %q", msg, c)
		}
		pref.Fixed = false
		inner[c] = pref
		warnings = append(warnings, Warning{Person: person, Position: c, Msg: msg})
	}
	return warnings
}

// renormalizeStaircase checks the property "for each n ≥ 1, at least n of
// the person's ranks are ≤ n" and, if it fails, replaces every rank with
// (count of strictly smaller ranks) + 1 — the dense ranking that always
// satisfies the property.
func renormalizeStaircase(person assign.Person, inner map[assign.Position]assign.Preference) []Warning {
	positions := sortedPositions(inner)
	ranks := make([]int, len(positions))
	for i, c := range positions {
		ranks[i] = int(inner[c].Rank)
	}
	sorted := append([]int(nil), ranks...)
	sort.Ints(sorted)

	ok := true
	for i, r := range sorted {
		if r > i+1 {
			ok = false
			break
		}
	}
	if ok {
		return nil
	}

	for _, c := range positions {
		pref := inner[c]
		pref.Rank = assign.Rank(countStrictlySmaller(sorted, int(pref.Rank)) + 1)
		inner[c] = pref
	}
	return []Warning{{Person: person, Msg: "ranks renormalized to satisfy the staircase property"}}
}

// countStrictlySmaller counts entries of a sorted slice strictly less than x.
func countStrictlySmaller(sorted []int, x int) int {
	return sort.SearchInts(sorted, x)
}

// sortedPositions returns inner's keys in deterministic ascending order.
func sortedPositions(inner map[assign.Position]assign.Preference) []assign.Position {
	out := make([]assign.Position, 0, len(inner))
	for c := range inner {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
