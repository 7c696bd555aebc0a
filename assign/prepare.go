package assign

import "sort"

// fixedEntry is an internal helper for deterministic fixed-preference
// ordering during PrepareInput.
type fixedEntry struct {
	person     Person
	position   Position
	preference Preference
}

// PrepareInput builds the initial search space from a validated Input:
// remaining preferences start as the entries of in.Preferences whose
// position has a positive slot count, remaining slots as the positive
// counts of in.Slots, and every preference marked Fixed is applied eagerly,
// in deterministic (person, position) order.
//
// A fixed preference whose position has no remaining slot — it had none to
// begin with, or an earlier fixed preference for a different person
// exhausted it — is dropped rather than applied, and surfaces a Warning;
// this is the core's half of the open question raised in §9 about
// conflicting fixed assignments.
func PrepareInput(in Input) (Space, []Warning) {
	prefs := make(map[Person]map[Position]Preference, len(in.Preferences))
	byPosition := make(map[Position]map[Person]struct{})
	for p, inner := range in.Preferences {
		cloned := make(map[Position]Preference, len(inner))
		for c, pref := range inner {
			if in.Slots[c] <= 0 {
				continue
			}
			cloned[c] = pref
			set, ok := byPosition[c]
			if !ok {
				set = make(map[Person]struct{})
				byPosition[c] = set
			}
			set[p] = struct{}{}
		}
		prefs[p] = cloned
	}

	slots := make(Slots, len(in.Slots))
	for c, n := range in.Slots {
		if n > 0 {
			slots[c] = n
		}
	}

	space := Space{
		Preferences: prefs,
		ByPosition:  byPosition,
		Slots:       slots,
		Assignment:  Assignment{},
	}

	var fixed []fixedEntry
	for p, inner := range in.Preferences {
		for c, pref := range inner {
			if pref.Fixed {
				fixed = append(fixed, fixedEntry{person: p, position: c, preference: pref})
			}
		}
	}
	sort.Slice(fixed, func(i, j int) bool {
		if fixed[i].person != fixed[j].person {
			return fixed[i].person < fixed[j].person
		}
		return fixed[i].position < fixed[j].position
	})

	var warnings []Warning
	for _, f := range fixed {
		if space.Slots[f.position] > 0 {
			space = space.Assign(f.person, f.position, f.preference.Rank)
			continue
		}
		space = space.Drop(f.person, f.position)
		warnings = append(warnings, Warning{
			Person:   f.person,
			Position: f.position,
			Msg:      "fixed preference dropped: position already exhausted",
		})
	}

	return space, warnings
}
