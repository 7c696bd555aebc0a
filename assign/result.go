package assign

import "github.com/jefelino/pref-match-web/rankdist"

// MergeResult folds a newly discovered complete assignment into the current
// best result: a strictly better distribution replaces best outright, a
// tied distribution appends a to the tied set, and a worse distribution
// leaves best untouched.
func MergeResult(best *Best, d rankdist.Distribution, a Assignment) *Best {
	if best == nil {
		return &Best{Distribution: d, Assignments: []Assignment{a}}
	}
	switch rankdist.Compare(d, best.Distribution) {
	case rankdist.LT:
		return &Best{Distribution: d, Assignments: []Assignment{a}}
	case rankdist.EQ:
		out := make([]Assignment, len(best.Assignments)+1)
		copy(out, best.Assignments)
		out[len(best.Assignments)] = a
		return &Best{Distribution: best.Distribution, Assignments: out}
	default: // GT: d is worse, discard
		return best
	}
}

// Tidy projects best's tied assignments for display: the first assignment
// is returned in full, every subsequent one only as its difference against
// the first (the placements where the two disagree). Tidy never mutates
// best; it returns nil for a nil or empty best.
func Tidy(best *Best) []Assignment {
	if best == nil || len(best.Assignments) == 0 {
		return nil
	}
	out := make([]Assignment, len(best.Assignments))
	first := best.Assignments[0]
	out[0] = first.Clone()
	for i := 1; i < len(best.Assignments); i++ {
		a := best.Assignments[i]
		diff := make(Assignment, len(a))
		for p, placed := range a {
			if fp, ok := first[p]; !ok || fp != placed {
				diff[p] = placed
			}
		}
		out[i] = diff
	}
	return out
}
