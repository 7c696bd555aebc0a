package assign

import (
	"sort"

	"github.com/jefelino/pref-match-web/rankdist"
)

// SelectBranch picks the next (person, position, rank) to branch on.
//
// For every position with remaining capacity, the candidate is the
// remaining person with the best (lowest) rank for it, ties broken by
// person id. Among all positions, SelectBranch picks the one whose
// candidate has the worst (highest) rank, ties broken by position id — the
// "hardest to fill well" position goes first, which pushes bad ranks into
// the partial assignment early and tightens Bound quickly.
//
// ok is false when no position has any remaining candidate at all.
func SelectBranch(s Space) (Branch, bool) {
	var (
		bestPos   Position
		bestHead  Person
		bestRank  Rank
		bestFound bool
	)

	for c, k := range s.Slots {
		if k <= 0 {
			continue
		}
		head, rank, ok := shortlistHead(s, c)
		if !ok {
			continue
		}
		if !bestFound ||
			rank > bestRank ||
			(rank == bestRank && c < bestPos) {
			bestPos, bestHead, bestRank, bestFound = c, head, rank, true
		}
	}

	if !bestFound {
		return Branch{}, false
	}
	return Branch{Person: bestHead, Position: bestPos, Rank: bestRank}, true
}

// shortlistHead returns the best (lowest rank, then lowest person id)
// remaining candidate for position c.
func shortlistHead(s Space, c Position) (Person, Rank, bool) {
	persons := s.ByPosition[c]
	if len(persons) == 0 {
		return "", 0, false
	}
	var (
		head     Person
		headRank Rank
		found    bool
	)
	for p := range persons {
		r := s.Preferences[p][c].Rank
		if !found || r < headRank || (r == headRank && p < head) {
			head, headRank, found = p, r, true
		}
	}
	return head, headRank, true
}

// Bound computes the optimistic best-achievable rank distribution for the
// subtree rooted at s. ok is false when the bound is unknown: some
// position's remaining capacity exceeds the number of people who still hold
// a preference for it, so its shortlist is incomplete and the node is
// infeasible. An absent bound always prunes (§4.7).
func Bound(s Space) (rankdist.Distribution, bool) {
	positionWise := rankdist.Empty()
	for c, k := range s.Slots {
		if k <= 0 {
			continue
		}
		ranks, ok := shortlistRanks(s, c, k)
		if !ok {
			return rankdist.Empty(), false
		}
		for _, r := range ranks {
			positionWise = positionWise.Increment(int(r))
		}
	}

	personWise := rankdist.Empty()
	for _, inner := range s.Preferences {
		if len(inner) == 0 {
			continue
		}
		min, found := minRank(inner)
		if !found {
			continue
		}
		personWise = personWise.Increment(int(min))
	}

	committed := distributionOf(s.Assignment)
	best := betterOf(positionWise, personWise)
	return rankdist.Join(best, committed), true
}

// shortlistRanks returns the ranks of the k best remaining candidates for
// position c, sorted ascending. ok is false when fewer than k people still
// hold a preference for c.
func shortlistRanks(s Space, c Position, k int) ([]Rank, bool) {
	persons := s.ByPosition[c]
	if len(persons) < k {
		return nil, false
	}
	ranks := make([]Rank, 0, len(persons))
	for p := range persons {
		ranks = append(ranks, s.Preferences[p][c].Rank)
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })
	return ranks[:k], true
}

// minRank returns the smallest rank in a person's remaining preference map.
func minRank(inner map[Position]Preference) (Rank, bool) {
	var (
		min   Rank
		found bool
	)
	for _, pref := range inner {
		if !found || pref.Rank < min {
			min, found = pref.Rank, true
		}
	}
	return min, found
}

// betterOf returns whichever of a, b is leximin-better; ties return a
// without computing a spurious secondary comparison.
func betterOf(a, b rankdist.Distribution) rankdist.Distribution {
	if rankdist.Compare(a, b) == rankdist.GT {
		return b
	}
	return a
}

// distributionOf builds the rank multiset received by a (partial or
// complete) assignment.
func distributionOf(a Assignment) rankdist.Distribution {
	d := rankdist.Empty()
	for _, placed := range a {
		d = d.Increment(int(placed.Rank))
	}
	return d
}

// ShouldPrune applies the pruning test of §4.7: an absent bound always
// prunes; otherwise the node is pruned only once a known best result exists
// and the bound compares strictly worse than it.
func ShouldPrune(best *Best, bound rankdist.Distribution, boundOK bool) bool {
	if !boundOK {
		return true
	}
	if best == nil {
		return false
	}
	return rankdist.Compare(bound, best.Distribution) == rankdist.GT
}
