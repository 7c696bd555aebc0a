package assign_test

import (
	"fmt"
	"sort"

	"github.com/jefelino/pref-match-web/assign"
)

// ExampleSolve places two people onto two positions by ranked preference.
// P1 prefers A over B; P2 prefers B over A, so both get their first choice.
func ExampleSolve() {
	in := assign.Input{
		Slots: assign.Slots{"A": 1, "B": 1},
		Preferences: map[assign.Person]map[assign.Position]assign.Preference{
			"P1": {"A": {Rank: 1}, "B": {Rank: 2}},
			"P2": {"A": {Rank: 2}, "B": {Rank: 1}},
		},
	}

	best, _, err := assign.Solve(in, 0)
	if err != nil {
		fmt.Println(err)
		return
	}

	placements := best.Assignments[0]
	people := make([]assign.Person, 0, len(placements))
	for p := range placements {
		people = append(people, p)
	}
	sort.Slice(people, func(i, j int) bool { return people[i] < people[j] })

	for _, p := range people {
		placed := placements[p]
		fmt.Printf("%s -> %s (rank %d)\n", p, placed.Position, placed.Rank)
	}
	// Output:
	// P1 -> A (rank 1)
	// P2 -> B (rank 1)
}
