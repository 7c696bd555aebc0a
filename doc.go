// Command/library pref-match-web computes optimal assignments of people to
// capacity-limited positions from ranked preferences, using the leximin
// criterion: the outcome in which the worst-off person is as well-off as
// possible, ties broken by the next-worst person, and so on.
//
// The module is organized as a pure computational core plus two
// collaborators that feed it and drive it:
//
//   - rankdist — the rank-multiset type and its leximin comparator.
//   - assign — the branch-and-bound search engine: input preparation,
//     the search space, the branch selector and bound, the resumable
//     step machine, and result aggregation. Pure and side-effect-free.
//   - ingest — parses and validates the tabular preference format into an
//     assign.Input.
//   - cmd/leximin — a CLI that wires ingest and assign together.
//
// See each package's doc comment for its specific contract.
package pref
