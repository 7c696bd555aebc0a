// Package assign implements the deterministic leximin branch-and-bound
// solver: given a set of positions with fixed capacity and a set of
// people's ranked preferences over them, it finds every complete
// assignment whose received-rank multiset is leximin-optimal.
//
// The package is purely computational: every exported operation is a pure
// function over immutable values, and the search itself is expressed as an
// explicit, resumable state machine (State / Step) rather than native
// recursion, so a host can interleave search with other work by calling
// Step some fixed number of times per scheduling frame and yielding in
// between. Dropping a State value releases all memory associated with the
// search; there is no teardown step.
//
// # Search shape
//
// A Space is one node of the search tree: the preferences not yet resolved,
// the slots not yet filled, and the partial assignment built so far.
// SelectBranch picks the next (person, position, rank) to branch on by
// finding the position whose best remaining claimant is least enthusiastic
// — this drives bad ranks into the tree early, which tightens Bound and
// prunes large subtrees sooner. Each branch splits into "take it"
// (Space.Assign) and "don't" (Space.Drop), enumerating every feasible
// complete assignment exactly once.
//
// # Determinism
//
// SelectBranch, Bound, and MergeResult are deterministic functions of their
// inputs: ties are always broken by a secondary, explicit order on person
// and position identifiers, never by map iteration order. For a fixed
// Input, the full enumeration order and the final result set are fully
// reproducible.
package assign
