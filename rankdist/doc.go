// Package rankdist provides a finite multiset of ranks (rank → positive
// count) and the leximin comparator used to order two such multisets.
//
// A Distribution never stores a zero or negative count for any key: Add
// removes the key outright once its count would drop to zero or below, so
// Decrement(k) on an absent key is a no-op. Every operation returns a fresh
// Distribution rather than mutating its receiver, matching the immutable,
// structurally-shared discipline the solver's search space depends on
// (assign.Space clones only the map entries it actually touches).
//
// # Leximin order
//
// Compare(a, b) scans every rank that appears in either multiset from the
// largest (worst) down to the smallest (best) and returns the verdict at the
// first rank where the two disagree on count. The convention is:
//
//	GT — a is worse (strictly more people at the first differing, worst, rank)
//	LT — a is better
//	EQ — indistinguishable
//
// Callers that want "is this bound worse than my current best" write
// `Compare(bound, best) == GT`; the natural ordering already matches that
// reading, which is why GT means "a loses."
//
// # Determinism
//
// Distribution is a plain map; iteration order during Compare is irrelevant
// because every candidate rank across both multisets is visited exactly
// once and the verdicts are combined by descending rank, not by iteration
// order.
package rankdist
