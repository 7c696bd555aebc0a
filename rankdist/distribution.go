package rankdist

// Distribution is a finite mapping from rank to a strictly positive count.
// The zero value is the empty distribution and is ready to use.
//
// Invariant: no stored value is ≤ 0. Callers must go through Add (or the
// Increment/Decrement sugar) to preserve this; direct map literals used in
// tests must respect it too.
type Distribution map[int]int

// Empty returns a fresh, empty Distribution.
//
// Complexity: O(1).
func Empty() Distribution {
	return Distribution{}
}

// Get returns the count stored at rank k, or 0 if k is absent.
//
// Complexity: O(1).
func (d Distribution) Get(k int) int {
	return d[k]
}

// Len reports the number of distinct ranks held.
//
// Complexity: O(1).
func (d Distribution) Len() int {
	return len(d)
}

// Add returns a new Distribution equal to d with n added at rank k, dropping
// the key entirely if the resulting count is ≤ 0. Add(k, -1, d) is the
// canonical decrement; Add(k, -n, d) where n ≥ count(k) removes the key.
//
// Complexity: O(len(d)) time and space (a fresh map is allocated).
func (d Distribution) Add(k, n int) Distribution {
	out := d.Clone()
	next := out[k] + n
	if next <= 0 {
		delete(out, k)
	} else {
		out[k] = next
	}
	return out
}

// Increment is Add(k, 1, d).
//
// Complexity: O(len(d)).
func (d Distribution) Increment(k int) Distribution {
	return d.Add(k, 1)
}

// Decrement is Add(k, -1, d). Decrementing an absent key is a no-op: the
// key is added at -1 and immediately dropped since the result is not
// positive, so the returned Distribution equals d (by value).
//
// Complexity: O(len(d)).
func (d Distribution) Decrement(k int) Distribution {
	return d.Add(k, -1)
}

// Clone returns an independent copy of d.
//
// Complexity: O(len(d)).
func (d Distribution) Clone() Distribution {
	out := make(Distribution, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Join returns the pointwise sum of a and b: every rank in b is added into a
// copy of a. Join is associative and commutative since it is ordinary
// integer addition keyed by rank.
//
// Complexity: O(len(a) + len(b)).
func Join(a, b Distribution) Distribution {
	out := a.Clone()
	for k, v := range b {
		next := out[k] + v
		if next <= 0 {
			delete(out, k)
		} else {
			out[k] = next
		}
	}
	return out
}

// Count folds Increment over xs, building the Distribution of how often
// each value occurs.
//
// Complexity: O(len(xs)).
func Count(xs []int) Distribution {
	out := Empty()
	for _, x := range xs {
		out[x]++
	}
	return out
}

// Equal reports whether a and b hold exactly the same (rank, count) pairs.
//
// Complexity: O(len(a) + len(b)).
func (d Distribution) Equal(o Distribution) bool {
	if len(d) != len(o) {
		return false
	}
	for k, v := range d {
		if o[k] != v {
			return false
		}
	}
	return true
}
