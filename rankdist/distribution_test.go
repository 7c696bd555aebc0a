package rankdist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jefelino/pref-match-web/rankdist"
)

func TestAddDropsNonPositive(t *testing.T) {
	d := rankdist.Empty().Add(3, 2)
	require.Equal(t, 2, d.Get(3))

	d = d.Add(3, -2)
	require.Equal(t, 0, d.Get(3), "count dropping to zero removes the key")
	require.Equal(t, 0, d.Len())
}

func TestIncrementDecrementRoundTrip(t *testing.T) {
	base := rankdist.Empty().Add(1, 1).Add(2, 3)

	got := base.Increment(5).Decrement(5)
	require.True(t, base.Equal(got), "Decrement(Increment(d)) must equal d")
}

func TestDecrementAbsentKeyIsNoop(t *testing.T) {
	base := rankdist.Empty().Add(1, 1)
	require.True(t, base.Equal(base.Decrement(9)))
}

func TestCloneIsIndependent(t *testing.T) {
	base := rankdist.Empty().Add(1, 1)
	clone := base.Clone()
	clone = clone.Add(1, 1)

	require.Equal(t, 1, base.Get(1))
	require.Equal(t, 2, clone.Get(1))
}

func TestJoinIsCommutative(t *testing.T) {
	a := rankdist.Empty().Add(1, 2).Add(3, 1)
	b := rankdist.Empty().Add(3, 4).Add(2, 1)

	require.True(t, rankdist.Join(a, b).Equal(rankdist.Join(b, a)))
}

func TestJoinIsAssociative(t *testing.T) {
	a := rankdist.Empty().Add(1, 2)
	b := rankdist.Empty().Add(1, 1).Add(2, 3)
	c := rankdist.Empty().Add(2, 1).Add(4, 5)

	left := rankdist.Join(rankdist.Join(a, b), c)
	right := rankdist.Join(a, rankdist.Join(b, c))
	require.True(t, left.Equal(right))
}

func TestCountBuildsHistogram(t *testing.T) {
	got := rankdist.Count([]int{1, 1, 2, 3, 3, 3})

	want := rankdist.Empty().Add(1, 2).Add(2, 1).Add(3, 3)
	require.True(t, want.Equal(got))
}

func TestEqualIgnoresZeroEntries(t *testing.T) {
	a := rankdist.Empty().Add(1, 1)
	b := rankdist.Empty().Add(1, 1).Add(2, 1).Add(2, -1)

	require.True(t, a.Equal(b))
}
