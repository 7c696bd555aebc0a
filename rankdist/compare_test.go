package rankdist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jefelino/pref-match-web/rankdist"
)

func TestCompareEqualDistributions(t *testing.T) {
	a := rankdist.Empty().Add(1, 2).Add(3, 1)
	b := rankdist.Empty().Add(3, 1).Add(1, 2)

	require.Equal(t, rankdist.EQ, rankdist.Compare(a, b))
}

func TestCompareWorstRankDecides(t *testing.T) {
	// a has one person at rank 5 (worst), b's worst rank is 4: a is worse.
	a := rankdist.Empty().Add(5, 1).Add(1, 10)
	b := rankdist.Empty().Add(4, 1).Add(1, 10)

	require.Equal(t, rankdist.GT, rankdist.Compare(a, b))
	require.Equal(t, rankdist.LT, rankdist.Compare(b, a))
}

func TestCompareFewerAtWorstRankWins(t *testing.T) {
	// Same worst rank (5), but a has fewer people stuck there.
	a := rankdist.Empty().Add(5, 1).Add(4, 3)
	b := rankdist.Empty().Add(5, 2).Add(4, 1)

	require.Equal(t, rankdist.LT, rankdist.Compare(a, b))
}

func TestCompareTreatsAbsentRankAsZero(t *testing.T) {
	a := rankdist.Empty().Add(2, 1)
	b := rankdist.Empty()

	require.Equal(t, rankdist.GT, rankdist.Compare(a, b))
	require.Equal(t, rankdist.LT, rankdist.Compare(b, a))
}

func TestCompareIsAntisymmetric(t *testing.T) {
	cases := []struct{ a, b rankdist.Distribution }{
		{rankdist.Empty().Add(1, 1), rankdist.Empty().Add(1, 1)},
		{rankdist.Empty().Add(3, 2), rankdist.Empty().Add(2, 5)},
		{rankdist.Empty(), rankdist.Empty().Add(1, 1)},
	}
	for _, c := range cases {
		require.Equal(t, rankdist.Compare(c.a, c.b), rankdist.Compare(c.b, c.a).Inverse())
	}
}

func TestCompareIsTransitive(t *testing.T) {
	a := rankdist.Empty().Add(1, 1)
	b := rankdist.Empty().Add(2, 1)
	c := rankdist.Empty().Add(3, 1)

	require.Equal(t, rankdist.LT, rankdist.Compare(a, b))
	require.Equal(t, rankdist.LT, rankdist.Compare(b, c))
	require.Equal(t, rankdist.LT, rankdist.Compare(a, c))
}

func TestVerdictString(t *testing.T) {
	require.Equal(t, "LT", rankdist.LT.String())
	require.Equal(t, "EQ", rankdist.EQ.String())
	require.Equal(t, "GT", rankdist.GT.String())
}
