package partition

import (
	"testing"

	"github.com/ja7ad/arenaplan/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitOrder_Permutations(t *testing.T) {
	cases := []struct {
		n    int
		want []int
	}{
		{1, []int{0}},
		{2, []int{0, 1}},
		{3, []int{0, 1, 2}},
		{4, []int{1, 0, 2, 3}},
		{5, []int{1, 0, 2, 3, 4}},
		{6, []int{2, 1, 3, 0, 4, 5}},
		{7, []int{2, 1, 3, 0, 4, 5, 6}},
	}
	for _, tc := range cases {
		got := visitOrder(tc.n)
		assert.Equal(t, tc.want, got, "n=%d", tc.n)
	}
}

func TestVisitOrder_IsAlwaysAPermutation(t *testing.T) {
	for n := 1; n <= 32; n++ {
		got := visitOrder(n)
		require.Len(t, got, n)
		seen := make(map[int]bool, n)
		for _, i := range got {
			require.GreaterOrEqual(t, i, 0)
			require.Less(t, i, n)
			require.False(t, seen[i], "index %d visited twice for n=%d", i, n)
			seen[i] = true
		}
	}
}

func TestWalk_EmptyCandidate(t *testing.T) {
	set := DefaultSet()
	res := walk(10, candidate{}, set)

	assert.Equal(t, types.Bytes(10), res.Gap)
	for _, sz := range set {
		assert.Equal(t, 0, res.Counts[sz])
	}
}

func TestWalk_SingleMemberDegenerates(t *testing.T) {
	set := DefaultSet()
	res := walk(100, candidate{members: []types.Bytes{32}, distSize: 32}, set)

	assert.Equal(t, 3, res.Counts[32])
	assert.Equal(t, types.Bytes(4), res.Gap)
}

func TestWalk_CenterFirstGetsTheRemainderBlock(t *testing.T) {
	// members 256,128,64,32: visit order starts at index 1 (128), so after
	// four even sweeps the leftover 128 goes to the center, not to 256.
	cand := candidate{members: []types.Bytes{256, 128, 64, 32}, distSize: 256}
	res := walk(2048, cand, DefaultSet())

	assert.Equal(t, 5, res.Counts[128])
	assert.Equal(t, 4, res.Counts[256])
	assert.Equal(t, types.Bytes(0), res.Gap)
}

func TestWalk_TerminatesWithGapBelowSmallestMember(t *testing.T) {
	set := DefaultSet()
	for arena := types.Bytes(32); arena <= 4096; arena += 11 {
		cand := selectCandidate(arena, set)
		require.False(t, cand.empty(), "arena=%d", arena)
		res := walk(arena, cand, set)
		assert.Less(t, res.Gap, cand.members[len(cand.members)-1], "arena=%d", arena)
	}
}
