package partition

import (
	"testing"

	"github.com/ja7ad/arenaplan/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectCandidate_BelowSmallestIsEmpty(t *testing.T) {
	set := DefaultSet()
	for _, arena := range []types.Bytes{1, 10, 31} {
		c := selectCandidate(arena, set)
		assert.True(t, c.empty(), "arena=%d", arena)
	}
}

func TestSelectCandidate_SingleSize(t *testing.T) {
	c := selectCandidate(32, DefaultSet())
	require.False(t, c.empty())
	assert.Equal(t, []types.Bytes{32}, c.members)
	assert.Equal(t, types.Bytes(32), c.distSize)
}

func TestSelectCandidate_ReservationBudget(t *testing.T) {
	// arena 2048, p=6 quota 341: distribution size 256 admits 256..32 with
	// one 256-slot each (4*256 <= 2048); adding a fifth member is what the
	// budget would forbid, but only four sizes are <= 256 anyway.
	c := selectCandidate(2048, DefaultSet())
	require.False(t, c.empty())
	assert.Equal(t, types.Bytes(256), c.distSize)
	assert.Equal(t, []types.Bytes{256, 128, 64, 32}, c.members)
}

func TestSelectCandidate_TieBreakPrefersFinerPartition(t *testing.T) {
	// For arena 2048 both {256,128,64,32} (found at p=6) and {512,256,128,64}
	// (found at p=4, where 4*512 == 2048) score four members. The scan keeps
	// the first maximum, i.e. the larger p with the finer distribution size.
	c := selectCandidate(2048, DefaultSet())
	require.Len(t, c.members, 4)
	assert.Equal(t, types.Bytes(256), c.members[0], "tie must resolve to the finer candidate")
}

func TestSelectCandidate_MembersDescendAndFitBudget(t *testing.T) {
	set := DefaultSet()
	for arena := types.Bytes(32); arena <= 8192; arena += 13 {
		c := selectCandidate(arena, set)
		require.False(t, c.empty(), "arena=%d", arena)

		var reserved types.Bytes
		for i, m := range c.members {
			assert.LessOrEqual(t, m, c.distSize, "arena=%d", arena)
			if i > 0 {
				assert.Less(t, m, c.members[i-1], "members must stay descending")
			}
			reserved += c.distSize
		}
		assert.LessOrEqual(t, reserved, arena, "reservation budget exceeded at arena=%d", arena)
	}
}

func TestLargestAtMost(t *testing.T) {
	set := DefaultSet()

	sz, ok := largestAtMost(set, 2048)
	require.True(t, ok)
	assert.Equal(t, types.Bytes(1024), sz)

	sz, ok = largestAtMost(set, 255)
	require.True(t, ok)
	assert.Equal(t, types.Bytes(128), sz)

	sz, ok = largestAtMost(set, 32)
	require.True(t, ok)
	assert.Equal(t, types.Bytes(32), sz)

	_, ok = largestAtMost(set, 31)
	assert.False(t, ok)
}
