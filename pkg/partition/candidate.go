package partition

import "github.com/ja7ad/arenaplan/pkg/types"

// candidate is a prospective sub-sequence of the set considered for use.
// members is descending; distSize is the size that bounded membership
// (every member is <= distSize, and one distSize-wide slot was reserved
// per member when the candidate was built).
type candidate struct {
	members  []types.Bytes
	distSize types.Bytes
}

func (c candidate) empty() bool { return len(c.members) == 0 }

// selectCandidate scans partition counts p from len(set) down to 1.
// Each p grants a per-size quota of arena/p; the largest size within the
// quota becomes the distribution size, and sizes at or below it join the
// candidate while reserving one distribution-size slot each stays within
// the arena. The candidate admitting the most distinct sizes wins; on a
// tie the one found at the larger p is kept (finer, more even partitions
// first), which the descending scan gives us for free.
func selectCandidate(arena types.Bytes, set Set) candidate {
	var best candidate
	for p := len(set); p >= 1; p-- {
		quota := arena / types.Bytes(p)
		dist, ok := largestAtMost(set, quota)
		if !ok {
			// quota below the smallest size; a lower p widens the quota,
			// so keep scanning
			continue
		}

		var members []types.Bytes
		var reserved types.Bytes
		for _, sz := range set {
			if sz > dist {
				continue
			}
			if reserved+dist > arena {
				break
			}
			members = append(members, sz)
			reserved += dist
		}

		if len(members) > len(best.members) {
			best = candidate{members: members, distSize: dist}
		}
	}
	return best
}

// largestAtMost returns the largest size in the descending set that is
// <= limit, or false if even the smallest size exceeds it.
func largestAtMost(set Set, limit types.Bytes) (types.Bytes, bool) {
	for _, sz := range set {
		if sz <= limit {
			return sz, true
		}
	}
	return 0, false
}
