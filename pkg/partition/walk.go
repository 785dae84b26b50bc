package partition

import "github.com/ja7ad/arenaplan/pkg/types"

// visitOrder builds the center-outward index permutation over n members:
// start at mid = n/2-1 (biased toward the smaller-size half, clamped to 0
// for a single member), then alternate mid-d before mid+d for growing d,
// skipping indices that fall outside [0, n).
func visitOrder(n int) []int {
	mid := n/2 - 1
	if mid < 0 {
		mid = 0
	}
	order := make([]int, 0, n)
	order = append(order, mid)
	for d := 1; d < n; d++ {
		if i := mid - d; i >= 0 {
			order = append(order, i)
		}
		if i := mid + d; i < n {
			order = append(order, i)
		}
	}
	return order
}

// walk distributes the arena across the candidate's members one block at a
// time, sweeping the precomputed visit order until a full sweep fits
// nothing into the remainder. The remainder at that point is the gap.
// Every size of the set appears in the result, non-members at zero.
func walk(arena types.Bytes, cand candidate, set Set) Result {
	res := Result{
		Arena:  arena,
		Sizes:  set,
		Counts: make(map[types.Bytes]int, len(set)),
	}
	for _, sz := range set {
		res.Counts[sz] = 0
	}

	remaining := arena
	if !cand.empty() {
		order := visitOrder(len(cand.members))
		for fitted := true; fitted; {
			fitted = false
			for _, i := range order {
				if sz := cand.members[i]; sz <= remaining {
					res.Counts[sz]++
					remaining -= sz
					fitted = true
				}
			}
		}
	}

	res.Gap = remaining
	return res
}
