package partition

import "github.com/ja7ad/arenaplan/pkg/types"

// Plan partitions an arena of the given size over the block-size set.
// It selects the candidate admitting the most distinct sizes, then walks
// it center-outward until nothing fits; see the package documentation.
// An arena smaller than the smallest configured size is valid and yields
// all-zero counts with the whole arena as gap.
func Plan(arena types.Bytes, set Set) (Result, error) {
	if arena == 0 {
		return Result{}, ErrArenaSize
	}
	if err := set.Validate(); err != nil {
		return Result{}, err
	}
	return walk(arena, selectCandidate(arena, set), set), nil
}

// Greedy decomposes the arena largest block first: for each size in
// descending order take as many whole blocks as fit, then move on. This
// concentrates the arena in the largest sizes and is kept only as an
// alternative strategy to compare against Plan.
func Greedy(arena types.Bytes, set Set) (Result, error) {
	if arena == 0 {
		return Result{}, ErrArenaSize
	}
	if err := set.Validate(); err != nil {
		return Result{}, err
	}

	res := Result{
		Arena:  arena,
		Sizes:  set,
		Counts: make(map[types.Bytes]int, len(set)),
	}
	remaining := arena
	for _, sz := range set {
		res.Counts[sz] = int(remaining / sz)
		remaining %= sz
	}
	res.Gap = remaining
	return res, nil
}
