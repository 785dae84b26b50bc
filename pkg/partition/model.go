package partition

import "github.com/ja7ad/arenaplan/pkg/types"

// Result is the outcome of planning one arena: how many blocks of each
// configured size to carve, plus the leftover gap. Counts covers every
// size in Sizes, zero for sizes the plan did not use.
//
// Invariant: sum over Sizes of size*count, plus Gap, equals Arena.
type Result struct {
	Arena  types.Bytes
	Sizes  Set
	Counts map[types.Bytes]int
	Gap    types.Bytes
}

// Used returns the number of bytes covered by blocks (Arena - Gap).
func (r Result) Used() types.Bytes { return r.Arena - r.Gap }

// Blocks returns the total number of blocks across all sizes.
func (r Result) Blocks() int {
	var n int
	for _, c := range r.Counts {
		n += c
	}
	return n
}

// Utilization returns the covered fraction of the arena in [0,1].
func (r Result) Utilization() float64 {
	if r.Arena == 0 {
		return 0
	}
	return float64(r.Used()) / float64(r.Arena)
}
