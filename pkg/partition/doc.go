// Package partition plans how a fixed-size memory region (the "arena") can
// be carved into counts of fixed, descending, power-of-two block sizes plus
// one unavoidable leftover gap. It is a one-shot planning computation: no
// memory is allocated and no allocation state is tracked over time.
//
// Overview
//
//   - Plan(arena, set) validates its inputs, picks the widest workable
//     candidate (the sub-sequence of block sizes that lets the most distinct
//     sizes participate) and then distributes blocks across the candidate
//     one at a time with a center-outward alternating walk until nothing
//     fits in the remainder. The untouched remainder is the gap.
//
//   - Greedy(arena, set) is the naive alternative: repeated div/mod from the
//     largest block size down. It tends to spend the whole arena on the
//     largest blocks; it is kept for comparison and is never the default.
//
//   - Result maps every size of the set to a count (zero for sizes the plan
//     did not use) and carries the gap. For every plan:
//
//     sum(size*count) + gap == arena
//
//     and, when at least one size participated, gap < the smallest
//     participating size.
//
//   - Errors (errs.go):
//     ErrArenaSize       : arena is not a positive byte count
//     ErrEmptySet        : the block-size set has no members
//     ErrNotDescending   : the set is not strictly decreasing
//     ErrNonPositiveSize : the set contains a zero-byte size
//
// The computation is pure and synchronous. A Set is immutable after
// validation, all other state is local to the call, and identical inputs
// always produce identical results.
package partition
