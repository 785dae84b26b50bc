package partition

import "errors"

var (
	// ErrArenaSize indicates the arena size is not a positive byte count.
	ErrArenaSize = errors.New("partition: arena size must be positive")

	// ErrEmptySet indicates the block-size set has no members.
	ErrEmptySet = errors.New("partition: empty block-size set")

	// ErrNotDescending indicates the block-size set is not strictly decreasing.
	ErrNotDescending = errors.New("partition: block sizes must be strictly descending")

	// ErrNonPositiveSize indicates the block-size set contains a zero size.
	ErrNonPositiveSize = errors.New("partition: block sizes must be positive")
)
