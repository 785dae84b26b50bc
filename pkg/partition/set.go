package partition

import "github.com/ja7ad/arenaplan/pkg/types"

// Set is the fixed, strictly descending list of candidate block sizes.
// It is configured once and treated as immutable; the smallest member is
// the partition granularity.
type Set []types.Bytes

// DefaultSet returns the stock block-size ladder: 1024 down to 32 bytes.
func DefaultSet() Set {
	return Set{1024, 512, 256, 128, 64, 32}
}

// Validate checks the Set invariants: non-empty, all sizes positive,
// strictly decreasing.
func (s Set) Validate() error {
	if len(s) == 0 {
		return ErrEmptySet
	}
	for i, sz := range s {
		if sz == 0 {
			return ErrNonPositiveSize
		}
		if i > 0 && sz >= s[i-1] {
			return ErrNotDescending
		}
	}
	return nil
}

// Min returns the smallest configured size. The Set must be non-empty.
func (s Set) Min() types.Bytes { return s[len(s)-1] }

// Max returns the largest configured size. The Set must be non-empty.
func (s Set) Max() types.Bytes { return s[0] }
