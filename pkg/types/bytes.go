package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Bytes is a uint64 wrapper representing a size in bytes.
type Bytes uint64

// Humanized returns a human-readable string with automatic unit (B, KB, MB, GB, TB).
func (b Bytes) Humanized() string {
	v := float64(b)
	switch {
	case b >= 1<<40:
		return fmt.Sprintf("%.2f TB", v/(1<<40))
	case b >= 1<<30:
		return fmt.Sprintf("%.2f GB", v/(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.2f MB", v/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.2f KB", v/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

// KB returns the number of kilobytes (1024 base).
func (b Bytes) KB() float64 { return float64(b) / 1024 }

// MB returns the number of megabytes (1024 base).
func (b Bytes) MB() float64 { return float64(b) / (1024 * 1024) }

// GB returns the number of gigabytes (1024 base).
func (b Bytes) GB() float64 { return float64(b) / (1024 * 1024 * 1024) }

// ToBytes converts a raw uint64 byte count to Bytes.
func ToBytes(v uint64) Bytes { return Bytes(v) }

// ParseBytes parses a byte count given either as a plain integer ("4096")
// or with a binary unit suffix: K, M, G or T, optionally followed by "B"
// ("64K", "2MB", "1g"). Units are powers of 1024. Negative values and
// anything non-numeric are rejected.
func ParseBytes(s string) (Bytes, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return 0, fmt.Errorf("empty byte size")
	}

	num := in
	var mult Bytes = 1

	up := strings.ToUpper(in)
	up = strings.TrimSuffix(up, "B")
	if up == "" {
		return 0, fmt.Errorf("invalid byte size %q", s)
	}
	switch up[len(up)-1] {
	case 'K':
		mult = 1 << 10
	case 'M':
		mult = 1 << 20
	case 'G':
		mult = 1 << 30
	case 'T':
		mult = 1 << 40
	}
	if mult > 1 {
		num = up[:len(up)-1]
	} else if len(up) != len(in) {
		// a bare "B" suffix, e.g. "512B"
		num = up
	}

	v, err := strconv.ParseUint(strings.TrimSpace(num), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size %q: %w", s, err)
	}
	return Bytes(v) * mult, nil
}
