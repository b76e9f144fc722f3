package mathutil

import "math/bits"

// Add32 returns a + b and reports whether the sum fits 32 bits.
func Add32(a, b uint32) (uint32, bool) {
	v, carry := bits.Add32(a, b, 0)
	return v, carry == 0
}

// Sub32 returns a - b and reports whether the difference is non-negative.
func Sub32(a, b uint32) (uint32, bool) {
	v, borrow := bits.Sub32(a, b, 0)
	return v, borrow == 0
}

// MulWide returns the full 64-bit product of two 32-bit values.
// The product cannot wrap, which makes range checks on it exact.
func MulWide(a, b uint32) uint64 {
	hi, lo := bits.Mul32(a, b)
	return uint64(hi)<<32 | uint64(lo)
}

// Cmp compares two unsigned words.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
func Cmp(a, b uint32) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
