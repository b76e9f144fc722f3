package i24

import mu "github.com/0xNeit/entero/internal/mathutil"

// Eq reports whether two values represent the same logical number.
// The encoding is a bijection, so this is equality of the storage words.
func (v I24) Eq(other I24) bool {
	return v == other
}

// Cmp compares two values.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
// The biased encoding is order-preserving, so logical order is the
// order of the storage words.
func (v I24) Cmp(other I24) int {
	return mu.Cmp(number(v), number(other))
}

// Gt reports whether v > other.
func (v I24) Gt(other I24) bool {
	return v.Cmp(other) > 0
}

// Lt reports whether v < other.
func (v I24) Lt(other I24) bool {
	return v.Cmp(other) < 0
}

// Sign returns -1 if v < 0, 0 if v == 0, 1 if v > 0.
func (v I24) Sign() int {
	return v.Cmp(Zero)
}
