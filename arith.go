// Copyright 2020 Aleksandr Demakin. All rights reserved.

package i24

import (
	mu "github.com/0xNeit/entero/internal/mathutil"
)

// Add returns v + other.
// The storage words are summed and re-biased by subtracting the bias
// once; a borrow there means the result fell below Min. Returns
// ErrRange on overflow in either direction.
func (v I24) Add(other I24) (I24, error) {
	sum, ok := mu.Add32(number(v), number(other))
	if !ok {
		return Zero, ErrRange
	}
	raw, ok := mu.Sub32(sum, indent)
	if !ok {
		return Zero, ErrRange
	}
	return FromRaw(raw)
}

// Sub returns v - other.
// Computed as (v + bias) - other so that every intermediate stays
// non-negative. Returns ErrRange on overflow in either direction.
func (v I24) Sub(other I24) (I24, error) {
	shifted, ok := mu.Add32(number(v), indent)
	if !ok {
		return Zero, ErrRange
	}
	raw, ok := mu.Sub32(shifted, number(other))
	if !ok {
		return Zero, ErrRange
	}
	return FromRaw(raw)
}

// Mul returns v * other.
// Both operands are decomposed into sign and magnitude, the magnitudes
// are multiplied in 64 bits so the product cannot wrap, and the result
// is re-biased using the parity of the signs. Returns ErrOverflow if
// the product does not fit the logical range.
func (v I24) Mul(other I24) (I24, error) {
	p := mu.MulWide(v.Magnitude(), other.Magnitude())
	if v.IsNeg() != other.IsNeg() {
		if p > uint64(indent) {
			return Zero, ErrOverflow
		}
		return I24(indent - number(p)), nil
	}
	if p > uint64(maxMagnitude) {
		return Zero, ErrOverflow
	}
	return I24(indent + number(p)), nil
}

// Div returns v / other, truncating toward zero in magnitude space.
// Returns ErrDivisionByZero for a zero divisor. The only quotient that
// can leave the range is Min / -1, which the raw check rejects with
// ErrRange.
func (v I24) Div(other I24) (I24, error) {
	if other.IsZero() {
		return Zero, ErrDivisionByZero
	}
	q := v.Magnitude() / other.Magnitude()
	if v.IsNeg() != other.IsNeg() {
		return FromRaw(indent - q)
	}
	return FromRaw(indent + q)
}

// Mod returns the remainder of the magnitudes, |v| mod |other|,
// signed by operand parity: operands on the same side of zero yield a
// non-negative result, mixed operands a non-positive one. Note that
// this matches neither truncated nor Euclidean modulo conventions.
// Returns ErrDivisionByZero for a zero divisor.
func (v I24) Mod(other I24) (I24, error) {
	if other.IsZero() {
		return Zero, ErrDivisionByZero
	}
	r := v.Magnitude() % other.Magnitude()
	if v.IsNeg() != other.IsNeg() {
		return FromRaw(indent - r)
	}
	return FromRaw(indent + r)
}

// Abs returns the magnitude of v as an unsigned number.
// The result is not an I24: Min's magnitude, 2^23, has no positive
// encoding.
func (v I24) Abs() uint32 {
	return v.Magnitude()
}

// Neg returns -v. Returns ErrRange for Min, whose magnitude exceeds
// the positive half of the range.
func (v I24) Neg() (I24, error) {
	return FromSignMagnitude(v.Magnitude(), !v.IsNeg())
}
