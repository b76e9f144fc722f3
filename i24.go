// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package i24 implements a 24-bit signed integer stored in a 32-bit
// unsigned word using a biased (offset-binary) encoding.
// The storage value of logical zero is the bias, 2^23, so the usable
// logical range is [-8388608, 8388607]. Because the encoding is
// order-preserving and all arithmetic is done on unsigned magnitudes,
// the implementation never relies on native signed overflow behavior.
// Can be used for tick, price, or coordinate math where silent
// wraparound is unacceptable: every out-of-range result is an error.
package i24

import (
	"errors"
	"fmt"
)

type number = uint32

const (
	bitWidth = 24

	// indent is the storage word that represents logical zero.
	indent = number(1) << (bitWidth - 1)
	// maxRaw is the largest valid storage word.
	maxRaw = number(1)<<bitWidth - 1
	// maxMagnitude is the largest positive logical value, indent-1.
	maxMagnitude = indent - 1
)

const (
	// Zero is the value with logical value 0.
	Zero = I24(indent)
	// Min is the minimum possible value, -2^23.
	Min = I24(0)
	// Max is the maximum possible value, 2^23-1.
	Max = I24(maxRaw)
)

var (
	// ErrRange is returned when a storage word or a magnitude falls
	// outside the valid 24-bit range.
	ErrRange = errors.New("value out of range")
	// ErrOverflow is returned when an arithmetic result exceeds the
	// logical range. It matches ErrRange under errors.Is.
	ErrOverflow = fmt.Errorf("arithmetic overflow: %w", ErrRange)
	// ErrDivisionByZero is returned by Div and Mod for a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
)

// I24 is a signed integer with a 24-bit logical range.
// The zero value of the type is Min, not logical zero; use Zero or one
// of the constructors. Values are immutable and safe to copy and share.
type I24 number

// Bias returns the storage word that represents logical zero, 2^23.
func Bias() uint32 {
	return indent
}

// BitWidth returns the width of the encoding in bits.
func BitWidth() int {
	return bitWidth
}

// FromRaw constructs a value directly from its biased storage word.
// Every arithmetic result goes through this check.
// Returns ErrRange if raw exceeds 2^24-1.
func FromRaw(raw uint32) (I24, error) {
	if raw > maxRaw {
		return Zero, ErrRange
	}
	return I24(raw), nil
}

// MustFromRaw is like FromRaw, but panics on error.
// Useful for package-level constants in consumer code.
func MustFromRaw(raw uint32) I24 {
	v, err := FromRaw(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// FromPos constructs a non-negative value from its magnitude.
// Returns ErrRange if m exceeds 2^23-1.
func FromPos(m uint32) (I24, error) {
	if m > maxMagnitude {
		return Zero, ErrRange
	}
	return I24(indent + m), nil
}

// FromNeg constructs a non-positive value from its magnitude.
// The negative half of the range is one wider than the positive one,
// so magnitudes up to 2^23 are accepted, Min being -2^23.
func FromNeg(m uint32) (I24, error) {
	if m > indent {
		return Zero, ErrRange
	}
	return I24(indent - m), nil
}

// FromSignMagnitude constructs a value from a magnitude and a sign flag.
func FromSignMagnitude(m uint32, neg bool) (I24, error) {
	if neg {
		return FromNeg(m)
	}
	return FromPos(m)
}

// Raw returns the biased storage word unchanged.
func (v I24) Raw() uint32 {
	return number(v)
}

// Magnitude returns the absolute logical value of v as an unsigned
// number. It is the distance of the storage word from the bias,
// computed piecewise so that no intermediate leaves the unsigned domain.
func (v I24) Magnitude() uint32 {
	if number(v) >= indent {
		return number(v) - indent
	}
	return indent - number(v)
}

// IsZero reports whether v is logical zero.
func (v I24) IsZero() bool {
	return v == Zero
}

// IsNeg reports whether v is logically negative.
func (v I24) IsNeg() bool {
	return number(v) < indent
}
