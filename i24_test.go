// Copyright 2020 Aleksandr Demakin. All rights reserved.

package i24

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstants(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint32(8388608), Bias())
	a.Equal(24, BitWidth())
	a.Equal(uint32(8388608), Zero.Raw())
	a.Equal(uint32(0), Min.Raw())
	a.Equal(uint32(16777215), Max.Raw())
	a.Equal(uint32(0), Zero.Magnitude())
	a.Equal(uint32(8388608), Min.Magnitude())
	a.Equal(uint32(8388607), Max.Magnitude())
	a.True(Zero.IsZero())
	a.True(Min.IsNeg())
	a.False(Max.IsNeg())
	a.False(Zero.IsNeg())
}

func TestFromRaw(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		raw uint32
		v   I24
		err error
	}{
		{0, Min, nil},
		{1, I24(1), nil},
		{8388607, I24(8388607), nil},
		{8388608, Zero, nil},
		{8388609, I24(8388609), nil},
		{16777215, Max, nil},
		{16777216, Zero, ErrRange},
		{1 << 31, Zero, ErrRange},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := FromRaw(test.raw)
			if test.err != nil {
				a.ErrorIs(err, test.err)
				a.Panics(func() {
					MustFromRaw(test.raw)
				})
				return
			}
			if a.NoError(err) {
				a.Equal(test.v, v)
				a.Equal(test.raw, v.Raw())
				a.Equal(v, MustFromRaw(test.raw))
			}
		})
	}
}

func TestFromPos(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		m   uint32
		raw uint32
		err error
	}{
		{0, 8388608, nil},
		{1, 8388609, nil},
		{8388607, 16777215, nil},
		{8388608, 0, ErrRange},
		{1 << 30, 0, ErrRange},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := FromPos(test.m)
			if test.err != nil {
				a.ErrorIs(err, test.err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.raw, v.Raw())
				a.Equal(test.m, v.Magnitude())
				a.False(v.IsNeg())
			}
		})
	}
}

func TestFromNeg(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		m   uint32
		raw uint32
		err error
	}{
		{0, 8388608, nil},
		{1, 8388607, nil},
		{8388607, 1, nil},
		{8388608, 0, nil},
		{8388609, 0, ErrRange},
		{1 << 30, 0, ErrRange},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := FromNeg(test.m)
			if test.err != nil {
				a.ErrorIs(err, test.err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.raw, v.Raw())
				a.Equal(test.m, v.Magnitude())
			}
		})
	}
}

func TestFromSignMagnitude(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		m   uint32
		neg bool
		v   I24
		err error
	}{
		{0, false, Zero, nil},
		{0, true, Zero, nil},
		{12, false, I24(8388620), nil},
		{12, true, I24(8388596), nil},
		{8388607, false, Max, nil},
		{8388608, false, Zero, ErrRange},
		{8388608, true, Min, nil},
		{8388609, true, Zero, ErrRange},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := FromSignMagnitude(test.m, test.neg)
			if test.err != nil {
				a.ErrorIs(err, test.err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.v, v)
				a.Equal(test.m, v.Magnitude())
			}
		})
	}
}

func TestMagnitude(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v I24
		m uint32
	}{
		{Zero, 0},
		{MustFromString("1"), 1},
		{MustFromString("-1"), 1},
		{MustFromString("42"), 42},
		{MustFromString("-42"), 42},
		{Max, 8388607},
		{Min, 8388608},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.m, test.v.Magnitude())
			a.Equal(test.m, test.v.Abs())
		})
	}
}
