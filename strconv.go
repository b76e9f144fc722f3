package i24

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String returns the decimal representation of the logical value.
func (v I24) String() string {
	if v.IsNeg() {
		return "-" + strconv.FormatUint(uint64(v.Magnitude()), 10)
	}
	return strconv.FormatUint(uint64(v.Magnitude()), 10)
}

// GoString returns a debug representation including the storage word.
func (v I24) GoString() string {
	return v.String() + fmt.Sprintf(" {raw=%v}", v.Raw())
}

// Format implements fmt.Formatter for the %v, %s, %d and %q verbs.
func (v I24) Format(f fmt.State, c rune) {
	switch c {
	case 'q':
		fmt.Fprintf(f, "%q", v.String())
	default:
		io.WriteString(f, v.String())
	}
}

// FromString parses a decimal string, with an optional leading sign and
// optional surrounding quotes, into a value.
// An out-of-range input fails with ErrRange.
func FromString(s string) (I24, error) {
	s = prepareString(s)
	if len(s) == 0 {
		return Zero, fmt.Errorf("empty input")
	}
	var neg bool
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if len(s) == 0 {
		return Zero, fmt.Errorf("empty input")
	}
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Zero, ErrRange
		}
		return Zero, fmt.Errorf("parsing failed: %w", err)
	}
	if u > uint64(indent) {
		return Zero, ErrRange
	}
	return FromSignMagnitude(number(u), neg)
}

// MustFromString is like FromString, but panics on error.
func MustFromString(s string) I24 {
	v, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func prepareString(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 0 && s[0] == '"' {
		s = s[1:]
	}
	if len(s) > 0 && s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	return s
}

// MarshalJSON marshals the value as a quoted decimal string.
func (v I24) MarshalJSON() ([]byte, error) {
	return []byte(`"` + v.String() + `"`), nil
}

// UnmarshalJSON unmarshals a quoted string or a bare number.
func (v *I24) UnmarshalJSON(data []byte) error {
	parsed, err := FromString(string(data))
	if err == nil {
		*v = parsed
	}
	return err
}

// FromInt64 converts a native integer into a value.
// Returns ErrRange if i is outside [-2^23, 2^23-1].
func FromInt64(i int64) (I24, error) {
	if i < 0 {
		m := uint64(-(i + 1)) + 1
		if m > uint64(indent) {
			return Zero, ErrRange
		}
		return FromNeg(number(m))
	}
	if uint64(i) > uint64(maxMagnitude) {
		return Zero, ErrRange
	}
	return FromPos(number(i))
}

// Int64 returns the logical value as a native integer.
func (v I24) Int64() int64 {
	if v.IsNeg() {
		return -int64(v.Magnitude())
	}
	return int64(v.Magnitude())
}

// Float64 returns the logical value as a float64.
// The conversion is exact: every 24-bit integer fits the mantissa.
func (v I24) Float64() float64 {
	return float64(v.Int64())
}
