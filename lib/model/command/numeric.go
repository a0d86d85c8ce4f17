// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a floating-point value compared by bit pattern. Two Numbers
// are == exactly when their IEEE 754 representations are identical, so
// +0.0 and -0.0 are different values and a NaN is equal to itself.
// Number is comparable and can be used as a map key.
type Number struct {
	bits uint64
}

// NewNumber returns the Number holding f.
func NewNumber(f float64) Number {
	return Number{bits: math.Float64bits(f)}
}

// Float64 returns the floating-point value.
func (n Number) Float64() float64 {
	return math.Float64frombits(n.bits)
}

// Bits returns the IEEE 754 bit pattern.
func (n Number) Bits() uint64 {
	return n.bits
}

func (n Number) String() string {
	encoded, err := formatFloat(n.Float64())
	if err != nil {
		return strconv.FormatFloat(n.Float64(), 'g', -1, 64)
	}
	return string(encoded)
}

// MarshalJSON encodes the number with a fraction or exponent, so 2 is
// written as 2.0. Infinities and NaN have no JSON representation and
// fail.
func (n Number) MarshalJSON() ([]byte, error) {
	return formatFloat(n.Float64())
}

// UnmarshalJSON accepts any JSON number literal.
func (n *Number) UnmarshalJSON(data []byte) error {
	value, err := strconv.ParseFloat(string(bytes.TrimSpace(data)), 64)
	if err != nil {
		return fmt.Errorf("command: invalid number %s: %w", data, err)
	}
	*n = NewNumber(value)
	return nil
}

// NumericValue is either a 64-bit integer or a floating-point [Number].
// It is used for the min_value and max_value bounds of Integer and
// Number options. An integer and a float with the same magnitude are
// different values. NumericValue is comparable and can be used as a map
// key.
type NumericValue struct {
	integer int64
	number  Number
	isFloat bool
}

// IntegerValue returns the integer variant holding i.
func IntegerValue(i int64) NumericValue {
	return NumericValue{integer: i}
}

// FloatValue returns the floating-point variant holding f.
func FloatValue(f float64) NumericValue {
	return NumericValue{number: NewNumber(f), isFloat: true}
}

// IsInteger reports whether v is the integer variant.
func (v NumericValue) IsInteger() bool {
	return !v.isFloat
}

// Int64 returns the integer and true for the integer variant, or 0 and
// false for the floating-point variant.
func (v NumericValue) Int64() (int64, bool) {
	if v.isFloat {
		return 0, false
	}
	return v.integer, true
}

// Number returns the floating-point value and true for the
// floating-point variant, or the zero Number and false for the integer
// variant.
func (v NumericValue) Number() (Number, bool) {
	if !v.isFloat {
		return Number{}, false
	}
	return v.number, true
}

// Float64 returns the value as a float64, converting integers.
func (v NumericValue) Float64() float64 {
	if v.isFloat {
		return v.number.Float64()
	}
	return float64(v.integer)
}

func (v NumericValue) String() string {
	if v.isFloat {
		return v.number.String()
	}
	return strconv.FormatInt(v.integer, 10)
}

// MarshalJSON writes integers as integer literals and floats as
// float-shaped literals.
func (v NumericValue) MarshalJSON() ([]byte, error) {
	if v.isFloat {
		return v.number.MarshalJSON()
	}
	return strconv.AppendInt(nil, v.integer, 10), nil
}

// UnmarshalJSON resolves the variant from the literal's shape.
func (v *NumericValue) UnmarshalJSON(data []byte) error {
	parsed, err := parseNumeric(string(bytes.TrimSpace(data)))
	if err != nil {
		return fmt.Errorf("command: %w", err)
	}
	*v = parsed
	return nil
}

// parseNumeric classifies a JSON number literal. A literal without a
// fraction or exponent that fits in int64 is an integer. Everything else
// is a float; a literal beyond float64 range is an error.
func parseNumeric(literal string) (NumericValue, error) {
	if !strings.ContainsAny(literal, ".eE") {
		if i, err := strconv.ParseInt(literal, 10, 64); err == nil {
			return IntegerValue(i), nil
		}
	}
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return NumericValue{}, fmt.Errorf("number %s is out of range", literal)
		}
		return NumericValue{}, fmt.Errorf("invalid number %q", literal)
	}
	return FloatValue(f), nil
}

// formatFloat writes f as a JSON literal that always contains a
// fraction or an exponent.
func formatFloat(f float64) ([]byte, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, fmt.Errorf("command: cannot encode %v as JSON", f)
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.AppendFloat(nil, f, 'e', -1, 64), nil
	}
	encoded := strconv.AppendFloat(nil, f, 'f', -1, 64)
	if bytes.IndexByte(encoded, '.') < 0 {
		encoded = append(encoded, ".0"...)
	}
	return encoded, nil
}
