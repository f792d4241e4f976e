// Package subscript classifies array subscripts relative to a loop index.
//
// Classification is textual: after removing whitespace a subscript is
//
//	an integer literal    3, -2          Constant(value)
//	the index             i              UnitStride(0)
//	index plus/minus c    i+2, i-1, i+-1 UnitStride(±c)
//	c plus index          2+i, -1+i      UnitStride(c)
//
// and anything else is Unanalyzable. No other arithmetic is evaluated.
package subscript

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the kind of a subscript.
type Kind int

const (
	Unanalyzable Kind = iota
	Constant
	UnitStride
)

func (k Kind) String() string {
	switch k {
	case Constant:
		return "constant"
	case UnitStride:
		return "unit-stride"
	}
	return "unanalyzable"
}

// Class is the classification of a subscript.
// Value is the constant of a Constant subscript or the offset from the
// index of a UnitStride subscript.
type Class struct {
	Kind  Kind
	Value int64
}

func (c Class) String() string {
	switch c.Kind {
	case Constant:
		return fmt.Sprintf("constant(%d)", c.Value)
	case UnitStride:
		return fmt.Sprintf("unit-stride(%+d)", c.Value)
	}
	return c.Kind.String()
}

// Analyzable returns true if the subscript can be tested numerically.
func (c Class) Analyzable() bool {
	return c.Kind != Unanalyzable
}

// Classify classifies subscript text against index variable index.
func Classify(text, index string) Class {
	text = compact(text)
	if v, ok := IntLiteral(text); ok {
		return Class{Kind: Constant, Value: v}
	}
	if off, ok := offset(text, index); ok {
		return Class{Kind: UnitStride, Value: off}
	}
	return Class{Kind: Unanalyzable}
}

// ConstOffset returns the offset of a unit-stride subscript from index.
// It returns ok=false if text is not unit-stride.
func ConstOffset(text, index string) (int64, bool) {
	return offset(compact(text), index)
}

// IntLiteral returns the value of an integer literal, optionally signed.
func IntLiteral(text string) (int64, bool) {
	text = compact(text)
	if text == "" {
		return 0, false
	}
	digits := text
	if digits[0] == '+' || digits[0] == '-' {
		digits = digits[1:]
	}
	if !isDigits(digits) {
		return 0, false
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// offset matches i, i+c, i-c and c+i for compacted text, where c is an
// integer literal that may carry its own sign.
func offset(text, index string) (int64, bool) {
	if index == "" {
		return 0, false
	}
	if text == index {
		return 0, true
	}
	if rest := strings.TrimPrefix(text, index); rest != text && len(rest) > 1 {
		switch rest[0] {
		case '+':
			return IntLiteral(rest[1:])
		case '-':
			if v, ok := IntLiteral(rest[1:]); ok && v != math.MinInt64 {
				return -v, true
			}
			return 0, false
		}
	}
	if c := strings.TrimSuffix(text, "+"+index); c != text {
		return IntLiteral(c)
	}
	return 0, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// compact removes all whitespace from text.
func compact(text string) string {
	return strings.Join(strings.Fields(text), "")
}
