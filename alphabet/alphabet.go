// File: alphabet.go
// Title: Digit Alphabet Implementation
// Description: Implements the ordered digit alphabet that defines a radix.
//              Position in the alphabet is numeric value, so any sequence
//              of unique runes works as a base, including multi-byte
//              notations such as the Pitman dozenal digits.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation with rune-based lookup

package alphabet

import (
	rxerrors "github.com/msto63/radix/core/errors"
)

// Alphabet is an ordered sequence of unique digit runes. The length is the
// radix and the position of a rune is its numeric value. Alphabets are
// immutable after construction and safe for concurrent use; the zero value
// is not usable, construct with New.
type Alphabet struct {
	digits []rune
	values map[rune]int
}

// New creates an Alphabet from the given digit string. The string is
// interpreted rune by rune, so multi-byte digits are fine. It fails when
// fewer than two digits are supplied or any digit repeats.
func New(digits string) (Alphabet, error) {
	runes := []rune(digits)
	if len(runes) < 2 {
		return Alphabet{}, rxerrors.AlphabetTooShort(len(runes))
	}

	values := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, exists := values[r]; exists {
			return Alphabet{}, rxerrors.AlphabetDuplicateDigit(r)
		}
		values[r] = i
	}

	return Alphabet{digits: runes, values: values}, nil
}

// MustNew creates an Alphabet, panicking on error
// Use this for well-known alphabets (e.g., preset definitions)
func MustNew(digits string) Alphabet {
	a, err := New(digits)
	if err != nil {
		panic(err)
	}
	return a
}

// Base returns the radix, the number of digits in the alphabet
func (a Alphabet) Base() int {
	return len(a.digits)
}

// DigitValue returns the numeric value of a digit rune and whether the
// rune belongs to the alphabet.
func (a Alphabet) DigitValue(r rune) (int, bool) {
	v, ok := a.values[r]
	return v, ok
}

// DigitSymbol returns the rune for a digit value. The value must be in
// [0, Base); conversions only produce in-range values.
func (a Alphabet) DigitSymbol(value int) rune {
	return a.digits[value]
}

// Contains reports whether r is a digit of the alphabet
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.values[r]
	return ok
}

// Zero returns the digit with value zero
func (a Alphabet) Zero() rune {
	return a.digits[0]
}

// Runes returns a copy of the digit runes in value order
func (a Alphabet) Runes() []rune {
	runes := make([]rune, len(a.digits))
	copy(runes, a.digits)
	return runes
}

// String returns the alphabet as its digit string
func (a Alphabet) String() string {
	return string(a.digits)
}
