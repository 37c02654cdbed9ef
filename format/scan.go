// File: scan.go
// Title: Numeral Scanner
// Description: Scans numeral strings in a source alphabet into their
//              positional parts, handling signs, fractional separators,
//              grouping symbols, and exponent suffixes.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial scanner implementation

package format

import (
	"strings"
	"unicode"

	"github.com/msto63/radix/alphabet"
	rxerrors "github.com/msto63/radix/core/errors"
)

// maxExponentMagnitude bounds scanned exponents so a short malformed
// input cannot demand astronomically large decode arithmetic.
const maxExponentMagnitude = 1 << 20

// scanner sections
const (
	secInt = iota
	secFrac
	secExp
)

// Parts is the positional decomposition of a scanned numeral string.
// Digit values are alphabet indices, most significant first.
type Parts struct {
	Negative   bool
	IntDigits  []int
	FracDigits []int
	Exp        int
	HasExp     bool
}

// HasFraction reports whether the numeral carried a fractional separator
func (p Parts) HasFraction() bool {
	return p.FracDigits != nil
}

// ScanNumber decomposes a numeral string into its positional parts.
// Leading and trailing whitespace is ignored, grouping symbols are
// tolerated in the integer section and stripped. The exponent marker is
// only recognized when immediately followed by a sign, which keeps
// alphabets whose digits include the marker letter unambiguous.
func ScanNumber(input string, a alphabet.Alphabet, sy alphabet.Symbols) (Parts, error) {
	var p Parts

	s := strings.TrimSpace(input)
	if s == "" {
		return Parts{}, rxerrors.DecodeEmpty(input)
	}

	runes := []rune(s)
	i := 0

	if runes[i] == sy.Neg {
		p.Negative = true
		i++
	} else if runes[i] == sy.Pos {
		i++
	}

	section := secInt
	seenDigit := false
	expNegative := false
	expDigits := 0
	expValue := 0

	markerUpper := unicode.ToUpper(sy.Exp)

	for ; i < len(runes); i++ {
		r := runes[i]

		// Marker check precedes the digit check so that "1;8e+05" decodes
		// as an exponent even when the marker rune is itself a digit
		if section != secExp && (r == sy.Exp || r == markerUpper) &&
			i+1 < len(runes) && (runes[i+1] == sy.Neg || runes[i+1] == sy.Pos) {
			section = secExp
			expNegative = runes[i+1] == sy.Neg
			p.HasExp = true
			i++
			continue
		}

		if v, ok := a.DigitValue(r); ok {
			switch section {
			case secInt:
				p.IntDigits = append(p.IntDigits, v)
				seenDigit = true
			case secFrac:
				p.FracDigits = append(p.FracDigits, v)
				seenDigit = true
			case secExp:
				expValue = expValue*a.Base() + v
				if expValue > maxExponentMagnitude {
					return Parts{}, rxerrors.DecodeMalformedExponent(input, i)
				}
				expDigits++
			}
			continue
		}

		switch r {
		case sy.Sep:
			if section != secInt {
				return Parts{}, rxerrors.DecodeMisplacedSeparator(input, i)
			}
			section = secFrac
			p.FracDigits = []int{}
		case sy.Group:
			if section != secInt {
				return Parts{}, rxerrors.DecodeMisplacedSeparator(input, i)
			}
		case sy.Neg, sy.Pos:
			return Parts{}, rxerrors.DecodeMisplacedSign(input, i)
		default:
			return Parts{}, rxerrors.DecodeInvalidDigit(input, r, i)
		}
	}

	if !seenDigit {
		return Parts{}, rxerrors.DecodeEmpty(input)
	}
	if p.HasExp && expDigits == 0 {
		return Parts{}, rxerrors.DecodeMalformedExponent(input, len(runes))
	}

	if expNegative {
		expValue = -expValue
	}
	p.Exp = expValue

	return p, nil
}
