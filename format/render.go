// File: render.go
// Title: Numeral Renderer
// Description: Renders exact decimals as numeral strings in a target
//              alphabet, covering the fixed, exponential, integer, and
//              general presentations with grouping, sign modes, and
//              width padding.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial renderer implementation

package format

import (
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/msto63/radix/alphabet"
	"github.com/msto63/radix/numeral"
	rxstringx "github.com/msto63/radix/utils/stringx"
)

// Render encodes v in the alphabet under the given spec. isInt selects the
// integer flavor of general mode: integer inputs render without a
// fractional part and never switch to exponential notation, fractional
// inputs keep at least one fraction digit.
func Render(v numeral.Decimal, isInt bool, a alphabet.Alphabet, sy alphabet.Symbols, sp Spec) (string, error) {
	base := a.Base()

	var (
		negative  bool
		intDigits []int
		tail      []rune
	)

	switch sp.Type {
	case TypeInt:
		e := numeral.Digits(v, base, 0)
		negative = e.Negative
		intDigits = e.IntDigits

	case TypeFixed:
		prec := sp.Prec(defaultPrecision)
		e := numeral.Digits(v, base, prec)
		negative = e.Negative
		intDigits = e.IntDigits
		if prec > 0 || sp.Alternate {
			tail = append(tail, sy.Sep)
			tail = appendDigits(tail, e.FracDigits, a)
		}

	case TypeExp, TypeExpUp:
		prec := sp.Prec(defaultPrecision)
		m, exp := numeral.Normalize(v, base)
		e := numeral.Digits(m, base, prec)
		exp = renormalizeCarry(&e, exp)
		negative = e.Negative
		intDigits = e.IntDigits
		if prec > 0 || sp.Alternate {
			tail = append(tail, sy.Sep)
			tail = appendDigits(tail, e.FracDigits, a)
		}
		tail = appendExponent(tail, exp, a, sy, sp.Type == TypeExpUp)

	default:
		if !isInt && !v.IsZero() && needsExponent(v) {
			// Magnitude demands exponential notation: shortest-exact
			// mantissa within the significance budget
			m, exp := numeral.Normalize(v, base)
			e := numeral.Digits(m, base, generalSignificance-1)
			exp = renormalizeCarry(&e, exp)
			negative = e.Negative
			intDigits = e.IntDigits
			frac := trimZeros(e.FracDigits)
			if len(frac) > 0 || sp.Alternate {
				tail = append(tail, sy.Sep)
				tail = appendDigits(tail, frac, a)
			}
			tail = appendExponent(tail, exp, a, sy, false)
		} else {
			// The fraction gets whatever the integer part leaves of the
			// significance budget
			ip, _ := v.Split()
			prec := generalSignificance - len(numeral.Digits(ip, base, 0).IntDigits)
			if prec < 0 {
				prec = 0
			}
			e := numeral.Digits(v, base, prec)
			negative = e.Negative
			intDigits = e.IntDigits
			frac := trimZeros(e.FracDigits)
			if len(frac) == 0 && !isInt {
				// Fractional inputs keep a visible fraction digit
				frac = []int{0}
			}
			if len(frac) > 0 || sp.Alternate {
				tail = append(tail, sy.Sep)
				tail = appendDigits(tail, frac, a)
			}
		}
	}

	return assemble(negative, intDigits, tail, a, sy, sp), nil
}

// needsExponent reports whether general mode switches a fractional input
// to exponential notation: decimal magnitude at or past 1e16, or below
// 1e-4, the conventional repr thresholds.
func needsExponent(v numeral.Decimal) bool {
	exp := decimalExponent(v)
	return exp <= -5 || exp >= 16
}

// decimalExponent returns floor(log10(|v|)) for non-zero v, computed
// exactly from the rational representation.
func decimalExponent(v numeral.Decimal) int {
	abs := v.Abs()
	ip, _ := abs.Split()
	if !ip.IsZero() {
		return len(ip.Rat().Num().String()) - 1
	}

	// |v| < 1: the decimal length difference pins the exponent to within
	// one, a single comparison settles it
	rat := abs.Rat()
	num := rat.Num()
	den := rat.Denom()

	shift := len(den.String()) - len(num.String())
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(shift)), nil)
	scaled := new(big.Int).Mul(num, scale)
	if scaled.Cmp(den) < 0 {
		shift++
	}
	return -shift
}

// renormalizeCarry re-establishes the single-digit mantissa when rounding
// carried past it: the overflowed expansion is 10.00...0 in the base, so
// the digits collapse to 1 with a zero fraction and the exponent grows.
func renormalizeCarry(e *numeral.Expansion, exp int) int {
	if len(e.IntDigits) == 1 {
		return exp
	}
	e.IntDigits = e.IntDigits[:1]
	for i := range e.FracDigits {
		e.FracDigits[i] = 0
	}
	return exp + 1
}

// trimZeros drops trailing zero digits
func trimZeros(digits []int) []int {
	end := len(digits)
	for end > 0 && digits[end-1] == 0 {
		end--
	}
	return digits[:end]
}

// appendDigits appends the alphabet symbols for a digit sequence
func appendDigits(dst []rune, digits []int, a alphabet.Alphabet) []rune {
	for _, d := range digits {
		dst = append(dst, a.DigitSymbol(d))
	}
	return dst
}

// appendExponent appends the exponent marker, an explicit sign, and the
// exponent digits in the target radix, zero-padded to two digits.
func appendExponent(dst []rune, exp int, a alphabet.Alphabet, sy alphabet.Symbols, upper bool) []rune {
	marker := sy.Exp
	if upper {
		marker = unicode.ToUpper(marker)
	}
	dst = append(dst, marker)

	if exp < 0 {
		dst = append(dst, sy.Neg)
		exp = -exp
	} else {
		dst = append(dst, sy.Pos)
	}

	digits := numeral.Digits(numeral.FromInt64(int64(exp)), a.Base(), 0).IntDigits
	for len(digits) < 2 {
		digits = append([]int{0}, digits...)
	}
	return appendDigits(dst, digits, a)
}

// assemble joins sign, grouped integer digits, and tail, then applies
// width padding per the spec.
func assemble(negative bool, intDigits []int, tail []rune, a alphabet.Alphabet, sy alphabet.Symbols, sp Spec) string {
	signRune := rune(0)
	switch {
	case negative:
		signRune = sy.Neg
	case sp.SignMode() == SignAlways:
		signRune = sy.Pos
	case sp.SignMode() == SignSpace:
		signRune = ' '
	}

	signStr := ""
	signLen := 0
	if signRune != 0 {
		signStr = string(signRune)
		signLen = 1
	}

	zero := a.Zero()
	fill := sp.FillRune(zero)
	align := sp.AlignMode()

	// Zero-digit padding participates in grouping: grow the digit count
	// until sign + digits + group separators + tail reaches the width.
	// The leftmost group keeps one to three digits, so the result may
	// overshoot the width rather than lead with a group separator.
	if align == AlignPad && fill == zero && sp.Width > 0 {
		target := sp.Width - signLen - len(tail)
		padded := len(intDigits)
		if sp.Grouping {
			if p := (3*target + 1) / 4; p > padded {
				padded = p
			}
			for padded+(padded-1)/3 < target {
				padded++
			}
		} else if padded < target {
			padded = target
		}
		if padded > len(intDigits) {
			intDigits = append(make([]int, padded-len(intDigits)), intDigits...)
		}
	}

	var digitsB strings.Builder
	writeGrouped(&digitsB, intDigits, a, sy, sp.Grouping)
	rest := digitsB.String() + string(tail)

	body := signStr + rest
	if sp.Width <= 0 || utf8.RuneCountInString(body) >= sp.Width {
		return body
	}

	switch align {
	case AlignLeft:
		return rxstringx.PadRight(body, sp.Width, fill)
	case AlignCenter:
		return rxstringx.Center(body, sp.Width, fill)
	case AlignPad:
		gap := sp.Width - utf8.RuneCountInString(body)
		return signStr + strings.Repeat(string(fill), gap) + rest
	default:
		return rxstringx.PadLeft(body, sp.Width, fill)
	}
}

// writeGrouped writes integer digits with the grouping symbol every three
// digits from the least significant end.
func writeGrouped(b *strings.Builder, digits []int, a alphabet.Alphabet, sy alphabet.Symbols, grouping bool) {
	n := len(digits)
	for i, d := range digits {
		if grouping && i > 0 && (n-i)%3 == 0 {
			b.WriteRune(sy.Group)
		}
		b.WriteRune(a.DigitSymbol(d))
	}
}
