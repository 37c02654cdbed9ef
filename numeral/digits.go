// File: digits.go
// Title: Positional Digit Expansion
// Description: Converts between exact decimals and positional digit sequences
//              in an arbitrary base, including half-up rounding with carry
//              propagation and mantissa/exponent normalization.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial implementation with rounding and normalization

package numeral

import (
	"math/big"
)

// Expansion is the positional representation of a decimal in some base.
// IntDigits holds the integer part most significant digit first and always
// contains at least one element. FracDigits holds exactly the requested
// number of fractional digits. Exact reports whether the expansion
// terminated within that precision; a rounded expansion is never exact.
type Expansion struct {
	Negative   bool
	IntDigits  []int
	FracDigits []int
	Exact      bool
}

// Digits expands d into positional digits in the given base with prec
// fractional digits. Ties and larger remainders round up on the last
// fractional digit; the carry propagates through the integer part and may
// grow it by one digit. The base must be at least 2.
func Digits(d Decimal, base, prec int) Expansion {
	if prec < 0 {
		prec = 0
	}

	negative := d.IsNegative()
	abs := new(big.Rat).Abs(d.value)

	num := abs.Num()
	den := abs.Denom()

	intPart := new(big.Int)
	rem := new(big.Int)
	intPart.QuoRem(num, den, rem)

	intDigits := integerDigits(intPart, base)

	b := big.NewInt(int64(base))
	digit := new(big.Int)
	carry := new(big.Int)

	fracDigits := make([]int, 0, prec)
	for i := 0; i < prec; i++ {
		rem.Mul(rem, b)
		digit.QuoRem(rem, den, carry)
		fracDigits = append(fracDigits, int(digit.Int64()))
		rem.Set(carry)
	}

	exact := rem.Sign() == 0

	// Round half up: the remainder holds everything beyond the last digit,
	// so rem/den >= 1/2 bumps the expansion by one unit in the last place.
	if !exact {
		rem.Lsh(rem, 1)
		if rem.Cmp(den) >= 0 {
			intDigits, fracDigits = incrementExpansion(intDigits, fracDigits, base)
		}
	}

	return Expansion{
		Negative:   negative,
		IntDigits:  intDigits,
		FracDigits: fracDigits,
		Exact:      exact,
	}
}

// integerDigits converts a non-negative integer into base digits, most
// significant first. Zero yields a single zero digit.
func integerDigits(n *big.Int, base int) []int {
	if n.Sign() == 0 {
		return []int{0}
	}

	b := big.NewInt(int64(base))
	quo := new(big.Int).Set(n)
	rem := new(big.Int)

	var digits []int
	for quo.Sign() > 0 {
		quo.QuoRem(quo, b, rem)
		digits = append(digits, int(rem.Int64()))
	}

	// Emitted least significant first, so reverse in place
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	return digits
}

// incrementExpansion adds one unit in the last place and propagates the
// carry from the fractional digits into the integer digits. An overflow
// past the most significant digit prepends a new leading one.
func incrementExpansion(intDigits, fracDigits []int, base int) ([]int, []int) {
	carry := 1

	for i := len(fracDigits) - 1; i >= 0 && carry > 0; i-- {
		fracDigits[i]++
		if fracDigits[i] == base {
			fracDigits[i] = 0
		} else {
			carry = 0
		}
	}

	for i := len(intDigits) - 1; i >= 0 && carry > 0; i-- {
		intDigits[i]++
		if intDigits[i] == base {
			intDigits[i] = 0
		} else {
			carry = 0
		}
	}

	if carry > 0 {
		intDigits = append([]int{1}, intDigits...)
	}

	return intDigits, fracDigits
}

// FromDigits reconstructs the exact decimal an expansion denotes in the
// given base.
func FromDigits(e Expansion, base int) Decimal {
	return Assemble(e.Negative, e.IntDigits, e.FracDigits, 0, base)
}

// Assemble builds the exact decimal for a sign, digit sequences, and an
// exponent, all interpreted in the given base. The result is
// (int.frac) * base^exp, negated when negative is set. Digit validity is
// the caller's responsibility.
func Assemble(negative bool, intDigits, fracDigits []int, exp, base int) Decimal {
	b := big.NewInt(int64(base))
	dv := new(big.Int)

	num := new(big.Int)
	for _, digit := range intDigits {
		num.Mul(num, b)
		num.Add(num, dv.SetInt64(int64(digit)))
	}

	den := new(big.Int).Exp(b, big.NewInt(int64(len(fracDigits))), nil)

	fracNum := new(big.Int)
	for _, digit := range fracDigits {
		fracNum.Mul(fracNum, b)
		fracNum.Add(fracNum, dv.SetInt64(int64(digit)))
	}

	total := new(big.Int).Mul(num, den)
	total.Add(total, fracNum)

	rat := getRat()
	rat.SetFrac(total, den)

	result := Decimal{value: rat}
	if exp != 0 {
		scale := FromInt64(int64(base)).Pow(int64(exp))
		result = result.Multiply(scale)
	}
	if negative {
		result.value.Neg(result.value)
	}
	return result
}

// Normalize returns a mantissa m and exponent e with d = m * base^e and
// 1 <= |m| < base. Zero normalizes to mantissa zero, exponent zero.
func Normalize(d Decimal, base int) (Decimal, int) {
	if d.IsZero() {
		return Zero(), 0
	}

	b := FromInt64(int64(base))
	one := One()

	m := d.Abs()
	exp := 0

	for m.GreaterThanOrEqual(b) {
		m = m.MustDivide(b)
		exp++
	}
	for m.LessThan(one) {
		m = m.Multiply(b)
		exp--
	}

	if d.IsNegative() {
		m = m.Neg()
	}

	return m, exp
}
