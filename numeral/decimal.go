// File: decimal.go
// Title: Exact Decimal Arithmetic Implementation
// Description: Implements precise rational arithmetic as the intermediate
//              representation for numeral conversions. Uses big.Rat to avoid
//              floating-point precision issues across arbitrary bases.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial implementation with core decimal operations

package numeral

import (
	"math"
	"math/big"
	"strings"
	"sync"

	rxerrors "github.com/msto63/radix/core/errors"
)

// Object pools for efficient *big.Rat management
var (
	// ratPool pools *big.Rat instances to reduce allocations
	ratPool = sync.Pool{
		New: func() interface{} {
			return new(big.Rat)
		},
	}
)

// getRat gets a *big.Rat from the pool and resets it
func getRat() *big.Rat {
	rat := ratPool.Get().(*big.Rat)
	rat.SetInt64(0) // Reset to zero
	return rat
}

// putRat returns a *big.Rat to the pool
func putRat(rat *big.Rat) {
	if rat != nil {
		ratPool.Put(rat)
	}
}

// Decimal represents an exact number with arbitrary precision.
// It is the intermediate value of every conversion: decoding produces one,
// encoding consumes one.
type Decimal struct {
	value *big.Rat
}

// Free returns the underlying *big.Rat to the pool
// Call this when you're done with a Decimal to improve memory efficiency
// Note: The Decimal becomes invalid after calling Free()
func (d *Decimal) Free() {
	if d.value != nil {
		putRat(d.value)
		d.value = nil
	}
}

// New creates a new Decimal from a string representation
// Supports formats like "123.45", "-67.89", "100", "1/2", "2.5e3"
func New(s string) (Decimal, error) {
	rat := getRat()
	_, ok := rat.SetString(s)
	if !ok {
		putRat(rat) // Return to pool on error
		return Decimal{}, rxerrors.InvalidInput(rxerrors.ModuleNumeral, "parse", s, "decimal number")
	}
	return Decimal{value: rat}, nil
}

// MustNew creates a new Decimal from a string, panicking on error
// Use this when you're certain the input is valid (e.g., constants)
func MustNew(s string) Decimal {
	d, err := New(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FromInt64 creates a new Decimal from an integer
func FromInt64(i int64) Decimal {
	rat := getRat()
	rat.SetInt64(i)
	return Decimal{value: rat}
}

// FromUint64 creates a new Decimal from an unsigned integer
func FromUint64(u uint64) Decimal {
	rat := getRat()
	rat.SetInt(new(big.Int).SetUint64(u))
	return Decimal{value: rat}
}

// FromBigInt creates a new Decimal from a big integer
func FromBigInt(i *big.Int) Decimal {
	rat := getRat()
	rat.SetInt(i)
	return Decimal{value: rat}
}

// FromFloat64 creates a new Decimal from a float64.
// NaN and infinities are rejected; every finite float64 converts exactly.
func FromFloat64(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, rxerrors.ValueNotFinite("from_float", f)
	}
	rat := getRat()
	rat.SetFloat64(f)
	return Decimal{value: rat}, nil
}

// FromBigRat creates a new Decimal from a big rational
func FromBigRat(r *big.Rat) Decimal {
	rat := getRat()
	rat.Set(r)
	return Decimal{value: rat}
}

// Zero returns a decimal representing zero
func Zero() Decimal {
	rat := getRat()
	return Decimal{value: rat}
}

// One returns a decimal representing one
func One() Decimal {
	rat := getRat()
	rat.SetInt64(1)
	return Decimal{value: rat}
}

// Add returns the sum of d and other
func (d Decimal) Add(other Decimal) Decimal {
	result := getRat()
	result.Add(d.value, other.value)
	return Decimal{value: result}
}

// Subtract returns the difference of d and other
func (d Decimal) Subtract(other Decimal) Decimal {
	result := getRat()
	result.Sub(d.value, other.value)
	return Decimal{value: result}
}

// Multiply returns the product of d and other
func (d Decimal) Multiply(other Decimal) Decimal {
	result := getRat()
	result.Mul(d.value, other.value)
	return Decimal{value: result}
}

// Divide returns the quotient of d and other
func (d Decimal) Divide(other Decimal) (Decimal, error) {
	if other.IsZero() {
		return Decimal{}, rxerrors.InvalidInput(rxerrors.ModuleNumeral, "divide", 0, "non-zero divisor")
	}
	result := getRat()
	result.Quo(d.value, other.value)
	return Decimal{value: result}, nil
}

// MustDivide returns the quotient of d and other, panicking on division by zero
func (d Decimal) MustDivide(other Decimal) Decimal {
	result, err := d.Divide(other)
	if err != nil {
		panic(err)
	}
	return result
}

// Abs returns the absolute value of d
func (d Decimal) Abs() Decimal {
	result := new(big.Rat)
	result.Abs(d.value)
	return Decimal{value: result}
}

// Neg returns the negation of d
func (d Decimal) Neg() Decimal {
	result := new(big.Rat)
	result.Neg(d.value)
	return Decimal{value: result}
}

// IsZero returns true if d equals zero
func (d Decimal) IsZero() bool {
	return d.value.Sign() == 0
}

// IsPositive returns true if d is greater than zero
func (d Decimal) IsPositive() bool {
	return d.value.Sign() > 0
}

// IsNegative returns true if d is less than zero
func (d Decimal) IsNegative() bool {
	return d.value.Sign() < 0
}

// IsInt returns true if d has no fractional part
func (d Decimal) IsInt() bool {
	return d.value.IsInt()
}

// Sign returns the sign of d: -1 if negative, 0 if zero, +1 if positive
func (d Decimal) Sign() int {
	return d.value.Sign()
}

// Compare compares d with other
// Returns -1 if d < other, 0 if d == other, +1 if d > other
func (d Decimal) Compare(other Decimal) int {
	return d.value.Cmp(other.value)
}

// Equal returns true if d equals other
func (d Decimal) Equal(other Decimal) bool {
	return d.Compare(other) == 0
}

// GreaterThan returns true if d > other
func (d Decimal) GreaterThan(other Decimal) bool {
	return d.Compare(other) > 0
}

// GreaterThanOrEqual returns true if d >= other
func (d Decimal) GreaterThanOrEqual(other Decimal) bool {
	return d.Compare(other) >= 0
}

// LessThan returns true if d < other
func (d Decimal) LessThan(other Decimal) bool {
	return d.Compare(other) < 0
}

// LessThanOrEqual returns true if d <= other
func (d Decimal) LessThanOrEqual(other Decimal) bool {
	return d.Compare(other) <= 0
}

// Split returns the integer part truncated toward zero and the fractional
// remainder. Both carry the sign of d, and d = int + frac.
func (d Decimal) Split() (Decimal, Decimal) {
	intPart := new(big.Int)
	intPart.Quo(d.value.Num(), d.value.Denom())

	ip := FromBigInt(intPart)
	frac := d.Subtract(ip)
	return ip, frac
}

// Rat returns a copy of the underlying rational value
func (d Decimal) Rat() *big.Rat {
	return new(big.Rat).Set(d.value)
}

// Float64 returns the float64 representation of the decimal
// Note: This may lose precision for very large or very precise decimals
func (d Decimal) Float64() float64 {
	f, _ := d.value.Float64()
	return f
}

// Int64 returns the integer part of the decimal as int64
// Returns an error if the value doesn't fit in int64
func (d Decimal) Int64() (int64, error) {
	// Get the integer part
	intPart := new(big.Int)
	intPart.Quo(d.value.Num(), d.value.Denom())

	if !intPart.IsInt64() {
		return 0, rxerrors.InvalidInput(rxerrors.ModuleNumeral, "to_int64", d.value, "int64-compatible value")
	}

	return intPart.Int64(), nil
}

// MustInt64 returns the integer part as int64, panicking on error
func (d Decimal) MustInt64() int64 {
	i, err := d.Int64()
	if err != nil {
		panic(err)
	}
	return i
}

// Pow returns d raised to the power of exp (integer exponent only)
func (d Decimal) Pow(exp int64) Decimal {
	if exp == 0 {
		return One()
	}

	result := One()
	base := d

	if exp < 0 {
		exp = -exp
		base = One().MustDivide(d)
	}

	for exp > 0 {
		if exp%2 == 1 {
			result = result.Multiply(base)
		}
		base = base.Multiply(base)
		exp /= 2
	}

	return result
}

// Sqrt returns the square root of d using Newton's method
func (d Decimal) Sqrt() (Decimal, error) {
	if d.IsNegative() {
		return Decimal{}, rxerrors.InvalidInput(rxerrors.ModuleNumeral, "sqrt", d.value, "non-negative number")
	}

	if d.IsZero() {
		return Zero(), nil
	}

	// Newton's method: x_n+1 = (x_n + d/x_n) / 2
	// Convergence is quadratic, so digit count roughly doubles per step.
	x := d
	two := FromInt64(2)
	tolerance := One().MustDivide(FromInt64(10).Pow(40))

	for i := 0; i < 64; i++ {
		next := x.Add(d.MustDivide(x)).MustDivide(two)

		// Check for convergence
		diff := next.Subtract(x).Abs()
		if diff.LessThan(tolerance) {
			return next, nil
		}

		x = next
	}

	return x, nil
}

// String returns the string representation of the decimal.
// Integers render without a fractional part, terminating decimal expansions
// render exactly, and non-terminating values fall back to num/denom form.
func (d Decimal) String() string {
	if d.IsInt() {
		return d.value.Num().String()
	}

	if places, ok := d.terminatingPlaces(); ok {
		return d.StringFixed(places)
	}

	return d.value.RatString()
}

// terminatingPlaces reports whether the decimal expansion of d terminates
// and, if so, how many fractional digits it needs. A reduced denominator
// terminates exactly when it has no prime factors other than 2 and 5.
func (d Decimal) terminatingPlaces() (int, bool) {
	den := new(big.Int).Set(d.value.Denom())
	five := big.NewInt(5)

	factors2 := 0
	for den.Bit(0) == 0 {
		den.Rsh(den, 1)
		factors2++
	}

	factors5 := 0
	rem := new(big.Int)
	for {
		q, r := new(big.Int).QuoRem(den, five, rem)
		if r.Sign() != 0 {
			break
		}
		den.Set(q)
		factors5++
	}

	if den.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}

	return max(factors2, factors5), true
}

// StringFixed returns the string representation with a fixed number of
// decimal places, rounding half away from zero on the first trimmed digit.
func (d Decimal) StringFixed(places int) string {
	if places < 0 {
		places = 0
	}

	// Scale to an integer at the requested precision
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	num := new(big.Int).Mul(d.value.Num(), scale)
	den := d.value.Denom()

	quo, rem := new(big.Int).QuoRem(num, den, new(big.Int))

	// Round half away from zero
	rem.Abs(rem)
	rem.Lsh(rem, 1)
	if rem.Cmp(den) >= 0 {
		if num.Sign() < 0 {
			quo.Sub(quo, big.NewInt(1))
		} else {
			quo.Add(quo, big.NewInt(1))
		}
	}

	negative := quo.Sign() < 0
	digits := new(big.Int).Abs(quo).String()

	if places == 0 {
		if negative {
			return "-" + digits
		}
		return digits
	}

	if len(digits) <= places {
		digits = strings.Repeat("0", places-len(digits)+1) + digits
	}

	result := digits[:len(digits)-places] + "." + digits[len(digits)-places:]
	if negative {
		result = "-" + result
	}
	return result
}

// Text returns the decimal expansion with at most maxPlaces fractional
// digits, rounding half away from zero and trimming trailing zeros.
func (d Decimal) Text(maxPlaces int) string {
	s := d.StringFixed(maxPlaces)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
