// File: doc.go
// Title: Package Documentation for numeral
// Description: Package numeral provides exact rational arithmetic and
//              positional digit expansion as the computational core for
//              radix conversions between arbitrary bases.
// Author: msto63 with Claude Opus 4.0
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial documentation with decimal and expansion layers

// Package numeral provides exact arithmetic for radix conversions.
//
// Package: numeral
// Title: Exact Decimal Arithmetic and Digit Expansion
// Description: This package implements the numeric core that every
//              conversion passes through. Values are held as exact
//              rationals, so a numeral decoded from one base and encoded
//              into another never accumulates binary floating-point error.
//              On top of the Decimal type it provides positional digit
//              expansion with half-up rounding and mantissa/exponent
//              normalization for exponential notation.
// Author: msto63 with Claude Opus 4.0
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Overview
//
// The numeral package is the middle layer of the conversion pipeline.
// Decoding a digit string produces a Decimal, encoding consumes one, and
// all arithmetic in between is exact. The package deliberately knows
// nothing about digit symbols, separators, or format specifications; it
// works purely with numeric values and digit values (small integers).
//
// Key capabilities include:
//   - Arbitrary-precision decimal arithmetic backed by math/big rationals
//   - Exact construction from strings, integers, and finite float64 values
//   - Positional digit expansion in any base from 2 upward
//   - Half-up rounding with carry propagation through the integer part
//   - Mantissa/exponent normalization for exponential notation
//   - Reassembly of exact values from digit sequences during decoding
//
// Architecture
//
// The package is structured around two layers:
//
//   - Decimal: Exact rational value with arithmetic, comparison, and
//     string rendering operations
//   - Expansion: Positional digit representation produced by Digits and
//     consumed by FromDigits and Assemble
//
// The implementation uses the math/big package internally for precision
// while providing an API shaped for the conversion engine rather than for
// general-purpose mathematics.
//
// Usage Examples
//
// Basic decimal arithmetic:
//
//	// Create decimal values from strings for exact precision
//	value := numeral.MustNew("142456.25")
//	offset := numeral.FromInt64(100)
//
//	sum := value.Add(offset)
//	fmt.Println(sum.String()) // "142556.25"
//
// Expanding a value into dozenal digits:
//
//	value := numeral.MustNew("142456.25")
//	e := numeral.Digits(value, 12, 4)
//
//	// e.IntDigits:  [6 10 5 3 4]
//	// e.FracDigits: [3 0 0 0]
//	// e.Exact:      true
//
// Reassembling an exact value while decoding:
//
//	value := numeral.Assemble(false, []int{6, 10, 5, 3, 4}, []int{3}, 0, 12)
//	fmt.Println(value.String()) // "142456.25"
//
// Normalizing for exponential notation:
//
//	mantissa, exp := numeral.Normalize(numeral.MustNew("142456.25"), 12)
//	// mantissa is in [1, 12), exp is 4
//
// Rounding Behavior
//
// Digits rounds half up on the last fractional digit: a remainder of at
// least half a unit in the last place increments the expansion, and the
// carry propagates through the fractional digits into the integer digits.
// When the carry overflows the most significant digit, the integer part
// grows by one digit, so rounding near a power of the base stays correct:
//
//	// 0.9999 to two decimal places in base 10
//	e := numeral.Digits(numeral.MustNew("0.9999"), 10, 2)
//	// e.IntDigits:  [1]
//	// e.FracDigits: [0 0]
//
// Performance Considerations
//
// Decimal uses sync.Pool for big.Rat instances to reduce GC pressure in
// conversion-heavy workloads. Call Free on intermediate values in hot
// paths to return their backing storage to the pool; values obtained from
// arithmetic on freed decimals are invalid.
//
// Rational arithmetic is slower than float64 but exact. For interactive
// and batch conversion workloads the cost is negligible compared to the
// correctness gained across base boundaries.
//
// Thread Safety
//
// Decimal values are immutable through the public API and safe for
// concurrent reads. The object pool is thread-safe. Free must not be
// called while another goroutine still uses the value.
//
// See Also
//
//   - Package alphabet: Digit symbol tables that give digit values meaning
//   - Package format: Format specifications consuming expansions
//   - math/big: Underlying precision arithmetic
//
package numeral
