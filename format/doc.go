// File: doc.go
// Title: Package Documentation for format
// Description: Comprehensive documentation of the format specification
//              mini-language, the renderer, and the numeral scanner.
// Author: msto63 with Claude Opus 4.0
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial package documentation

// Package format implements the presentation layer of the radix engine:
// a printf-style specification mini-language, a renderer that turns exact
// decimal values into numeral strings of an arbitrary alphabet, and a
// scanner that decomposes numeral strings back into positional parts.
//
// # Overview
//
// Formatting is controlled by a compact specification string modeled on
// the familiar format mini-language:
//
//	[[fill]align][sign][#][0][minimumwidth][,][.precision][type]
//
// Alignment is '<' (left), '>' (right), '^' (centered), or '=' (padding
// between sign and digits). The sign modes are '+' (always signed), '-'
// (negative only, the default), and ' ' (space for non-negative values).
// The '#' flag forces the fractional separator even when no fraction
// digits follow, ',' enables grouping of the integer digits in blocks of
// three, and a leading '0' enables sign-aware zero padding. The
// presentation types are 'f' (fixed-point), 'e' and 'E' (exponential
// with lower- or uppercase marker), 'd' (integer), and the default
// general mode when no type is given.
//
// # Core Components
//
// Spec holds a parsed specification. ParseSpec validates and parses the
// mini-language; the zero Spec is the default presentation. Resolution
// of defaults happens at render time through AlignMode, FillRune,
// SignMode, and Prec, so an unset field never loses the information
// that it was unset.
//
// Render produces the numeral string for an exact decimal value in a
// target alphabet. All digit arithmetic is exact: fixed-point output
// rounds half up at the requested precision, exponential output
// normalizes the value to a single-digit mantissa, and general mode
// fills the significance budget left by the integer part and trims
// trailing zeros. Fractional inputs keep at least one fraction digit in
// general mode and switch to exponential notation at extreme decimal
// magnitudes, mirroring the conventional shortest-representation
// behavior.
//
// ScanNumber is the reverse direction: it splits a numeral string into
// sign, integer digits, fraction digits, and an optional exponent. The
// exponent marker is recognized only when a sign follows it, so
// alphabets that use the marker letter as a digit, hexadecimal among
// them, stay unambiguous.
//
// # Usage Examples
//
// Parsing and rendering with a specification:
//
//	sp, err := format.ParseSpec(",.4f")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v, _ := numeral.New("142456.25")
//	s, _ := format.Render(v, false, dozenal, symbols, sp)
//	// s == "6X,534;3000" with the dozenal alphabet and ';' separator
//
// Scanning a numeral string:
//
//	parts, err := format.ScanNumber("-2E;6", dozenal, symbols)
//	// parts.Negative == true, parts.IntDigits == []int{2, 11},
//	// parts.FracDigits == []int{6}
//
// # Thread Safety
//
// Spec, Parts, and the package functions are stateless value operations
// and safe for concurrent use. Alphabets are immutable after
// construction, so sharing them across goroutines is safe as well.
//
// # See Also
//
// - Package alphabet for digit tables and presentation symbols
// - Package numeral for the exact decimal arithmetic underneath
// - Package radix for the user-facing conversion facade
package format
