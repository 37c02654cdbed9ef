// File: doc.go
// Title: Package Documentation for radix
// Description: Comprehensive documentation of the radix conversion
//              engine, its preset numeral systems, and the fmt
//              integration.
// Author: msto63 with Claude Opus 4.0
// Version: v0.1.0
// Created: 2026-08-21
// Modified: 2026-08-21
//
// Change History:
// - 2026-08-21 v0.1.0: Initial package documentation

// Package radix converts numbers between decimal and arbitrary
// positional numeral systems, in both directions and with full
// formatting control.
//
// # Overview
//
// A Radix is built from a digit string whose length defines the base
// and whose positions define the digit values. Everything else,
// fractional separator, signs, grouping symbol, exponent marker, and a
// default format spec, is adjustable through Options. Conversions are
// exact: values travel as rational numbers, so round-tripping a numeral
// through Decode and Encode reproduces it digit for digit, and
// fractions that terminate in the target base (one third in dozenal,
// say) come out exact instead of inheriting binary float noise.
//
// # Architecture
//
// The engine is layered, each layer usable on its own:
//
//   - alphabet: digit tables and presentation symbols with
//     construction-time validation
//   - numeral: exact decimal arithmetic over big.Rat and the positional
//     digit expansion with half-up rounding
//   - format: the spec mini-language, the renderer, and the numeral
//     scanner
//   - radix (this package): the facade tying the layers together, the
//     preset systems, and the fmt integration
//
// # Usage Examples
//
// Encoding and decoding with a preset system:
//
//	doz := radix.Dozenal()
//	s, _ := doz.Encode(142456.25, ",.4f")
//	// s == "6X,534;3000"
//
//	v, _ := doz.Decode("6X,534;3000")
//	// v is exactly 142456.25
//
// A custom system with its own symbols:
//
//	r, err := radix.NewWithOptions("01234567", radix.Options{
//	    Group:  '_',
//	    Format: ",d",
//	})
//
// Wrapping values for fmt:
//
//	w, _ := doz.Wrap(299792458)
//	fmt.Printf("%d is %.2e\n", w, w)
//
// Numeric base selection, digits sliced from 0-9A-Za-z:
//
//	b36, err := radix.ByBase(36)
//
// # Preset Systems
//
// Binary, Octal, Decimal, Hex, HexLower, Base57, Base62, and five
// dozenal digit conventions: Andrews X/E, Pitman turned digits with an
// ASCII fallback, Dwiggins script letters, and Kramer's phone keys. All
// dozenal presets write fractions after the Humphrey point ';'. Preset
// resolves the same systems by their CLI names.
//
// # Thread Safety
//
// A Radix is immutable after construction and safe for concurrent use.
// Wrapped values are read-only views and share that property.
//
// # See Also
//
// - Package numeral for the exact arithmetic underneath
// - Package format for the spec mini-language details
// - cmd/radix for the command line front end
package radix
