// File: doc.go
// Title: Package Documentation for alphabet
// Description: Package alphabet defines digit alphabets and notation
//              symbol sets, the building blocks every radix is constructed
//              from.
// Author: msto63 with Claude Opus 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial documentation

// Package alphabet defines digit alphabets and notation symbols.
//
// Package: alphabet
// Title: Digit Alphabets and Notation Symbols
// Description: This package provides the two value types a radix is built
//              from: the ordered digit alphabet whose length is the base
//              and whose positions are digit values, and the symbol set
//              holding the separator, sign, grouping, and exponent
//              characters of a notation. Both are immutable values,
//              validated once at construction.
// Author: msto63 with Claude Opus 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Overview
//
// An Alphabet maps between digit runes and digit values in both
// directions: DigitValue for scanning encoded strings, DigitSymbol for
// rendering. Lookup is rune-based throughout, so alphabets built from
// multi-byte digits (the Pitman dozenal digits, mathematical script
// letters) behave exactly like ASCII ones.
//
// A Symbols value carries the five non-digit characters of a notation.
// Validation rejects a separator, sign, or grouping character that
// collides with a digit or with another symbol, because such a notation
// could not be decoded unambiguously. The exponent marker is exempt from
// collision checks: hexadecimal and the larger alphabets contain the
// letter e, and the scanner resolves the ambiguity by requiring an
// explicit exponent sign after the marker.
//
// Usage Examples
//
// Building a dozenal alphabet:
//
//	a, err := alphabet.New("0123456789XE")
//	if err != nil {
//	    // fewer than two digits or a duplicate digit
//	}
//
//	a.Base()              // 12
//	a.DigitSymbol(10)     // 'X'
//	v, ok := a.DigitValue('E') // 11, true
//
// Customizing symbols for dozenal notation:
//
//	sy := alphabet.DefaultSymbols()
//	sy.Sep = ';' // Humphrey point
//
//	if err := sy.Validate(a); err != nil {
//	    // a symbol collides with a digit or another symbol
//	}
//
// Thread Safety
//
// Alphabet and Symbols are immutable values. All methods are safe for
// concurrent use.
//
// See Also
//
//   - Package numeral: Digit values produced and consumed here get their
//     numeric meaning there
//   - Package format: Rendering and scanning against an alphabet
//
package alphabet
