// File: symbols.go
// Title: Notation Symbol Set
// Description: Implements the non-digit symbols of a positional notation:
//              fraction separator, sign marks, grouping separator, and
//              exponent marker, with collision validation against an
//              alphabet.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation with collision validation

package alphabet

import (
	rxerror "github.com/msto63/radix/core/error"
	rxerrors "github.com/msto63/radix/core/errors"
)

// Symbols holds the non-digit characters of a notation. Sep separates the
// integer and fractional parts, Neg and Pos mark the sign, Group separates
// integer digit groups, and Exp marks the exponent in exponential notation.
type Symbols struct {
	Sep   rune
	Neg   rune
	Pos   rune
	Group rune
	Exp   rune
}

// DefaultSymbols returns the conventional decimal notation symbols
func DefaultSymbols() Symbols {
	return Symbols{
		Sep:   '.',
		Neg:   '-',
		Pos:   '+',
		Group: ',',
		Exp:   'e',
	}
}

// Validate checks the symbol set against an alphabet. Sep, Neg, Pos, and
// Group must not collide with a digit or with each other. Exp is exempt:
// several common alphabets contain the marker letter (hex, base57, base62
// all have e or E), and scanning stays unambiguous because a marker is
// only a marker when an explicit exponent sign follows it.
func (s Symbols) Validate(a Alphabet) error {
	named := []struct {
		name string
		r    rune
	}{
		{"separator", s.Sep},
		{"negative sign", s.Neg},
		{"positive sign", s.Pos},
		{"grouping", s.Group},
	}

	for _, sym := range named {
		if a.Contains(sym.r) {
			return rxerrors.AlphabetSymbolCollision(sym.name, sym.r)
		}
	}

	seen := make(map[rune]string, len(named))
	for _, sym := range named {
		if other, dup := seen[sym.r]; dup {
			return rxerrors.NewErrorBuilder(rxerrors.ModuleAlphabet).
				Operation("validate_collision").
				Messagef("%s and %s symbols are both %q", other, sym.name, sym.r).
				Code(rxerror.CodeAlphabetSymbolCollision).
				Detail("symbol", string(sym.r)).
				Build()
		}
		seen[sym.r] = sym.name
	}

	return nil
}
