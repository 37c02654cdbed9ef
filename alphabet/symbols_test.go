// File: symbols_test.go
// Title: Unit Tests for Notation Symbols
// Description: Unit tests for the symbol set defaults and collision
//              validation against digit alphabets.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial test implementation

package alphabet

import (
	"testing"

	rxerror "github.com/msto63/radix/core/error"
	rxerrors "github.com/msto63/radix/core/errors"
)

func TestDefaultSymbols(t *testing.T) {
	sy := DefaultSymbols()

	if sy.Sep != '.' {
		t.Errorf("DefaultSymbols().Sep = %q, want '.'", sy.Sep)
	}
	if sy.Neg != '-' {
		t.Errorf("DefaultSymbols().Neg = %q, want '-'", sy.Neg)
	}
	if sy.Pos != '+' {
		t.Errorf("DefaultSymbols().Pos = %q, want '+'", sy.Pos)
	}
	if sy.Group != ',' {
		t.Errorf("DefaultSymbols().Group = %q, want ','", sy.Group)
	}
	if sy.Exp != 'e' {
		t.Errorf("DefaultSymbols().Exp = %q, want 'e'", sy.Exp)
	}
}

func TestSymbolsValidate(t *testing.T) {
	dozenal := MustNew("0123456789XE")
	hexLower := MustNew("0123456789abcdef")

	tests := []struct {
		name    string
		symbols Symbols
		against Alphabet
		wantErr bool
	}{
		{
			"defaults against dozenal",
			DefaultSymbols(),
			dozenal,
			false,
		},
		{
			"humphrey point",
			Symbols{Sep: ';', Neg: '-', Pos: '+', Group: ',', Exp: 'e'},
			dozenal,
			false,
		},
		{
			"separator is a digit",
			Symbols{Sep: 'X', Neg: '-', Pos: '+', Group: ',', Exp: 'e'},
			dozenal,
			true,
		},
		{
			"negative sign is a digit",
			Symbols{Sep: '.', Neg: '5', Pos: '+', Group: ',', Exp: 'e'},
			dozenal,
			true,
		},
		{
			"grouping is a digit",
			Symbols{Sep: '.', Neg: '-', Pos: '+', Group: 'E', Exp: 'e'},
			dozenal,
			true,
		},
		{
			"exponent marker may be a digit",
			Symbols{Sep: '.', Neg: '-', Pos: '+', Group: ',', Exp: 'e'},
			hexLower,
			false,
		},
		{
			"separator equals grouping",
			Symbols{Sep: ',', Neg: '-', Pos: '+', Group: ',', Exp: 'e'},
			dozenal,
			true,
		},
		{
			"signs collide",
			Symbols{Sep: '.', Neg: '~', Pos: '~', Group: ',', Exp: 'e'},
			dozenal,
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.symbols.Validate(tt.against)

			if tt.wantErr {
				if err == nil {
					t.Errorf("Validate() expected error, got nil")
					return
				}
				if !rxerror.HasCode(err, rxerror.CodeAlphabetSymbolCollision) {
					t.Errorf("Validate() error code = %v, want %v",
						rxerror.GetCode(err), rxerror.CodeAlphabetSymbolCollision)
				}
				if !rxerrors.IsInvalidAlphabet(err) {
					t.Errorf("Validate() error should be an invalid-alphabet error, got %v", err)
				}
				return
			}

			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}
