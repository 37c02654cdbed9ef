// File: scan_test.go
// Title: Numeral Scanner Tests
// Description: Tests for scanning numeral strings into positional parts,
//              covering signs, separators, grouping, exponents, and the
//              decode error kinds.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial tests

package format

import (
	"reflect"
	"testing"

	"github.com/msto63/radix/alphabet"
	rxerror "github.com/msto63/radix/core/error"
	rxerrors "github.com/msto63/radix/core/errors"
)

func digitsEqual(got, want []int) bool {
	if len(got) == 0 && len(want) == 0 {
		return true
	}
	return reflect.DeepEqual(got, want)
}

func TestScanNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		a     alphabet.Alphabet
		sy    alphabet.Symbols
		want  Parts
	}{
		{
			"dozenal grouped fraction",
			"6X,534;3000", dozAlpha, dozSymbols,
			Parts{IntDigits: []int{6, 10, 5, 3, 4}, FracDigits: []int{3, 0, 0, 0}},
		},
		{
			"negative with top digits",
			"-2E;6", dozAlpha, dozSymbols,
			Parts{Negative: true, IntDigits: []int{2, 11}, FracDigits: []int{6}},
		},
		{
			"leading plus",
			"+45", decAlpha, alphabet.DefaultSymbols(),
			Parts{IntDigits: []int{4, 5}},
		},
		{
			"hex digits",
			"FF", hexAlpha, alphabet.DefaultSymbols(),
			Parts{IntDigits: []int{15, 15}},
		},
		{
			"whitespace trimmed",
			"  42  ", decAlpha, alphabet.DefaultSymbols(),
			Parts{IntDigits: []int{4, 2}},
		},
		{
			"grouping stripped",
			"1,234,567", decAlpha, alphabet.DefaultSymbols(),
			Parts{IntDigits: []int{1, 2, 3, 4, 5, 6, 7}},
		},
		{
			"leading group symbol tolerated",
			",123", decAlpha, alphabet.DefaultSymbols(),
			Parts{IntDigits: []int{1, 2, 3}},
		},
		{
			"bare fraction",
			";5", dozAlpha, dozSymbols,
			Parts{IntDigits: nil, FracDigits: []int{5}},
		},
		{
			"positive exponent",
			"1e+05", decAlpha, alphabet.DefaultSymbols(),
			Parts{IntDigits: []int{1}, Exp: 5, HasExp: true},
		},
		{
			"negative exponent with fraction",
			"1;6e-02", dozAlpha, dozSymbols,
			Parts{IntDigits: []int{1}, FracDigits: []int{6}, Exp: -2, HasExp: true},
		},
		{
			"uppercase marker in hex",
			"1.8E+05", hexAlpha, alphabet.DefaultSymbols(),
			Parts{IntDigits: []int{1}, FracDigits: []int{8}, Exp: 5, HasExp: true},
		},
		{
			"marker letter without sign is a digit",
			"1E2", dozAlpha, dozSymbols,
			Parts{IntDigits: []int{1, 11, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScanNumber(tt.input, tt.a, tt.sy)
			if err != nil {
				t.Fatalf("ScanNumber(%q) returned error: %v", tt.input, err)
			}
			if got.Negative != tt.want.Negative {
				t.Errorf("ScanNumber(%q).Negative = %v, want %v", tt.input, got.Negative, tt.want.Negative)
			}
			if !digitsEqual(got.IntDigits, tt.want.IntDigits) {
				t.Errorf("ScanNumber(%q).IntDigits = %v, want %v", tt.input, got.IntDigits, tt.want.IntDigits)
			}
			if !digitsEqual(got.FracDigits, tt.want.FracDigits) {
				t.Errorf("ScanNumber(%q).FracDigits = %v, want %v", tt.input, got.FracDigits, tt.want.FracDigits)
			}
			if got.Exp != tt.want.Exp || got.HasExp != tt.want.HasExp {
				t.Errorf("ScanNumber(%q) exponent = (%d, %v), want (%d, %v)",
					tt.input, got.Exp, got.HasExp, tt.want.Exp, tt.want.HasExp)
			}
		})
	}
}

func TestScanNumberHasFraction(t *testing.T) {
	p, err := ScanNumber("2;", dozAlpha, dozSymbols)
	if err != nil {
		t.Fatalf("ScanNumber(%q) returned error: %v", "2;", err)
	}
	if !p.HasFraction() {
		t.Errorf("ScanNumber(%q).HasFraction() = false, want true", "2;")
	}

	p, err = ScanNumber("2", dozAlpha, dozSymbols)
	if err != nil {
		t.Fatalf("ScanNumber(%q) returned error: %v", "2", err)
	}
	if p.HasFraction() {
		t.Errorf("ScanNumber(%q).HasFraction() = true, want false", "2")
	}
}

func TestScanNumberErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		a     alphabet.Alphabet
		sy    alphabet.Symbols
		code  rxerror.Code
	}{
		{"empty input", "", decAlpha, alphabet.DefaultSymbols(), rxerror.CodeDecodeEmpty},
		{"whitespace only", "   ", decAlpha, alphabet.DefaultSymbols(), rxerror.CodeDecodeEmpty},
		{"sign only", "-", decAlpha, alphabet.DefaultSymbols(), rxerror.CodeDecodeEmpty},
		{"separator only", ";", dozAlpha, dozSymbols, rxerror.CodeDecodeEmpty},
		{"exponent without mantissa", "e+5", decAlpha, alphabet.DefaultSymbols(), rxerror.CodeDecodeEmpty},
		{"unknown digit", "12z3", decAlpha, alphabet.DefaultSymbols(), rxerror.CodeDecodeInvalidDigit},
		{"digit from larger base", "19X", decAlpha, alphabet.DefaultSymbols(), rxerror.CodeDecodeInvalidDigit},
		{"double separator", "1..2", decAlpha, alphabet.DefaultSymbols(), rxerror.CodeDecodeMisplacedSeparator},
		{"second separator after fraction", "1;2;3", dozAlpha, dozSymbols, rxerror.CodeDecodeMisplacedSeparator},
		{"group symbol in fraction", "1;2,3", dozAlpha, dozSymbols, rxerror.CodeDecodeMisplacedSeparator},
		{"sign inside number", "1-2", decAlpha, alphabet.DefaultSymbols(), rxerror.CodeDecodeMisplacedSign},
		{"double leading sign", "--5", decAlpha, alphabet.DefaultSymbols(), rxerror.CodeDecodeMisplacedSign},
		{"exponent without digits", "12e+", decAlpha, alphabet.DefaultSymbols(), rxerror.CodeDecodeMalformedExponent},
		{"exponent too large", "1e+99999999", decAlpha, alphabet.DefaultSymbols(), rxerror.CodeDecodeMalformedExponent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ScanNumber(tt.input, tt.a, tt.sy)
			if err == nil {
				t.Fatalf("ScanNumber(%q) expected error, got none", tt.input)
			}
			if !rxerrors.IsDecodeError(err) {
				t.Errorf("ScanNumber(%q) error is not a decode error: %v", tt.input, err)
			}
			if !rxerror.HasCode(err, tt.code) {
				t.Errorf("ScanNumber(%q) error code = %v, want %v", tt.input, rxerror.GetCode(err), tt.code)
			}
		})
	}
}

func BenchmarkScanNumber(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ScanNumber("6X,534;3000", dozAlpha, dozSymbols)
	}
}
