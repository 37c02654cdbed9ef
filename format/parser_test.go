// File: parser_test.go
// Title: Format Specification Parser Tests
// Description: Tests for the format mini-language parser, the spec
//              resolution rules, and canonical reassembly.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial tests

package format

import (
	"testing"

	rxerror "github.com/msto63/radix/core/error"
	rxerrors "github.com/msto63/radix/core/errors"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Spec
	}{
		{"empty is default", "", Spec{}},
		{"fixed type", "f", Spec{Type: TypeFixed}},
		{"integer type", "d", Spec{Type: TypeInt}},
		{"uppercase exponential", "E", Spec{Type: TypeExpUp}},
		{"precision only", ".4", Spec{Precision: 4, HasPrec: true}},
		{"zero precision", ".0f", Spec{Precision: 0, HasPrec: true, Type: TypeFixed}},
		{"grouping and precision", ",.4f", Spec{Grouping: true, Precision: 4, HasPrec: true, Type: TypeFixed}},
		{"underscore grouping", "_d", Spec{Grouping: true, Type: TypeInt}},
		{"width only", "10", Spec{Width: 10}},
		{"sign zero pad width precision", "+08.2f", Spec{Sign: SignAlways, ZeroPad: true, Width: 8, Precision: 2, HasPrec: true, Type: TypeFixed}},
		{"zero pad integer", "06d", Spec{ZeroPad: true, Width: 6, Type: TypeInt}},
		{"align only", "<5", Spec{Align: AlignLeft, Width: 5}},
		{"fill and align", "*>6d", Spec{Fill: '*', Align: AlignRight, Width: 6, Type: TypeInt}},
		{"zero as fill", "0>8", Spec{Fill: '0', Align: AlignRight, Width: 8}},
		{"align rune as fill", "^^10", Spec{Fill: '^', Align: AlignCenter, Width: 10}},
		{"pad alignment with fill", "*=6", Spec{Fill: '*', Align: AlignPad, Width: 6}},
		{"multi-byte fill", "\U0001d4b3>4", Spec{Fill: '\U0001d4b3', Align: AlignRight, Width: 4}},
		{"space sign", " .2f", Spec{Sign: SignSpace, Precision: 2, HasPrec: true, Type: TypeFixed}},
		{"alternate form", "#.0f", Spec{Alternate: true, Precision: 0, HasPrec: true, Type: TypeFixed}},
		{"everything", "*<+#012,.3e", Spec{Fill: '*', Align: AlignLeft, Sign: SignAlways, Alternate: true, ZeroPad: true, Width: 12, Grouping: true, Precision: 3, HasPrec: true, Type: TypeExp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSpec(tt.input)
			if err != nil {
				t.Fatalf("ParseSpec(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSpec(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSpecErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  rxerror.Code
	}{
		{"precision without digits", ".f", rxerror.CodeFormatSpecBadPrecision},
		{"double dot", "..2f", rxerror.CodeFormatSpecBadPrecision},
		{"unknown type letter", "10x", rxerror.CodeFormatSpecUnknownType},
		{"sign out of order", "+-5", rxerror.CodeFormatSpecUnknownType},
		{"trailing after type", "df", rxerror.CodeFormatSpecInvalid},
		{"width after precision", ".2f8", rxerror.CodeFormatSpecInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSpec(tt.input)
			if err == nil {
				t.Fatalf("ParseSpec(%q) expected error, got none", tt.input)
			}
			if !rxerrors.IsFormatSpecError(err) {
				t.Errorf("ParseSpec(%q) error is not a format spec error: %v", tt.input, err)
			}
			if !rxerror.HasCode(err, tt.code) {
				t.Errorf("ParseSpec(%q) error code = %v, want %v", tt.input, rxerror.GetCode(err), tt.code)
			}
		})
	}
}

func TestMustParseSpec(t *testing.T) {
	sp := MustParseSpec(",.4f")
	if !sp.Grouping || sp.Precision != 4 || sp.Type != TypeFixed {
		t.Errorf("MustParseSpec(%q) = %+v", ",.4f", sp)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseSpec with invalid spec should panic")
		}
	}()
	MustParseSpec(".f")
}

func TestSpecResolution(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var sp Spec
		if got := sp.AlignMode(); got != AlignRight {
			t.Errorf("AlignMode() = %q, want %q", got, AlignRight)
		}
		if got := sp.FillRune('0'); got != ' ' {
			t.Errorf("FillRune('0') = %q, want space", got)
		}
		if got := sp.SignMode(); got != SignNegOnly {
			t.Errorf("SignMode() = %q, want %q", got, SignNegOnly)
		}
		if got := sp.Prec(6); got != 6 {
			t.Errorf("Prec(6) = %d, want 6", got)
		}
	})

	t.Run("zero pad implies pad alignment and zero fill", func(t *testing.T) {
		sp := Spec{ZeroPad: true}
		if got := sp.AlignMode(); got != AlignPad {
			t.Errorf("AlignMode() = %q, want %q", got, AlignPad)
		}
		if got := sp.FillRune('0'); got != '0' {
			t.Errorf("FillRune('0') = %q, want '0'", got)
		}
	})

	t.Run("explicit fields win over zero pad", func(t *testing.T) {
		sp := Spec{ZeroPad: true, Fill: '*', Align: AlignLeft}
		if got := sp.AlignMode(); got != AlignLeft {
			t.Errorf("AlignMode() = %q, want %q", got, AlignLeft)
		}
		if got := sp.FillRune('0'); got != '*' {
			t.Errorf("FillRune('0') = %q, want '*'", got)
		}
	})

	t.Run("explicit precision wins", func(t *testing.T) {
		sp := Spec{Precision: 2, HasPrec: true}
		if got := sp.Prec(6); got != 2 {
			t.Errorf("Prec(6) = %d, want 2", got)
		}
	})
}

func TestSpecString(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"type only", "f"},
		{"full spec", "*<+#012,.3e"},
		{"zero pad integer", "06d"},
		{"grouping", ",d"},
		{"precision", ".17"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := MustParseSpec(tt.input)
			if got := sp.String(); got != tt.input {
				t.Errorf("String() = %q, want %q", got, tt.input)
			}
			again, err := ParseSpec(sp.String())
			if err != nil {
				t.Fatalf("reparse of %q failed: %v", sp.String(), err)
			}
			if again != sp {
				t.Errorf("reparse of %q = %+v, want %+v", sp.String(), again, sp)
			}
		})
	}
}

func BenchmarkParseSpec(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ParseSpec("+#012,.4f")
	}
}
