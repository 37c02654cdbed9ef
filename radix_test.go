// File: radix_test.go
// Title: Radix Facade Tests
// Description: Tests for construction, encoding across input types,
//              decoding, typed conveniences, and round-trip exactness.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-21
// Modified: 2026-08-21
//
// Change History:
// - 2026-08-21 v0.1.0: Initial tests

package radix

import (
	"math"
	"math/big"
	"testing"

	rxerror "github.com/msto63/radix/core/error"
	rxerrors "github.com/msto63/radix/core/errors"
	"github.com/msto63/radix/numeral"
)

func TestNew(t *testing.T) {
	r, err := New("0123456789XE")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := r.Base(); got != 12 {
		t.Errorf("Base() = %d, want 12", got)
	}
	if got := r.Symbols().Sep; got != '.' {
		t.Errorf("default separator = %q, want '.'", got)
	}
}

func TestNewWithOptions(t *testing.T) {
	r, err := NewWithOptions("0123456789XE", Options{Sep: ';', Group: '_', Format: ".2f"})
	if err != nil {
		t.Fatalf("NewWithOptions failed: %v", err)
	}
	if got := r.Symbols().Sep; got != ';' {
		t.Errorf("separator = %q, want ';'", got)
	}
	if got := r.Symbols().Group; got != '_' {
		t.Errorf("grouping symbol = %q, want '_'", got)
	}
	if got := r.Symbols().Neg; got != '-' {
		t.Errorf("negative sign = %q, want '-'", got)
	}

	s, err := r.Encode(2.5, "")
	if err != nil {
		t.Fatalf("Encode with default format failed: %v", err)
	}
	if s != "2;60" {
		t.Errorf("Encode(2.5, \"\") = %q, want %q", s, "2;60")
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		opts   Options
		code   rxerror.Code
	}{
		{"single digit", "0", Options{}, rxerror.CodeAlphabetTooShort},
		{"duplicate digit", "0120", Options{}, rxerror.CodeAlphabetDuplicateDigit},
		{"separator collides with digit", "0123456789.", Options{}, rxerror.CodeAlphabetSymbolCollision},
		{"custom sign collides", "0123456789", Options{Neg: '5'}, rxerror.CodeAlphabetSymbolCollision},
		{"bad default format", "0123456789", Options{Format: ".f"}, rxerror.CodeFormatSpecBadPrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWithOptions(tt.digits, tt.opts)
			if err == nil {
				t.Fatalf("NewWithOptions(%q) expected error, got none", tt.digits)
			}
			if !rxerror.HasCode(err, tt.code) {
				t.Errorf("NewWithOptions(%q) error code = %v, want %v", tt.digits, rxerror.GetCode(err), tt.code)
			}
		})
	}
}

func TestMustNew(t *testing.T) {
	r := MustNew("01")
	if r.Base() != 2 {
		t.Errorf("Base() = %d, want 2", r.Base())
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustNew with invalid digits should panic")
		}
	}()
	MustNew("0")
}

func TestRadixString(t *testing.T) {
	r := MustNew("01")
	want := `Radix(base 2, digits "01")`
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestEncode(t *testing.T) {
	doz := Dozenal()
	hex := Hex()

	tests := []struct {
		name  string
		r     *Radix
		value any
		spec  string
		want  string
	}{
		{"int", hex, 255, "d", "FF"},
		{"int8", doz, int8(12), "d", "10"},
		{"int64 negative", doz, int64(-144), "d", "-100"},
		{"uint", doz, uint(24), "d", "20"},
		{"uint64 max", hex, uint64(math.MaxUint64), "d", "FFFFFFFFFFFFFFFF"},
		{"big int", doz, big.NewInt(1728), "d", "1000"},
		{"float64 general", doz, 2.5, "", "2;6"},
		{"float64 integral keeps fraction", doz, 2.0, "", "2;0"},
		{"float32", doz, float32(0.5), "", "0;6"},
		{"decimal value", doz, numeral.MustNew("1/3"), "", "0;4"},
		{"integer string", doz, "42", "", "36"},
		{"fractional string", doz, "5.0", "", "5;0"},
		{"signed integer string", doz, "-42", "", "-36"},
		{"string with spaces", doz, "  42  ", "", "36"},
		{"spec with grouping", doz, "142456.25", ",.4f", "6X,534;3000"},
		{"int takes integer path", doz, 5, "", "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.r.Encode(tt.value, tt.spec)
			if err != nil {
				t.Fatalf("Encode(%v, %q) failed: %v", tt.value, tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Encode(%v, %q) = %q, want %q", tt.value, tt.spec, got, tt.want)
			}
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	doz := Dozenal()

	tests := []struct {
		name  string
		value any
		spec  string
		code  rxerror.Code
	}{
		{"nan", math.NaN(), "", rxerror.CodeValueNotFinite},
		{"positive infinity", math.Inf(1), "", rxerror.CodeValueNotFinite},
		{"unparseable string", "not a number", "", rxerror.CodeValueUnsupported},
		{"unsupported type", struct{}{}, "", rxerror.CodeValueUnsupported},
		{"bad spec", 5, "10x", rxerror.CodeFormatSpecUnknownType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := doz.Encode(tt.value, tt.spec)
			if err == nil {
				t.Fatalf("Encode(%v, %q) expected error, got none", tt.value, tt.spec)
			}
			if !rxerror.HasCode(err, tt.code) {
				t.Errorf("Encode(%v, %q) error code = %v, want %v", tt.value, tt.spec, rxerror.GetCode(err), tt.code)
			}
		})
	}
}

func TestEncodeConveniences(t *testing.T) {
	doz := Dozenal()

	if s, err := doz.EncodeInt64(144, "d"); err != nil || s != "100" {
		t.Errorf("EncodeInt64(144) = %q, %v, want %q", s, err, "100")
	}
	if s, err := doz.EncodeFloat64(0.5, ""); err != nil || s != "0;6" {
		t.Errorf("EncodeFloat64(0.5) = %q, %v, want %q", s, err, "0;6")
	}
	if s, err := doz.EncodeDecimal(numeral.MustNew("142456.25"), ".4f"); err != nil || s != "6X534;3000" {
		t.Errorf("EncodeDecimal = %q, %v, want %q", s, err, "6X534;3000")
	}
}

func TestDecode(t *testing.T) {
	doz := Dozenal()

	tests := []struct {
		name  string
		input string
		want  string // decimal value as numeral.New input
	}{
		{"grouped with fraction", "6X,534;3000", "142456.25"},
		{"negative", "-2;6", "-2.5"},
		{"plain integer", "100", "144"},
		{"top digits", "EE", "143"},
		{"exponent scales by base", "1;6e+02", "216"},
		{"negative exponent", "6e-01", "0.5"},
		{"bare fraction", ";6", "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := doz.Decode(tt.input)
			if err != nil {
				t.Fatalf("Decode(%q) failed: %v", tt.input, err)
			}
			want := numeral.MustNew(tt.want)
			if !got.Equal(want) {
				t.Errorf("Decode(%q) = %s, want %s", tt.input, got.String(), want.String())
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	doz := Dozenal()

	_, err := doz.Decode("12F")
	if err == nil {
		t.Fatal("Decode with foreign digit expected error, got none")
	}
	if !rxerrors.IsDecodeError(err) {
		t.Errorf("Decode error is not a decode error: %v", err)
	}
	if !rxerror.HasCode(err, rxerror.CodeDecodeInvalidDigit) {
		t.Errorf("Decode error code = %v, want %v", rxerror.GetCode(err), rxerror.CodeDecodeInvalidDigit)
	}
}

func TestDecodeFloat64(t *testing.T) {
	doz := Dozenal()

	f, err := doz.DecodeFloat64("0;6")
	if err != nil {
		t.Fatalf("DecodeFloat64 failed: %v", err)
	}
	if f != 0.5 {
		t.Errorf("DecodeFloat64(%q) = %v, want 0.5", "0;6", f)
	}
}

func TestDecodeInt64(t *testing.T) {
	doz := Dozenal()

	n, err := doz.DecodeInt64("100")
	if err != nil {
		t.Fatalf("DecodeInt64 failed: %v", err)
	}
	if n != 144 {
		t.Errorf("DecodeInt64(%q) = %d, want 144", "100", n)
	}

	if _, err := doz.DecodeInt64("0;6"); err == nil {
		t.Error("DecodeInt64 with fractional value expected error, got none")
	}
	if _, err := doz.DecodeInt64("10000000000000000000"); err == nil {
		t.Error("DecodeInt64 beyond int64 range expected error, got none")
	}
}

func TestRoundTrip(t *testing.T) {
	values := []string{
		"0", "1", "-1", "42", "-144", "0.5", "-0.5", "142456.25",
		"1/3", "2/3", "1/7", "355/113", "1000000", "0.015625",
	}
	systems := []*Radix{Binary(), Octal(), Dozenal(), Hex(), Base62()}

	for _, r := range systems {
		for _, val := range values {
			v := numeral.MustNew(val)
			s, err := r.EncodeDecimal(v, ".40f")
			if err != nil {
				t.Fatalf("%s: Encode(%s) failed: %v", r, val, err)
			}
			got, err := r.Decode(s)
			if err != nil {
				t.Fatalf("%s: Decode(%q) failed: %v", r, s, err)
			}
			e := numeral.Digits(v, r.Base(), 40)
			if e.Exact {
				if !got.Equal(v) {
					t.Errorf("%s: round trip of %s = %s via %q", r, val, got.String(), s)
				}
			} else {
				// Non-terminating expansions round to 40 places; the
				// re-decoded value must stay within half a unit there
				ulp := numeral.One().MustDivide(numeral.FromInt64(int64(r.Base())).Pow(40))
				diff := got.Subtract(v).Abs()
				if diff.GreaterThan(ulp) {
					t.Errorf("%s: %s decoded as %s, off by more than one unit in the last place", r, val, got.String())
				}
			}
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	doz := Dozenal()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = doz.Encode(142456.25, ",.4f")
	}
}

func BenchmarkDecode(b *testing.B) {
	doz := Dozenal()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = doz.Decode("6X,534;3000")
	}
}
