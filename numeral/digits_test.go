// File: digits_test.go
// Title: Unit Tests for Positional Digit Expansion
// Description: Unit tests for digit expansion, rounding with carry
//              propagation, reassembly, and mantissa/exponent
//              normalization across several bases.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial test implementation for digit expansion

package numeral

import (
	"reflect"
	"testing"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		base      int
		prec      int
		wantNeg   bool
		wantInt   []int
		wantFrac  []int
		wantExact bool
	}{
		{"dozenal with exact quarter", "142456.25", 12, 4, false, []int{6, 10, 5, 3, 4}, []int{3, 0, 0, 0}, true},
		{"integer zero", "0", 10, 0, false, []int{0}, []int{}, true},
		{"zero with precision", "0", 16, 2, false, []int{0}, []int{0, 0}, true},
		{"binary fraction", "5.625", 2, 4, false, []int{1, 0, 1}, []int{1, 0, 1, 0}, true},
		{"hex byte", "255", 16, 0, false, []int{15, 15}, []int{}, true},
		{"negative value", "-10.5", 10, 1, true, []int{1, 0}, []int{5}, true},
		{"rounds up past half", "1.05", 10, 1, false, []int{1}, []int{1}, false},
		{"tie rounds up", "2.5", 10, 0, false, []int{3}, []int{}, false},
		{"below half truncates", "1.04", 10, 1, false, []int{1}, []int{0}, false},
		{"carry grows integer part", "0.9999", 10, 2, false, []int{1}, []int{0, 0}, false},
		{"carry ripples through nines", "19.96", 10, 1, false, []int{2, 0}, []int{0}, false},
		{"top digits of base 62", "3843", 62, 0, false, []int{61, 61}, []int{}, true},
		{"repeating third", "1/3", 12, 2, false, []int{0}, []int{4, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := MustNew(tt.input)
			e := Digits(d, tt.base, tt.prec)

			if e.Negative != tt.wantNeg {
				t.Errorf("Digits(%s, %d, %d).Negative = %v, want %v",
					tt.input, tt.base, tt.prec, e.Negative, tt.wantNeg)
			}
			if !reflect.DeepEqual(e.IntDigits, tt.wantInt) {
				t.Errorf("Digits(%s, %d, %d).IntDigits = %v, want %v",
					tt.input, tt.base, tt.prec, e.IntDigits, tt.wantInt)
			}
			if len(e.FracDigits) != len(tt.wantFrac) || (len(tt.wantFrac) > 0 && !reflect.DeepEqual(e.FracDigits, tt.wantFrac)) {
				t.Errorf("Digits(%s, %d, %d).FracDigits = %v, want %v",
					tt.input, tt.base, tt.prec, e.FracDigits, tt.wantFrac)
			}
			if e.Exact != tt.wantExact {
				t.Errorf("Digits(%s, %d, %d).Exact = %v, want %v",
					tt.input, tt.base, tt.prec, e.Exact, tt.wantExact)
			}
		})
	}
}

func TestDigitsNegativePrecision(t *testing.T) {
	// Negative precision clamps to zero fractional digits
	e := Digits(MustNew("7.9"), 10, -3)

	if len(e.FracDigits) != 0 {
		t.Errorf("negative precision produced %d fractional digits, want 0", len(e.FracDigits))
	}
	if !reflect.DeepEqual(e.IntDigits, []int{8}) {
		t.Errorf("Digits(7.9, 10, -3).IntDigits = %v, want [8]", e.IntDigits)
	}
}

func TestDigitsFracLength(t *testing.T) {
	// The fractional digit count always matches the requested precision,
	// including trailing zeros on exact values.
	e := Digits(MustNew("2"), 12, 5)

	if len(e.FracDigits) != 5 {
		t.Errorf("Digits(2, 12, 5) produced %d fractional digits, want 5", len(e.FracDigits))
	}
	for i, digit := range e.FracDigits {
		if digit != 0 {
			t.Errorf("fractional digit %d = %d, want 0", i, digit)
		}
	}
	if !e.Exact {
		t.Error("Digits(2, 12, 5) should be exact")
	}
}

func TestFromDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		base  int
		prec  int
	}{
		{"dozenal quarter", "142456.25", 12, 4},
		{"binary fraction", "5.625", 2, 4},
		{"negative value", "-10.5", 10, 1},
		{"zero", "0", 16, 3},
		{"hex halves", "255.5", 16, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := MustNew(tt.input)
			e := Digits(d, tt.base, tt.prec)

			if !e.Exact {
				t.Fatalf("Digits(%s, %d, %d) unexpectedly inexact", tt.input, tt.base, tt.prec)
			}

			back := FromDigits(e, tt.base)
			if !back.Equal(d) {
				t.Errorf("FromDigits(Digits(%s)) = %s, want %s", tt.input, back.String(), d.String())
			}
		})
	}
}

func TestAssemble(t *testing.T) {
	tests := []struct {
		name       string
		negative   bool
		intDigits  []int
		fracDigits []int
		exp        int
		base       int
		want       string
	}{
		{"dozenal ten", false, []int{1, 0}, nil, 0, 12, "12"},
		{"dozenal with fraction", true, []int{2}, []int{6}, 0, 12, "-2.5"},
		{"positive exponent scales up", false, []int{1}, []int{0, 0}, 2, 12, "144"},
		{"negative exponent scales down", false, []int{5}, nil, -1, 10, "0.5"},
		{"hex mantissa", false, []int{15}, []int{8}, 1, 16, "248"},
		{"zero", false, []int{0}, []int{0}, 0, 2, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Assemble(tt.negative, tt.intDigits, tt.fracDigits, tt.exp, tt.base)
			if result.String() != tt.want {
				t.Errorf("Assemble(%v, %v, %v, %d, %d) = %s, want %s",
					tt.negative, tt.intDigits, tt.fracDigits, tt.exp, tt.base,
					result.String(), tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		base    int
		wantExp int
	}{
		{"five dozenal digits", "142456.25", 12, 4},
		{"unit value", "1", 10, 0},
		{"below one", "0.5", 10, -1},
		{"exact base power", "144", 12, 2},
		{"negative value", "-144", 12, 2},
		{"small binary", "0.125", 2, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := MustNew(tt.input)
			mantissa, exp := Normalize(d, tt.base)

			if exp != tt.wantExp {
				t.Errorf("Normalize(%s, %d) exponent = %d, want %d", tt.input, tt.base, exp, tt.wantExp)
			}

			// Mantissa magnitude lies in [1, base)
			abs := mantissa.Abs()
			if abs.LessThan(One()) || abs.GreaterThanOrEqual(FromInt64(int64(tt.base))) {
				t.Errorf("Normalize(%s, %d) mantissa %s out of [1, base)", tt.input, tt.base, mantissa.String())
			}

			// mantissa * base^exp reconstructs the input exactly
			back := mantissa.Multiply(FromInt64(int64(tt.base)).Pow(int64(exp)))
			if !back.Equal(d) {
				t.Errorf("Normalize(%s, %d) reconstructs to %s", tt.input, tt.base, back.String())
			}
		})
	}
}

func TestNormalizeZero(t *testing.T) {
	mantissa, exp := Normalize(Zero(), 12)

	if !mantissa.IsZero() {
		t.Errorf("Normalize(0) mantissa = %s, want 0", mantissa.String())
	}
	if exp != 0 {
		t.Errorf("Normalize(0) exponent = %d, want 0", exp)
	}
}

func BenchmarkDigits(b *testing.B) {
	d := MustNew("142456.25")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Digits(d, 12, 4)
	}
}

func BenchmarkAssemble(b *testing.B) {
	intDigits := []int{6, 10, 5, 3, 4}
	fracDigits := []int{3, 0, 0, 0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result := Assemble(false, intDigits, fracDigits, 0, 12)
		result.Free()
	}
}
