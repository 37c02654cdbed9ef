// File: alphabet_test.go
// Title: Unit Tests for Digit Alphabets
// Description: Unit tests for alphabet construction and digit lookup,
//              including multi-byte digit alphabets and the construction
//              error cases.
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

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		digits   string
		wantErr  bool
		wantBase int
	}{
		{"binary", "01", false, 2},
		{"decimal", "0123456789", false, 10},
		{"hexadecimal", "0123456789ABCDEF", false, 16},
		{"dozenal", "0123456789XE", false, 12},
		{"dozenal pitman", "0123456789↊↋", false, 12},
		{"dozenal dwiggins", "0123456789𝒳ℰ", false, 12},
		{"empty", "", true, 0},
		{"single digit", "0", true, 0},
		{"duplicate digit", "0123401", true, 0},
		{"duplicate multi-byte digit", "01↊↊", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.digits)

			if tt.wantErr {
				if err == nil {
					t.Errorf("New(%q) expected error, got nil", tt.digits)
					return
				}
				if !rxerrors.IsInvalidAlphabet(err) {
					t.Errorf("New(%q) error should be an invalid-alphabet error, got %v", tt.digits, err)
				}
				return
			}

			if err != nil {
				t.Errorf("New(%q) unexpected error: %v", tt.digits, err)
				return
			}

			if a.Base() != tt.wantBase {
				t.Errorf("New(%q).Base() = %d, want %d", tt.digits, a.Base(), tt.wantBase)
			}
		})
	}
}

func TestNewErrorCodes(t *testing.T) {
	_, err := New("7")
	if !rxerror.HasCode(err, rxerror.CodeAlphabetTooShort) {
		t.Errorf("New(\"7\") error code = %v, want %v", rxerror.GetCode(err), rxerror.CodeAlphabetTooShort)
	}

	_, err = New("0120")
	if !rxerror.HasCode(err, rxerror.CodeAlphabetDuplicateDigit) {
		t.Errorf("New(\"0120\") error code = %v, want %v", rxerror.GetCode(err), rxerror.CodeAlphabetDuplicateDigit)
	}
}

func TestMustNew(t *testing.T) {
	// Test successful case
	a := MustNew("01")
	if a.Base() != 2 {
		t.Errorf("MustNew(\"01\").Base() = %d, want 2", a.Base())
	}

	// Test panic case
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustNew(\"\") expected panic")
		}
	}()
	MustNew("")
}

func TestDigitValue(t *testing.T) {
	a := MustNew("0123456789XE")

	tests := []struct {
		r      rune
		want   int
		wantOk bool
	}{
		{'0', 0, true},
		{'9', 9, true},
		{'X', 10, true},
		{'E', 11, true},
		{'A', 0, false},
		{';', 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			v, ok := a.DigitValue(tt.r)
			if ok != tt.wantOk {
				t.Errorf("DigitValue(%q) ok = %v, want %v", tt.r, ok, tt.wantOk)
				return
			}
			if ok && v != tt.want {
				t.Errorf("DigitValue(%q) = %d, want %d", tt.r, v, tt.want)
			}
		})
	}
}

func TestDigitSymbol(t *testing.T) {
	a := MustNew("0123456789↊↋")

	tests := []struct {
		value int
		want  rune
	}{
		{0, '0'},
		{9, '9'},
		{10, '↊'},
		{11, '↋'},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			if got := a.DigitSymbol(tt.value); got != tt.want {
				t.Errorf("DigitSymbol(%d) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestDigitRoundTrip(t *testing.T) {
	// Every digit maps value -> symbol -> value across a multi-byte alphabet
	a := MustNew("0123456789𝒳ℰ")

	for value := 0; value < a.Base(); value++ {
		r := a.DigitSymbol(value)
		back, ok := a.DigitValue(r)
		if !ok {
			t.Errorf("DigitValue(DigitSymbol(%d)) not in alphabet", value)
			continue
		}
		if back != value {
			t.Errorf("DigitValue(DigitSymbol(%d)) = %d", value, back)
		}
	}
}

func TestContains(t *testing.T) {
	a := MustNew("0123456789XE")

	if !a.Contains('X') {
		t.Error("Contains('X') = false, want true")
	}
	if a.Contains('x') {
		t.Error("Contains('x') = true, want false")
	}
	if a.Contains(';') {
		t.Error("Contains(';') = true, want false")
	}
}

func TestZero(t *testing.T) {
	tests := []struct {
		digits string
		want   rune
	}{
		{"0123456789", '0'},
		{"abcdef", 'a'},
		{"↊↋", '↊'},
	}

	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			a := MustNew(tt.digits)
			if got := a.Zero(); got != tt.want {
				t.Errorf("Zero() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunes(t *testing.T) {
	a := MustNew("012")

	runes := a.Runes()
	if len(runes) != 3 || runes[0] != '0' || runes[1] != '1' || runes[2] != '2' {
		t.Errorf("Runes() = %v, want [0 1 2]", runes)
	}

	// Mutating the copy must not affect the alphabet
	runes[0] = 'Z'
	if a.Zero() != '0' {
		t.Errorf("mutating Runes() copy changed the alphabet zero to %q", a.Zero())
	}
}

func TestString(t *testing.T) {
	digits := "0123456789↊↋"
	a := MustNew(digits)

	if a.String() != digits {
		t.Errorf("String() = %q, want %q", a.String(), digits)
	}
}

func BenchmarkDigitValue(b *testing.B) {
	a := MustNew("0123456789XE")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a.DigitValue('X')
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = New("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz")
	}
}
