// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for error code classification, category mapping and
//              the CLI exit status mapping.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation

package error

import (
	"testing"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeUnknown, "UNKNOWN"},
		{CodeAlphabetDuplicateDigit, "ALPHABET_DUPLICATE_DIGIT"},
		{CodeValueUnsupported, "VALUE_UNSUPPORTED"},
		{CodeDecodeInvalidDigit, "DECODE_INVALID_DIGIT"},
		{CodeFormatSpecInvalid, "FORMAT_SPEC_INVALID"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("Code.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeIsValid(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want bool
	}{
		{"known code", CodeAlphabetTooShort, true},
		{"unknown code", Code("INVALID_CODE"), false},
		{"empty code", Code(""), false},
		{"decode code", CodeDecodeMisplacedSeparator, true},
		{"config code", CodeInvalidConfig, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.want {
				t.Errorf("Code.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code     Code
		category string
	}{
		{CodeAlphabetTooShort, "alphabet"},
		{CodeAlphabetDuplicateDigit, "alphabet"},
		{CodeAlphabetSymbolCollision, "alphabet"},
		{CodeValueUnsupported, "value"},
		{CodeValueNotFinite, "value"},
		{CodeDecodeEmpty, "decode"},
		{CodeDecodeInvalidDigit, "decode"},
		{CodeDecodeMalformedExponent, "decode"},
		{CodeFormatSpecInvalid, "format"},
		{CodeFormatSpecUnknownType, "format"},
		{CodeConfigError, "configuration"},
		{CodeUnknown, "generic"},
		{CodeInternal, "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Code.Category() = %v, want %v", got, tt.category)
			}
		})
	}
}

func TestCodeExitStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeFormatSpecInvalid, 64},
		{CodeAlphabetUnknownPreset, 64},
		{CodeDecodeInvalidDigit, 65},
		{CodeValueNotFinite, 65},
		{CodeAlphabetDuplicateDigit, 65},
		{CodeInvalidConfig, 78},
		{CodeInternal, 70},
		{CodeUnknown, 70},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.ExitStatus(); got != tt.want {
				t.Errorf("Code.ExitStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}
