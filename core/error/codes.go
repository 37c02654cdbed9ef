// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across the radix engine. These codes enable structured error handling,
//              CLI exit status mapping, and error monitoring.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the radix engine
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Alphabet construction
	CodeAlphabetTooShort        Code = "ALPHABET_TOO_SHORT"
	CodeAlphabetDuplicateDigit  Code = "ALPHABET_DUPLICATE_DIGIT"
	CodeAlphabetSymbolCollision Code = "ALPHABET_SYMBOL_COLLISION"
	CodeAlphabetUnknownPreset   Code = "ALPHABET_UNKNOWN_PRESET"
	CodeAlphabetBaseOutOfRange  Code = "ALPHABET_BASE_OUT_OF_RANGE"

	// Value encoding
	CodeValueUnsupported Code = "VALUE_UNSUPPORTED"
	CodeValueNotFinite   Code = "VALUE_NOT_FINITE"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"

	// Numeral decoding
	CodeDecodeEmpty              Code = "DECODE_EMPTY"
	CodeDecodeInvalidDigit       Code = "DECODE_INVALID_DIGIT"
	CodeDecodeMisplacedSeparator Code = "DECODE_MISPLACED_SEPARATOR"
	CodeDecodeMisplacedSign      Code = "DECODE_MISPLACED_SIGN"
	CodeDecodeMalformedExponent  Code = "DECODE_MALFORMED_EXPONENT"

	// Format specifier parsing
	CodeFormatSpecInvalid      Code = "FORMAT_SPEC_INVALID"
	CodeFormatSpecBadPrecision Code = "FORMAT_SPEC_BAD_PRECISION"
	CodeFormatSpecUnknownType  Code = "FORMAT_SPEC_UNKNOWN_TYPE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeAlphabetTooShort, CodeAlphabetDuplicateDigit, CodeAlphabetSymbolCollision,
		CodeAlphabetUnknownPreset, CodeAlphabetBaseOutOfRange,
		CodeValueUnsupported, CodeValueNotFinite, CodeValueOutOfRange,
		CodeDecodeEmpty, CodeDecodeInvalidDigit, CodeDecodeMisplacedSeparator,
		CodeDecodeMisplacedSign, CodeDecodeMalformedExponent,
		CodeFormatSpecInvalid, CodeFormatSpecBadPrecision, CodeFormatSpecUnknownType,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeAlphabetTooShort, CodeAlphabetDuplicateDigit, CodeAlphabetSymbolCollision,
		CodeAlphabetUnknownPreset, CodeAlphabetBaseOutOfRange:
		return "alphabet"
	case CodeValueUnsupported, CodeValueNotFinite, CodeValueOutOfRange:
		return "value"
	case CodeDecodeEmpty, CodeDecodeInvalidDigit, CodeDecodeMisplacedSeparator,
		CodeDecodeMisplacedSign, CodeDecodeMalformedExponent:
		return "decode"
	case CodeFormatSpecInvalid, CodeFormatSpecBadPrecision, CodeFormatSpecUnknownType:
		return "format"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitStatus returns the appropriate process exit status for this error code,
// following the sysexits convention used by the CLI
func (c Code) ExitStatus() int {
	switch c {
	case CodeFormatSpecInvalid, CodeFormatSpecBadPrecision, CodeFormatSpecUnknownType,
		CodeAlphabetUnknownPreset, CodeAlphabetBaseOutOfRange, CodeInvalidInput:
		return 64 // EX_USAGE
	case CodeDecodeEmpty, CodeDecodeInvalidDigit, CodeDecodeMisplacedSeparator,
		CodeDecodeMisplacedSign, CodeDecodeMalformedExponent,
		CodeValueUnsupported, CodeValueNotFinite, CodeValueOutOfRange,
		CodeAlphabetTooShort, CodeAlphabetDuplicateDigit, CodeAlphabetSymbolCollision:
		return 65 // EX_DATAERR
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return 78 // EX_CONFIG
	default:
		return 70 // EX_SOFTWARE
	}
}
