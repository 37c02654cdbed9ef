// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper prioritization
//              and log level selection. Severity levels separate recoverable input
//              errors from configuration and internal failures.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid user input, malformed numerals, bad format specifiers
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: unusable configuration values, rejected alphabets
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: unreadable configuration files, inconsistent internal state
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the program unusable
	// Examples: corrupted state that would produce wrong conversions
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// Priority returns a priority value for sorting (higher number = higher priority)
func (s Severity) Priority() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Internal failures
	case CodeInternal:
		return SeverityHigh

	// Configuration errors
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityMedium

	// Input errors: reported per value, the caller continues
	case CodeInvalidInput,
		CodeAlphabetTooShort, CodeAlphabetDuplicateDigit, CodeAlphabetSymbolCollision,
		CodeAlphabetUnknownPreset, CodeAlphabetBaseOutOfRange,
		CodeValueUnsupported, CodeValueNotFinite, CodeValueOutOfRange,
		CodeDecodeEmpty, CodeDecodeInvalidDigit, CodeDecodeMisplacedSeparator,
		CodeDecodeMisplacedSign, CodeDecodeMalformedExponent,
		CodeFormatSpecInvalid, CodeFormatSpecBadPrecision, CodeFormatSpecUnknownType:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
