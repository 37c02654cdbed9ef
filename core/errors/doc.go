// Package errors provides THE STANDARD error handling interface for all radix
// modules. This is the primary error handling API that all modules should use.
//
// Package: errors
// Title: Standard Error Handling API for the Radix Engine
// Description: This package provides common error patterns, standardized error
//              code assignment, and utilities for creating consistent errors
//              across all radix modules. It integrates with the core error
//              package to provide the engine's error kinds while maintaining
//              consistency and enabling better error analysis.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation for cross-module error standardization
//
// Package Overview:
//
// The errors package serves as the foundation for consistent error handling
// across all radix modules, providing:
//
// # Error Kinds
//
// The conversion engine reports four kinds of failures, each covered by a
// family of error codes from the core error package:
//   - Invalid alphabet: ALPHABET_TOO_SHORT, ALPHABET_DUPLICATE_DIGIT,
//     ALPHABET_SYMBOL_COLLISION, ALPHABET_UNKNOWN_PRESET, ALPHABET_BASE_OUT_OF_RANGE
//   - Unsupported value: VALUE_UNSUPPORTED, VALUE_NOT_FINITE, VALUE_OUT_OF_RANGE
//   - Decode failure: DECODE_EMPTY, DECODE_INVALID_DIGIT, DECODE_MISPLACED_SEPARATOR,
//     DECODE_MISPLACED_SIGN, DECODE_MALFORMED_EXPONENT
//   - Format spec failure: FORMAT_SPEC_INVALID, FORMAT_SPEC_BAD_PRECISION,
//     FORMAT_SPEC_UNKNOWN_TYPE
//
// # Error Creation Utilities
//
// Standardized functions for creating module-specific errors:
//   - NewErrorBuilder: Fluent builder with automatic code assignment
//   - StandardError: Basic module error with automatic code assignment
//   - ModuleError: Wraps errors with module context and details
//   - InputError / ValidationFailed / OutOfRange: Common validation failures
//   - Kind constructors: AlphabetTooShort, DecodeInvalidDigit, FormatSpecInvalid, ...
//
// # Error Analysis Functions
//
// Utilities for analyzing and working with standardized errors:
//   - IsInvalidAlphabet / IsUnsupportedValue / IsDecodeError / IsFormatSpecError:
//     Check which kind of failure an error represents
//   - IsModuleError: Check if error belongs to specific module
//   - ExtractModule / ExtractOperation: Extract context from an error
//
// # Usage Examples
//
// Creating errors in module functions:
//
//	func New(digits string) (*Alphabet, error) {
//		runes := []rune(digits)
//		if len(runes) < 2 {
//			return nil, errors.AlphabetTooShort(len(runes))
//		}
//		// ...
//	}
//
//	func (r *Radix) Decode(s string) (numeral.Decimal, error) {
//		if s == "" {
//			return numeral.Decimal{}, errors.DecodeEmpty(s)
//		}
//		// ...
//	}
//
// Error analysis and handling:
//
//	value, err := r.Decode(input)
//	if err != nil {
//		if errors.IsDecodeError(err) {
//			details := errors.ExtractDetails(err)
//			log.Error("decode failed", "position", details["position"])
//		}
//		return err
//	}
//
// # Integration with Core Error Package
//
// This package builds on the core error package to provide:
//   - Automatic error code assignment based on module and operation
//   - Consistent severity levels based on error code
//   - Standardized error details structure
//   - Kind-level error categorization for callers
package errors
