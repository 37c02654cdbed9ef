// File: standards.go
// Title: Error Standards for the Radix Engine
// Description: Provides standardized error handling patterns and code assignment
//              for all radix modules to ensure consistency across the conversion
//              pipeline, the CLI, and the configuration layer.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation for error standardization

package errors

import (
	"fmt"
	"strings"

	rxerror "github.com/msto63/radix/core/error"
)

// Module identifiers for error categorization
const (
	ModuleAlphabet = "alphabet"
	ModuleNumeral  = "numeral"
	ModuleFormat   = "format"
	ModuleRadix    = "radix"
	ModuleConfig   = "config"
	ModuleCLI      = "cli"
)

// StandardError creates a standardized error with module context
func StandardError(module, operation, message string) *rxerror.Error {
	return rxerror.New(message).
		WithCode(getModuleErrorCode(module, operation)).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
		}).
		WithSeverity(rxerror.SeverityMedium)
}

// ModuleError creates an error specific to a module operation
func ModuleError(module, operation string, cause error, details map[string]interface{}) *rxerror.Error {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["module"] = module
	details["operation"] = operation

	code := getModuleErrorCode(module, operation)
	severity := getSeverityFromError(cause)

	if cause != nil {
		return rxerror.Wrap(cause, fmt.Sprintf("%s.%s failed", module, operation)).
			WithCode(code).
			WithDetails(details).
			WithSeverity(severity)
	}

	return rxerror.New(fmt.Sprintf("%s.%s failed", module, operation)).
		WithCode(code).
		WithDetails(details).
		WithSeverity(severity)
}

// ValidationError creates a standardized validation error
func ValidationError(module, field string, value interface{}, message string) *rxerror.Error {
	return rxerror.New(message).
		WithCode(rxerror.CodeInvalidInput).
		WithDetails(map[string]interface{}{
			"module": module,
			"field":  field,
			"value":  value,
		}).
		WithSeverity(rxerror.SeverityLow)
}

// InputError creates a standardized input validation error
func InputError(module, operation string, input interface{}, expected string) *rxerror.Error {
	return rxerror.New(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		WithCode(rxerror.CodeInvalidInput).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"input":     input,
			"expected":  expected,
		}).
		WithSeverity(rxerror.SeverityMedium)
}

// FormatError creates a standardized format error
func FormatError(module string, input interface{}, expectedFormat string) *rxerror.Error {
	return rxerror.New(fmt.Sprintf("invalid format in %s", module)).
		WithCode(getFormatErrorCode(module)).
		WithDetails(map[string]interface{}{
			"module":          module,
			"input":           input,
			"expected_format": expectedFormat,
		}).
		WithSeverity(rxerror.SeverityMedium)
}

// OperationError creates a standardized operation failure error
func OperationError(module, operation string, cause error, context map[string]interface{}) *rxerror.Error {
	if context == nil {
		context = make(map[string]interface{})
	}
	context["module"] = module
	context["operation"] = operation

	return rxerror.Wrap(cause, fmt.Sprintf("%s.%s operation failed", module, operation)).
		WithCode(getOperationErrorCode(module)).
		WithDetails(context).
		WithSeverity(rxerror.SeverityHigh)
}

// getModuleErrorCode returns the appropriate error code for a module operation
func getModuleErrorCode(module, operation string) rxerror.Code {
	switch module {
	case ModuleAlphabet:
		return getAlphabetErrorCode(operation)
	case ModuleNumeral:
		return getNumeralErrorCode(operation)
	case ModuleFormat:
		return getFormatSpecErrorCode(operation)
	case ModuleRadix:
		return getRadixErrorCode(operation)
	case ModuleConfig:
		return getConfigErrorCode(operation)
	default:
		return rxerror.CodeInvalidInput
	}
}

// Module-specific error code getters
func getAlphabetErrorCode(operation string) rxerror.Code {
	switch {
	case strings.Contains(operation, "preset"):
		return rxerror.CodeAlphabetUnknownPreset
	case strings.Contains(operation, "base"):
		return rxerror.CodeAlphabetBaseOutOfRange
	case strings.Contains(operation, "symbol") || strings.Contains(operation, "collision"):
		return rxerror.CodeAlphabetSymbolCollision
	case strings.Contains(operation, "duplicate"):
		return rxerror.CodeAlphabetDuplicateDigit
	case strings.Contains(operation, "length") || strings.Contains(operation, "size"):
		return rxerror.CodeAlphabetTooShort
	default:
		return rxerror.CodeInvalidInput
	}
}

func getNumeralErrorCode(operation string) rxerror.Code {
	switch {
	case strings.Contains(operation, "finite") || strings.Contains(operation, "float"):
		return rxerror.CodeValueNotFinite
	case strings.Contains(operation, "range"):
		return rxerror.CodeValueOutOfRange
	default:
		return rxerror.CodeValueUnsupported
	}
}

func getFormatSpecErrorCode(operation string) rxerror.Code {
	switch {
	case strings.Contains(operation, "precision"):
		return rxerror.CodeFormatSpecBadPrecision
	case strings.Contains(operation, "type"):
		return rxerror.CodeFormatSpecUnknownType
	default:
		return rxerror.CodeFormatSpecInvalid
	}
}

func getRadixErrorCode(operation string) rxerror.Code {
	switch {
	case strings.Contains(operation, "decode") || strings.Contains(operation, "parse"):
		return rxerror.CodeDecodeInvalidDigit
	case strings.Contains(operation, "encode") || strings.Contains(operation, "value"):
		return rxerror.CodeValueUnsupported
	case strings.Contains(operation, "spec") || strings.Contains(operation, "format"):
		return rxerror.CodeFormatSpecInvalid
	default:
		return rxerror.CodeInvalidInput
	}
}

func getConfigErrorCode(operation string) rxerror.Code {
	switch {
	case strings.Contains(operation, "load") || strings.Contains(operation, "read"):
		return rxerror.CodeMissingConfig
	case strings.Contains(operation, "validate") || strings.Contains(operation, "parse"):
		return rxerror.CodeInvalidConfig
	default:
		return rxerror.CodeConfigError
	}
}

func getFormatErrorCode(module string) rxerror.Code {
	switch module {
	case ModuleFormat:
		return rxerror.CodeFormatSpecInvalid
	case ModuleRadix, ModuleNumeral:
		return rxerror.CodeDecodeInvalidDigit
	case ModuleConfig:
		return rxerror.CodeInvalidConfig
	default:
		return rxerror.CodeInvalidInput
	}
}

func getOperationErrorCode(module string) rxerror.Code {
	switch module {
	case ModuleConfig:
		return rxerror.CodeConfigError
	default:
		return rxerror.CodeInternal
	}
}

// getSeverityFromError determines appropriate severity based on error type
func getSeverityFromError(cause error) rxerror.Severity {
	if cause == nil {
		return rxerror.SeverityLow
	}

	if code := rxerror.GetCode(cause); code != rxerror.CodeUnknown {
		return rxerror.GetSeverityFromCode(code)
	}

	errStr := cause.Error()
	switch {
	case strings.Contains(errStr, "permission") || strings.Contains(errStr, "access"):
		return rxerror.SeverityHigh
	case strings.Contains(errStr, "not found") || strings.Contains(errStr, "missing"):
		return rxerror.SeverityMedium
	case strings.Contains(errStr, "invalid") || strings.Contains(errStr, "format"):
		return rxerror.SeverityLow
	case strings.Contains(errStr, "overflow") || strings.Contains(errStr, "underflow"):
		return rxerror.SeverityHigh
	default:
		return rxerror.SeverityMedium
	}
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	if rxErr, ok := err.(*rxerror.Error); ok {
		if details := rxErr.Details(); details != nil {
			if mod, exists := details["module"]; exists {
				return mod == module
			}
		}
	}
	return false
}

// GetErrorModule extracts the module name from a standardized error
func GetErrorModule(err error) string {
	if rxErr, ok := err.(*rxerror.Error); ok {
		if details := rxErr.Details(); details != nil {
			if mod, exists := details["module"]; exists {
				if modStr, ok := mod.(string); ok {
					return modStr
				}
			}
		}
	}
	return ""
}

// GetErrorOperation extracts the operation name from a standardized error
func GetErrorOperation(err error) string {
	if rxErr, ok := err.(*rxerror.Error); ok {
		if details := rxErr.Details(); details != nil {
			if op, exists := details["operation"]; exists {
				if opStr, ok := op.(string); ok {
					return opStr
				}
			}
		}
	}
	return ""
}
