// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides common error handling utilities used across all radix
//              modules, including the fluent ErrorBuilder and convenience
//              constructors for the engine's error kinds.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation of shared error utilities

package errors

import (
	"fmt"
	"reflect"

	rxerror "github.com/msto63/radix/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  rxerror.Severity
	code      rxerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: rxerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Details sets multiple details at once
func (eb *ErrorBuilder) Details(details map[string]interface{}) *ErrorBuilder {
	for k, v := range details {
		eb.details[k] = v
	}
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity rxerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code rxerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *rxerror.Error {
	// Auto-generate code if not set
	if eb.code == "" {
		eb.code = getModuleErrorCode(eb.module, eb.operation)
	}

	// Auto-generate message if not set
	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	// Add module and operation to details
	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	// Create the error
	var err *rxerror.Error
	if eb.cause != nil {
		err = rxerror.Wrap(eb.cause, eb.message)
	} else {
		err = rxerror.New(eb.message)
	}

	return err.
		WithCode(eb.code).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS FOR ALL RADIX MODULES
// =============================================================================
// These functions provide a consistent interface for creating errors across
// all radix modules. Use these instead of fmt.Errorf() or errors.New()

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *rxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		Code(rxerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(rxerror.SeverityMedium).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *rxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s operation failed", module, operation)).
		Cause(cause).
		Code(getOperationErrorCode(module)).
		Severity(rxerror.SeverityHigh).
		Build()
}

// ValidationFailed creates a standardized validation error
func ValidationFailed(module, field string, value interface{}, reason string) *rxerror.Error {
	return NewErrorBuilder(module).
		Message(fmt.Sprintf("validation failed for field %s: %s", field, reason)).
		Code(rxerror.CodeInvalidInput).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Severity(rxerror.SeverityLow).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *rxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("validation failed: value out of range in %s.%s", module, operation)).
		Code(rxerror.CodeValueOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(rxerror.SeverityMedium).
		Build()
}

// =============================================================================
// ERROR KIND CONSTRUCTORS
// =============================================================================
// Direct constructors for the four error kinds the conversion engine reports:
// invalid alphabet, unsupported value, decode failure, and format spec failure.

// AlphabetTooShort reports an alphabet with fewer than two digit symbols
func AlphabetTooShort(count int) *rxerror.Error {
	return NewErrorBuilder(ModuleAlphabet).
		Operation("validate_size").
		Messagef("alphabet needs at least 2 digits, got %d", count).
		Code(rxerror.CodeAlphabetTooShort).
		Detail("count", count).
		Severity(rxerror.SeverityLow).
		Build()
}

// AlphabetDuplicateDigit reports a digit symbol that appears twice in an alphabet
func AlphabetDuplicateDigit(digit rune) *rxerror.Error {
	return NewErrorBuilder(ModuleAlphabet).
		Operation("validate_duplicate").
		Messagef("duplicate digit %q in alphabet", digit).
		Code(rxerror.CodeAlphabetDuplicateDigit).
		Detail("digit", string(digit)).
		Severity(rxerror.SeverityLow).
		Build()
}

// AlphabetSymbolCollision reports a punctuation symbol that collides with a digit
func AlphabetSymbolCollision(symbol string, digit rune) *rxerror.Error {
	return NewErrorBuilder(ModuleAlphabet).
		Operation("validate_collision").
		Messagef("%s symbol %q collides with a digit", symbol, digit).
		Code(rxerror.CodeAlphabetSymbolCollision).
		Detail("symbol", symbol).
		Detail("digit", string(digit)).
		Severity(rxerror.SeverityLow).
		Build()
}

// AlphabetUnknownPreset reports a preset name that is not registered
func AlphabetUnknownPreset(name string) *rxerror.Error {
	return NewErrorBuilder(ModuleAlphabet).
		Operation("lookup_preset").
		Messagef("unknown preset %q", name).
		Code(rxerror.CodeAlphabetUnknownPreset).
		Detail("name", name).
		Severity(rxerror.SeverityLow).
		Build()
}

// AlphabetBaseOutOfRange reports a numeric base outside the supported range
func AlphabetBaseOutOfRange(base, min, max int) *rxerror.Error {
	return NewErrorBuilder(ModuleAlphabet).
		Operation("select_base").
		Messagef("base %d out of range [%d, %d]", base, min, max).
		Code(rxerror.CodeAlphabetBaseOutOfRange).
		Detail("base", base).
		Detail("min", min).
		Detail("max", max).
		Severity(rxerror.SeverityLow).
		Build()
}

// ValueNotFinite reports a NaN or infinite float input
func ValueNotFinite(operation string, value float64) *rxerror.Error {
	return NewErrorBuilder(ModuleNumeral).
		Operation(operation).
		Messagef("value %v is not finite", value).
		Code(rxerror.CodeValueNotFinite).
		Detail("value", fmt.Sprintf("%v", value)).
		Severity(rxerror.SeverityLow).
		Build()
}

// ValueUnsupported reports an input of a type the encoder cannot handle
func ValueUnsupported(operation string, value interface{}) *rxerror.Error {
	return NewErrorBuilder(ModuleNumeral).
		Operation(operation).
		Messagef("unsupported value type %T", value).
		Code(rxerror.CodeValueUnsupported).
		Detail("type", fmt.Sprintf("%T", value)).
		Severity(rxerror.SeverityLow).
		Build()
}

// DecodeEmpty reports a decode attempt on an empty or sign-only string
func DecodeEmpty(input string) *rxerror.Error {
	return NewErrorBuilder(ModuleRadix).
		Operation("decode").
		Message("cannot decode empty numeral").
		Code(rxerror.CodeDecodeEmpty).
		Detail("input", input).
		Severity(rxerror.SeverityLow).
		Build()
}

// DecodeInvalidDigit reports a rune that is not a digit of the active alphabet
func DecodeInvalidDigit(input string, digit rune, pos int) *rxerror.Error {
	return NewErrorBuilder(ModuleRadix).
		Operation("decode").
		Messagef("invalid digit %q at position %d", digit, pos).
		Code(rxerror.CodeDecodeInvalidDigit).
		Detail("input", input).
		Detail("digit", string(digit)).
		Detail("position", pos).
		Severity(rxerror.SeverityLow).
		Build()
}

// DecodeMisplacedSeparator reports a repeated or misplaced fraction separator
func DecodeMisplacedSeparator(input string, pos int) *rxerror.Error {
	return NewErrorBuilder(ModuleRadix).
		Operation("decode").
		Messagef("misplaced fraction separator at position %d", pos).
		Code(rxerror.CodeDecodeMisplacedSeparator).
		Detail("input", input).
		Detail("position", pos).
		Severity(rxerror.SeverityLow).
		Build()
}

// DecodeMisplacedSign reports a sign rune anywhere but the front of a part
func DecodeMisplacedSign(input string, pos int) *rxerror.Error {
	return NewErrorBuilder(ModuleRadix).
		Operation("decode").
		Messagef("misplaced sign at position %d", pos).
		Code(rxerror.CodeDecodeMisplacedSign).
		Detail("input", input).
		Detail("position", pos).
		Severity(rxerror.SeverityLow).
		Build()
}

// DecodeMalformedExponent reports an exponent marker without a valid exponent
func DecodeMalformedExponent(input string, pos int) *rxerror.Error {
	return NewErrorBuilder(ModuleRadix).
		Operation("decode").
		Messagef("malformed exponent at position %d", pos).
		Code(rxerror.CodeDecodeMalformedExponent).
		Detail("input", input).
		Detail("position", pos).
		Severity(rxerror.SeverityLow).
		Build()
}

// FormatSpecInvalid reports a format spec string the parser cannot understand
func FormatSpecInvalid(spec, reason string) *rxerror.Error {
	return NewErrorBuilder(ModuleFormat).
		Operation("parse_spec").
		Messagef("invalid format spec %q: %s", spec, reason).
		Code(rxerror.CodeFormatSpecInvalid).
		Detail("spec", spec).
		Detail("reason", reason).
		Severity(rxerror.SeverityLow).
		Build()
}

// FormatSpecBadPrecision reports a precision field without digits
func FormatSpecBadPrecision(spec string) *rxerror.Error {
	return NewErrorBuilder(ModuleFormat).
		Operation("parse_precision").
		Messagef("format spec %q: precision marker without digits", spec).
		Code(rxerror.CodeFormatSpecBadPrecision).
		Detail("spec", spec).
		Severity(rxerror.SeverityLow).
		Build()
}

// FormatSpecUnknownType reports an unrecognized presentation type rune
func FormatSpecUnknownType(spec string, typ rune) *rxerror.Error {
	return NewErrorBuilder(ModuleFormat).
		Operation("parse_type").
		Messagef("format spec %q: unknown presentation type %q", spec, typ).
		Code(rxerror.CodeFormatSpecUnknownType).
		Detail("spec", spec).
		Detail("type", string(typ)).
		Severity(rxerror.SeverityLow).
		Build()
}

// =============================================================================
// ERROR KIND CHECKS
// =============================================================================

// IsInvalidAlphabet reports whether err stems from alphabet construction
func IsInvalidAlphabet(err error) bool {
	return rxerror.HasCategory(err, "alphabet")
}

// IsUnsupportedValue reports whether err stems from an unencodable value
func IsUnsupportedValue(err error) bool {
	return rxerror.HasCategory(err, "value")
}

// IsDecodeError reports whether err stems from decoding a numeral string
func IsDecodeError(err error) bool {
	return rxerror.HasCategory(err, "decode")
}

// IsFormatSpecError reports whether err stems from format spec parsing
func IsFormatSpecError(err error) bool {
	return rxerror.HasCategory(err, "format")
}

// Utility functions for error analysis

// ExtractDetails extracts all details from a structured error
func ExtractDetails(err error) map[string]interface{} {
	if rxErr, ok := err.(*rxerror.Error); ok {
		return rxErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	details := ExtractDetails(err)
	if details != nil {
		if module, ok := details["module"].(string); ok {
			return module
		}
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	details := ExtractDetails(err)
	if details != nil {
		if operation, ok := details["operation"].(string); ok {
			return operation
		}
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// ValidateRequired validates that a value is not nil/empty using reflection
func ValidateRequired(module, field string, value interface{}) error {
	if value == nil {
		return ValidationFailed(module, field, value, "cannot be nil")
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		if v.String() == "" {
			return ValidationFailed(module, field, value, "cannot be empty")
		}
	case reflect.Slice, reflect.Map, reflect.Array:
		if v.Len() == 0 {
			return ValidationFailed(module, field, value, "cannot be empty")
		}
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return ValidationFailed(module, field, value, "cannot be nil")
		}
	}

	return nil
}

// ValidateRange validates that a numeric value is within range
func ValidateRange(module, field string, value, min, max interface{}) error {
	val, err := toFloat64(value)
	if err != nil {
		return InvalidInput(module, "validate_range", value, "numeric value")
	}

	minVal, err := toFloat64(min)
	if err != nil {
		return InvalidInput(module, "validate_range", min, "numeric min value")
	}

	maxVal, err := toFloat64(max)
	if err != nil {
		return InvalidInput(module, "validate_range", max, "numeric max value")
	}

	if val < minVal || val > maxVal {
		return OutOfRange(module, "validate_range", value, min, max)
	}

	return nil
}

// toFloat64 converts various numeric types to float64
func toFloat64(value interface{}) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to float64", value)
	}
}
