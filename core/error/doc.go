// Package error provides comprehensive error handling capabilities for the radix engine.
//
// Package: error
// Title: Radix Error Handling Framework
// Description: This package implements a structured error handling system with contextual
//              information, error codes, stack traces, and integration with logging. It
//              provides a foundation for consistent error handling across the conversion
//              core, the format engine, and the CLI layer.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for the alphabet, value, decode and format domains
// - Stack trace capture for debugging
// - Severity levels driving log level selection
// - CLI exit status mapping per error code
//
// Usage:
//   import "github.com/msto63/radix/core/error"
//
//   // Create a new error with context
//   err := error.New("separator collides with a digit").
//     WithCode(error.CodeAlphabetSymbolCollision).
//     WithDetail("symbol", ";")
//
//   // Wrap an existing error with context
//   wrapped := error.Wrap(err, "cannot construct radix")
//
//   // Check error type and code
//   if error.HasCode(err, error.CodeAlphabetSymbolCollision) {
//     // Handle alphabet construction errors specifically
//   }
package error
