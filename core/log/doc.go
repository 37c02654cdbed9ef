// Package log provides structured logging capabilities for the radix engine.
//
// Package: log
// Title: Radix Structured Logging Framework
// Description: This package implements a structured logging system with
//              conversion context, multiple output formats, log levels, and
//              tight integration with the radix error handling system. It
//              supports performance timing for the encode/decode paths and a
//              conversion trail for the interactive mode.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with structured logging and error integration
//
// Features:
// - Structured logging with JSON and text formats
// - Multiple log levels with filtering capabilities
// - Contextual logging with CLI command, alphabet preset, and custom fields
// - Integration with the radix error system for automatic error logging
// - Performance metrics and timing measurements
// - Conversion trail for interactive sessions
// - Multiple output destinations (console, file)
// - Optional asynchronous output for the TUI file logger
//
// Usage:
//   import rxlog "github.com/msto63/radix/core/log"
//
//   // Create a logger with context
//   logger := log.New().
//     WithLevel(log.LevelInfo).
//     WithFormat(log.FormatConsole).
//     WithCommand("encode").
//     WithPreset("dozenal")
//
//   // Log messages with different levels
//   logger.Info("value encoded", log.Field("output", "X;3"))
//   logger.ErrorWithErr("decode failed", err, log.Int("position", 3))
//   logger.Debug("rendering value", log.Fields{
//     "spec":  ",.4f",
//     "base":  12,
//     "value": "142456.25",
//   })
//
//   // Log performance metrics
//   timer := logger.StartTimer("encode")
//   // ... perform conversion
//   timer.Stop()
//
//   // Conversion trail for interactive sessions
//   logger.Audit("conversion executed", log.Fields{
//     "input":  "142456.25",
//     "output": "6X,534;3000",
//   })
package log
