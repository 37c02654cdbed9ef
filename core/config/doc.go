// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides configuration management for the radix
//              converter with support for TOML and YAML formats. Features
//              include automatic file discovery, environment variable
//              injection, configuration validation, and type-safe access.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation with TOML/YAML support

/*
Package config provides configuration management for the radix converter.

Package: config
Title: Core Configuration Management
Description: Provides configuration management capabilities for the radix
             converter with support for TOML and YAML formats, environment
             variable injection, file discovery, and type-safe access
             patterns.
Author: msto63 with Claude Sonnet 4.0
Version: v0.1.0
Created: 2026-08-19
Modified: 2026-08-19

Change History:
- 2026-08-19 v0.1.0: Initial implementation with TOML/YAML support

Key Features:
  • Multi-format support (TOML, YAML) with automatic detection
  • Environment variable injection and override capabilities
  • Configuration validation with structured rules
  • Automatic discovery across user and system config directories
  • Thread-safe concurrent access patterns
  • Performance-optimized with caching and lazy loading
  • Structured error codes for configuration failures

# Basic Configuration Loading

Load and access configuration values:

	cfg, err := rxconfig.Load("radix.toml")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Type-safe value access with defaults
	base := cfg.GetInt("radix.base", 12)
	spec := cfg.GetString("format.spec", ",.4f")
	sep := cfg.GetRune("radix.symbols.separator", ';')
	level := cfg.GetString("log.level", "info")

# Advanced Configuration Options

Load with custom options:

	cfg, err := rxconfig.LoadWithOptions("radix.toml", rxconfig.LoadOptions{
		Format:    rxconfig.FormatAuto,
		EnvPrefix: "RADIX",
		Defaults: map[string]interface{}{
			"radix.base":  12,
			"format.spec": "",
			"log.level":   "info",
		},
	})

# Environment Variable Integration

Configuration values are automatically overridden by environment variables
following a consistent naming convention:

	# radix.toml
	[radix]
	base = 12

	[format]
	spec = ",.4f"

	# Environment variables (with optional prefix)
	export RADIX_RADIX_BASE="16"
	export RADIX_FORMAT_SPEC=".8f"

	cfg, _ := rxconfig.LoadWithOptions("radix.toml", rxconfig.LoadOptions{
		EnvPrefix: "RADIX",
	})

	// Environment variables take precedence
	base := cfg.GetInt("radix.base")   // Returns 16
	spec := cfg.GetString("format.spec") // Returns ".8f"

# Configuration Validation

Validate configuration structure and constraints:

	rules := rxconfig.ValidationRules{
		"radix.base": {
			Type: "int",
			Min:  2,
			Max:  62,
		},
		"radix.digits": {
			Type: "string",
			Min:  2,
		},
		"radix.symbols.separator": {
			Type: "rune",
		},
		"log.level": {
			Type:    "string",
			Pattern: `^(trace|debug|info|warn|error|fatal|audit)$`,
			Default: "info",
		},
	}

	result := cfg.Validate(rules)
	if !result.Valid {
		for _, e := range result.Errors {
			log.Error(e)
		}
	}

# Automatic Discovery

Find a configuration file across the standard locations (working directory,
user config directory, /etc/radix):

	cfg, err := rxconfig.DiscoverWithDefaults()

Discovery is not an error when no file exists; an empty configuration is
returned and defaults apply.

# Struct Binding

Bind a configuration section to a struct:

	type FormatSettings struct {
		Spec      string `config:"spec"`
		Uppercase bool   `config:"uppercase"`
	}

	var settings FormatSettings
	if err := cfg.BindToStruct("format", &settings); err != nil {
		return err
	}
*/
package config
