// Package config declares the engine configuration, its JSON schema and
// loading from YAML files.
package config

import (
	schematypes "github.com/taskcluster/go-schematypes"

	"github.com/zorba-modules/process/engine/system"
)

// Carriage-return handling modes for captured output. PlatformDefault keeps
// the historic asymmetry, the Windows backend strips '\r' and the POSIX
// backend captures output verbatim.
const (
	StripPlatformDefault = "platform-default"
	StripAlways          = "always"
	StripNever           = "never"
)

// Config holds the engine configuration. The zero value is not usable,
// call WithDefaults or load through Load/LoadFile.
type Config struct {
	// LogLevel for the logging monitor.
	LogLevel string `json:"logLevel,omitempty"`

	// Shell overrides the system shell used for shell-string commands.
	Shell string `json:"shell,omitempty"`

	// PipeBufferSize is the requested stdout/stderr pipe capacity in bytes.
	// Only honored by the Windows backend, POSIX pipe capacity is fixed by
	// the kernel.
	PipeBufferSize int `json:"pipeBufferSize,omitempty"`

	// StripCarriageReturns is one of the Strip* constants.
	StripCarriageReturns string `json:"stripCarriageReturns,omitempty"`
}

// Schema for Config, used to validate configuration before mapping it.
var Schema = schematypes.Object{
	Title: "Process Engine Configuration",
	Description: "Configuration for the child-process execution engine, " +
		"covering logging, shell selection, pipe sizing and " +
		"carriage-return handling of captured output.",
	Properties: schematypes.Properties{
		"logLevel": schematypes.StringEnum{
			Title:   "Log Level",
			Options: []string{"debug", "info", "warning", "error", "fatal", "panic"},
		},
		"shell": schematypes.String{
			Title: "System Shell",
			Description: "Shell used to interpret shell-string commands, " +
				"defaults to /bin/sh on POSIX and cmd.exe on Windows.",
			MaximumLength: 255,
		},
		"pipeBufferSize": schematypes.Integer{
			Title: "Pipe Buffer Size",
			Description: "Requested capacity of the stdout and stderr pipes " +
				"in bytes. Only the Windows backend can size its pipes.",
			Minimum: 64 * 1024,
			Maximum: 64 * 1024 * 1024,
		},
		"stripCarriageReturns": schematypes.StringEnum{
			Title: "Strip Carriage Returns",
			Description: "Whether '\\r' bytes are removed from captured " +
				"output. The platform default strips on Windows only.",
			Options: []string{StripPlatformDefault, StripAlways, StripNever},
		},
	},
}

// WithDefaults returns a copy of c with empty fields populated.
func (c Config) WithDefaults() Config {
	if c.LogLevel == "" {
		c.LogLevel = "warning"
	}
	if c.StripCarriageReturns == "" {
		c.StripCarriageReturns = StripPlatformDefault
	}
	return c
}

// ResolveStripCarriageReturns maps the configured mode to the concrete
// behavior for the backend this binary was built with.
func (c Config) ResolveStripCarriageReturns() bool {
	switch c.StripCarriageReturns {
	case StripAlways:
		return true
	case StripNever:
		return false
	default:
		return system.DefaultStripCarriageReturns()
	}
}
