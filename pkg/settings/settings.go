// Package settings provides build metadata, runtime configuration, and
// context helpers used across the tabx CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "tabx"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds configuration settings for a single execution of the viewer:
// logging level, the input file, parse options, and output behavior.
type Run struct {
	MinLogLevel int8
	Path        string
	Sheet       string
	Delimiter   rune
	NoColor     bool
	ExitOnError bool
}

// NewCliParams initializes and returns a Run struct with default CLI
// parameters: info-level logging, comma-delimited input, color output on.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		Delimiter:   ',',
		NoColor:     false,
		ExitOnError: true,
	}
}
