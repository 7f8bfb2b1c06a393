// Package constant defines immutable application-level identifiers and media defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	App = "vidl"

	// Version is the current application semantic version string.
	Version = "0.3.1"
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
