// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Duet is the canonical application identifier used for filesystem paths and CLI branding.
	Duet = "duet"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent identifies duet in requests sent to the players' remote-control interfaces.
	UserAgent = "duet/" + Version
)

// Build metadata injected via -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
