// Package version carries build metadata injected by the linker.
package version

// Populated via -ldflags at build time; the defaults identify a
// from-source build.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
