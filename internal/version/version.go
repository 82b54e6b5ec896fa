// Package version provides version information for sudo0.
// The Version variable is set at build time via ldflags.
package version

// Version is the current version of sudo0.
// Set at build time via: -ldflags "-X github.com/xdg/sudo0/internal/version.Version=v1.0.0"
// Defaults to "dev" for development builds.
var Version = "dev"
