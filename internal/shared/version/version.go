// Package version exposes the service version string.
package version

// Version is set at build time via
// -ldflags "-X turnero/internal/shared/version.Version=<semver>".
var Version = "1.0.0"
