// Package version provides build version and package information.
package version

import "fmt"

// Build-time variables - set via ldflags
var (
	// Version is the semantic version of the application
	Version = "0.1.0"
	// Commit is the git commit hash
	Commit = "none"
	// BuildDate is the date when the binary was built
	BuildDate = "unknown"
)

// Package metadata
const (
	Author    = "Adam Twardoch"
	Copyright = "Adam Twardoch"
	License   = "CC0-1.0"
)

// GetVersion returns the full version string including commit and build date.
func GetVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// GetNotice returns the author, copyright and license lines shown by --version.
func GetNotice() string {
	return fmt.Sprintf("Author: %s\nCopyright (c) %s\nLicense: %s", Author, Copyright, License)
}
