// Package version exposes build metadata of the fitforge binary.
package version

import "fmt"

// Build-time variables injected via -ldflags.
// Development builds keep the defaults.
var (
	Version = "v0.1.0-dev"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetCommit returns the build commit hash.
func GetCommit() string {
	return Commit
}

// GetDate returns the build date.
func GetDate() string {
	return Date
}

// GetFullVersion returns a formatted full version string.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}

// UserAgent returns the User-Agent sent with every API request.
func UserAgent() string {
	return "fitforge-cli/" + Version
}
