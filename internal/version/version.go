// Package version provides build-time version information.
package version

import "fmt"

// These variables are set at build time via ldflags:
//
//	-X github.com/open-cli-collective/shortcode-cli/internal/version.Version=v1.2.3
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the version line printed by --version.
func String() string {
	return fmt.Sprintf("shortcode version %s (commit: %s, built: %s)", Version, Commit, Date)
}
