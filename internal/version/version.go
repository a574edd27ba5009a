// Package version reports build metadata for swatch.
// Values are injected with -ldflags "-X github.com/jmylchreest/swatch/internal/version.<Var>=...".
package version

import (
	"fmt"
	"runtime"
)

const unknown = "unknown"

var (
	// Version is the semantic version, e.g. "1.2.0".
	Version = "dev"

	// Commit is the git commit hash of the build.
	Commit = unknown

	// Date is the build date in RFC3339 format.
	Date = unknown
)

// Info holds all version information for the application.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns all version information as a structured type.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// shortCommit trims a commit hash to 8 characters.
func shortCommit(c string) string {
	if len(c) > 8 {
		return c[:8]
	}
	return c
}

// String returns a human-readable version string.
func (i Info) String() string {
	if i.Commit != unknown && i.Date != unknown {
		return fmt.Sprintf("swatch version %s (commit: %s, built: %s, %s, %s)",
			i.Version, shortCommit(i.Commit), i.Date, i.GoVersion, i.Platform)
	}
	return fmt.Sprintf("swatch version %s (%s, %s)", i.Version, i.GoVersion, i.Platform)
}

// String returns the human-readable version string for this build.
func String() string {
	return GetInfo().String()
}

// Short returns a short version string suitable for CLI output.
func Short() string {
	return Version
}
