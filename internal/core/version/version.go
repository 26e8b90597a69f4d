// Package version provides information about the build version of the tool.
package version

// BuildInfo holds version information about the build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'maidata/internal/core/version.version=v0.1.0'
	// -X 'maidata/internal/core/version.commit=abcd' -X 'maidata/internal/core/version.date=2026-08-29'"
	return BuildInfo{
		Service: "maidata",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// String renders a short single-line version string for CLI --version output
func (b BuildInfo) String() string {
	return b.Service + " " + b.Version + " (" + b.Commit + " " + b.Date + ")"
}
