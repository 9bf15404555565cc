// Package version holds build-time version metadata.
package version

// Version information (overridden via ldflags during release builds)
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// GitCommit is the git commit SHA of the build.
	GitCommit = "unknown"
	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)
