package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version of the build. It can be overridden via ldflags.
	Version = "0.1.0"
	// Commit is the short git SHA embedded at build time (or "none").
	Commit = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

// Short returns only the semantic version string.
func Short() string {
	return Version
}

// Full returns the program name followed by version, commit, build time and platform.
func Full(program string) string {
	return fmt.Sprintf("%s %s (commit: %s, built at: %s, %s/%s)",
		program, Version, Commit, BuildTime, runtime.GOOS, runtime.GOARCH)
}

// Fields returns the build metadata as key/value pairs for structured logs.
func Fields() []any {
	return []any{"version", Version, "commit", Commit, "build_time", BuildTime}
}
