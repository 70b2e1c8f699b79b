// Package version exposes build metadata for the alarm clock binaries.
//
// Version, Commit and BuildTime are injected via -ldflags -X at build time.
package version
