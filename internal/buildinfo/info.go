// Package buildinfo carries the version identifiers stamped into the
// binary via -ldflags at release time.
package buildinfo

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
