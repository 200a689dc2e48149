// SPDX-License-Identifier: MIT

// Package buildinfo carries version metadata set at link time with
// -ldflags "-X github.com/katalvlaran/stationary/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the build metadata for the version command.
func String() string {
	return fmt.Sprintf("gthsolve %s (commit=%s, date=%s)", Version, Commit, Date)
}
