// Copyright (c) 2026 SweetBite
// SPDX-License-Identifier: MIT

package version

var (
	// Version is the current application version.
	// It should be populated by the build system (ldflags).
	Version = "v0.3.0"

	// Commit is the git short hash of the build.
	Commit = "unknown"

	// Date is the build timestamp.
	Date = "unknown"
)

// String formats the build metadata for -version output.
func String() string {
	return Version + " (commit: " + Commit + ", built: " + Date + ")"
}
