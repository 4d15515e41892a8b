// Copyright (c) 2026 SweetBite
// SPDX-License-Identifier: MIT

package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// IsRegularFile checks if path exists and is a regular file (not directory, device, etc).
// Returns error if not.
func IsRegularFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("not a regular file: %s", path)
	}
	return nil
}

// ResolveTarget follows symlinks so an atomic replace lands on the real file
// instead of replacing the link itself.
func ResolveTarget(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return resolved, nil
}
