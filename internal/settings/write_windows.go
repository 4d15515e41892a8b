// Copyright (c) 2026 SweetBite
// SPDX-License-Identifier: MIT

//go:build windows

package settings

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	xglog "github.com/sweetbite/gmail-setup/internal/log"
)

// writeAtomic replaces path using temp file + rename.
// Note: Windows doesn't support atomic rename with fsync like Unix
func writeAtomic(ctx context.Context, path string, data []byte) error {
	logger := xglog.WithComponentFromContext(ctx, "settings")

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	// Create temp file in same directory for atomic rename
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".gmail-setup-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("write settings data: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("sync temp settings file: %w", err)
	}

	// Close before rename (Windows requires this)
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp settings file: %w", err)
	}
	tmpFile = nil // Prevent double close in defer

	if err := os.Chmod(tmpPath, mode); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod temp settings file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename settings file: %w", err)
	}

	logger.Debug().Str(xglog.FieldPath, path).Msg("wrote settings file")
	return nil
}
