// Copyright (c) 2026 SweetBite
// SPDX-License-Identifier: MIT

//go:build !windows

package settings

import (
	"context"
	"fmt"

	"github.com/google/renameio/v2"

	xglog "github.com/sweetbite/gmail-setup/internal/log"
)

// writeAtomic replaces path with data: temp file, fsync, rename. The original
// file mode is kept. On failure the original file is left untouched.
func writeAtomic(ctx context.Context, path string, data []byte) error {
	logger := xglog.WithComponentFromContext(ctx, "settings")

	// renameio handles: temp file creation, fsync, atomic rename, cleanup on error
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("create pending settings file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending settings file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write settings data: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace settings file: %w", err)
	}

	logger.Debug().Str(xglog.FieldPath, path).Int("bytes", len(data)).Msg("wrote settings file")
	return nil
}
