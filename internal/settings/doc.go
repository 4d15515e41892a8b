// Copyright (c) 2026 SweetBite
// SPDX-License-Identifier: MIT

// Package settings rewrites the email section of the backend settings module.
//
// The section is located in one of two ways. A block written by this package
// is wrapped in BEGIN/END marker comments and is always found by those
// markers. A hand-written section starts at a "# Email settings" comment and
// runs over the email assignments that follow it, up to the next blank line,
// top-level comment or unrelated declaration.
//
// Everything outside the located section is preserved byte for byte, and the
// file is replaced atomically so a failed write never truncates it.
package settings
