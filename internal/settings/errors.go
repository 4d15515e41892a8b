// Copyright (c) 2026 SweetBite
// SPDX-License-Identifier: MIT

package settings

import "errors"

var (
	ErrMissingEmail    = errors.New("email address is required")
	ErrMissingPassword = errors.New("app password is required")

	// ErrSectionNotFound means neither a managed block nor an email settings heading exists.
	ErrSectionNotFound = errors.New("email settings section not found")
	// ErrAmbiguousSection means more than one candidate section exists; nothing is rewritten.
	ErrAmbiguousSection = errors.New("multiple email settings sections found")
	// ErrUnterminatedSection means a BEGIN marker has no matching END marker.
	ErrUnterminatedSection = errors.New("managed email settings block has no end marker")
	// ErrNotText classifies settings files that are not valid UTF-8.
	ErrNotText = errors.New("settings file is not valid UTF-8 text")
)
