// Copyright (c) 2026 SweetBite
// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldService   = "service"
	FieldVersion   = "version"
	FieldComponent = "component"
	FieldRunID     = "run_id"
	FieldEvent     = "event"

	// Settings fields
	FieldPath        = "path"
	FieldStatus      = "status"
	FieldSectionKind = "section_kind"
	FieldEmail       = "email"
)
