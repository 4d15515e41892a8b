// Copyright (c) 2026 SweetBite
// SPDX-License-Identifier: MIT

package settings

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/sweetbite/gmail-setup/internal/fsutil"
)

// Inspection is the current email section of a settings file.
type Inspection struct {
	Path    string
	Section Section
	Values  map[string]string
}

// ReadSection locates the email section of the file at path and parses its assignments.
func ReadSection(path string) (Inspection, error) {
	ins := Inspection{Path: path}
	if err := fsutil.IsRegularFile(path); err != nil {
		return ins, fmt.Errorf("open settings: %w", err)
	}
	// #nosec G304 -- operator-supplied settings path
	raw, err := os.ReadFile(path)
	if err != nil {
		return ins, fmt.Errorf("read settings: %w", err)
	}
	if !utf8.Valid(raw) {
		return ins, fmt.Errorf("%w: %s", ErrNotText, path)
	}
	content := string(raw)

	sec, err := Locate(content)
	if err != nil {
		return ins, err
	}
	ins.Section = sec
	ins.Values = ParseAssignments(sec.Text(content))
	return ins, nil
}

// ParseAssignments maps each top-level "KEY = value" line to its value with
// surrounding quotes removed. Comments and continuation lines are skipped.
func ParseAssignments(text string) map[string]string {
	values := make(map[string]string)
	for _, l := range splitLines(text) {
		raw := l.text(text)
		if raw == "" || raw[0] == ' ' || raw[0] == '\t' {
			continue
		}
		key, ok := assignmentKey(raw)
		if !ok {
			continue
		}
		value := strings.TrimSpace(raw[strings.IndexByte(raw, '=')+1:])
		values[key] = unquote(value)
	}
	return values
}

func unquote(v string) string {
	if len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if (first == '\'' || first == '"') && first == last {
			return v[1 : len(v)-1]
		}
	}
	return v
}
