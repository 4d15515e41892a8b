// Copyright (c) 2026 SweetBite
// SPDX-License-Identifier: MIT

// Package config resolves the runtime options of the setup helper.
//
// Precedence is flags > environment > defaults. The loader only fills the
// defaults and environment layers; the command applies its flags on top.
package config

import (
	"fmt"
	"strings"
)

const (
	// DefaultSettingsPath is the backend settings module, relative to the repository root.
	DefaultSettingsPath = "backend/sweetbite_backend/settings.py"
	// DefaultSenderName is the display name used in DEFAULT_FROM_EMAIL.
	DefaultSenderName = "SweetBite Bakery"

	EnvSettingsPath = "GMAIL_SETUP_SETTINGS"
	EnvSenderName   = "GMAIL_SETUP_SENDER"
	EnvAppend       = "GMAIL_SETUP_APPEND"
	EnvLogLevel     = "LOG_LEVEL"
)

// Options are the effective settings for one run.
type Options struct {
	SettingsPath    string
	SenderName      string
	LogLevel        string
	AppendIfMissing bool
	DryRun          bool
}

// Defaults returns the built-in options.
func Defaults() Options {
	return Options{
		SettingsPath: DefaultSettingsPath,
		SenderName:   DefaultSenderName,
		LogLevel:     "warn",
	}
}

// Load returns the defaults overlaid with environment variables.
func Load() Options {
	def := Defaults()
	return Options{
		SettingsPath:    ParseString(EnvSettingsPath, def.SettingsPath),
		SenderName:      ParseString(EnvSenderName, def.SenderName),
		LogLevel:        ParseString(EnvLogLevel, def.LogLevel),
		AppendIfMissing: ParseBool(EnvAppend, def.AppendIfMissing),
	}
}

// Validate checks the options that the command cannot recover from.
func (o Options) Validate() error {
	if strings.TrimSpace(o.SettingsPath) == "" {
		return fmt.Errorf("%w: settings path", ErrEmptyOption)
	}
	if strings.TrimSpace(o.SenderName) == "" {
		return fmt.Errorf("%w: sender name", ErrEmptyOption)
	}
	if strings.ContainsAny(o.SenderName, "<>'\n") {
		return fmt.Errorf("%w: sender name %q", ErrInvalidOption, o.SenderName)
	}
	return nil
}
