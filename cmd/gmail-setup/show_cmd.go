// Copyright (c) 2026 SweetBite
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sweetbite/gmail-setup/internal/config"
	"github.com/sweetbite/gmail-setup/internal/settings"
)

// showOutput is the redacted view of the current email section.
type showOutput struct {
	Path    string         `yaml:"path" json:"path"`
	Section string         `yaml:"section" json:"section"`
	Values  map[string]any `yaml:"values" json:"values"`
}

func runShow(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gmail-setup show", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := config.Load()
	var format string
	fs.StringVar(&opts.SettingsPath, "settings", opts.SettingsPath, "path to the backend settings module")
	fs.StringVar(&format, "format", "yaml", "output format: yaml or json")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "yaml", "yml", "json":
	default:
		fmt.Fprintf(stderr, "Unsupported format: %s (use yaml or json)\n", format)
		return 2
	}

	ins, err := settings.ReadSection(opts.SettingsPath)
	if err != nil {
		fmt.Fprintf(stderr, "Cannot read email settings from %s:\n  %v\n", opts.SettingsPath, err)
		return 1
	}

	values, _ := config.MaskSecrets(ins.Values).(map[string]any)
	out := showOutput{
		Path:    ins.Path,
		Section: ins.Section.Kind.String(),
		Values:  values,
	}

	if format == "json" {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(stderr, "Failed to encode JSON: %v\n", err)
			return 1
		}
		return 0
	}

	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(stderr, "Failed to encode YAML: %v\n", err)
		return 1
	}
	if err := enc.Close(); err != nil {
		fmt.Fprintf(stderr, "Failed to encode YAML: %v\n", err)
		return 1
	}
	return 0
}
