// Copyright (c) 2026 SweetBite
// SPDX-License-Identifier: MIT

package settings

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/sweetbite/gmail-setup/internal/config"
	"github.com/sweetbite/gmail-setup/internal/fsutil"
	xglog "github.com/sweetbite/gmail-setup/internal/log"
)

// Status is the outcome of a patch.
type Status string

const (
	// StatusPatched means the section was replaced.
	StatusPatched Status = "patched"
	// StatusAppended means no section existed and a managed block was appended.
	StatusAppended Status = "appended"
	// StatusUnchanged means the section already held exactly these values; nothing was written.
	StatusUnchanged Status = "unchanged"
	// StatusNoMatch means no section existed and nothing was written.
	StatusNoMatch Status = "no_match"
)

// Applied reports whether the file now carries the requested credentials.
func (s Status) Applied() bool {
	return s == StatusPatched || s == StatusAppended || s == StatusUnchanged
}

// Result describes what Patch did.
type Result struct {
	Status  Status
	Path    string
	Section Section
	// DryRun is set when the write was skipped on request.
	DryRun bool
}

// Options configure a Patcher.
type Options struct {
	// Sender is the display name in DEFAULT_FROM_EMAIL.
	Sender string
	// AppendIfMissing appends a managed block when no section exists.
	AppendIfMissing bool
	// DryRun computes the result without writing.
	DryRun bool
	// WriteFile replaces the file contents. Nil means an atomic replace.
	WriteFile func(ctx context.Context, path string, data []byte) error
}

// Patcher rewrites the email section of a settings file.
type Patcher struct {
	opts Options
}

// NewPatcher creates a Patcher. An empty sender falls back to the default display name.
func NewPatcher(opts Options) *Patcher {
	if strings.TrimSpace(opts.Sender) == "" {
		opts.Sender = config.DefaultSenderName
	}
	if opts.WriteFile == nil {
		opts.WriteFile = writeAtomic
	}
	return &Patcher{opts: opts}
}

// Apply rewrites content in memory. On StatusNoMatch the content is returned unchanged.
func (p *Patcher) Apply(content string, creds Credentials) (string, Result, error) {
	if err := creds.Validate(); err != nil {
		return content, Result{}, err
	}

	eol := lineEnding(content)
	block := renderManaged(creds, p.opts.Sender, eol)

	sec, err := Locate(content)
	switch {
	case errors.Is(err, ErrSectionNotFound):
		if !p.opts.AppendIfMissing {
			return content, Result{Status: StatusNoMatch}, nil
		}
		var b strings.Builder
		b.Grow(len(content) + len(block) + 2*len(eol))
		b.WriteString(content)
		if content != "" && !strings.HasSuffix(content, "\n") {
			b.WriteString(eol)
		}
		if content != "" {
			b.WriteString(eol)
		}
		start := b.Len()
		b.WriteString(block)
		end := b.Len()
		b.WriteString(eol)
		return b.String(), Result{
			Status:  StatusAppended,
			Section: Section{Start: start, End: end, Kind: SectionManaged},
		}, nil
	case err != nil:
		return content, Result{}, err
	}

	out := content[:sec.Start] + block + content[sec.End:]
	res := Result{
		Status:  StatusPatched,
		Section: Section{Start: sec.Start, End: sec.Start + len(block), Kind: sec.Kind},
	}
	if out == content {
		res.Status = StatusUnchanged
	}
	return out, res, nil
}

// Patch rewrites the email section of the file at path. Credentials are
// checked before the file is touched. The file is only written when the
// content changes, and then atomically.
func (p *Patcher) Patch(ctx context.Context, path string, creds Credentials) (Result, error) {
	logger := xglog.WithComponentFromContext(ctx, "settings")
	res := Result{Path: path, DryRun: p.opts.DryRun}

	if err := creds.Validate(); err != nil {
		return res, err
	}
	if err := fsutil.IsRegularFile(path); err != nil {
		return res, fmt.Errorf("open settings: %w", err)
	}
	target, err := fsutil.ResolveTarget(path)
	if err != nil {
		return res, err
	}

	// #nosec G304 -- operator-supplied settings path
	raw, err := os.ReadFile(target)
	if err != nil {
		return res, fmt.Errorf("read settings: %w", err)
	}
	if !utf8.Valid(raw) {
		return res, fmt.Errorf("%w: %s", ErrNotText, path)
	}

	out, applied, err := p.Apply(string(raw), creds)
	if err != nil {
		logger.Warn().
			Err(err).
			Str(xglog.FieldEvent, "settings.locate_failed").
			Str(xglog.FieldPath, path).
			Msg("could not locate email settings")
		return res, err
	}
	res.Status = applied.Status
	res.Section = applied.Section

	level := zerolog.InfoLevel
	switch res.Status {
	case StatusNoMatch:
		level = zerolog.WarnLevel
	case StatusPatched, StatusAppended:
		if !p.opts.DryRun {
			if err := p.opts.WriteFile(ctx, target, []byte(out)); err != nil {
				logger.Error().
					Err(err).
					Str(xglog.FieldEvent, "settings.write_failed").
					Str(xglog.FieldPath, path).
					Msg("settings file left unchanged")
				return res, fmt.Errorf("write settings: %w", err)
			}
		}
	}

	logger.WithLevel(level).
		Str(xglog.FieldEvent, "settings."+string(res.Status)).
		Str(xglog.FieldPath, path).
		Str(xglog.FieldSectionKind, res.Section.Kind.String()).
		Str(xglog.FieldEmail, config.MaskEmail(creds.Email)).
		Bool("dry_run", p.opts.DryRun).
		Msg("email settings processed")

	return res, nil
}
