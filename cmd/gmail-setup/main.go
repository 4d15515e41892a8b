// Copyright (c) 2026 SweetBite
// SPDX-License-Identifier: MIT

// gmail-setup configures the SweetBite backend to send real email through Gmail SMTP.
//
// Usage:
//
//	gmail-setup [-settings path] [-append] [-dry-run] [-sender name]
//	gmail-setup show [-settings path] [-format yaml|json]
//
// The interactive flow always exits 0; when the settings file cannot be
// patched it prints the lines to paste in by hand. Exit code 2 is reserved
// for usage errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/sweetbite/gmail-setup/internal/config"
	xglog "github.com/sweetbite/gmail-setup/internal/log"
	"github.com/sweetbite/gmail-setup/internal/prompt"
	"github.com/sweetbite/gmail-setup/internal/settings"
	"github.com/sweetbite/gmail-setup/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "show":
			return runShow(args[1:], stdout, stderr)
		case "help", "-h", "-help", "--help":
			printUsage(stderr)
			return 0
		}
	}

	opts := config.Load()

	fs := flag.NewFlagSet("gmail-setup", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }

	var showVersion bool
	fs.StringVar(&opts.SettingsPath, "settings", opts.SettingsPath, "path to the backend settings module ($"+config.EnvSettingsPath+")")
	fs.StringVar(&opts.SenderName, "sender", opts.SenderName, "display name for DEFAULT_FROM_EMAIL ($"+config.EnvSenderName+")")
	fs.BoolVar(&opts.AppendIfMissing, "append", opts.AppendIfMissing, "append the email block when no email settings section exists ($"+config.EnvAppend+")")
	fs.BoolVar(&opts.DryRun, "dry-run", false, "show what would be written without touching the file")
	fs.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "log level: debug, info, warn, error ($"+config.EnvLogLevel+")")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Unknown subcommand: %s\n\n", fs.Arg(0))
		printUsage(stderr)
		return 2
	}
	if showVersion {
		fmt.Fprintln(stdout, version.String())
		return 0
	}
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	xglog.Configure(xglog.Config{
		Level:   opts.LogLevel,
		Output:  stderr,
		Version: version.Version,
	})
	ctx := xglog.ContextWithRunID(context.Background(), uuid.NewString())

	patcher := settings.NewPatcher(settings.Options{
		Sender:          opts.SenderName,
		AppendIfMissing: opts.AppendIfMissing,
		DryRun:          opts.DryRun,
	})
	setup(ctx, opts, patcher, prompt.New(stdin, stdout), newConsole(stdout))
	return 0
}

// setup runs the interactive flow. Every outcome is reported on the console;
// none of them is fatal.
func setup(ctx context.Context, opts config.Options, patcher *settings.Patcher, p *prompt.Prompter, ui *console) {
	logger := xglog.WithComponentFromContext(ctx, "cli")

	ui.banner()

	email, err := p.Email()
	if err != nil {
		logger.Warn().Err(err).Str(xglog.FieldEvent, "prompt.email_failed").Msg("could not read email")
	}
	if email == "" {
		ui.fail("Email address is required!")
		return
	}

	password, err := p.AppPassword()
	if err != nil {
		logger.Warn().Err(err).Str(xglog.FieldEvent, "prompt.password_failed").Msg("could not read app password")
	}
	if password == "" {
		ui.fail("App password is required!")
		return
	}

	creds := settings.NewCredentials(email, password)

	res, err := patcher.Patch(ctx, opts.SettingsPath, creds)
	if err == nil && !res.Status.Applied() {
		err = fmt.Errorf("%w in %s", settings.ErrSectionNotFound, opts.SettingsPath)
	}
	if err != nil {
		logger.Error().
			Err(err).
			Str(xglog.FieldEvent, "setup.failed").
			Str(xglog.FieldPath, opts.SettingsPath).
			Msg("settings not updated")
		ui.manualFallback(err, opts.SettingsPath, settings.ManualLines(creds, opts.SenderName))
		return
	}

	switch {
	case res.DryRun:
		masked := settings.Credentials{Email: creds.Email, AppPassword: "***"}
		ui.dryRun(opts.SettingsPath, res.Status, settings.Render(masked, opts.SenderName))
	case res.Status == settings.StatusUnchanged:
		ui.unchanged(opts.SettingsPath)
	default:
		ui.updated(opts.SettingsPath, res.Status)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  gmail-setup [-settings path] [-append] [-dry-run] [-sender name] [-log-level level]")
	fmt.Fprintln(w, "  gmail-setup show [-settings path] [-format yaml|json]")
	fmt.Fprintln(w, "  gmail-setup -version")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Default settings path: %s\n", config.DefaultSettingsPath)
}

// errorText flattens an error for the one-line failure message.
func errorText(err error) string {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) && errors.Is(err, os.ErrNotExist) {
		return fmt.Sprintf("no such file: %s", pathErr.Path)
	}
	return strings.TrimSpace(err.Error())
}
