// Copyright (c) 2026 SweetBite
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/sweetbite/gmail-setup/internal/settings"
)

// console prints the operator-facing text. Colours are only used on a terminal.
type console struct {
	out  io.Writer
	good *color.Color
	bad  *color.Color
	note *color.Color
}

func newConsole(out io.Writer) *console {
	c := &console{
		out:  out,
		good: color.New(color.FgGreen, color.Bold),
		bad:  color.New(color.FgRed, color.Bold),
		note: color.New(color.FgYellow),
	}
	if f, ok := out.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		c.good.DisableColor()
		c.bad.DisableColor()
		c.note.DisableColor()
	}
	return c
}

func (c *console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *console) banner() {
	c.println("🍰 SweetBite Gmail Setup for Password Reset")
	c.println(strings.Repeat("=", 50))
	c.println()
	c.println("The password reset is currently working with console emails.")
	c.println("To send REAL emails to users, you need to configure your Gmail account.")
	c.println()
	c.println("📋 Step-by-Step Setup:")
	c.println()
	c.println("1. Go to https://myaccount.google.com/security")
	c.println("2. Enable '2-Step Verification' if not already enabled")
	c.println("3. Go to 'App passwords' under 2-Step Verification")
	c.println("4. Select 'Mail' and create a new app password")
	c.println("5. Copy the 16-character password (e.g., 'abcd efgh ijkl mnop')")
	c.println()
}

func (c *console) fail(msg string) {
	c.bad.Fprintln(c.out, "❌ "+msg)
}

func (c *console) updated(path string, status settings.Status) {
	if status == settings.StatusAppended {
		c.good.Fprintf(c.out, "✅ Added Gmail email settings to the end of %s\n", path)
	} else {
		c.good.Fprintf(c.out, "✅ Updated %s with your Gmail credentials\n", path)
	}
	c.nextSteps()
}

func (c *console) unchanged(path string) {
	c.good.Fprintf(c.out, "✅ %s already uses these Gmail credentials, nothing to change\n", path)
	c.nextSteps()
}

func (c *console) dryRun(path string, status settings.Status, block string) {
	c.note.Fprintf(c.out, "📝 Dry run: %s would be %s (file not modified)\n", path, status)
	c.println()
	c.println(block)
}

func (c *console) nextSteps() {
	c.println()
	c.println("🔄 Next steps:")
	c.println("1. Restart your Django server (Ctrl+C then npm run dev)")
	c.println("2. Test password reset at /forgot-password")
	c.println("3. Check your email inbox for the reset link")
	c.println()
	c.note.Fprintln(c.out, "⚠️  Important:")
	c.println("- Never share your app password")
	c.println("- Keep your Gmail account secure")
	c.println("- The app password is only for this application")
}

// manualFallback prints the failure and the literal lines to paste by hand.
func (c *console) manualFallback(err error, path string, lines []string) {
	c.fail("Failed to update settings: " + errorText(err))
	c.println()
	c.println("Manual setup:")
	c.println("1. Open " + path)
	c.println("2. Replace the email settings with:")
	for _, l := range lines {
		c.println("   " + l)
	}
}
