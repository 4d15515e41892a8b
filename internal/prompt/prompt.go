// Copyright (c) 2026 SweetBite
// SPDX-License-Identifier: MIT

// Package prompt reads the operator's answers from an interactive session.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	EmailPrompt    = "Enter your Gmail address (e.g., yourname@gmail.com): "
	PasswordHint   = "Enter the 16-character app password from step 5:"
	PasswordPrompt = "App password: "
)

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// readSecret reads without echo; nil when in is not a terminal.
	readSecret func() ([]byte, error)
}

// New creates a Prompter. When in is a terminal, secrets are read without echo.
func New(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{in: bufio.NewReader(in), out: out}
	if f, ok := in.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			p.readSecret = func() ([]byte, error) { return term.ReadPassword(fd) }
		}
	}
	return p
}

// Email asks for the Gmail address.
func (p *Prompter) Email() (string, error) {
	fmt.Fprint(p.out, EmailPrompt)
	return p.line()
}

// AppPassword asks for the app password. Inner spaces are kept.
func (p *Prompter) AppPassword() (string, error) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, PasswordHint)
	fmt.Fprint(p.out, PasswordPrompt)
	// Typed-ahead input already sits in the buffer where the raw terminal
	// read cannot see it, so it is consumed as a plain line.
	if p.readSecret == nil || p.in.Buffered() > 0 {
		return p.line()
	}
	secret, err := p.readSecret()
	// The terminal swallowed the newline along with the echo.
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read app password: %w", err)
	}
	return strings.TrimSpace(string(secret)), nil
}

// line reads one line. End of input counts as an empty answer.
func (p *Prompter) line() (string, error) {
	s, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(s), nil
}
