// Copyright (c) 2026 SweetBite
// SPDX-License-Identifier: MIT

package settings

import (
	"fmt"
	"strings"
)

const (
	SMTPBackend = "django.core.mail.backends.smtp.EmailBackend"
	GmailHost   = "smtp.gmail.com"
	GmailPort   = 587

	// HeadingPrefix starts every email settings section, hand-written or generated.
	HeadingPrefix = "# Email settings"
	Heading       = HeadingPrefix + " - Real email sending via Gmail SMTP"

	BeginMarker = "# BEGIN gmail-setup managed email settings"
	EndMarker   = "# END gmail-setup managed email settings"
)

// Render returns the Gmail SMTP section for creds, without a trailing newline.
func Render(creds Credentials, sender string) string {
	return strings.Join(renderLines(creds, sender), "\n")
}

func renderLines(creds Credentials, sender string) []string {
	return []string{
		Heading,
		fmt.Sprintf("EMAIL_BACKEND = '%s'", SMTPBackend),
		fmt.Sprintf("EMAIL_HOST = '%s'", GmailHost),
		fmt.Sprintf("EMAIL_PORT = %d", GmailPort),
		"EMAIL_USE_TLS = True",
		fmt.Sprintf("EMAIL_HOST_USER = '%s'", creds.Email),
		fmt.Sprintf("EMAIL_HOST_PASSWORD = '%s'", creds.AppPassword),
		fmt.Sprintf("DEFAULT_FROM_EMAIL = '%s'", FromAddress(creds, sender)),
		fmt.Sprintf("SERVER_EMAIL = '%s'", creds.Email),
	}
}

// FromAddress formats the DEFAULT_FROM_EMAIL value.
func FromAddress(creds Credentials, sender string) string {
	return fmt.Sprintf("%s <%s>", sender, creds.Email)
}

// renderManaged wraps the section in marker comments using the document's line ending.
func renderManaged(creds Credentials, sender, eol string) string {
	lines := make([]string, 0, 11)
	lines = append(lines, BeginMarker)
	lines = append(lines, renderLines(creds, sender)...)
	lines = append(lines, EndMarker)
	return strings.Join(lines, eol)
}

// ManualLines are the assignments an operator pastes by hand when patching fails.
func ManualLines(creds Credentials, sender string) []string {
	return []string{
		fmt.Sprintf("EMAIL_HOST_USER = '%s'", creds.Email),
		fmt.Sprintf("EMAIL_HOST_PASSWORD = '%s'", creds.AppPassword),
		fmt.Sprintf("DEFAULT_FROM_EMAIL = '%s'", FromAddress(creds, sender)),
	}
}

func lineEnding(content string) string {
	if strings.Contains(content, "\r\n") {
		return "\r\n"
	}
	return "\n"
}
