// Copyright (c) 2026 SweetBite
// SPDX-License-Identifier: MIT

package settings

import "strings"

// Credentials are the Gmail account and app password embedded into the section.
type Credentials struct {
	Email       string
	AppPassword string
}

// NewCredentials trims surrounding whitespace. Inner spaces of an app
// password ("abcd efgh ijkl mnop") are kept.
func NewCredentials(email, appPassword string) Credentials {
	return Credentials{
		Email:       strings.TrimSpace(email),
		AppPassword: strings.TrimSpace(appPassword),
	}
}

// Validate only checks presence; the address shape is not verified.
func (c Credentials) Validate() error {
	if c.Email == "" {
		return ErrMissingEmail
	}
	if c.AppPassword == "" {
		return ErrMissingPassword
	}
	return nil
}
