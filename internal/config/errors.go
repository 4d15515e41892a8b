// Copyright (c) 2026 SweetBite
// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	ErrEmptyOption   = errors.New("option must not be empty")
	ErrInvalidOption = errors.New("invalid option")
)
