// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrCanceledByUser is returned when the user dismisses a dialog or
	// declines to continue.
	ErrCanceledByUser = errors.New("canceled by user")
	// ErrNoPassword is returned when the password dialog is accepted empty.
	ErrNoPassword = fmt.Errorf("%w: no password entered", ErrCanceledByUser)

	ErrClipboardEmpty    = errors.New("clipboard is empty or contains non-text data")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrInvalidConnection = errors.New("invalid connection")
	ErrEmptyServerInfo   = errors.New("server returned no data")
)
