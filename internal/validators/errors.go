// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID       = errors.New("invalid connection id")
	ErrInvalidClient   = errors.New("invalid remote client")
	ErrEmptyName       = errors.New("name is required")
	ErrNameTooLong     = errors.New("name is too long")
	ErrEmptyRemoteID   = errors.New("remote id is required")
	ErrRemoteIDTooLong = errors.New("remote id is too long")
	ErrEmptyPassword   = errors.New("password is required")
	ErrEmptyPath       = errors.New("executable path is required")
)
