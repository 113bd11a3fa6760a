// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the input is blank after trimming.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidMask is returned by NewClassifier for an unusable LiteManager
	// id mask.
	ErrInvalidMask = errors.New("invalid litemanager id mask")
)

// ParseError reports input that is neither a remote-desktop id nor a server
// address.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("failed to parse %q", e.Input)
	}
	return fmt.Sprintf("failed to parse %q: %s", e.Input, e.Reason)
}
