// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/atotto/clipboard"

// Clipboard reads the system clipboard through atotto/clipboard.
type Clipboard struct {
	read func() (string, error)
}

// NewClipboard returns a Clipboard bound to the system clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{read: clipboard.ReadAll}
}

// ReadText returns the clipboard text. Non-text content and an unavailable
// clipboard both surface as an error from the underlying utility.
func (c *Clipboard) ReadText() (string, error) {
	return c.read()
}

// Unsupported reports whether the platform has no clipboard utility.
func (c *Clipboard) Unsupported() bool {
	return clipboard.Unsupported
}
