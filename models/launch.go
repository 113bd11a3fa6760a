// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RemoteClient names a supported remote-desktop client application.
type RemoteClient string

const (
	ClientAnyDesk     RemoteClient = "AnyDesk"
	ClientLiteManager RemoteClient = "LiteManager"
)

// Valid reports whether c is one of the known clients.
func (c RemoteClient) Valid() bool {
	return c == ClientAnyDesk || c == ClientLiteManager
}

// LaunchRequest describes one remote-desktop client start.
type LaunchRequest struct {
	Client         RemoteClient
	ExecutablePath string
	TargetID       string
	Password       string
}

// LaunchResult is produced by the process launcher and consumed for display.
// ProcessID is zero when the launch failed; Error then carries the reason.
type LaunchResult struct {
	ExecutablePath string
	ProcessID      int
	Error          string
}

// Succeeded reports whether a process was started.
func (r LaunchResult) Succeeded() bool {
	return r.ProcessID > 0 && r.Error == ""
}

// LaunchOptions carries the modifiers of a Launch key press.
type LaunchOptions struct {
	// ResetCache requests removal of the AnyDesk cache before connecting.
	ResetCache bool
}
