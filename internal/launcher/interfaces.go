// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package launcher starts external programs and inspects running processes.
//
// [Launcher] resolves a [models.LaunchRequest] for a remote-desktop client
// into a command line and spawns it through a [Spawner]. [ProcessManager]
// answers "is X running" and stops a process together with its children.
package launcher

import (
	"context"

	"github.com/MKhiriev/service-launcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/launcher_mock.go -package=mock

// Command describes one process start.
type Command struct {
	Path string
	Args []string
	// Dir is the working directory. Empty means the caller's directory.
	Dir string
	// Stdin, when not empty, is written to the child's standard input.
	Stdin string
}

// Spawner starts a process and returns its PID without waiting for it.
type Spawner interface {
	Start(ctx context.Context, cmd Command) (int, error)
}

// RemoteLauncher launches a remote-desktop client for a target ID.
type RemoteLauncher interface {
	// Launch validates the executable path and spawns the client. It returns
	// a *ConfigError for an empty or missing path and a *LaunchError when the
	// operating system refuses to start the process.
	Launch(ctx context.Context, req models.LaunchRequest) (models.LaunchResult, error)
}

// ProcessInspector reports and terminates running processes.
type ProcessInspector interface {
	// IsRunning reports whether a process with any of names is alive.
	// Names are compared case-insensitively.
	IsRunning(ctx context.Context, names ...string) (bool, error)

	// Stop kills pid and its direct children. A process that has already
	// exited counts as stopped.
	Stop(ctx context.Context, pid int) error
}
