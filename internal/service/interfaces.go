// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the user operations of the launcher: remote
// client connections, server checks, BackOffice deployment and the
// connection book.
//
// Services never talk to the terminal directly. Progress and messages go to
// a [Reporter]; questions to the user go through a [Prompter]. Both are
// implemented by the TUI and may be called from a background worker.
package service

import (
	"context"

	"github.com/MKhiriev/service-launcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=NotebookServiceWrapper

// Reporter receives the visible state of a running operation.
type Reporter interface {
	// Status replaces the status line with the localized message id.
	Status(level models.Level, id string, data map[string]any)
	// Progress sets the progress bar, 0..100.
	Progress(percent float64)
	// Output replaces the output area text.
	Output(text string)
}

// Prompter asks the user a modal question and blocks until it is answered.
// A dismissed dialog returns ErrCanceledByUser; ctx cancellation returns
// ctx.Err().
type Prompter interface {
	// Password asks for a masked password. An empty answer returns ErrNoPassword.
	Password(ctx context.Context, title, prompt string) (string, error)
	// ChooseProduct asks the user to choose between RMS and Chain.
	ChooseProduct(ctx context.Context, title, question string) (models.Product, error)
	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, title, question string) (bool, error)
}

// Localizer renders message ids in the active UI language.
type Localizer interface {
	T(id string, data ...map[string]any) string
}

// ClipboardReader reads text from the system clipboard.
type ClipboardReader interface {
	ReadText() (string, error)
}

// CacheCleaner removes a cache directory.
type CacheCleaner interface {
	Clean(dir string) (models.CleanupOutcome, error)
}

// IDGenerator produces identifiers for new book entries.
type IDGenerator interface {
	Generate() string
}

// InputService interprets the input line.
type InputService interface {
	// Classify decides whether raw is a URL or a remote-desktop ID.
	Classify(raw string) (models.ConnectionRequest, error)
	// Paste returns the trimmed clipboard text, cut to MaxPasteLength runes.
	Paste() (string, error)
}

// LaunchService runs the Launch action for whatever the user typed.
type LaunchService interface {
	Launch(ctx context.Context, raw string, opts models.LaunchOptions) error
}

// RemoteService connects to a remote-desktop ID with AnyDesk or LiteManager.
type RemoteService interface {
	Connect(ctx context.Context, req models.ConnectionRequest, opts models.LaunchOptions) error
}

// CheckService probes a server and prints what a launch would install.
type CheckService interface {
	Check(ctx context.Context, raw string) error
}

// DeployService prepares, configures and starts BackOffice for a server.
type DeployService interface {
	Deploy(ctx context.Context, req models.ConnectionRequest) error
}

// NotebookService manages the connection book.
type NotebookService interface {
	List(ctx context.Context, filter models.ConnectionFilter) ([]models.Connection, error)
	// Add assigns an ID and timestamps and stores c.
	Add(ctx context.Context, c models.Connection) (models.Connection, error)
	Update(ctx context.Context, c models.Connection) (models.Connection, error)
	Delete(ctx context.Context, id string) error
	// Select returns the entry whose RemoteID goes into the input line.
	Select(ctx context.Context, id string) (models.Connection, error)
	// ImportLegacy loads a notebook.json file into an empty book and returns
	// the number of imported entries.
	ImportLegacy(ctx context.Context, path string) (int, error)
}

// NotebookServiceWrapper decorates a NotebookService, e.g. with validation.
type NotebookServiceWrapper interface {
	Wrap(NotebookService) NotebookService
}
