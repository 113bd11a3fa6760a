// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the launcher.
//
// Background operations reach the screen through a [Bridge]: it implements
// the service Reporter and Prompter and turns every call into a Bubble Tea
// message. Prompts open a modal huh form and block the operation until the
// user answers or the operation is aborted.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/service-launcher/internal/locales"
	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/internal/service"
	"github.com/MKhiriev/service-launcher/internal/workers"
	"github.com/MKhiriev/service-launcher/models"
)

// Dependencies is everything the TUI needs from the application.
type Dependencies struct {
	Services   *service.Services
	Runner     *workers.Runner
	Bridge     *Bridge
	Translator *locales.Translator
	Logger     *logger.Logger

	// ConfigPath is where the language choice is saved.
	ConfigPath    string
	InitialTarget string
	LoadWarning   error
	// Notice, when set, is the first status line shown.
	Notice    *Notice
	BuildInfo models.BuildInfo
}

// Notice is a status line prepared before the window opens.
type Notice struct {
	Level models.Level
	ID    string
	Data  map[string]any
}

type TUI struct {
	deps Dependencies
}

func New(deps Dependencies) (*TUI, error) {
	if deps.Services == nil || deps.Runner == nil || deps.Bridge == nil || deps.Translator == nil {
		return nil, ErrMissingDependency
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	return &TUI{deps: deps}, nil
}

// Run shows the launcher window until the user quits. An operation still
// running at that point is aborted.
func (t *TUI) Run(ctx context.Context) error {
	main := newMainLoopModel(ctx, t.deps)
	book := newBookModel(ctx, t.deps.Services.Notebook, t.deps.Translator)
	root := newRootModel(main, book, t.deps)

	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	t.deps.Bridge.Attach(p)
	defer t.deps.Bridge.Detach()

	_, runErr := p.Run()

	if t.deps.Runner.Abort() && !t.deps.Runner.Wait(exitWaitTimeout) {
		t.deps.Logger.Warn().Str("func", "TUI.Run").Str("operation", t.deps.Runner.Current()).
			Msg("operation did not stop before exit")
		if runErr == nil {
			runErr = ErrOperationStillRunning
		}
	}
	return runErr
}
