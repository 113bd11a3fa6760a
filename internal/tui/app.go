// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/service-launcher/internal/locales"
	"github.com/MKhiriev/service-launcher/internal/workers"
	"github.com/MKhiriev/service-launcher/models"
)

// exitWaitTimeout bounds how long an exit waits for the aborted operation.
const exitWaitTimeout = 5 * time.Second

type screen int

const (
	screenMain screen = iota
	screenBook
	screenAbout
)

// RootModel is the TUI router:
// 1) keeps the active screen
// 2) owns the modal dialog, which gets every key while open
// 3) confirms exit while an operation runs
// 4) delegates all other messages to the active screen
type RootModel struct {
	main      mainLoopModel
	book      bookModel
	buildInfo models.BuildInfo

	runner *workers.Runner
	tr     *locales.Translator

	current screen
	dialog  *dialog
	exiting bool
}

func newRootModel(main mainLoopModel, book bookModel, deps Dependencies) RootModel {
	return RootModel{
		main:      main,
		book:      book,
		buildInfo: deps.BuildInfo,
		runner:    deps.Runner,
		tr:        deps.Translator,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.main.input.Value() == "" {
		return nil
	}
	return func() tea.Msg { return autoLaunchMsg{} }
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.main.setSize(msg.Width, msg.Height)
		r.book.setSize(msg.Width, msg.Height)
		return r, nil

	case statusMsg, progressMsg, outputMsg, operationDoneMsg, languageSavedMsg:
		r.main, cmd = r.main.Update(msg)
		return r, cmd

	case promptMsg:
		// An open exit question gives way to the operation's own prompt.
		r.dialog = newPromptDialog(msg, r.tr)
		return r, r.dialog.init()

	case promptCancelMsg:
		if r.dialog != nil && r.dialog.reply == msg.reply {
			r.dialog = nil
		}
		return r, nil

	case autoLaunchMsg:
		r.main.launch(models.LaunchOptions{})
		return r, nil

	case navigateMsg:
		r.current = msg.screen
		if msg.screen == screenBook {
			return r, r.book.load()
		}
		return r, nil

	case inputSelectedMsg:
		if msg.err != nil {
			r.book.showError(msg.err)
			return r, nil
		}
		r.main.input.SetValue(msg.conn.RemoteID)
		r.main.input.CursorEnd()
		r.main.setStatus(models.LevelInfo, locales.MsgBookSelected,
			map[string]any{"Name": msg.conn.Name, "ID": msg.conn.RemoteID})
		r.current = screenMain
		return r, nil

	case confirmDeleteMsg:
		r.dialog = newDeleteDialog(msg.conn, r.tr)
		return r, r.dialog.init()

	case bookLoadedMsg, bookSavedMsg, bookDeletedMsg:
		r.book, cmd = r.book.Update(msg)
		return r, cmd

	case exitReadyMsg:
		return r, tea.Quit

	case tea.KeyMsg:
		return r.updateKey(msg)
	}

	if r.dialog != nil {
		return r.updateDialog(msg)
	}
	return r.updateScreen(msg)
}

func (r RootModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if r.exiting {
		return r, nil
	}
	if r.dialog != nil {
		return r.updateDialog(msg)
	}

	switch r.current {
	case screenMain:
		if key.Matches(msg, keys.exit) {
			return r.requestExit()
		}
	case screenAbout:
		if key.Matches(msg, keys.forceQuit) {
			return r.requestExit()
		}
		if key.Matches(msg, keys.back) {
			r.current = screenMain
		}
		return r, nil
	case screenBook:
		if key.Matches(msg, keys.forceQuit) {
			return r.requestExit()
		}
	}
	return r.updateScreen(msg)
}

func (r RootModel) updateScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch r.current {
	case screenMain:
		r.main, cmd = r.main.Update(msg)
	case screenBook:
		r.book, cmd = r.book.Update(msg)
	}
	return r, cmd
}

func (r RootModel) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, cmd := r.dialog.update(msg)
	if !done {
		return r, cmd
	}

	d := r.dialog
	r.dialog = nil
	confirmed := !d.aborted() && d.yes

	switch d.kind {
	case dialogExit:
		if confirmed {
			r.exiting = true
			r.main.setStatus(models.LevelWarning, locales.MsgAborting, nil)
			return r, r.abortAndExit()
		}
	case dialogDelete:
		if confirmed {
			return r, r.book.deleteCmd(d.conn.ID)
		}
	default:
		d.answer()
	}
	return r, nil
}

// requestExit quits at once when idle and asks first while an operation runs.
func (r RootModel) requestExit() (tea.Model, tea.Cmd) {
	if !r.runner.Busy() {
		return r, tea.Quit
	}
	r.dialog = newExitDialog(r.tr)
	return r, r.dialog.init()
}

func (r RootModel) abortAndExit() tea.Cmd {
	runner := r.runner
	return func() tea.Msg {
		runner.Abort()
		runner.Wait(exitWaitTimeout)
		return exitReadyMsg{}
	}
}

func (r RootModel) View() string {
	if r.dialog != nil && r.current != screenMain {
		return appStyle.Render(r.dialog.view())
	}

	switch r.current {
	case screenBook:
		return appStyle.Render(r.book.View())
	case screenAbout:
		return appStyle.Render(renderAboutWindow(r.tr, r.buildInfo))
	default:
		return appStyle.Render(r.main.View(r.dialog))
	}
}
