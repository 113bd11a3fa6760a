// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/service-launcher/internal/config"
	"github.com/MKhiriev/service-launcher/internal/locales"
	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/internal/service"
	"github.com/MKhiriev/service-launcher/internal/workers"
	"github.com/MKhiriev/service-launcher/models"
)

const (
	opLaunch = "launch"
	opCheck  = "check"
)

// mainLoopModel is the launcher window: input line, status, progress bar
// and the output area.
type mainLoopModel struct {
	ctx        context.Context
	services   *service.Services
	runner     *workers.Runner
	notify     func(tea.Msg)
	tr         *locales.Translator
	logger     *logger.Logger
	configPath string

	input      textinput.Model
	progress   progress.Model
	output     viewport.Model
	outputText string
	percent    float64
	status     statusMsg
}

func newMainLoopModel(ctx context.Context, deps Dependencies) mainLoopModel {
	in := textinput.New()
	in.CharLimit = service.MaxPasteLength
	in.Width = 60
	in.SetValue(deps.InitialTarget)
	in.Focus()

	out := viewport.New(60, 10)
	out.KeyMap = viewport.KeyMap{PageUp: keys.scrollUp, PageDown: keys.scrollDown}

	m := mainLoopModel{
		ctx:        ctx,
		services:   deps.Services,
		runner:     deps.Runner,
		notify:     deps.Bridge.post,
		tr:         deps.Translator,
		logger:     deps.Logger,
		configPath: deps.ConfigPath,
		input:      in,
		progress:   progress.New(progress.WithDefaultGradient()),
		output:     out,
		status:     statusMsg{level: models.LevelInfo, id: locales.MsgWaitingForInput},
	}
	if n := deps.Notice; n != nil {
		m.status = statusMsg{level: n.Level, id: n.ID, data: n.Data}
	}
	if deps.LoadWarning != nil {
		m.status = statusMsg{level: models.LevelWarning, id: locales.MsgErrGeneric, data: map[string]any{"Error": deps.LoadWarning.Error()}}
	}
	return m
}

func (m *mainLoopModel) setSize(width, height int) {
	w := max(width-6, 20)
	m.input.Width = w - 2
	m.progress.Width = w
	m.output.Width = w
	m.output.Height = max(height-16, 3)
}

func (m *mainLoopModel) setOutput(text string) {
	m.outputText = text
	m.output.SetContent(text)
	m.output.GotoTop()
}

func (m *mainLoopModel) setStatus(level models.Level, id string, data map[string]any) {
	m.status = statusMsg{level: level, id: id, data: data}
}

// start hands w to the runner. A rejected start is reported in the status line.
func (m *mainLoopModel) start(name string, w workers.WorkerFunc) {
	notify := m.notify
	err := m.runner.TryRun(name, w, func(err error) {
		notify(operationDoneMsg{name: name, err: err})
	})
	if err != nil {
		id, data := service.Describe(err)
		m.setStatus(models.LevelWarning, id, data)
	}
}

func (m *mainLoopModel) launch(opts models.LaunchOptions) {
	raw := m.input.Value()
	launcher := m.services.Launch
	m.start(opLaunch, func(ctx context.Context) error {
		return launcher.Launch(ctx, raw, opts)
	})
}

func (m *mainLoopModel) checkOrAbort() {
	if m.runner.Busy() {
		if m.runner.Abort() {
			m.setStatus(models.LevelWarning, locales.MsgAborting, nil)
		}
		return
	}

	raw := m.input.Value()
	checker := m.services.Check
	m.start(opCheck, func(ctx context.Context) error {
		return checker.Check(ctx, raw)
	})
}

func (m *mainLoopModel) paste() {
	text, err := m.services.Input.Paste()
	if err != nil {
		m.setStatus(models.LevelWarning, locales.MsgClipboardEmpty, nil)
		return
	}
	m.input.SetValue(text)
	m.input.CursorEnd()
	m.setStatus(models.LevelInfo, locales.MsgWaitingForInput, nil)
}

func (m *mainLoopModel) toggleLanguage() tea.Cmd {
	lang := m.tr.Toggle()
	m.setStatus(models.LevelInfo, locales.MsgLanguageSwitched, map[string]any{"Language": m.tr.T(locales.MsgLanguageName)})

	path := m.configPath
	return func() tea.Msg {
		return languageSavedMsg{err: config.SaveLanguage(path, lang)}
	}
}

func (m mainLoopModel) Update(msg tea.Msg) (mainLoopModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		m.status = msg
		return m, nil
	case progressMsg:
		m.percent = min(max(msg.percent, 0), 100)
		return m, nil
	case outputMsg:
		m.setOutput(msg.text)
		return m, nil
	case operationDoneMsg:
		if errors.Is(msg.err, workers.ErrWorkerPanicked) {
			m.setStatus(models.LevelError, locales.MsgErrGeneric, map[string]any{"Error": msg.err.Error()})
		}
		return m, nil
	case languageSavedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("func", "mainLoopModel.Update").Msg("failed to save language")
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.launch):
		m.launch(models.LaunchOptions{})
		return m, nil
	case key.Matches(keyMsg, keys.launchWipe):
		m.launch(models.LaunchOptions{ResetCache: true})
		return m, nil
	case key.Matches(keyMsg, keys.check):
		m.checkOrAbort()
		return m, nil
	case key.Matches(keyMsg, keys.paste):
		m.paste()
		return m, nil
	case key.Matches(keyMsg, keys.language):
		return m, m.toggleLanguage()
	case key.Matches(keyMsg, keys.book):
		return m, func() tea.Msg { return navigateMsg{screen: screenBook} }
	case key.Matches(keyMsg, keys.about):
		return m, func() tea.Msg { return navigateMsg{screen: screenAbout} }
	case key.Matches(keyMsg, keys.scrollUp, keys.scrollDown):
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m mainLoopModel) statusLine() string {
	return levelStyle(m.status.level).Render(m.tr.T(m.status.id, m.status.data))
}

// View renders the window. An open dialog takes the place of the output.
func (m mainLoopModel) View(d *dialog) string {
	m.input.Placeholder = m.tr.T(locales.MsgInputPlaceholder)

	body := m.input.View() + "\n\n" +
		m.statusLine() + "\n" +
		m.progress.ViewAs(m.percent/100) + "\n\n"
	if d != nil {
		body += d.view()
	} else {
		body += helpStyle.Render(m.tr.T(locales.MsgOutputTitle)) + "\n" + outputBoxStyle.Render(m.output.View())
	}

	return renderPage(titleStyle.Render(m.tr.T(locales.MsgAppTitle)), body,
		m.tr.T(locales.MsgMainHotkeys), m.tr.T(locales.MsgExitHint))
}
