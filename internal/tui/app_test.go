// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/service-launcher/internal/locales"
	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/internal/mock"
	"github.com/MKhiriev/service-launcher/internal/service"
	"github.com/MKhiriev/service-launcher/internal/workers"
	"github.com/MKhiriev/service-launcher/models"
)

type rootFixture struct {
	root   RootModel
	runner *workers.Runner
	input  *mock.MockInputService
	tr     *locales.Translator
	config string
}

func newRootFixture(t *testing.T) *rootFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	tr, err := locales.NewTranslator(locales.LangEnglish)
	require.NoError(t, err)

	f := &rootFixture{
		runner: workers.NewRunner(context.Background(), logger.Nop()),
		input:  mock.NewMockInputService(ctrl),
		tr:     tr,
		config: filepath.Join(t.TempDir(), "config.ini"),
	}
	deps := Dependencies{
		Services:   &service.Services{Input: f.input},
		Runner:     f.runner,
		Bridge:     NewBridge(),
		Translator: tr,
		Logger:     logger.Nop(),
		ConfigPath: f.config,
	}
	ctx := context.Background()
	f.root = newRootModel(newMainLoopModel(ctx, deps), newBookModel(ctx, nil, tr), deps)
	return f
}

func (f *rootFixture) update(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	model, cmd := f.root.Update(msg)
	root, ok := model.(RootModel)
	require.True(t, ok)
	f.root = root
	return cmd
}

// busy occupies the runner until the test ends.
func (f *rootFixture) busy(t *testing.T) {
	t.Helper()
	require.NoError(t, f.runner.TryRun("test", workers.WorkerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}), nil))
	t.Cleanup(func() {
		f.runner.Abort()
		f.runner.Wait(time.Second)
	})
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

var (
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

// ── exit ────────────────────────────────────────────────────────────────────

func TestRoot_ExitWhenIdleQuits(t *testing.T) {
	f := newRootFixture(t)
	assert.True(t, isQuit(f.update(t, keyEsc)))
}

func TestRoot_ExitWhileBusyAsks(t *testing.T) {
	f := newRootFixture(t)
	f.busy(t)

	cmd := f.update(t, keyEsc)
	require.NotNil(t, f.root.dialog)
	assert.Equal(t, dialogExit, f.root.dialog.kind)
	assert.False(t, isQuit(cmd))

	// esc dismisses the question and keeps the operation running
	f.update(t, keyEsc)
	assert.Nil(t, f.root.dialog)
	assert.False(t, f.root.exiting)
	assert.True(t, f.runner.Busy())
}

func TestRoot_AbortAndExitWaitsForWorker(t *testing.T) {
	f := newRootFixture(t)
	f.busy(t)

	msg := f.root.abortAndExit()()
	assert.IsType(t, exitReadyMsg{}, msg)
	assert.False(t, f.runner.Busy())
	assert.True(t, isQuit(f.update(t, msg)))
}

func TestRoot_InitialTargetStartsLaunch(t *testing.T) {
	f := newRootFixture(t)
	assert.Nil(t, f.root.Init())

	f.root.main.input.SetValue("123456789")
	cmd := f.root.Init()
	require.NotNil(t, cmd)
	assert.IsType(t, autoLaunchMsg{}, cmd())
}

// ── prompts ─────────────────────────────────────────────────────────────────

func TestRoot_PromptDismissedAnswersCanceled(t *testing.T) {
	f := newRootFixture(t)
	reply := make(chan promptReply, 1)

	f.update(t, promptMsg{kind: promptConfirm, title: "t", question: "q", reply: reply})
	require.NotNil(t, f.root.dialog)

	f.update(t, keyEsc)
	assert.Nil(t, f.root.dialog)
	r := <-reply
	assert.ErrorIs(t, r.err, service.ErrCanceledByUser)
}

func TestRoot_PromptCancelClosesOnlyItsDialog(t *testing.T) {
	f := newRootFixture(t)
	reply := make(chan promptReply, 1)
	f.update(t, promptMsg{kind: promptPassword, title: "t", question: "q", reply: reply})

	f.update(t, promptCancelMsg{reply: make(chan promptReply, 1)})
	assert.NotNil(t, f.root.dialog)

	f.update(t, promptCancelMsg{reply: reply})
	assert.Nil(t, f.root.dialog)
}

// ── connection book ─────────────────────────────────────────────────────────

func TestRoot_InputSelected(t *testing.T) {
	f := newRootFixture(t)
	f.root.current = screenBook

	f.update(t, inputSelectedMsg{conn: models.Connection{Name: "Office", RemoteID: "123456789"}})

	assert.Equal(t, screenMain, f.root.current)
	assert.Equal(t, "123456789", f.root.main.input.Value())
	assert.Equal(t, locales.MsgBookSelected, f.root.main.status.id)
}

func TestRoot_InputSelectedError(t *testing.T) {
	f := newRootFixture(t)
	f.root.current = screenBook

	f.update(t, inputSelectedMsg{err: errors.New("gone")})

	assert.Equal(t, screenBook, f.root.current)
	require.NotNil(t, f.root.book.overlay)
	assert.Contains(t, f.root.book.overlay.message, "gone")
}

func TestRoot_DeleteDismissedKeepsEntry(t *testing.T) {
	f := newRootFixture(t)
	f.root.current = screenBook

	f.update(t, confirmDeleteMsg{conn: models.Connection{ID: "1", Name: "Office"}})
	require.NotNil(t, f.root.dialog)
	assert.Equal(t, dialogDelete, f.root.dialog.kind)

	cmd := f.update(t, keyEsc)
	assert.Nil(t, f.root.dialog)
	assert.Nil(t, cmd)
}

// ── main window ─────────────────────────────────────────────────────────────

func TestMain_Paste(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		f := newRootFixture(t)
		f.input.EXPECT().Paste().Return("987654321", nil)

		f.update(t, tea.KeyMsg{Type: tea.KeyCtrlV})

		assert.Equal(t, "987654321", f.root.main.input.Value())
		assert.Equal(t, locales.MsgWaitingForInput, f.root.main.status.id)
	})

	t.Run("empty clipboard", func(t *testing.T) {
		f := newRootFixture(t)
		f.input.EXPECT().Paste().Return("", service.ErrClipboardEmpty)

		f.update(t, tea.KeyMsg{Type: tea.KeyCtrlV})

		assert.Empty(t, f.root.main.input.Value())
		assert.Equal(t, locales.MsgClipboardEmpty, f.root.main.status.id)
		assert.Equal(t, models.LevelWarning, f.root.main.status.level)
	})
}

func TestMain_LaunchWhileBusyIsRejected(t *testing.T) {
	f := newRootFixture(t)
	f.busy(t)

	f.update(t, keyEnter)

	assert.Equal(t, locales.MsgOperationInProgress, f.root.main.status.id)
	assert.Equal(t, "test", f.runner.Current())
}

func TestMain_CheckKeyAbortsRunningOperation(t *testing.T) {
	f := newRootFixture(t)
	f.busy(t)

	f.update(t, tea.KeyMsg{Type: tea.KeyCtrlK})

	assert.Equal(t, locales.MsgAborting, f.root.main.status.id)
	assert.True(t, f.runner.Wait(time.Second))
}

func TestMain_ToggleLanguageSavesChoice(t *testing.T) {
	f := newRootFixture(t)

	cmd := f.update(t, tea.KeyMsg{Type: tea.KeyCtrlL})
	require.NotNil(t, cmd)

	assert.Equal(t, locales.LangRussian, f.tr.Language())
	assert.Equal(t, locales.MsgLanguageSwitched, f.root.main.status.id)

	msg := cmd()
	require.IsType(t, languageSavedMsg{}, msg)
	assert.NoError(t, msg.(languageSavedMsg).err)

	data, err := os.ReadFile(f.config)
	require.NoError(t, err)
	assert.Contains(t, string(data), locales.LangRussian)
}

func TestMain_BridgeMessagesUpdateWindow(t *testing.T) {
	f := newRootFixture(t)

	f.update(t, statusMsg{level: models.LevelError, id: locales.MsgLaunchFailed})
	f.update(t, progressMsg{percent: 150})
	f.update(t, outputMsg{text: "details"})

	assert.Equal(t, locales.MsgLaunchFailed, f.root.main.status.id)
	assert.Equal(t, float64(100), f.root.main.percent)
	assert.Equal(t, "details", f.root.main.outputText)
}

func TestMain_PanickedWorkerIsShown(t *testing.T) {
	f := newRootFixture(t)

	f.update(t, operationDoneMsg{name: opLaunch, err: workers.ErrWorkerPanicked})

	assert.Equal(t, models.LevelError, f.root.main.status.level)
	assert.Equal(t, locales.MsgErrGeneric, f.root.main.status.id)
}

func TestAbout_BackReturnsToMain(t *testing.T) {
	f := newRootFixture(t)

	f.update(t, navigateMsg{screen: screenAbout})
	assert.Equal(t, screenAbout, f.root.current)
	assert.Contains(t, f.root.View(), "N/A")

	f.update(t, keyEsc)
	assert.Equal(t, screenMain, f.root.current)
}
