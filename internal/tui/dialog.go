// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/MKhiriev/service-launcher/internal/locales"
	"github.com/MKhiriev/service-launcher/internal/service"
	"github.com/MKhiriev/service-launcher/models"
)

type dialogKind int

const (
	dialogPassword dialogKind = iota
	dialogProduct
	dialogConfirm
	dialogExit
	dialogDelete
)

const dialogWidth = 60

// dialog is a modal huh form. Prompt dialogs answer through reply; exit and
// delete dialogs are resolved by the root model.
type dialog struct {
	kind  dialogKind
	form  *huh.Form
	hint  string
	reply chan promptReply

	value   string
	product models.Product
	yes     bool
	conn    models.Connection
}

func dialogKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("esc", "ctrl+c"))
	return km
}

func newDialogForm(fields ...huh.Field) *huh.Form {
	form := huh.NewForm(huh.NewGroup(fields...)).
		WithKeyMap(dialogKeyMap()).
		WithShowHelp(false).
		WithWidth(dialogWidth)
	form.SubmitCmd = nil
	form.CancelCmd = nil
	return form
}

func newPromptDialog(req promptMsg, tr service.Localizer) *dialog {
	d := &dialog{reply: req.reply, hint: tr.T(locales.MsgDialogChoiceHint)}

	switch req.kind {
	case promptPassword:
		d.kind = dialogPassword
		d.hint = tr.T(locales.MsgDialogPasswordHint)
		d.form = newDialogForm(huh.NewInput().
			Title(req.title).
			Description(req.question).
			EchoMode(huh.EchoModePassword).
			Value(&d.value))
	case promptProduct:
		d.kind = dialogProduct
		d.product = models.ProductRMS
		d.form = newDialogForm(huh.NewSelect[models.Product]().
			Title(req.title).
			Description(req.question).
			Options(
				huh.NewOption(string(models.ProductRMS), models.ProductRMS),
				huh.NewOption(string(models.ProductChain), models.ProductChain),
			).
			Value(&d.product))
	default:
		d.kind = dialogConfirm
		d.form = newConfirmForm(req.title, req.question, tr, &d.yes)
	}
	return d
}

func newExitDialog(tr service.Localizer) *dialog {
	d := &dialog{kind: dialogExit, hint: tr.T(locales.MsgDialogChoiceHint)}
	d.form = newConfirmForm(tr.T(locales.MsgExitTitle), tr.T(locales.MsgExitConfirm), tr, &d.yes)
	return d
}

func newDeleteDialog(c models.Connection, tr service.Localizer) *dialog {
	d := &dialog{kind: dialogDelete, conn: c, hint: tr.T(locales.MsgDialogChoiceHint)}
	d.form = newConfirmForm(tr.T(locales.MsgBookTitle), tr.T(locales.MsgBookDeleteConfirm, map[string]any{"Name": c.Name}), tr, &d.yes)
	return d
}

func newConfirmForm(title, question string, tr service.Localizer, value *bool) *huh.Form {
	return newDialogForm(huh.NewConfirm().
		Title(title).
		Description(question).
		Affirmative(tr.T(locales.MsgDialogYes)).
		Negative(tr.T(locales.MsgDialogNo)).
		Value(value))
}

func (d *dialog) init() tea.Cmd {
	return d.form.Init()
}

// update feeds msg to the form and reports whether the dialog is finished.
func (d *dialog) update(msg tea.Msg) (done bool, cmd tea.Cmd) {
	model, cmd := d.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		d.form = f
	}
	return d.form.State != huh.StateNormal, cmd
}

func (d *dialog) aborted() bool {
	return d.form.State == huh.StateAborted
}

// answer sends the outcome to the waiting operation, if any.
func (d *dialog) answer() {
	if d.reply == nil {
		return
	}
	r := promptReply{value: d.value, yes: d.yes}
	if d.kind == dialogProduct {
		r.value = string(d.product)
	}
	if d.aborted() {
		r = promptReply{err: service.ErrCanceledByUser}
	}
	d.reply <- r
}

func (d *dialog) view() string {
	return overlayBoxStyle.Render(d.form.View() + "\n\n" + helpStyle.Render(d.hint))
}
