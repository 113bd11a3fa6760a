// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/service-launcher/internal/locales"
	"github.com/MKhiriev/service-launcher/internal/service"
	"github.com/MKhiriev/service-launcher/internal/validators"
	"github.com/MKhiriev/service-launcher/models"
)

const (
	entryFieldName = iota
	entryFieldID
)

// entryFormModel edits one connection book entry.
type entryFormModel struct {
	inputs  []textinput.Model
	focus   int
	client  models.RemoteClient
	editing bool
	conn    models.Connection
	errText string
}

func newEntryForm(item *models.Connection, client models.RemoteClient) entryFormModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 30
	}
	inputs[entryFieldName].CharLimit = validators.MaxNameLength
	inputs[entryFieldID].CharLimit = validators.MaxRemoteIDLength
	inputs[entryFieldName].Focus()

	if !client.Valid() {
		client = models.ClientAnyDesk
	}
	m := entryFormModel{inputs: inputs, client: client}
	if item == nil {
		return m
	}

	m.editing = true
	m.conn = *item
	m.client = item.Client
	m.inputs[entryFieldName].SetValue(item.Name)
	m.inputs[entryFieldID].SetValue(item.RemoteID)
	return m
}

func (m *entryFormModel) move(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *entryFormModel) toggleClient() {
	if m.client == models.ClientAnyDesk {
		m.client = models.ClientLiteManager
		return
	}
	m.client = models.ClientAnyDesk
}

func (m entryFormModel) toConnection() models.Connection {
	c := m.conn
	c.Client = m.client
	c.Name = strings.TrimSpace(m.inputs[entryFieldName].Value())
	c.RemoteID = strings.TrimSpace(m.inputs[entryFieldID].Value())
	return c
}

func (m entryFormModel) View(tr service.Localizer) string {
	title := tr.T(locales.MsgBookNew)
	if m.editing {
		title = tr.T(locales.MsgBookEdit) + ": " + m.conn.Name
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n\n")
	b.WriteString(padLabel(tr.T(locales.MsgBookFieldClient)) + string(m.client) + "\n")
	b.WriteString(padLabel(tr.T(locales.MsgBookFieldName)) + "[" + m.inputs[entryFieldName].View() + "]\n")
	b.WriteString(padLabel(tr.T(locales.MsgBookFieldID)) + "[" + m.inputs[entryFieldID].View() + "]\n")
	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render(m.errText) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render(tr.T(locales.MsgBookFormHotkeys)))
	return b.String()
}

func padLabel(label string) string {
	const width = 10
	if n := len([]rune(label)); n < width {
		return label + ":" + strings.Repeat(" ", width-n)
	}
	return label + ": "
}
