// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/service-launcher/internal/locales"
	"github.com/MKhiriev/service-launcher/internal/service"
	"github.com/MKhiriev/service-launcher/models"
)

// bookFilters is the tab order of the client filter. "" lists every client.
var bookFilters = []models.RemoteClient{"", models.ClientAnyDesk, models.ClientLiteManager}

type bookItem struct {
	conn models.Connection
}

func (i bookItem) Title() string       { return i.conn.Name }
func (i bookItem) Description() string { return string(i.conn.Client) + " · " + i.conn.RemoteID }
func (i bookItem) FilterValue() string { return i.conn.Name + " " + i.conn.RemoteID }

// bookModel is the connection book screen.
type bookModel struct {
	ctx      context.Context
	notebook service.NotebookService
	tr       service.Localizer

	list     list.Model
	filter   int
	empty    bool
	form     *entryFormModel
	overlay  *errorOverlayModel
	statusID string
	status   map[string]any
}

func newBookModel(ctx context.Context, notebook service.NotebookService, tr service.Localizer) bookModel {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.Styles.Title = titleStyle

	return bookModel{ctx: ctx, notebook: notebook, tr: tr, list: l, empty: true}
}

func (m *bookModel) setSize(width, height int) {
	m.list.SetSize(width, max(height-6, 5))
}

func (m bookModel) clientFilter() models.RemoteClient {
	return bookFilters[m.filter]
}

func (m bookModel) load() tea.Cmd {
	ctx, notebook := m.ctx, m.notebook
	filter := models.ConnectionFilter{Client: m.clientFilter()}
	return func() tea.Msg {
		items, err := notebook.List(ctx, filter)
		return bookLoadedMsg{items: items, err: err}
	}
}

func (m bookModel) saveCmd(c models.Connection, editing bool) tea.Cmd {
	ctx, notebook := m.ctx, m.notebook
	return func() tea.Msg {
		var err error
		if editing {
			_, err = notebook.Update(ctx, c)
		} else {
			_, err = notebook.Add(ctx, c)
		}
		return bookSavedMsg{err: err}
	}
}

func (m bookModel) deleteCmd(id string) tea.Cmd {
	ctx, notebook := m.ctx, m.notebook
	return func() tea.Msg {
		return bookDeletedMsg{err: notebook.Delete(ctx, id)}
	}
}

func (m bookModel) selectCmd(id string) tea.Cmd {
	ctx, notebook := m.ctx, m.notebook
	return func() tea.Msg {
		c, err := notebook.Select(ctx, id)
		return inputSelectedMsg{conn: c, err: err}
	}
}

func (m *bookModel) showError(err error) {
	m.overlay = &errorOverlayModel{
		title:   m.tr.T(locales.MsgBookTitle),
		message: service.DescribeText(m.tr, err),
		hint:    m.tr.T(locales.MsgBackHint),
	}
}

func (m bookModel) selected() (models.Connection, bool) {
	item, ok := m.list.SelectedItem().(bookItem)
	if !ok {
		return models.Connection{}, false
	}
	return item.conn, true
}

func (m bookModel) Update(msg tea.Msg) (bookModel, tea.Cmd) {
	switch msg := msg.(type) {
	case bookLoadedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.items))
		for _, c := range msg.items {
			items = append(items, bookItem{conn: c})
		}
		m.empty = len(items) == 0
		return m, m.list.SetItems(items)
	case bookSavedMsg:
		if msg.err != nil && m.form != nil {
			m.form.errText = service.DescribeText(m.tr, msg.err)
			return m, nil
		}
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.form = nil
		m.statusID, m.status = locales.MsgBookSaved, nil
		return m, m.load()
	case bookDeletedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.statusID, m.status = locales.MsgBookDeleted, nil
		return m, m.load()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if m.overlay != nil {
		if key.Matches(keyMsg, keys.back, keys.selectItem) {
			m.overlay = nil
		}
		return m, nil
	}
	if m.form != nil {
		return m.updateForm(keyMsg)
	}
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.back):
		if m.list.FilterState() == list.FilterApplied {
			m.list.ResetFilter()
			return m, nil
		}
		return m, func() tea.Msg { return navigateMsg{screen: screenMain} }
	case key.Matches(keyMsg, keys.clientFilter):
		m.filter = (m.filter + 1) % len(bookFilters)
		return m, m.load()
	case key.Matches(keyMsg, keys.newItem):
		form := newEntryForm(nil, m.clientFilter())
		m.form = &form
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		if c, ok := m.selected(); ok {
			form := newEntryForm(&c, c.Client)
			m.form = &form
		}
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		if c, ok := m.selected(); ok {
			return m, func() tea.Msg { return confirmDeleteMsg{conn: c} }
		}
		return m, nil
	case key.Matches(keyMsg, keys.selectItem):
		if c, ok := m.selected(); ok {
			return m, m.selectCmd(c.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m bookModel) updateForm(msg tea.KeyMsg) (bookModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.back):
		m.form = nil
		return m, nil
	case key.Matches(msg, keys.next):
		m.form.move(1)
		return m, nil
	case key.Matches(msg, keys.prev):
		m.form.move(-1)
		return m, nil
	case key.Matches(msg, keys.toggleClient):
		m.form.toggleClient()
		return m, nil
	case key.Matches(msg, keys.save):
		m.form.errText = ""
		return m, m.saveCmd(m.form.toConnection(), m.form.editing)
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m bookModel) filterName() string {
	if c := m.clientFilter(); c != "" {
		return string(c)
	}
	return m.tr.T(locales.MsgBookAll)
}

func (m bookModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}
	if m.form != nil {
		return m.form.View(m.tr)
	}

	title := m.tr.T(locales.MsgBookTitle) + " · " + m.filterName()
	body := ""
	if m.empty {
		body = titleStyle.Render(title) + "\n\n" + helpStyle.Render(m.tr.T(locales.MsgBookEmpty))
	} else {
		m.list.Title = title
		m.list.FilterInput.Placeholder = m.tr.T(locales.MsgBookSearch)
		body = m.list.View()
	}

	if m.statusID != "" {
		body += "\n\n" + levelStyle(models.LevelInfo).Render(m.tr.T(m.statusID, m.status))
	}
	return body + "\n\n" + helpStyle.Render(m.tr.T(locales.MsgBookHotkeys))
}
