// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	// main window
	launch     key.Binding
	launchWipe key.Binding
	check      key.Binding
	paste      key.Binding
	book       key.Binding
	language   key.Binding
	about      key.Binding
	exit       key.Binding
	forceQuit  key.Binding

	// connection book
	back         key.Binding
	newItem      key.Binding
	edit         key.Binding
	delete       key.Binding
	selectItem   key.Binding
	clientFilter key.Binding

	// entry form
	next         key.Binding
	prev         key.Binding
	toggleClient key.Binding
	save         key.Binding

	scrollUp   key.Binding
	scrollDown key.Binding
}

var keys = keyMap{
	launch:     key.NewBinding(key.WithKeys("enter")),
	launchWipe: key.NewBinding(key.WithKeys("ctrl+r")),
	check:      key.NewBinding(key.WithKeys("ctrl+k")),
	paste:      key.NewBinding(key.WithKeys("ctrl+v")),
	book:       key.NewBinding(key.WithKeys("ctrl+b")),
	language:   key.NewBinding(key.WithKeys("ctrl+l")),
	about:      key.NewBinding(key.WithKeys("ctrl+a")),
	exit:       key.NewBinding(key.WithKeys("esc", "ctrl+c")),
	forceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),

	back:         key.NewBinding(key.WithKeys("esc")),
	newItem:      key.NewBinding(key.WithKeys("n")),
	edit:         key.NewBinding(key.WithKeys("e")),
	delete:       key.NewBinding(key.WithKeys("d")),
	selectItem:   key.NewBinding(key.WithKeys("enter")),
	clientFilter: key.NewBinding(key.WithKeys("tab")),

	next:         key.NewBinding(key.WithKeys("tab", "down")),
	prev:         key.NewBinding(key.WithKeys("shift+tab", "up")),
	toggleClient: key.NewBinding(key.WithKeys("ctrl+t")),
	save:         key.NewBinding(key.WithKeys("enter")),

	scrollUp:   key.NewBinding(key.WithKeys("pgup")),
	scrollDown: key.NewBinding(key.WithKeys("pgdown")),
}
