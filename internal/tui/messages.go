// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/service-launcher/models"
)

// Messages posted by the Bridge from background operations.

type statusMsg struct {
	level models.Level
	id    string
	data  map[string]any
}

type progressMsg struct {
	percent float64
}

type outputMsg struct {
	text string
}

type promptKind int

const (
	promptPassword promptKind = iota
	promptProduct
	promptConfirm
)

type promptReply struct {
	value string
	yes   bool
	err   error
}

type promptMsg struct {
	kind     promptKind
	title    string
	question string
	reply    chan promptReply
}

// promptCancelMsg closes the dialog of reply when its operation is aborted.
type promptCancelMsg struct {
	reply chan promptReply
}

// autoLaunchMsg starts the Launch flow for a target given on the command line.
type autoLaunchMsg struct{}

type operationDoneMsg struct {
	name string
	err  error
}

// Messages of the UI itself.

type navigateMsg struct {
	screen screen
}

type inputSelectedMsg struct {
	conn models.Connection
	err  error
}

type bookLoadedMsg struct {
	items []models.Connection
	err   error
}

type bookSavedMsg struct {
	err error
}

type bookDeletedMsg struct {
	err error
}

type confirmDeleteMsg struct {
	conn models.Connection
}

type languageSavedMsg struct {
	err error
}

type exitReadyMsg struct{}
