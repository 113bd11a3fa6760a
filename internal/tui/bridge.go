// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/service-launcher/internal/service"
	"github.com/MKhiriev/service-launcher/models"
)

// Bridge carries reports and dialog requests from background operations to
// the UI goroutine. It implements service.Reporter and service.Prompter.
//
// Events posted before a program is attached are dropped.
type Bridge struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

func NewBridge() *Bridge {
	return &Bridge{}
}

// Attach routes events to p.
func (b *Bridge) Attach(p *tea.Program) {
	b.attach(p.Send)
}

// Detach drops events from now on.
func (b *Bridge) Detach() {
	b.attach(nil)
}

func (b *Bridge) attach(send func(tea.Msg)) {
	b.mu.Lock()
	b.send = send
	b.mu.Unlock()
}

func (b *Bridge) post(msg tea.Msg) {
	b.mu.RLock()
	send := b.send
	b.mu.RUnlock()
	if send != nil {
		send(msg)
	}
}

func (b *Bridge) Status(level models.Level, id string, data map[string]any) {
	b.post(statusMsg{level: level, id: id, data: data})
}

func (b *Bridge) Progress(percent float64) {
	b.post(progressMsg{percent: percent})
}

func (b *Bridge) Output(text string) {
	b.post(outputMsg{text: text})
}

// Password asks for a masked password. An empty answer is ErrNoPassword and
// a dismissed dialog is ErrCanceledByUser.
func (b *Bridge) Password(ctx context.Context, title, prompt string) (string, error) {
	r, err := b.ask(ctx, promptPassword, title, prompt)
	if err != nil {
		return "", err
	}
	if r.value == "" {
		return "", service.ErrNoPassword
	}
	return r.value, nil
}

func (b *Bridge) ChooseProduct(ctx context.Context, title, question string) (models.Product, error) {
	r, err := b.ask(ctx, promptProduct, title, question)
	if err != nil {
		return "", err
	}
	return models.Product(r.value), nil
}

func (b *Bridge) Confirm(ctx context.Context, title, question string) (bool, error) {
	r, err := b.ask(ctx, promptConfirm, title, question)
	if err != nil {
		return false, err
	}
	return r.yes, nil
}

func (b *Bridge) ask(ctx context.Context, kind promptKind, title, question string) (promptReply, error) {
	reply := make(chan promptReply, 1)
	b.post(promptMsg{kind: kind, title: title, question: question, reply: reply})

	select {
	case r := <-reply:
		return r, r.err
	case <-ctx.Done():
		b.post(promptCancelMsg{reply: reply})
		return promptReply{}, ctx.Err()
	}
}
