// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type errorOverlayModel struct {
	title   string
	message string
	hint    string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render(m.title) + "\n\n" + m.message + "\n\n" + helpStyle.Render(m.hint)
	return overlayBoxStyle.Render(content)
}
