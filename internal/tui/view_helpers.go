// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

const uiDivider = "──────────────────────────────────────────────────────"

// renderPage lays out a full screen: title, divider, indented body, divider
// and the hint lines.
func renderPage(title, data string, hints ...string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)

	for _, hint := range hints {
		if strings.TrimSpace(hint) == "" {
			continue
		}
		b.WriteString("\n  ")
		b.WriteString(helpStyle.Render(hint))
	}

	return b.String()
}
