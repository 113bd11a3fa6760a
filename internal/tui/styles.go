// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/service-launcher/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	outputBoxStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
)

var levelStyles = map[models.Level]lipgloss.Style{
	models.LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	models.LevelWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	models.LevelError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
}

func levelStyle(level models.Level) lipgloss.Style {
	if s, ok := levelStyles[level]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
