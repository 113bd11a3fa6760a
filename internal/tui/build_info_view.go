// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/service-launcher/internal/locales"
	"github.com/MKhiriev/service-launcher/internal/service"
	"github.com/MKhiriev/service-launcher/models"
)

func renderAboutWindow(tr service.Localizer, info models.BuildInfo) string {
	info = info.Normalized()
	body := tr.T(locales.MsgAboutBody, map[string]any{
		"Version": info.Version,
		"Date":    info.Date,
		"Commit":  info.Commit,
	})
	return renderPage(titleStyle.Render(tr.T(locales.MsgAboutTitle)), body, tr.T(locales.MsgBackHint))
}
