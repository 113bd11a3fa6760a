// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package installer

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/service-launcher/internal/config"
	"github.com/MKhiriev/service-launcher/models"
)

// VersionPlaceholder is substituted in archive name templates.
const VersionPlaceholder = "{version}"

// ArchiveName resolves the archive template of appType for version.
func ArchiveName(names config.ArchiveNames, appType models.AppType, version string) (string, error) {
	tmpl := strings.TrimSpace(names[appType])
	if tmpl == "" {
		return "", fmt.Errorf("%w: no archive name for %s", ErrSourceNotConfigured, appType)
	}
	return strings.ReplaceAll(tmpl, VersionPlaceholder, version), nil
}
