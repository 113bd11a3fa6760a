// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/MKhiriev/service-launcher/models"
)

// DefaultFolderName replaces input that sanitizes to nothing.
const DefaultFolderName = "default_name"

// syrveFolderSince is the first major version that keeps its cache under a
// Syrve folder instead of iiko.
const syrveFolderSince = 9

var (
	reservedChars  = regexp.MustCompile(`[<>"/\\|?*]`)
	edgeDotsSpaces = regexp.MustCompile(`^[.\s]+|[.\s]+$`)
	separatorRuns  = regexp.MustCompile(`[._\s]+`)
	trailingDots   = regexp.MustCompile(`\.+$`)
)

// SanitizeForPath turns an address into a single Windows-safe folder name.
func SanitizeForPath(input string) string {
	s := strings.ReplaceAll(input, ":", "-")
	s = reservedChars.ReplaceAllString(s, "_")
	s = edgeDotsSpaces.ReplaceAllString(s, "")
	s = separatorRuns.ReplaceAllString(s, "_")
	s = trailingDots.ReplaceAllString(s, "")
	if s == "" {
		return DefaultFolderName
	}
	return s
}

// AppDataPath returns the BackOffice cache folder for one server:
// root/{iiko|Syrve}/{Rms|Chain}/sanitized.
func AppDataPath(root string, info models.AppInfo, sanitized, version string) string {
	vendorFolder := string(models.VendorIiko)
	if info.Vendor == models.VendorSyrve {
		if major, ok := MajorVersion(version); ok && major >= syrveFolderSince {
			vendorFolder = string(models.VendorSyrve)
		}
	}

	productFolder := "Chain"
	if info.Product == models.ProductRMS {
		productFolder = "Rms"
	}

	return filepath.Join(root, vendorFolder, productFolder, sanitized)
}

// InstallerName joins the configured local folder prefix of an application
// type with the formatted version, e.g. "RMSOffice" + "912".
func InstallerName(prefix, formattedVersion string) string {
	return prefix + formattedVersion
}
