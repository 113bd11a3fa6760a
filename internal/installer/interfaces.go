// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package installer finds a BackOffice distribution under the installer root
// or downloads and unpacks it from the configured remote sources.
//
// Sources are tried in the configured priority order. Each [Source] copies a
// zip archive to a temporary file; [Installer] then extracts it, locates the
// folder holding BackOffice.exe and moves its content into the local
// distribution folder.
package installer

import (
	"context"

	"github.com/MKhiriev/service-launcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/installer_mock.go -package=mock

// Source fetches distribution archives from one remote location.
type Source interface {
	// Name is the source kind as written in [SourcePriority] Order.
	Name() string

	// Enabled reports whether the source is switched on in the config.
	Enabled() bool

	// Fetch writes the archive for appType and version to dst. progress
	// receives the copied share in [0, 1] when the size is known.
	//
	// It returns ErrSourceDisabled or ErrSourceNotConfigured when the source
	// cannot be used at all and ErrArchiveNotFound when it has no such archive.
	Fetch(ctx context.Context, appType models.AppType, version, dst string, progress func(float64)) error
}

// Observer receives installer status messages and step-local progress.
type Observer interface {
	// Status reports a message id from the locales catalogue.
	Status(level models.Level, id string, data map[string]any)
	// Progress reports the completed share of the whole installer step.
	Progress(share float64)
}

// VendorInspector reads the CompanyName resource of an executable.
type VendorInspector interface {
	// CompanyName returns ok=false when the name cannot be determined.
	CompanyName(path string) (name string, ok bool)
}

// Provider prepares a local distribution folder.
type Provider interface {
	// LocalName returns the distribution folder name for appType and the
	// formatted version.
	LocalName(appType models.AppType, version string) (string, error)

	Prepare(ctx context.Context, req Request, obs Observer) (string, error)
}
