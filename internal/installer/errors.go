// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package installer

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/service-launcher/models"
)

var (
	ErrSourceDisabled      = errors.New("source is disabled")
	ErrSourceNotConfigured = errors.New("source is not configured")
	ErrUnknownSource       = errors.New("unknown source")
	ErrArchiveNotFound     = errors.New("archive not found")
	ErrUnsafeArchivePath   = errors.New("archive entry escapes the destination")
	ErrExecutableMissing   = errors.New("BackOffice.exe not found in archive")
	ErrVendorMismatch      = errors.New("distribution vendor does not match")
	ErrInvalidRequest      = errors.New("invalid installer request")
)

// NotFoundError is returned when no source could provide the distribution.
type NotFoundError struct {
	AppType models.AppType
	Version string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("distribution for server edition '%s' and version '%s' could not be found", e.AppType, e.Version)
}
