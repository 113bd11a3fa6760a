// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the back-office server over HTTP.
//
// The only call the launcher needs is the monitoring probe, which returns the
// server edition, version and state. Every failure of that call is reported
// as a *ProbeError carrying the probe URL, so callers can show exactly which
// address was tried. Sentinels in errors.go classify the cause for errors.Is.
package adapter

import (
	"context"

	"github.com/MKhiriev/service-launcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with a back-office server.
type ServerAdapter interface {
	// ServerInfo requests the monitoring document of target and decodes the
	// edition, version and serverState keys. The full document is returned
	// in ServerInfo.Raw. All failures are *ProbeError values.
	ServerInfo(ctx context.Context, target models.Target) (models.ServerInfo, error)
}
