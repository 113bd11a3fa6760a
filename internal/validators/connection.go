// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/service-launcher/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the book entry identifier.
	FieldID = "id"

	// FieldClient targets the remote-desktop client of an entry or launch.
	FieldClient = "client"

	// FieldName targets the human readable label of a book entry.
	FieldName = "name"

	// FieldRemoteID targets the AnyDesk or LiteManager identifier.
	FieldRemoteID = "remote_id"

	// FieldPassword targets the password of a launch request.
	FieldPassword = "password"

	// FieldExecutablePath targets the configured client executable.
	FieldExecutablePath = "executable_path"
)

// Length limits of connection book entries, counted in runes.
const (
	MaxNameLength     = 25
	MaxRemoteIDLength = 15
)

// ConnectionValidator implements Validator for connection book entries and
// remote launch requests.
type ConnectionValidator struct {
}

// NewConnectionValidator constructs a new ConnectionValidator.
func NewConnectionValidator() Validator {
	return &ConnectionValidator{}
}

// Validate dispatches on the dynamic type of obj. Supported types are
// models.Connection and models.LaunchRequest, by value or pointer.
func (v *ConnectionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Connection:
		return v.validateConnection(ctx, value, fields...)
	case *models.Connection:
		return v.validateConnection(ctx, *value, fields...)

	case models.LaunchRequest:
		return v.validateLaunchRequest(ctx, value, fields...)
	case *models.LaunchRequest:
		return v.validateLaunchRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateConnection checks a book entry.
//
// Default validated fields: Client, Name, RemoteID. The ID is only checked
// when requested, since new entries receive it on insert.
func (v *ConnectionValidator) validateConnection(_ context.Context, c models.Connection, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClient, FieldName, FieldRemoteID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(c.ID) == "" {
				return ErrInvalidID
			}
		case FieldClient:
			if !c.Client.Valid() {
				return ErrInvalidClient
			}
		case FieldName:
			name := strings.TrimSpace(c.Name)
			if name == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(name) > MaxNameLength {
				return ErrNameTooLong
			}
		case FieldRemoteID:
			id := strings.TrimSpace(c.RemoteID)
			if id == "" {
				return ErrEmptyRemoteID
			}
			if utf8.RuneCountInString(id) > MaxRemoteIDLength {
				return ErrRemoteIDTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLaunchRequest checks a remote launch before the process is spawned.
//
// Default validated fields: Client, RemoteID, Password. The executable path
// is reported separately as a configuration error by the launcher.
func (v *ConnectionValidator) validateLaunchRequest(_ context.Context, r models.LaunchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClient, FieldRemoteID, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldClient:
			if !r.Client.Valid() {
				return ErrInvalidClient
			}
		case FieldRemoteID:
			if strings.TrimSpace(r.TargetID) == "" {
				return ErrEmptyRemoteID
			}
		case FieldPassword:
			if r.Password == "" {
				return ErrEmptyPassword
			}
		case FieldExecutablePath:
			if strings.TrimSpace(r.ExecutablePath) == "" {
				return ErrEmptyPath
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
