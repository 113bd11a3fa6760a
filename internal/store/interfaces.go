// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the connection book in a local SQLite database.
package store

import (
	"context"

	"github.com/MKhiriev/service-launcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ConnectionRepository is the connection book table.
type ConnectionRepository interface {
	// List returns entries matching filter ordered by client, then name.
	List(ctx context.Context, filter models.ConnectionFilter) ([]models.Connection, error)
	Get(ctx context.Context, id string) (models.Connection, error)
	// Add inserts c. ErrConnectionExists is returned when the client already
	// has an entry with the same name.
	Add(ctx context.Context, c models.Connection) error
	Update(ctx context.Context, c models.Connection) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
