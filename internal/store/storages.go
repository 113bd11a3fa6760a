// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/service-launcher/internal/config"
	"github.com/MKhiriev/service-launcher/internal/logger"
)

// Storages groups the repositories of the launcher.
type Storages struct {
	Connections ConnectionRepository

	db *DB
}

// NewStorages opens the connection book database, creating the file when it
// does not exist, and applies pending migrations.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("path", cfg.NotebookPath).Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.NotebookPath, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Connections: NewConnectionRepository(db, logger),
		db:          db,
	}, nil
}

// Close releases the database.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
