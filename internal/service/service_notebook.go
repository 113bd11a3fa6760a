// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/internal/store"
	"github.com/MKhiriev/service-launcher/internal/validators"
	"github.com/MKhiriev/service-launcher/models"
)

type notebookService struct {
	repo      store.ConnectionRepository
	ids       IDGenerator
	validator validators.Validator
	now       func() time.Time
	logger    *logger.Logger
}

func NewNotebookService(repo store.ConnectionRepository, ids IDGenerator, logger *logger.Logger) NotebookService {
	return &notebookService{
		repo:      repo,
		ids:       ids,
		validator: validators.NewConnectionValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (n *notebookService) List(ctx context.Context, filter models.ConnectionFilter) ([]models.Connection, error) {
	list, err := n.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list connections: %w", err)
	}
	return list, nil
}

func (n *notebookService) Add(ctx context.Context, c models.Connection) (models.Connection, error) {
	c = normalizeConnection(c)
	now := n.now().UTC()
	c.ID = n.ids.Generate()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := n.repo.Add(ctx, c); err != nil {
		return models.Connection{}, fmt.Errorf("add connection: %w", err)
	}
	n.logger.Info().Str("func", "*notebookService.Add").Str("id", c.ID).Str("client", string(c.Client)).Msg("connection added")
	return c, nil
}

func (n *notebookService) Update(ctx context.Context, c models.Connection) (models.Connection, error) {
	prev, err := n.repo.Get(ctx, c.ID)
	if err != nil {
		return models.Connection{}, fmt.Errorf("load connection: %w", err)
	}

	c = normalizeConnection(c)
	c.CreatedAt = prev.CreatedAt
	c.UpdatedAt = n.now().UTC()

	if err = n.repo.Update(ctx, c); err != nil {
		return models.Connection{}, fmt.Errorf("update connection: %w", err)
	}
	return c, nil
}

func (n *notebookService) Delete(ctx context.Context, id string) error {
	if err := n.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete connection: %w", err)
	}
	n.logger.Info().Str("func", "*notebookService.Delete").Str("id", id).Msg("connection deleted")
	return nil
}

func (n *notebookService) Select(ctx context.Context, id string) (models.Connection, error) {
	c, err := n.repo.Get(ctx, id)
	if err != nil {
		return models.Connection{}, fmt.Errorf("select connection: %w", err)
	}
	return c, nil
}

// ImportLegacy imports path only when the book is empty. A missing file is
// not an error. Invalid entries and entries that collide with existing names
// are skipped.
func (n *notebookService) ImportLegacy(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read legacy notebook: %w", err)
	}

	count, err := n.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count connections: %w", err)
	}
	if count > 0 {
		n.logger.Debug().Str("func", "*notebookService.ImportLegacy").Int("count", count).Msg("book is not empty, legacy import skipped")
		return 0, nil
	}

	entries, err := store.ParseLegacyNotebook(data)
	if err != nil {
		return 0, err
	}

	imported := 0
	for _, e := range entries {
		c := models.Connection{Client: e.Client, Name: e.Name, RemoteID: e.RemoteID}
		if err = n.validator.Validate(ctx, c); err != nil {
			n.logger.Warn().Err(err).Str("func", "*notebookService.ImportLegacy").Str("name", e.Name).Msg("legacy entry skipped")
			continue
		}
		_, err = n.Add(ctx, c)
		if errors.Is(err, store.ErrConnectionExists) {
			continue
		}
		if err != nil {
			return imported, err
		}
		imported++
	}

	n.logger.Info().Str("func", "*notebookService.ImportLegacy").Str("path", path).Int("imported", imported).Msg("legacy notebook imported")
	return imported, nil
}

func normalizeConnection(c models.Connection) models.Connection {
	c.Name = strings.TrimSpace(c.Name)
	c.RemoteID = strings.TrimSpace(c.RemoteID)
	return c
}
