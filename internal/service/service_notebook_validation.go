// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/service-launcher/internal/validators"
	"github.com/MKhiriev/service-launcher/models"
)

// NotebookValidationService checks entries before they reach the wrapped
// NotebookService.
type NotebookValidationService struct {
	inner     NotebookService
	validator validators.Validator
}

func NewNotebookValidationService() NotebookServiceWrapper {
	return &NotebookValidationService{
		validator: validators.NewConnectionValidator(),
	}
}

func (v *NotebookValidationService) List(ctx context.Context, filter models.ConnectionFilter) ([]models.Connection, error) {
	if filter.Client != "" && !filter.Client.Valid() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConnection, validators.ErrInvalidClient)
	}
	return v.inner.List(ctx, filter)
}

func (v *NotebookValidationService) Add(ctx context.Context, c models.Connection) (models.Connection, error) {
	if err := v.validator.Validate(ctx, c); err != nil {
		return models.Connection{}, fmt.Errorf("%w: %w", ErrInvalidConnection, err)
	}
	return v.inner.Add(ctx, c)
}

func (v *NotebookValidationService) Update(ctx context.Context, c models.Connection) (models.Connection, error) {
	if err := v.validator.Validate(ctx, c, validators.FieldID, validators.FieldClient, validators.FieldName, validators.FieldRemoteID); err != nil {
		return models.Connection{}, fmt.Errorf("%w: %w", ErrInvalidConnection, err)
	}
	return v.inner.Update(ctx, c)
}

func (v *NotebookValidationService) Delete(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, models.Connection{ID: id}, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConnection, err)
	}
	return v.inner.Delete(ctx, id)
}

func (v *NotebookValidationService) Select(ctx context.Context, id string) (models.Connection, error) {
	if err := v.validator.Validate(ctx, models.Connection{ID: id}, validators.FieldID); err != nil {
		return models.Connection{}, fmt.Errorf("%w: %w", ErrInvalidConnection, err)
	}
	return v.inner.Select(ctx, id)
}

func (v *NotebookValidationService) ImportLegacy(ctx context.Context, path string) (int, error) {
	return v.inner.ImportLegacy(ctx, path)
}

func (v *NotebookValidationService) Wrap(inner NotebookService) NotebookService {
	v.inner = inner
	return v
}
