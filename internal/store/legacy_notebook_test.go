// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/service-launcher/models"
)

func TestParseLegacyNotebook(t *testing.T) {
	data := []byte(`{
    "Anydesk": {"Кафе на Ленина": "123456789", "Пусто": "  "},
    "LiteManager": {"Склад": "MH_12345"},
    "Other": {"x": "y"}
}`)

	got, err := ParseLegacyNotebook(data)

	require.NoError(t, err)
	assert.Equal(t, []LegacyEntry{
		{Client: models.ClientAnyDesk, Name: "Кафе на Ленина", RemoteID: "123456789"},
		{Client: models.ClientLiteManager, Name: "Склад", RemoteID: "MH_12345"},
	}, got)
}

func TestParseLegacyNotebook_Invalid(t *testing.T) {
	_, err := ParseLegacyNotebook([]byte(`["not", "a", "map"]`))
	assert.ErrorIs(t, err, ErrInvalidLegacyFile)
}
