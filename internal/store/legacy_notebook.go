// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/service-launcher/models"
)

// LegacyNotebookFile is the JSON connection book of earlier releases.
const LegacyNotebookFile = "notebook.json"

// LegacyEntry is one connection read from notebook.json.
type LegacyEntry struct {
	Client   models.RemoteClient
	Name     string
	RemoteID string
}

// ParseLegacyNotebook decodes {"Anydesk": {name: id}, "LiteManager": {...}}.
// Unknown sections and blank entries are skipped. Entries are sorted by
// client, then name.
func ParseLegacyNotebook(data []byte) ([]LegacyEntry, error) {
	var raw map[string]map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLegacyFile, err)
	}

	var out []LegacyEntry
	for section, entries := range raw {
		client, ok := legacyClient(section)
		if !ok {
			continue
		}
		for name, id := range entries {
			name, id = strings.TrimSpace(name), strings.TrimSpace(id)
			if name == "" || id == "" {
				continue
			}
			out = append(out, LegacyEntry{Client: client, Name: name, RemoteID: id})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Client != out[j].Client {
			return out[i].Client < out[j].Client
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func legacyClient(section string) (models.RemoteClient, bool) {
	switch strings.ToLower(section) {
	case "anydesk":
		return models.ClientAnyDesk, true
	case "litemanager":
		return models.ClientLiteManager, true
	default:
		return "", false
	}
}
