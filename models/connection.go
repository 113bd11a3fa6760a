// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Connection is a saved entry of the connection book.
type Connection struct {
	// ID is a UUIDv7 assigned on creation.
	ID string `json:"id"`
	// Client is the remote-desktop client the entry belongs to.
	Client RemoteClient `json:"client"`
	// Name is a human readable label, unique per client.
	Name string `json:"name"`
	// RemoteID is the AnyDesk or LiteManager identifier.
	RemoteID  string    `json:"remote_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ConnectionFilter narrows a connection book listing. Zero values match all.
type ConnectionFilter struct {
	Client RemoteClient
	Query  string
}
