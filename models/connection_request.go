// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RequestKind is the classification of a user supplied target string.
type RequestKind int

const (
	KindInvalid RequestKind = iota
	KindURL
	KindAnyDeskID
	KindLiteManagerID
)

// String returns the stable, log friendly name of the kind.
func (k RequestKind) String() string {
	switch k {
	case KindURL:
		return "url"
	case KindAnyDeskID:
		return "anydesk_id"
	case KindLiteManagerID:
		return "litemanager_id"
	default:
		return "invalid"
	}
}

// ConnectionRequest is the immutable result of classifying user input.
//
// ID holds the extracted remote-desktop identifier for AnyDesk and LiteManager
// requests and the normalized host for URL requests. It is empty only when
// Kind is KindInvalid.
type ConnectionRequest struct {
	RawInput string
	Kind     RequestKind
	ID       string
	Target   *Target
}

// IsRemoteID reports whether the request addresses a remote-desktop client
// rather than a server.
func (r ConnectionRequest) IsRemoteID() bool {
	return r.Kind == KindAnyDeskID || r.Kind == KindLiteManagerID
}

// Client maps a remote-desktop request kind to the client application that
// serves it. ok is false for URL and invalid requests.
func (r ConnectionRequest) Client() (client RemoteClient, ok bool) {
	switch r.Kind {
	case KindAnyDeskID:
		return ClientAnyDesk, true
	case KindLiteManagerID:
		return ClientLiteManager, true
	default:
		return "", false
	}
}
