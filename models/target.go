// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"

	DefaultPort = 443
)

// Target is a server address extracted from free-form user input.
type Target struct {
	Host        string
	Port        int
	Scheme      string
	IsIPAddress bool
}

// HostPort returns host:port.
func (t Target) HostPort() string {
	return t.Host + ":" + strconv.Itoa(t.Port)
}

// IsStandardPort reports whether Port is the default port of Scheme.
func (t Target) IsStandardPort() bool {
	return (t.Scheme == SchemeHTTP && t.Port == 80) || (t.Scheme == SchemeHTTPS && t.Port == 443)
}
