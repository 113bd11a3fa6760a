// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

const notAvailable = "N/A"

// BuildInfo is the link-time metadata of the launcher binary.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// Normalized returns a copy where blank fields are replaced with "N/A".
func (b BuildInfo) Normalized() BuildInfo {
	return BuildInfo{
		Version: orNA(b.Version),
		Date:    orNA(b.Date),
		Commit:  orNA(b.Commit),
	}
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return notAvailable
	}
	return strings.TrimSpace(v)
}
