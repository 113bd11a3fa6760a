// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !windows

package installer

type noVendorInspector struct{}

// NewVendorInspector returns an inspector that never knows the vendor:
// version resources are only readable on Windows.
func NewVendorInspector() VendorInspector {
	return noVendorInspector{}
}

func (noVendorInspector) CompanyName(string) (string, bool) { return "", false }
