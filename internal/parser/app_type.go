// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"strings"

	"github.com/MKhiriev/service-launcher/models"
)

const (
	editionDefault = "default"
	editionChain   = "chain"
)

// VendorOf guesses the distribution vendor from the address the user typed.
func VendorOf(input string) models.Vendor {
	if strings.Contains(strings.ToLower(input), "syrve") {
		return models.VendorSyrve
	}
	return models.VendorIiko
}

// DetermineAppType maps the server edition onto RMS or Chain. ok is false
// for editions it cannot map; the caller then has to ask the user, the
// returned info still carries the detected vendor.
func DetermineAppType(input, edition string) (info models.AppInfo, ok bool) {
	info.Vendor = VendorOf(input)

	switch strings.ToLower(strings.TrimSpace(edition)) {
	case editionDefault:
		info.Product = models.ProductRMS
		return info, true
	case editionChain:
		info.Product = models.ProductChain
		return info, true
	default:
		return info, false
	}
}
