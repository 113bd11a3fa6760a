// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StateStartedSuccessfully is the serverState value of a healthy server.
const StateStartedSuccessfully = "STARTED_SUCCESSFULLY"

// ServerInfo is the subset of the monitoring endpoint response the launcher
// relies on. Raw keeps the complete decoded document for display.
type ServerInfo struct {
	Edition     string         `json:"edition"`
	Version     string         `json:"version"`
	ServerState string         `json:"serverState"`
	Raw         map[string]any `json:"-"`
}

// Started reports whether the server finished its startup sequence.
func (s ServerInfo) Started() bool {
	return s.ServerState == StateStartedSuccessfully
}

// Vendor is the brand of the back-office distribution.
type Vendor string

const (
	VendorIiko  Vendor = "iiko"
	VendorSyrve Vendor = "Syrve"
)

// Product is the back-office flavour: a single restaurant or a chain.
type Product string

const (
	ProductRMS   Product = "RMS"
	ProductChain Product = "Chain"
)

// AppType is the vendor-qualified product name, e.g. "iikoRMS" or "SyrveChain".
// It is used as a key in configuration sections.
type AppType string

// NewAppType joins vendor and product.
func NewAppType(vendor Vendor, product Product) AppType {
	return AppType(string(vendor) + string(product))
}

// AppInfo is the outcome of application type detection.
type AppInfo struct {
	Vendor  Vendor
	Product Product
}

// AppType returns the combined type key.
func (a AppInfo) AppType() AppType {
	return NewAppType(a.Vendor, a.Product)
}
