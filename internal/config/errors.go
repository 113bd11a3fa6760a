// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [AppConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidLauncherConfigs indicates a LiteManager ID mask without any
	// digit placeholder.
	ErrInvalidLauncherConfigs = errors.New("invalid launcher configuration")
	// ErrInvalidAdapterConfigs indicates a non-positive HTTP request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidInstallerConfigs indicates an empty installer root or an
	// unknown source kind in the priority order.
	ErrInvalidInstallerConfigs = errors.New("invalid installer configuration")
	// ErrInvalidBackOfficeConfigs indicates non-positive config wait settings.
	ErrInvalidBackOfficeConfigs = errors.New("invalid backoffice configuration")
	// ErrInvalidStorageConfigs indicates an empty connection book path.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)

// Load warnings. They never fail startup.
var (
	ErrConfigFileUnreadable = errors.New("config file unreadable, using defaults")
	ErrConfigFileNotWritten = errors.New("config file could not be written")
)
