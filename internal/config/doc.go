// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the launcher.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. config.ini next to the executable (created and backfilled from defaults)
//  2. Environment variables with the LAUNCHER_ prefix
//  3. Command-line flags
//
// The main entry point is [GetAppConfig], which returns the validated
// runtime view of the merged [StructuredConfig].
package config
