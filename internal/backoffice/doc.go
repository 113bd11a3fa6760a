// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backoffice prepares and restarts a BackOffice client installation:
// it builds the start command, waits for the client to write its config file
// and rewrites that file to point at the target server.
package backoffice
