// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the launcher application runtime.
//
// It wires the connection book storage, the services, the single-operation
// runner and the terminal UI into one process lifecycle.
package client
