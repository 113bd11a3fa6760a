// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package parser classifies free-form user input into connection requests
// and derives the values the deployment flow needs from a server address:
// host, port and scheme, the formatted distribution version, the application
// type, and file-system safe folder names.
//
// Everything in this package is pure and safe for concurrent use.
package parser
