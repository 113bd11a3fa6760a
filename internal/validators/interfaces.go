// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks domain values before they reach storage or the
// process launcher.
//
// A Validator accepts any supported model and an optional list of field
// names. When no fields are given, the default set for that model is checked.
// The first failing rule is returned as a sentinel error from errors.go.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
