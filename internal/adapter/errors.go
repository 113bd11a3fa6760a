// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable wraps transport failures: DNS, refused connections, timeouts.
	ErrUnreachable = errors.New("server unreachable")
	// ErrNotFound is returned for HTTP 404.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned for HTTP 401 and 403.
	ErrForbidden = errors.New("access denied")
	// ErrServerError is returned for HTTP 5xx.
	ErrServerError = errors.New("server error")
	// ErrUnexpectedStatus is returned for any other non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrInvalidResponse is returned when the body is not a JSON object.
	ErrInvalidResponse = errors.New("invalid JSON response")
	// ErrMissingKeys is returned when required keys are absent.
	ErrMissingKeys = errors.New("missing required keys")
)

// ProbeError reports a failed server probe.
type ProbeError struct {
	URL string
	Err error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("probe %s: %v", e.URL, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}
