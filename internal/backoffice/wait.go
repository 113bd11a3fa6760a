// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backoffice

import (
	"bytes"
	"context"
	"os"
	"time"
)

// Content readiness is polled with fixed bounds: BackOffice writes the file
// shortly after creating it.
const (
	ContentWaitTimeout  = 10 * time.Second
	ContentPollInterval = 50 * time.Millisecond
)

// WaitForFile polls until path exists. progress, when not nil, receives the
// elapsed share of timeout in [0, 1].
func WaitForFile(ctx context.Context, path string, timeout, interval time.Duration, progress func(float64)) error {
	return poll(ctx, path, timeout, interval, progress, func() bool {
		_, err := os.Stat(path)
		return err == nil
	})
}

// WaitForContent polls until path contains at least one '<', which marks the
// start of the XML document.
func WaitForContent(ctx context.Context, path string, timeout, interval time.Duration) error {
	return poll(ctx, path, timeout, interval, nil, func() bool {
		data, err := os.ReadFile(path)
		return err == nil && bytes.IndexByte(data, '<') >= 0
	})
}

func poll(ctx context.Context, path string, timeout, interval time.Duration, progress func(float64), ready func() bool) error {
	started := time.Now()
	deadline := started.Add(timeout)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if ready() {
			report(progress, 1)
			return nil
		}
		if !time.Now().Before(deadline) {
			return &TimeoutError{Path: path, Timeout: timeout}
		}
		report(progress, float64(time.Since(started))/float64(timeout))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func report(progress func(float64), share float64) {
	if progress == nil {
		return
	}
	progress(min(max(share, 0), 1))
}
