// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/internal/utils"
)

// Runner is the single-operation guard.
type Runner struct {
	parent context.Context
	ids    *utils.UUIDGenerator
	log    *logger.Logger

	mu     sync.Mutex
	name   string
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRunner returns a Runner whose workers inherit ctx.
func NewRunner(ctx context.Context, log *logger.Logger) *Runner {
	return &Runner{parent: ctx, ids: utils.NewUUIDGenerator(), log: log}
}

// TryRun starts w in a new goroutine under name. onDone, when not nil, is
// called with the worker's result after the runner is free again, so it may
// start the next operation.
func (r *Runner) TryRun(name string, w Worker, onDone func(error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		r.log.Warn().Str("func", "Runner.TryRun").Str("running", r.name).Str("rejected", name).Msg("operation rejected")
		return ErrOperationInProgress
	}

	opID := r.ids.Generate()
	opLog := r.log.With().Str("operation", name).Str("operation_id", opID).Logger()

	ctx, cancel := context.WithCancel(r.parent)
	ctx = utils.WithOperationID(ctx, opID)
	ctx = opLog.WithContext(ctx)

	done := make(chan struct{})
	r.name, r.cancel, r.done = name, cancel, done

	go func() {
		started := time.Now()
		err := runSafely(ctx, w)
		cancel()

		r.mu.Lock()
		r.name, r.cancel, r.done = "", nil, nil
		r.mu.Unlock()
		close(done)

		opLog.Info().Err(err).Dur("elapsed", time.Since(started)).Msg("operation finished")
		if onDone != nil {
			onDone(err)
		}
	}()

	opLog.Info().Msg("operation started")
	return nil
}

func runSafely(ctx context.Context, w Worker) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrWorkerPanicked, p)
		}
	}()
	return w.Run(ctx)
}

// Abort cancels the running worker and reports whether there was one.
func (r *Runner) Abort() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel == nil {
		return false
	}
	r.log.Info().Str("func", "Runner.Abort").Str("operation", r.name).Msg("abort requested")
	r.cancel()
	return true
}

// Busy reports whether a worker is running.
func (r *Runner) Busy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancel != nil
}

// Current returns the name of the running operation, or "".
func (r *Runner) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.name
}

// Wait blocks until the running worker finishes or timeout elapses. It
// returns true when the runner is idle.
func (r *Runner) Wait(timeout time.Duration) bool {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()

	if done == nil {
		return true
	}

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}
