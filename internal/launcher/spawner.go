// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package launcher

import (
	"context"
	"os/exec"
	"strings"

	"github.com/MKhiriev/service-launcher/internal/logger"
)

// ExecSpawner starts detached child processes with os/exec. Children are
// reaped in the background so they never linger as zombies.
type ExecSpawner struct {
	log *logger.Logger
}

func NewExecSpawner(log *logger.Logger) *ExecSpawner {
	return &ExecSpawner{log: log}
}

// Start runs cmd and returns its PID. The context only bounds the start
// itself; the child outlives it.
func (s *ExecSpawner) Start(ctx context.Context, cmd Command) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	c := exec.Command(cmd.Path, cmd.Args...)
	c.Dir = cmd.Dir
	c.SysProcAttr = sysProcAttr()
	if cmd.Stdin != "" {
		c.Stdin = strings.NewReader(cmd.Stdin)
	}

	if err := c.Start(); err != nil {
		return 0, err
	}
	pid := c.Process.Pid

	go func() {
		err := c.Wait()
		s.log.Debug().Err(err).Str("func", "ExecSpawner.Start").Int("pid", pid).Msg("child exited")
	}()

	return pid, nil
}
