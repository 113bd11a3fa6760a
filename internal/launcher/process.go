// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package launcher

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/shirou/gopsutil/v3/process"
)

// ProcessManager inspects the process table with gopsutil.
type ProcessManager struct {
	log *logger.Logger
}

func NewProcessManager(log *logger.Logger) *ProcessManager {
	return &ProcessManager{log: log}
}

func (m *ProcessManager) IsRunning(ctx context.Context, names ...string) (bool, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		m.log.Err(err).Str("func", "ProcessManager.IsRunning").Msg("list processes")
		return false, fmt.Errorf("list processes: %w", err)
	}

	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			// exited between listing and inspection, or access denied
			continue
		}
		if matchesAny(name, names) {
			m.log.Debug().Str("func", "ProcessManager.IsRunning").Str("name", name).Int32("pid", p.Pid).Msg("process found")
			return true, nil
		}
	}
	return false, nil
}

func (m *ProcessManager) Stop(ctx context.Context, pid int) error {
	p, err := process.NewProcessWithContext(ctx, int32(pid))
	if errors.Is(err, process.ErrorProcessNotRunning) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open process %d: %w", pid, err)
	}

	children, err := p.ChildrenWithContext(ctx)
	if err != nil && !errors.Is(err, process.ErrorNoChildren) {
		m.log.Warn().Err(err).Str("func", "ProcessManager.Stop").Int("pid", pid).Msg("list children")
	}
	for _, child := range children {
		if err = child.KillWithContext(ctx); err != nil {
			m.log.Warn().Err(err).Str("func", "ProcessManager.Stop").Int32("child", child.Pid).Msg("kill child")
		}
	}

	if err = p.KillWithContext(ctx); err != nil {
		if running, _ := p.IsRunningWithContext(ctx); !running {
			return nil
		}
		m.log.Err(err).Str("func", "ProcessManager.Stop").Int("pid", pid).Msg("kill process")
		return fmt.Errorf("kill process %d: %w", pid, err)
	}

	m.log.Info().Str("func", "ProcessManager.Stop").Int("pid", pid).Int("children", len(children)).Msg("process stopped")
	return nil
}

func matchesAny(name string, names []string) bool {
	for _, n := range names {
		if strings.EqualFold(name, n) {
			return true
		}
	}
	return false
}
