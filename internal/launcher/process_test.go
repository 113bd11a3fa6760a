// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package launcher

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/shirou/gopsutil/v3/process"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookPath(t *testing.T, name string) string {
	t.Helper()
	path, err := exec.LookPath(name)
	if err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
	return path
}

func TestExecSpawner_StartReturnsPID(t *testing.T) {
	path := lookPath(t, "cat")
	s := NewExecSpawner(logger.Nop())

	pid, err := s.Start(context.Background(), Command{Path: path, Stdin: "hello\n"})

	require.NoError(t, err)
	assert.Positive(t, pid)
}

func TestExecSpawner_MissingBinary(t *testing.T) {
	s := NewExecSpawner(logger.Nop())
	_, err := s.Start(context.Background(), Command{Path: "/definitely/not/here"})
	assert.Error(t, err)
}

func TestExecSpawner_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewExecSpawner(logger.Nop()).Start(ctx, Command{Path: "irrelevant"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessManager_StopKillsProcess(t *testing.T) {
	path := lookPath(t, "sleep")
	pid, err := NewExecSpawner(logger.Nop()).Start(context.Background(), Command{Path: path, Args: []string{"30"}})
	require.NoError(t, err)

	m := NewProcessManager(logger.Nop())
	require.NoError(t, m.Stop(context.Background(), pid))

	assert.Eventually(t, func() bool {
		ok, _ := process.PidExists(int32(pid))
		return !ok
	}, 5*time.Second, 50*time.Millisecond)
}

func TestProcessManager_StopUnknownPIDIsNoop(t *testing.T) {
	m := NewProcessManager(logger.Nop())
	// PIDs this large are not handed out on any supported platform.
	assert.NoError(t, m.Stop(context.Background(), 1<<30))
}

func TestProcessManager_IsRunning(t *testing.T) {
	m := NewProcessManager(logger.Nop())

	running, err := m.IsRunning(context.Background(), "no-such-process-name.exe")
	require.NoError(t, err)
	assert.False(t, running)
}

func TestMatchesAny(t *testing.T) {
	assert.True(t, matchesAny("AnyDesk.exe", []string{"anydesk.exe"}))
	assert.True(t, matchesAny("ANYDESK", []string{"x", "AnyDesk"}))
	assert.False(t, matchesAny("AnyDesk.exe", []string{"AnyDesk"}))
	assert.False(t, matchesAny("any", nil))
}
