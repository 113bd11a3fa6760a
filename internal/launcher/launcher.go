// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package launcher

import (
	"context"
	"os"

	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/models"
)

const maskedValue = "***"

// Launcher builds client command lines and hands them to a Spawner.
type Launcher struct {
	spawner Spawner
	log     *logger.Logger
}

// NewLauncher returns a Launcher that starts processes through spawner.
func NewLauncher(spawner Spawner, log *logger.Logger) *Launcher {
	return &Launcher{spawner: spawner, log: log}
}

// Launch starts the client for req. A missing or unusable executable gives ConfigError; a failed start gives LaunchError.
func (l *Launcher) Launch(ctx context.Context, req models.LaunchRequest) (models.LaunchResult, error) {
	result := models.LaunchResult{ExecutablePath: req.ExecutablePath}

	if err := checkExecutable(req.ExecutablePath); err != nil {
		l.log.Err(err).Str("func", "Launcher.Launch").Str("client", string(req.Client)).Msg("executable check failed")
		result.Error = err.Error()
		return result, err
	}

	cmd, masked, err := clientCommand(req)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}

	l.log.Info().
		Str("func", "Launcher.Launch").
		Str("client", string(req.Client)).
		Str("path", req.ExecutablePath).
		Strs("args", masked).
		Msg("launching remote client")

	pid, err := l.spawner.Start(ctx, cmd)
	if err != nil {
		launchErr := &LaunchError{Path: req.ExecutablePath, Err: err}
		l.log.Err(err).Str("func", "Launcher.Launch").Str("path", req.ExecutablePath).Msg("spawn failed")
		result.Error = launchErr.Error()
		return result, launchErr
	}

	result.ProcessID = pid
	return result, nil
}

// checkExecutable returns a *ConfigError unless path names an existing file.
func checkExecutable(path string) error {
	if path == "" {
		return &ConfigError{}
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return &ConfigError{Path: path}
	}
	return nil
}

// clientCommand returns the command for req and its arguments with the
// password masked for logging.
func clientCommand(req models.LaunchRequest) (Command, []string, error) {
	switch req.Client {
	case models.ClientAnyDesk:
		args := []string{req.TargetID, "--with-password"}
		return Command{
			Path:  req.ExecutablePath,
			Args:  args,
			Stdin: req.Password + "\n",
		}, args, nil
	case models.ClientLiteManager:
		args := []string{"/NOIPID:" + req.TargetID, "/password:" + req.Password}
		masked := []string{args[0], "/password:" + maskedValue}
		return Command{Path: req.ExecutablePath, Args: args}, masked, nil
	default:
		return Command{}, nil, ErrUnknownClient
	}
}
