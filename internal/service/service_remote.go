// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/service-launcher/internal/cache"
	"github.com/MKhiriev/service-launcher/internal/config"
	"github.com/MKhiriev/service-launcher/internal/launcher"
	"github.com/MKhiriev/service-launcher/internal/locales"
	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/internal/validators"
	"github.com/MKhiriev/service-launcher/models"
)

// anyDeskProcessNames are matched when deciding whether the cache may be removed.
var anyDeskProcessNames = []string{"AnyDesk.exe", "AnyDesk"}

// defaultExeNames are shown when no executable path is configured.
var defaultExeNames = map[models.RemoteClient]string{
	models.ClientAnyDesk:     "AnyDesk.exe",
	models.ClientLiteManager: "ROMViewer.exe",
}

type remoteService struct {
	cfg       config.Launcher
	appData   string
	launcher  launcher.RemoteLauncher
	processes launcher.ProcessInspector
	cleaner   CacheCleaner
	validator validators.Validator
	prompter  Prompter
	reporter  Reporter
	tr        Localizer
}

// NewRemoteService returns a RemoteService. appData is the roaming
// application data root holding the AnyDesk cache.
func NewRemoteService(
	cfg config.Launcher,
	appData string,
	remoteLauncher launcher.RemoteLauncher,
	processes launcher.ProcessInspector,
	cleaner CacheCleaner,
	prompter Prompter,
	reporter Reporter,
	tr Localizer,
) RemoteService {
	return &remoteService{
		cfg:       cfg,
		appData:   appData,
		launcher:  remoteLauncher,
		processes: processes,
		cleaner:   cleaner,
		validator: validators.NewConnectionValidator(),
		prompter:  prompter,
		reporter:  reporter,
		tr:        tr,
	}
}

func (s *remoteService) Connect(ctx context.Context, req models.ConnectionRequest, opts models.LaunchOptions) error {
	log := logger.FromContext(ctx)

	client, ok := req.Client()
	if !ok {
		return ErrInvalidRequest
	}
	data := map[string]any{"Client": string(client), "ID": req.ID}

	s.reporter.Status(models.LevelInfo, locales.MsgRemoteFound, data)
	s.reporter.Progress(10)

	if client == models.ClientAnyDesk {
		s.clearCache(ctx, opts)
	} else {
		s.reporter.Output(s.tr.T(locales.MsgRemoteDetected, data))
	}

	s.reporter.Status(models.LevelInfo, locales.MsgRequestingPassword, data)
	s.reporter.Progress(40)

	password, err := s.prompter.Password(ctx, s.tr.T(locales.MsgPasswordTitle, data), s.tr.T(locales.MsgPasswordPrompt, data))
	if err != nil {
		log.Info().Err(err).Str("func", "*remoteService.Connect").Str("client", string(client)).Msg("password prompt dismissed")
		s.passwordDismissed(err, data)
		return err
	}

	launchReq := models.LaunchRequest{
		Client:         client,
		ExecutablePath: s.cfg.ExecutablePath(client),
		TargetID:       req.ID,
		Password:       password,
	}
	if err = s.validator.Validate(ctx, launchReq); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	s.reporter.Status(models.LevelInfo, locales.MsgLaunching, data)
	s.reporter.Progress(50)

	result, err := s.launcher.Launch(ctx, launchReq)
	if err != nil {
		s.launchFailed(err, launchReq, data)
		return err
	}

	data["PID"] = result.ProcessID
	log.Info().Str("func", "*remoteService.Connect").Str("client", string(client)).Int("pid", result.ProcessID).Msg("remote client launched")
	s.reporter.Status(models.LevelInfo, locales.MsgLaunched, data)
	s.reporter.Output(s.tr.T(locales.MsgLaunchedDetails, data))
	s.reporter.Progress(100)
	return nil
}

// clearCache removes the AnyDesk cache when the user asked for it and
// AnyDesk is not running. Failures are reported but never stop the launch.
func (s *remoteService) clearCache(ctx context.Context, opts models.LaunchOptions) {
	log := logger.FromContext(ctx)

	if !opts.ResetCache || s.anyDeskRunning(ctx) {
		s.reporter.Status(models.LevelWarning, locales.MsgCacheSkipped, nil)
		s.reporter.Progress(30)
		return
	}

	s.reporter.Status(models.LevelInfo, locales.MsgCacheClearing, nil)
	s.reporter.Progress(20)

	dir := cache.AnyDeskCacheDir(s.appData)
	outcome, err := s.cleaner.Clean(dir)
	if err != nil {
		log.Err(err).Str("func", "*remoteService.clearCache").Str("path", dir).Msg("anydesk cache cleanup failed")
		data := map[string]any{"Path": dir, "Error": err.Error()}
		var fsErr *cache.FileSystemError
		if errors.As(err, &fsErr) {
			data["Error"] = fsErr.Err.Error()
		}
		s.reporter.Status(models.LevelError, locales.MsgCacheError, data)
		s.reporter.Output(DescribeText(s.tr, err))
		return
	}

	switch outcome {
	case models.CleanupCleared:
		s.reporter.Status(models.LevelInfo, locales.MsgCacheCleared, nil)
	default:
		s.reporter.Status(models.LevelInfo, locales.MsgCacheNotFound, nil)
	}
	s.reporter.Progress(30)
}

func (s *remoteService) anyDeskRunning(ctx context.Context) bool {
	running, err := s.processes.IsRunning(ctx, anyDeskProcessNames...)
	if err != nil {
		// unknown state counts as running
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*remoteService.anyDeskRunning").Msg("process check failed")
		return true
	}
	return running
}

func (s *remoteService) passwordDismissed(err error, data map[string]any) {
	switch {
	case errors.Is(err, ErrNoPassword):
		s.reporter.Status(models.LevelWarning, locales.MsgNoPasswordEntered, data)
		s.reporter.Output(s.tr.T(locales.MsgNoPasswordDetails, data))
	default:
		s.reporter.Status(models.LevelWarning, locales.MsgLaunchCanceled, data)
		s.reporter.Output(s.tr.T(locales.MsgLaunchCanceled, data))
	}
	s.reporter.Progress(0)
}

func (s *remoteService) launchFailed(err error, req models.LaunchRequest, data map[string]any) {
	var configErr *launcher.ConfigError

	title := s.tr.T(locales.MsgLaunchFailedTitle, data)
	if errors.As(err, &configErr) {
		exe := defaultExeNames[req.Client]
		if configErr.Path != "" {
			exe = filepath.Base(configErr.Path)
		}
		missing := map[string]any{"Exe": exe, "Path": configErr.Path}
		s.reporter.Status(models.LevelError, locales.MsgExecutableMissing, missing)
		s.reporter.Output(title + "\n" + s.tr.T(locales.MsgExecutableMissing, missing))
	} else {
		failed := map[string]any{"Client": data["Client"], "Error": DescribeText(s.tr, err)}
		s.reporter.Status(models.LevelError, locales.MsgLaunchFailed, failed)
		s.reporter.Output(title + "\n" + s.tr.T(locales.MsgLaunchFailed, failed))
	}
	s.reporter.Progress(0)
}
