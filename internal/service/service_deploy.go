// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/service-launcher/internal/adapter"
	"github.com/MKhiriev/service-launcher/internal/backoffice"
	"github.com/MKhiriev/service-launcher/internal/config"
	"github.com/MKhiriev/service-launcher/internal/installer"
	"github.com/MKhiriev/service-launcher/internal/launcher"
	"github.com/MKhiriev/service-launcher/internal/locales"
	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/internal/parser"
	"github.com/MKhiriev/service-launcher/models"
)

// stopSettleDelay is waited after stopping the first BackOffice run so it
// releases the config file.
var stopSettleDelay = time.Second

type deployService struct {
	cfg       config.BackOffice
	appData   string
	adapter   adapter.ServerAdapter
	installer installer.Provider
	cleaner   CacheCleaner
	spawner   launcher.Spawner
	processes launcher.ProcessInspector
	prompter  Prompter
	reporter  Reporter
	tr        Localizer
}

func NewDeployService(
	cfg config.BackOffice,
	appData string,
	serverAdapter adapter.ServerAdapter,
	provider installer.Provider,
	cleaner CacheCleaner,
	spawner launcher.Spawner,
	processes launcher.ProcessInspector,
	prompter Prompter,
	reporter Reporter,
	tr Localizer,
) DeployService {
	return &deployService{
		cfg:       cfg,
		appData:   appData,
		adapter:   serverAdapter,
		installer: provider,
		cleaner:   cleaner,
		spawner:   spawner,
		processes: processes,
		prompter:  prompter,
		reporter:  reporter,
		tr:        tr,
	}
}

// deployment is the state of one Deploy call.
type deployment struct {
	raw    string
	target models.Target

	info       models.ServerInfo
	app        models.AppInfo
	version    string
	name       string
	installDir string
	sanitized  string
	appDataDir string
	command    launcher.Command

	mu  sync.Mutex
	pid int
}

func (d *deployment) track(pid int) {
	d.mu.Lock()
	d.pid = pid
	d.mu.Unlock()
}

func (d *deployment) untrack() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	pid := d.pid
	d.pid = 0
	return pid
}

// Deploy runs the eleven launch steps for a URL request. On error or abort
// a BackOffice process started by the first run is stopped; the process of
// the final restart is left running.
func (s *deployService) Deploy(ctx context.Context, req models.ConnectionRequest) error {
	log := logger.FromContext(ctx)
	d := &deployment{raw: req.RawInput}

	steps := []struct {
		step step
		run  func(context.Context, *deployment) error
	}{
		{stepParse, func(_ context.Context, d *deployment) error { return s.parse(req, d) }},
		{stepHTTPRequest, s.request},
		{stepProcessResponse, s.processResponse},
		{stepCheckState, s.checkState},
		{stepFormatVersion, s.formatVersion},
		{stepGetName, s.getName},
		{stepFindDownload, s.findDownload},
		{stepAppDataCleanup, s.cleanAppData},
		{stepFirstRun, s.firstRun},
		{stepWaitEditConfig, s.waitEditConfig},
		{stepRestart, s.restart},
	}

	for _, st := range steps {
		if err := ctx.Err(); err != nil {
			return s.fail(ctx, d, st.step, err)
		}
		if err := st.run(ctx, d); err != nil {
			return s.fail(ctx, d, st.step, err)
		}
		s.reporter.Progress(st.step.to)
		log.Debug().Str("func", "*deployService.Deploy").Str("step", st.step.name).Msg("step completed")
	}

	s.reporter.Status(models.LevelInfo, locales.MsgDeployDone, nil)
	s.reporter.Progress(100)
	log.Info().Str("func", "*deployService.Deploy").Str("target", d.target.HostPort()).Msg("backoffice launched")
	return nil
}

func (s *deployService) fail(ctx context.Context, d *deployment, st step, err error) error {
	log := logger.FromContext(ctx)
	s.stopTracked(d, log)

	if isCanceled(err) {
		log.Info().Err(err).Str("func", "*deployService.Deploy").Str("step", st.name).Msg("deployment canceled")
		s.reporter.Status(models.LevelInfo, locales.MsgOperationCanceled, nil)
		s.reporter.Output(s.tr.T(locales.MsgOperationCanceled) + "\n" + DescribeText(s.tr, err))
	} else {
		log.Err(err).Str("func", "*deployService.Deploy").Str("step", st.name).Msg("deployment failed")
		s.reporter.Status(models.LevelError, locales.MsgDeployFailed, nil)
		s.reporter.Output(DescribeText(s.tr, err))
	}
	s.reporter.Progress(0)
	return err
}

func (s *deployService) stopTracked(d *deployment, log *logger.Logger) {
	pid := d.untrack()
	if pid == 0 {
		return
	}
	// the operation context may already be canceled
	if err := s.processes.Stop(context.Background(), pid); err != nil {
		log.Warn().Err(err).Str("func", "*deployService.stopTracked").Int("pid", pid).Msg("failed to stop backoffice")
		return
	}
	log.Info().Str("func", "*deployService.stopTracked").Int("pid", pid).Msg("backoffice stopped")
}

// ── steps ───────────────────────────────────────────────────────────────────

func (s *deployService) parse(req models.ConnectionRequest, d *deployment) error {
	s.reporter.Status(models.LevelInfo, locales.MsgParsingAddress, nil)
	if req.Target != nil {
		d.target = *req.Target
		return nil
	}
	target, err := parser.ParseTarget(req.RawInput)
	if err != nil {
		return err
	}
	d.target = target
	return nil
}

func (s *deployService) request(ctx context.Context, d *deployment) error {
	s.reporter.Progress(stepHTTPRequest.at(0.1))
	s.reporter.Status(models.LevelInfo, locales.MsgSendingRequest, map[string]any{"Address": d.target.HostPort()})

	info, err := s.adapter.ServerInfo(ctx, d.target)
	if err != nil {
		return err
	}
	d.info = info
	return nil
}

func (s *deployService) processResponse(ctx context.Context, d *deployment) error {
	s.reporter.Status(models.LevelInfo, locales.MsgProcessingResponse, nil)

	app, ok := parser.DetermineAppType(d.raw, d.info.Edition)
	if !ok {
		s.reporter.Progress(stepProcessResponse.at(0.5))
		product, err := s.prompter.ChooseProduct(ctx,
			s.tr.T(locales.MsgAppTypeTitle),
			s.tr.T(locales.MsgAppTypeQuestion, map[string]any{"Edition": d.info.Edition}))
		if err != nil {
			return err
		}
		app.Product = product
	}
	d.app = app

	s.reporter.Status(models.LevelInfo, locales.MsgAppTypeDetected, map[string]any{
		"AppType": string(app.AppType()),
		"Vendor":  string(app.Vendor),
	})
	return nil
}

func (s *deployService) checkState(ctx context.Context, d *deployment) error {
	s.reporter.Status(models.LevelInfo, locales.MsgCheckingServerState, nil)
	if d.info.Started() {
		s.reporter.Status(models.LevelInfo, locales.MsgServerStateOK, nil)
		return nil
	}

	s.reporter.Progress(stepCheckState.at(0.5))
	ok, err := s.prompter.Confirm(ctx,
		s.tr.T(locales.MsgServerStateTitle),
		s.tr.T(locales.MsgServerStateQuestion, map[string]any{"Host": d.target.Host, "State": d.info.ServerState}))
	if err != nil {
		return err
	}
	if !ok {
		return ErrCanceledByUser
	}
	return nil
}

func (s *deployService) formatVersion(_ context.Context, d *deployment) error {
	d.version = parser.FormatVersion(d.info.Version)
	s.reporter.Status(models.LevelInfo, locales.MsgVersionFormatted, map[string]any{"Version": d.version})
	return nil
}

func (s *deployService) getName(_ context.Context, d *deployment) error {
	name, err := s.installer.LocalName(d.app.AppType(), d.version)
	if err != nil {
		return err
	}
	d.name = name
	s.reporter.Status(models.LevelInfo, locales.MsgInstallerName, map[string]any{"Name": name})
	return nil
}

func (s *deployService) findDownload(ctx context.Context, d *deployment) error {
	s.reporter.Progress(stepFindDownload.from)

	dir, err := s.installer.Prepare(ctx, installer.Request{
		AppType: d.app.AppType(),
		Vendor:  d.app.Vendor,
		Version: d.version,
	}, stepObserver{reporter: s.reporter, step: stepFindDownload})
	if err != nil {
		return err
	}
	d.installDir = dir
	return nil
}

func (s *deployService) cleanAppData(ctx context.Context, d *deployment) error {
	s.reporter.Progress(stepAppDataCleanup.at(0.1))
	s.reporter.Status(models.LevelInfo, locales.MsgAppDataCleanup, nil)

	d.sanitized = parser.SanitizeForPath(d.target.Host)
	d.appDataDir = parser.AppDataPath(s.appData, d.app, d.sanitized, d.info.Version)

	outcome, err := s.cleaner.Clean(d.appDataDir)
	if err != nil {
		// not fatal, BackOffice recreates the folder
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*deployService.cleanAppData").Str("path", d.appDataDir).Msg("appdata cleanup failed")
		s.reporter.Status(models.LevelWarning, locales.MsgAppDataError, nil)
		s.reporter.Output(DescribeText(s.tr, err))
		return nil
	}

	if outcome == models.CleanupNotFound {
		s.reporter.Status(models.LevelInfo, locales.MsgAppDataNotFound, nil)
		return nil
	}
	s.reporter.Status(models.LevelInfo, locales.MsgAppDataCleared, nil)
	return nil
}

func (s *deployService) firstRun(ctx context.Context, d *deployment) error {
	s.reporter.Progress(stepFirstRun.at(0.1))
	s.reporter.Status(models.LevelInfo, locales.MsgFirstRun, nil)

	cmd, err := backoffice.StartCommand(d.installDir, d.sanitized)
	if err != nil {
		return err
	}
	d.command = cmd

	pid, err := s.spawner.Start(ctx, cmd)
	if err != nil {
		return &launcher.LaunchError{Path: cmd.Path, Err: err}
	}
	d.track(pid)
	s.reporter.Status(models.LevelInfo, locales.MsgBackOfficeStarted, map[string]any{"PID": pid})
	return nil
}

func (s *deployService) waitEditConfig(ctx context.Context, d *deployment) error {
	log := logger.FromContext(ctx)
	path := filepath.Join(d.appDataDir, backoffice.ConfigRelPath)

	s.reporter.Progress(stepWaitEditConfig.from)
	s.reporter.Status(models.LevelInfo, locales.MsgWaitingConfig, nil)

	err := backoffice.WaitForFile(ctx, path, s.cfg.ConfigWaitTimeout, s.cfg.ConfigCheckInterval, func(f float64) {
		s.reporter.Progress(stepWaitEditConfig.at(f * 0.5))
	})
	if err != nil {
		return err
	}
	if err = backoffice.WaitForContent(ctx, path, backoffice.ContentWaitTimeout, backoffice.ContentPollInterval); err != nil {
		return err
	}

	s.stopTracked(d, log)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(stopSettleDelay):
	}

	s.reporter.Progress(stepWaitEditConfig.at(0.75))
	s.reporter.Status(models.LevelInfo, locales.MsgEditingConfig, nil)
	err = backoffice.EditConfig(path, backoffice.ServerSettings{
		Host:     d.target.Host,
		Port:     d.target.Port,
		Protocol: d.target.Scheme,
		Login:    s.cfg.DefaultLogin,
	}, log)
	if err != nil {
		return err
	}
	s.reporter.Status(models.LevelInfo, locales.MsgConfigEdited, nil)
	return nil
}

func (s *deployService) restart(ctx context.Context, d *deployment) error {
	s.reporter.Progress(stepRestart.at(0.1))
	s.reporter.Status(models.LevelInfo, locales.MsgRestarting, nil)

	pid, err := s.spawner.Start(ctx, d.command)
	if err != nil {
		return &launcher.LaunchError{Path: d.command.Path, Err: err}
	}
	s.reporter.Status(models.LevelInfo, locales.MsgBackOfficeStarted, map[string]any{"PID": pid})
	return nil
}
