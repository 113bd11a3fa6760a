// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/service-launcher/internal/adapter"
	"github.com/MKhiriev/service-launcher/internal/config"
	"github.com/MKhiriev/service-launcher/internal/locales"
	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/internal/service"
	"github.com/MKhiriev/service-launcher/internal/store"
	"github.com/MKhiriev/service-launcher/internal/tui"
	"github.com/MKhiriev/service-launcher/internal/workers"
	"github.com/MKhiriev/service-launcher/models"
)

// App owns the launcher process: storage, services, the operation runner
// and the window.
type App struct {
	cfg       *config.AppConfig
	storages  *store.Storages
	services  *service.Services
	runner    *workers.Runner
	bridge    *tui.Bridge
	tr        *locales.Translator
	buildInfo models.BuildInfo
	logger    *logger.Logger
}

// NewApp wires every component from cfg. The returned App must be closed.
func NewApp(ctx context.Context, cfg *config.AppConfig, buildInfo models.BuildInfo, log *logger.Logger) (*App, error) {
	tr, err := locales.NewTranslator(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("create translator: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	appData, err := os.UserConfigDir()
	if err != nil {
		log.Warn().Err(err).Str("func", "NewApp").Msg("application data directory is unknown")
	}

	bridge := tui.NewBridge()
	services, err := service.NewServices(cfg, service.Dependencies{
		Storages:   storages,
		Adapter:    adapter.NewHTTPServerAdapter(cfg.Adapter, log),
		Reporter:   bridge,
		Prompter:   bridge,
		Translator: tr,
		AppData:    appData,
	}, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create services: %w", err)
	}

	return &App{
		cfg:       cfg,
		storages:  storages,
		services:  services,
		runner:    workers.NewRunner(ctx, log),
		bridge:    bridge,
		tr:        tr,
		buildInfo: buildInfo,
		logger:    log,
	}, nil
}

// Run shows the window and blocks until the user quits.
func (a *App) Run(ctx context.Context) error {
	ui, err := tui.New(tui.Dependencies{
		Services:      a.services,
		Runner:        a.runner,
		Bridge:        a.bridge,
		Translator:    a.tr,
		Logger:        a.logger,
		ConfigPath:    a.cfg.FilePath,
		InitialTarget: a.cfg.InitialTarget,
		LoadWarning:   a.cfg.LoadWarning,
		Notice:        a.importLegacyBook(ctx),
		BuildInfo:     a.buildInfo,
	})
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	a.logger.Info().Str("func", "App.Run").Str("version", a.buildInfo.Version).Msg("launcher started")
	return ui.Run(ctx)
}

// importLegacyBook moves notebook.json next to config.ini into an empty
// book. Failures are logged and do not stop the start.
func (a *App) importLegacyBook(ctx context.Context) *tui.Notice {
	path := filepath.Join(filepath.Dir(a.cfg.FilePath), store.LegacyNotebookFile)

	n, err := a.services.Notebook.ImportLegacy(ctx, path)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "App.importLegacyBook").Str("path", path).Msg("legacy notebook import failed")
		return nil
	}
	if n == 0 {
		return nil
	}
	return &tui.Notice{
		Level: models.LevelInfo,
		ID:    locales.MsgBookImported,
		Data:  map[string]any{"Count": n, "Path": path},
	}
}

// Close releases the book database.
func (a *App) Close() error {
	return a.storages.Close()
}
