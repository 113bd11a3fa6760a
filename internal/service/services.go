// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/service-launcher/internal/adapter"
	"github.com/MKhiriev/service-launcher/internal/cache"
	"github.com/MKhiriev/service-launcher/internal/config"
	"github.com/MKhiriev/service-launcher/internal/installer"
	"github.com/MKhiriev/service-launcher/internal/launcher"
	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/internal/parser"
	"github.com/MKhiriev/service-launcher/internal/store"
	"github.com/MKhiriev/service-launcher/internal/utils"
)

type Services struct {
	Input    InputService
	Launch   LaunchService
	Remote   RemoteService
	Check    CheckService
	Deploy   DeployService
	Notebook NotebookService
}

// Dependencies are the collaborators NewServices cannot build itself.
type Dependencies struct {
	Storages   *store.Storages
	Adapter    adapter.ServerAdapter
	Reporter   Reporter
	Prompter   Prompter
	Translator Localizer
	// AppData is the roaming application data root.
	AppData string
}

func NewServices(cfg *config.AppConfig, deps Dependencies, logger *logger.Logger) (*Services, error) {
	classifier, err := parser.NewClassifier(cfg.Launcher.LiteManagerIDMask)
	if err != nil {
		return nil, fmt.Errorf("error creating classifier: %w", err)
	}

	spawner := launcher.NewExecSpawner(logger)
	processes := launcher.NewProcessManager(logger)
	cleaner := cache.NewCleaner(logger)
	provider := installer.NewInstaller(cfg.Installer, logger)

	input := NewInputService(classifier, utils.NewClipboard(), logger)
	remote := NewRemoteService(cfg.Launcher, deps.AppData, launcher.NewLauncher(spawner, logger), processes, cleaner,
		deps.Prompter, deps.Reporter, deps.Translator)
	deploy := NewDeployService(cfg.BackOffice, deps.AppData, deps.Adapter, provider, cleaner, spawner, processes,
		deps.Prompter, deps.Reporter, deps.Translator)

	return &Services{
		Input:    input,
		Launch:   NewLaunchService(input, remote, deploy, deps.Reporter),
		Remote:   remote,
		Check:    NewCheckService(input, deps.Adapter, provider, deps.Reporter, deps.Translator),
		Deploy:   deploy,
		Notebook: NewNotebookValidationService().Wrap(NewNotebookService(deps.Storages.Connections, utils.NewUUIDGenerator(), logger)),
	}, nil
}
