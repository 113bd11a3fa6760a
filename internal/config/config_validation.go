// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the invariants the launcher relies on at startup. Client
// executable paths are not checked here: a bad path is reported when the
// client is launched, and the rest of the application stays usable.
func (cfg *AppConfig) validate() error {
	if !strings.Contains(cfg.Launcher.LiteManagerIDMask, "1") {
		return ErrInvalidLauncherConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Installer.Root == "" || len(cfg.Installer.Order) == 0 {
		return ErrInvalidInstallerConfigs
	}
	for _, kind := range cfg.Installer.Order {
		if kind != SourceSMB && kind != SourceHTTP && kind != SourceFTP {
			return ErrInvalidInstallerConfigs
		}
	}

	if cfg.BackOffice.ConfigWaitTimeout <= 0 || cfg.BackOffice.ConfigCheckInterval <= 0 {
		return ErrInvalidBackOfficeConfigs
	}

	if cfg.Storage.NotebookPath == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
