// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

// parseFlags parses command-line flags from args.
//
// Flags:
//
//	-c/-config     config.ini path
//	-anydesk       AnyDesk.exe path
//	-litemanager   ROMViewer.exe path
//	-lang          UI language (ru, en)
//	-debug         debug logging
//	-installer-root local distributions root
//	-timeout       HTTP request timeout (e.g. "15s")
//	-notebook      connection book database path
//
// Remaining positional arguments are joined into the initial target.
func parseFlags(args []string) (*StructuredConfig, string, error) {
	cfg := &StructuredConfig{}
	var timeout time.Duration

	fs := flag.NewFlagSet("launcher", flag.ContinueOnError)
	fs.StringVar(&cfg.FilePath, "c", "", "config.ini path")
	fs.StringVar(&cfg.FilePath, "config", "", "config.ini path (alias)")
	fs.StringVar(&cfg.Settings.AnyDeskPath, "anydesk", "", "AnyDesk.exe path")
	fs.StringVar(&cfg.Settings.LiteManagerPath, "litemanager", "", "ROMViewer.exe path")
	fs.StringVar(&cfg.Settings.Language, "lang", "", "UI language (ru, en)")
	fs.BoolVar(&cfg.Settings.DebugLogging, "debug", false, "Enable debug logging")
	fs.StringVar(&cfg.Settings.InstallerRoot, "installer-root", "", "Local distributions root")
	fs.DurationVar(&timeout, "timeout", 0, "HTTP request timeout (e.g., 15s)")
	fs.StringVar(&cfg.Settings.NotebookPath, "notebook", "", "Connection book database path")

	if err := fs.Parse(args); err != nil {
		return nil, "", fmt.Errorf("error parsing flags: %w", err)
	}

	if timeout > 0 {
		cfg.Settings.HTTPRequestTimeoutSec = int(timeout.Round(time.Second) / time.Second)
		if cfg.Settings.HTTPRequestTimeoutSec == 0 {
			cfg.Settings.HTTPRequestTimeoutSec = 1
		}
	}

	return cfg, strings.TrimSpace(strings.Join(fs.Args(), " ")), nil
}
