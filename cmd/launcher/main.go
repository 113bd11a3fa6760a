// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/service-launcher/internal/client"
	"github.com/MKhiriev/service-launcher/internal/config"
	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	bootLog := logger.NewLogger("service-launcher")

	cfg, err := config.GetAppConfig(os.Args[1:])
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log, closer := logger.NewLauncherLogger("service-launcher", cfg.Debug, "")
	defer closer.Close()
	if cfg.LoadWarning != nil {
		log.Warn().Err(cfg.LoadWarning).Str("path", cfg.FilePath).Msg("config loaded with defaults")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	app, err := client.NewApp(ctx, cfg, buildInfo(), log)
	if err != nil {
		log.Error().Err(err).Msg("init launcher error")
		bootLog.Fatal().Err(err).Msg("init launcher error")
	}
	defer app.Close()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("launcher run error")
	}
}

func buildInfo() models.BuildInfo {
	return models.BuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	}.Normalized()
}
