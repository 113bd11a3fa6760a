// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package installer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/service-launcher/internal/config"
	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/models"
)

// smbSource copies archives from a share reachable as a regular path
// (a UNC path on Windows).
type smbSource struct {
	cfg config.SMBSource
	log *logger.Logger
}

func NewSMBSource(cfg config.SMBSource, log *logger.Logger) Source {
	return &smbSource{cfg: cfg, log: log}
}

func (s *smbSource) Name() string { return config.SourceSMB }

func (s *smbSource) Enabled() bool { return s.cfg.Enabled }

func (s *smbSource) Fetch(ctx context.Context, appType models.AppType, version, dst string, progress func(float64)) error {
	if !s.cfg.Enabled {
		return ErrSourceDisabled
	}
	if strings.TrimSpace(s.cfg.Path) == "" {
		return fmt.Errorf("%w: empty Path", ErrSourceNotConfigured)
	}
	name, err := ArchiveName(s.cfg.Archives, appType, version)
	if err != nil {
		return err
	}

	src := filepath.Join(s.cfg.Path, filepath.FromSlash(strings.ReplaceAll(name, `\`, "/")))
	log := s.log.With().Str("func", "smbSource.Fetch").Str("src", src).Logger()

	in, err := os.Open(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn().Msg("archive not found on share")
			return fmt.Errorf("%w: %s", ErrArchiveNotFound, src)
		}
		log.Err(err).Msg("open archive on share")
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	var total int64
	if info, statErr := in.Stat(); statErr == nil {
		total = info.Size()
	}

	if err = writeFile(ctx, dst, in, total, progress); err != nil {
		log.Err(err).Msg("copy archive from share")
		return fmt.Errorf("copy %s: %w", src, err)
	}

	log.Info().Int64("size", total).Msg("archive copied from share")
	return nil
}
