// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package installer

import (
	"context"
	"fmt"
	"net"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"

	"github.com/MKhiriev/service-launcher/internal/config"
	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/models"
)

const (
	defaultFTPPort = 21
	anonymousUser  = "anonymous"
)

// ftpSource downloads archives from an FTP directory.
type ftpSource struct {
	cfg     config.FTPSource
	timeout time.Duration
	log     *logger.Logger
}

// NewFTPSource returns the FTP source. timeout bounds dialing and each
// control connection exchange.
func NewFTPSource(cfg config.FTPSource, timeout time.Duration, log *logger.Logger) Source {
	return &ftpSource{cfg: cfg, timeout: timeout, log: log}
}

func (s *ftpSource) Name() string { return config.SourceFTP }

func (s *ftpSource) Enabled() bool { return s.cfg.Enabled }

func (s *ftpSource) Fetch(ctx context.Context, appType models.AppType, version, dst string, progress func(float64)) error {
	if !s.cfg.Enabled {
		return ErrSourceDisabled
	}
	if strings.TrimSpace(s.cfg.Host) == "" || strings.TrimSpace(s.cfg.Directory) == "" {
		return fmt.Errorf("%w: Host and Directory are required", ErrSourceNotConfigured)
	}
	name, err := ArchiveName(s.cfg.Archives, appType, version)
	if err != nil {
		return err
	}

	port := s.cfg.Port
	if port <= 0 {
		port = defaultFTPPort
	}
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(port))
	log := s.log.With().Str("func", "ftpSource.Fetch").Str("addr", addr).Str("archive", name).Logger()

	opts := []ftp.DialOption{ftp.DialWithContext(ctx)}
	if s.timeout > 0 {
		opts = append(opts, ftp.DialWithTimeout(s.timeout))
	}
	conn, err := ftp.Dial(addr, opts...)
	if err != nil {
		log.Err(err).Msg("ftp dial failed")
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer func() { _ = conn.Quit() }()

	user, pass := s.cfg.Username, s.cfg.Password
	if user == "" {
		user = anonymousUser
	}
	if err = conn.Login(user, pass); err != nil {
		log.Err(err).Msg("ftp login failed")
		return fmt.Errorf("login %s: %w", addr, err)
	}

	remote := path.Join(s.cfg.Directory, strings.ReplaceAll(name, `\`, "/"))
	if err = conn.ChangeDir(path.Dir(remote)); err != nil {
		log.Err(err).Str("dir", path.Dir(remote)).Msg("ftp change dir failed")
		return fmt.Errorf("%w: directory %s: %w", ErrArchiveNotFound, path.Dir(remote), err)
	}

	file := path.Base(remote)
	total, err := conn.FileSize(file)
	if err != nil {
		log.Warn().Err(err).Msg("ftp size unavailable")
		total = 0
	}

	resp, err := conn.Retr(file)
	if err != nil {
		log.Err(err).Msg("ftp retr failed")
		return fmt.Errorf("%w: %s: %w", ErrArchiveNotFound, remote, err)
	}

	err = writeFile(ctx, dst, resp, total, progress)
	if closeErr := resp.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		log.Err(err).Msg("ftp download failed")
		return fmt.Errorf("download %s: %w", remote, err)
	}

	log.Info().Int64("size", total).Msg("archive downloaded over ftp")
	return nil
}
