// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package installer

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/service-launcher/internal/config"
	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/internal/utils"
	"github.com/MKhiriev/service-launcher/models"
)

// httpSource downloads archives from a directory served over HTTP(S).
type httpSource struct {
	cfg    config.HTTPSource
	client *utils.HTTPClient
	log    *logger.Logger
}

// NewHTTPSource returns the resty-backed HTTP source. timeout bounds the wait
// for response headers only; the body transfer is limited by ctx.
func NewHTTPSource(cfg config.HTTPSource, timeout time.Duration, log *logger.Logger) Source {
	client := utils.NewHTTPClient(0)
	client.SetTransport(&http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		ResponseHeaderTimeout: timeout,
		TLSHandshakeTimeout:   timeout,
	})
	return &httpSource{cfg: cfg, client: client, log: log}
}

func (s *httpSource) Name() string { return config.SourceHTTP }

// ArchiveURL joins base and the archive name. Path separators in name are kept.
func ArchiveURL(base, name string) (string, error) {
	u, err := url.Parse(strings.TrimRight(base, "/") + "/")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSourceNotConfigured, err)
	}
	ref, err := url.Parse(strings.ReplaceAll(name, `\`, "/"))
	if err != nil {
		return "", fmt.Errorf("parse archive name %q: %w", name, err)
	}
	return u.ResolveReference(ref).String(), nil
}

func (s *httpSource) Enabled() bool { return s.cfg.Enabled }

func (s *httpSource) Fetch(ctx context.Context, appType models.AppType, version, dst string, progress func(float64)) error {
	if !s.cfg.Enabled {
		return ErrSourceDisabled
	}
	if strings.TrimSpace(s.cfg.URL) == "" {
		return fmt.Errorf("%w: empty Url", ErrSourceNotConfigured)
	}
	name, err := ArchiveName(s.cfg.Archives, appType, version)
	if err != nil {
		return err
	}
	archiveURL, err := ArchiveURL(s.cfg.URL, name)
	if err != nil {
		return err
	}
	log := s.log.With().Str("func", "httpSource.Fetch").Str("url", archiveURL).Logger()

	resp, err := s.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(archiveURL)
	if err != nil {
		log.Err(err).Msg("download request failed")
		return fmt.Errorf("get %s: %w", archiveURL, err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() == http.StatusNotFound {
		log.Warn().Msg("archive not found on server")
		return fmt.Errorf("%w: %s", ErrArchiveNotFound, archiveURL)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Msg("download returned error status")
		return fmt.Errorf("get %s: unexpected status %d", archiveURL, resp.StatusCode())
	}

	total := resp.RawResponse.ContentLength
	if err = writeFile(ctx, dst, body, total, progress); err != nil {
		log.Err(err).Msg("download body")
		return fmt.Errorf("download %s: %w", archiveURL, err)
	}

	log.Info().Int64("size", total).Msg("archive downloaded")
	return nil
}
