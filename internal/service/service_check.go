// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/MKhiriev/service-launcher/internal/adapter"
	"github.com/MKhiriev/service-launcher/internal/installer"
	"github.com/MKhiriev/service-launcher/internal/locales"
	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/internal/parser"
	"github.com/MKhiriev/service-launcher/models"
)

type checkService struct {
	input     InputService
	adapter   adapter.ServerAdapter
	installer installer.Provider
	reporter  Reporter
	tr        Localizer
}

func NewCheckService(input InputService, serverAdapter adapter.ServerAdapter, provider installer.Provider, reporter Reporter, tr Localizer) CheckService {
	return &checkService{input: input, adapter: serverAdapter, installer: provider, reporter: reporter, tr: tr}
}

// Check probes the server named by raw and prints the monitoring document
// together with the detected application type and expected distribution.
// Remote-desktop IDs are rejected with ErrInvalidRequest.
func (s *checkService) Check(ctx context.Context, raw string) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(raw) == "" {
		s.reporter.Status(models.LevelWarning, locales.MsgEnterCheckTarget, nil)
		return parser.ErrEmptyInput
	}

	req, err := s.input.Classify(raw)
	if req.IsRemoteID() {
		s.reporter.Output("")
		s.reporter.Status(models.LevelWarning, locales.MsgInvalidRequest, nil)
		s.reporter.Progress(0)
		return ErrInvalidRequest
	}
	if err != nil {
		// an address that cannot be parsed fails the probe itself
		err = &adapter.ProbeError{URL: strings.TrimSpace(raw), Err: err}
		s.reporter.Status(models.LevelError, locales.MsgCheckFailed, nil)
		s.reporter.Output(DescribeText(s.tr, err))
		s.reporter.Progress(0)
		return err
	}

	s.reporter.Output("")
	s.reporter.Status(models.LevelInfo, locales.MsgPerformingCheck, nil)
	s.reporter.Progress(10)

	target := *req.Target
	s.reporter.Status(models.LevelInfo, locales.MsgRequestingServerInfo, map[string]any{"Address": target.HostPort()})
	s.reporter.Progress(18)

	info, err := s.adapter.ServerInfo(ctx, target)
	if err != nil {
		log.Err(err).Str("func", "*checkService.Check").Str("target", target.HostPort()).Msg("server check failed")
		if isCanceled(err) || ctx.Err() != nil {
			s.reporter.Status(models.LevelInfo, locales.MsgCheckCanceled, nil)
		} else {
			s.reporter.Status(models.LevelError, locales.MsgCheckFailed, nil)
			s.reporter.Output(DescribeText(s.tr, err))
		}
		s.reporter.Progress(0)
		return err
	}
	s.reporter.Progress(90)

	s.reporter.Output(prettyJSON(info.Raw) + "\n\n" + s.summary(raw, info))
	s.reporter.Status(models.LevelInfo, locales.MsgCheckCompleted, nil)
	s.reporter.Progress(100)
	return nil
}

func (s *checkService) summary(raw string, info models.ServerInfo) string {
	formatted := parser.FormatVersion(info.Version)

	appInfo, ok := parser.DetermineAppType(raw, info.Edition)
	if !ok {
		return s.tr.T(locales.MsgCheckAppTypeUnknown, map[string]any{
			"Edition":   info.Edition,
			"Version":   info.Version,
			"Formatted": formatted,
		})
	}

	name, err := s.installer.LocalName(appInfo.AppType(), formatted)
	if err != nil {
		name = "N/A"
	}
	return s.tr.T(locales.MsgCheckSummary, map[string]any{
		"AppType":   string(appInfo.AppType()),
		"Version":   info.Version,
		"Formatted": formatted,
		"Installer": name,
	})
}

// prettyJSON renders doc with four-space indentation and unescaped text.
func prettyJSON(doc map[string]any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return ""
	}
	return strings.TrimRight(buf.String(), "\n")
}
