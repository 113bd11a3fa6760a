// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/service-launcher/internal/locales"
	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/internal/parser"
	"github.com/MKhiriev/service-launcher/models"
)

type launchService struct {
	input    InputService
	remote   RemoteService
	deploy   DeployService
	reporter Reporter
}

func NewLaunchService(input InputService, remote RemoteService, deploy DeployService, reporter Reporter) LaunchService {
	return &launchService{input: input, remote: remote, deploy: deploy, reporter: reporter}
}

// Launch classifies raw and hands it to the remote-desktop flow or to the
// BackOffice deployment.
func (s *launchService) Launch(ctx context.Context, raw string, opts models.LaunchOptions) error {
	if strings.TrimSpace(raw) == "" {
		s.reporter.Status(models.LevelWarning, locales.MsgEnterTarget, nil)
		return parser.ErrEmptyInput
	}

	s.reporter.Output("")
	s.reporter.Progress(0)

	req, err := s.input.Classify(raw)
	if err != nil {
		logger.FromContext(ctx).Info().Err(err).Str("func", "*launchService.Launch").Msg("input rejected")
		s.reporter.Status(models.LevelError, locales.MsgInvalidInput, nil)
		return err
	}

	if req.IsRemoteID() {
		return s.remote.Connect(ctx, req, opts)
	}
	return s.deploy.Deploy(ctx, req)
}
