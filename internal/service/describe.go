// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/service-launcher/internal/adapter"
	"github.com/MKhiriev/service-launcher/internal/backoffice"
	"github.com/MKhiriev/service-launcher/internal/cache"
	"github.com/MKhiriev/service-launcher/internal/installer"
	"github.com/MKhiriev/service-launcher/internal/launcher"
	"github.com/MKhiriev/service-launcher/internal/locales"
	"github.com/MKhiriev/service-launcher/internal/parser"
	"github.com/MKhiriev/service-launcher/internal/store"
	"github.com/MKhiriev/service-launcher/internal/workers"
)

// Describe maps err onto a message id and its template data. Unknown errors
// map to MsgErrGeneric with the error text.
func Describe(err error) (string, map[string]any) {
	var (
		configErr  *launcher.ConfigError
		launchErr  *launcher.LaunchError
		probeErr   *adapter.ProbeError
		fsErr      *cache.FileSystemError
		timeoutErr *backoffice.TimeoutError
		notFound   *installer.NotFoundError
		parseErr   *parser.ParseError
	)

	switch {
	case err == nil:
		return "", nil
	case errors.Is(err, ErrNoPassword):
		return locales.MsgErrNoPassword, nil
	case errors.Is(err, ErrCanceledByUser), errors.Is(err, context.Canceled):
		return locales.MsgErrCanceledByUser, nil
	case errors.As(err, &configErr):
		return locales.MsgErrExecutableMissing, map[string]any{"Path": configErr.Path}
	case errors.As(err, &launchErr):
		return locales.MsgErrLaunch, map[string]any{"Path": launchErr.Path, "Error": launchErr.Err.Error()}
	case errors.As(err, &probeErr):
		if errors.Is(probeErr.Err, adapter.ErrUnreachable) {
			return locales.MsgErrNetwork, map[string]any{"URL": probeErr.URL}
		}
		return locales.MsgErrProbe, map[string]any{"URL": probeErr.URL, "Error": probeErr.Err.Error()}
	case errors.As(err, &fsErr):
		return locales.MsgErrFileSystem, map[string]any{"Path": fsErr.Path, "Error": fsErr.Err.Error()}
	case errors.As(err, &timeoutErr):
		return locales.MsgErrTimeout, map[string]any{"Path": timeoutErr.Path}
	case errors.As(err, &notFound):
		return locales.MsgInstallerNotFound, map[string]any{"AppType": string(notFound.AppType), "Version": notFound.Version}
	case errors.Is(err, parser.ErrEmptyInput):
		return locales.MsgEnterTarget, nil
	case errors.As(err, &parseErr):
		return locales.MsgInvalidInput, nil
	case errors.Is(err, ErrInvalidRequest):
		return locales.MsgInvalidRequest, nil
	case errors.Is(err, ErrClipboardEmpty):
		return locales.MsgClipboardEmpty, nil
	case errors.Is(err, store.ErrConnectionExists):
		return locales.MsgBookDuplicate, nil
	case errors.Is(err, ErrInvalidConnection):
		return locales.MsgBookInvalid, map[string]any{"Error": err.Error()}
	case errors.Is(err, workers.ErrOperationInProgress):
		return locales.MsgOperationInProgress, nil
	default:
		return locales.MsgErrGeneric, map[string]any{"Error": err.Error()}
	}
}

// DescribeText renders Describe(err) with tr.
func DescribeText(tr Localizer, err error) string {
	id, data := Describe(err)
	if id == "" {
		return ""
	}
	return tr.T(id, data)
}

// isCanceled reports whether err ends the operation without being a failure.
func isCanceled(err error) bool {
	return errors.Is(err, ErrCanceledByUser) || errors.Is(err, context.Canceled)
}
