// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/MKhiriev/service-launcher/internal/config"
	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/internal/utils"
	"github.com/MKhiriev/service-launcher/models"
)

// MonitoringPath is the server endpoint that reports edition and version.
const MonitoringPath = "/resto/getServerMonitoringInfo.jsp"

var requiredKeys = []string{"edition", "version", "serverState"}

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty-backed [ServerAdapter]. Each
// request is bounded by cfg.RequestTimeout.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) ServerAdapter {
	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}
}

// ProbeURL builds the monitoring URL for target. The port is omitted when it
// is the default one for the scheme.
func ProbeURL(target models.Target) string {
	host := target.Host
	if !target.IsStandardPort() && target.Port > 0 {
		host += ":" + strconv.Itoa(target.Port)
	}
	u := url.URL{Scheme: target.Scheme, Host: host, Path: MonitoringPath}
	return u.String()
}

func (h *httpServerAdapter) ServerInfo(ctx context.Context, target models.Target) (models.ServerInfo, error) {
	probeURL := ProbeURL(target)
	log := h.logger.With().Str("func", "httpServerAdapter.ServerInfo").Str("url", probeURL).Logger()

	resp, err := h.client.R().
		SetContext(ctx).
		Get(probeURL)
	if err != nil {
		log.Err(err).Msg("probe request failed")
		if ctx.Err() != nil {
			return models.ServerInfo{}, &ProbeError{URL: probeURL, Err: ctx.Err()}
		}
		return models.ServerInfo{}, &ProbeError{URL: probeURL, Err: fmt.Errorf("%w: %w", ErrUnreachable, err)}
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Int("status", resp.StatusCode()).Msg("probe returned error status")
		return models.ServerInfo{}, &ProbeError{URL: probeURL, Err: err}
	}

	info, err := decodeServerInfo(resp.Body())
	if err != nil {
		log.Err(err).Msg("probe response rejected")
		return models.ServerInfo{}, &ProbeError{URL: probeURL, Err: err}
	}

	log.Info().
		Str("edition", info.Edition).
		Str("version", info.Version).
		Str("state", info.ServerState).
		Msg("server info received")
	return info, nil
}

func decodeServerInfo(body []byte) (models.ServerInfo, error) {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.ServerInfo{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	if raw == nil {
		return models.ServerInfo{}, ErrInvalidResponse
	}

	var missing []string
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return models.ServerInfo{}, fmt.Errorf("%w: %s", ErrMissingKeys, strings.Join(missing, ", "))
	}

	info := models.ServerInfo{
		Edition:     stringValue(raw["edition"]),
		Version:     stringValue(raw["version"]),
		ServerState: stringValue(raw["serverState"]),
		Raw:         raw,
	}
	return info, nil
}

// stringValue renders scalar JSON values the way they appear in the document.
func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
