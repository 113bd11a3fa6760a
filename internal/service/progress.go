// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/service-launcher/models"

// step is a named slice of the overall progress bar.
type step struct {
	name     string
	from, to float64
}

// Steps of the BackOffice deployment in execution order.
var (
	stepParse           = step{"parse", 0, 5}
	stepHTTPRequest     = step{"http_request", 5, 20}
	stepProcessResponse = step{"process_response", 20, 35}
	stepCheckState      = step{"check_state", 35, 40}
	stepFormatVersion   = step{"format_version", 40, 45}
	stepGetName         = step{"get_name", 45, 50}
	stepFindDownload    = step{"find_download", 50, 90}
	stepAppDataCleanup  = step{"appdata_cleanup", 90, 95}
	stepFirstRun        = step{"first_run", 95, 96}
	stepWaitEditConfig  = step{"wait_edit_config", 96, 98}
	stepRestart         = step{"restart", 98, 100}
)

// at returns the overall percentage for the share factor of the step.
func (s step) at(factor float64) float64 {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return s.from + factor*(s.to-s.from)
}

// stepObserver forwards installer events to a Reporter, scaling progress
// into the range of one step.
type stepObserver struct {
	reporter Reporter
	step     step
}

func (o stepObserver) Status(level models.Level, id string, data map[string]any) {
	o.reporter.Status(level, id, data)
}

func (o stepObserver) Progress(share float64) {
	o.reporter.Progress(o.step.at(share))
}
