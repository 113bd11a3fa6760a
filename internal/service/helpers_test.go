// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/service-launcher/internal/locales"
	"github.com/MKhiriev/service-launcher/internal/mock"
	"github.com/MKhiriev/service-launcher/models"
)

type statusEvent struct {
	level models.Level
	id    string
	data  map[string]any
}

// reportLog collects everything a Reporter mock receives.
type reportLog struct {
	mu       sync.Mutex
	statuses []statusEvent
	progress []float64
	outputs  []string
}

func (r *reportLog) ids() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.statuses))
	for _, s := range r.statuses {
		out = append(out, s.id)
	}
	return out
}

func (r *reportLog) status(id string) (statusEvent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.statuses {
		if s.id == id {
			return s, true
		}
	}
	return statusEvent{}, false
}

func (r *reportLog) lastProgress() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.progress) == 0 {
		return -1
	}
	return r.progress[len(r.progress)-1]
}

func (r *reportLog) lastOutput() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.outputs) == 0 {
		return ""
	}
	return r.outputs[len(r.outputs)-1]
}

func newRecordingReporter(ctrl *gomock.Controller) (*mock.MockReporter, *reportLog) {
	log := &reportLog{}
	rep := mock.NewMockReporter(ctrl)
	rep.EXPECT().Status(gomock.Any(), gomock.Any(), gomock.Any()).Do(func(level models.Level, id string, data map[string]any) {
		log.mu.Lock()
		log.statuses = append(log.statuses, statusEvent{level: level, id: id, data: data})
		log.mu.Unlock()
	}).AnyTimes()
	rep.EXPECT().Progress(gomock.Any()).Do(func(p float64) {
		log.mu.Lock()
		log.progress = append(log.progress, p)
		log.mu.Unlock()
	}).AnyTimes()
	rep.EXPECT().Output(gomock.Any()).Do(func(text string) {
		log.mu.Lock()
		log.outputs = append(log.outputs, text)
		log.mu.Unlock()
	}).AnyTimes()
	return rep, log
}

func newEnglish(t *testing.T) *locales.Translator {
	t.Helper()
	tr, err := locales.NewTranslator(locales.LangEnglish)
	require.NoError(t, err)
	return tr
}
