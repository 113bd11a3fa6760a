// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/service-launcher/internal/adapter"
	"github.com/MKhiriev/service-launcher/internal/locales"
	"github.com/MKhiriev/service-launcher/internal/mock"
	"github.com/MKhiriev/service-launcher/internal/parser"
	"github.com/MKhiriev/service-launcher/models"
)

type checkFixture struct {
	adapter  *mock.MockServerAdapter
	provider *mock.MockProvider
	log      *reportLog
	svc      CheckService
}

func newCheckFixture(t *testing.T) *checkFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	reporter, log := newRecordingReporter(ctrl)
	f := &checkFixture{
		adapter:  mock.NewMockServerAdapter(ctrl),
		provider: mock.NewMockProvider(ctrl),
		log:      log,
	}
	f.svc = NewCheckService(newTestInput(t, nil), f.adapter, f.provider, reporter, newEnglish(t))
	return f
}

var demoTarget = models.Target{Host: "demo.iiko.it", Port: 443, Scheme: "https"}

func TestCheckService_Check_PrintsDocumentAndSummary(t *testing.T) {
	f := newCheckFixture(t)
	ctx := context.Background()

	info := models.ServerInfo{
		Edition:     "default",
		Version:     "9.1.2.3",
		ServerState: models.StateStartedSuccessfully,
		Raw: map[string]any{
			"edition":     "default",
			"version":     "9.1.2.3",
			"serverState": models.StateStartedSuccessfully,
			"serverName":  "Кафе <Центр>",
		},
	}
	f.adapter.EXPECT().ServerInfo(ctx, demoTarget).Return(info, nil)
	f.provider.EXPECT().LocalName(models.AppType("iikoRMS"), parser.FormatVersion("9.1.2.3")).Return("RMSOffice912", nil)

	require.NoError(t, f.svc.Check(ctx, "https://demo.iiko.it/resto/"))

	out := f.log.lastOutput()
	assert.Contains(t, out, `    "edition": "default"`)
	assert.Contains(t, out, `"serverName": "Кафе <Центр>"`)
	assert.Contains(t, out, "Application type: iikoRMS")
	assert.Contains(t, out, "Expected distribution: RMSOffice912")

	assert.Equal(t, []string{
		locales.MsgPerformingCheck,
		locales.MsgRequestingServerInfo,
		locales.MsgCheckCompleted,
	}, f.log.ids())
	assert.Equal(t, float64(100), f.log.lastProgress())
}

func TestCheckService_Check_UnknownEditionAndMissingName(t *testing.T) {
	f := newCheckFixture(t)
	ctx := context.Background()

	f.adapter.EXPECT().ServerInfo(ctx, gomock.Any()).
		Return(models.ServerInfo{Edition: "enterprise", Version: "8.5.1", Raw: map[string]any{"edition": "enterprise"}}, nil)

	require.NoError(t, f.svc.Check(ctx, "demo.iiko.it"))
	assert.Contains(t, f.log.lastOutput(), "choose RMS or Chain (edition 'enterprise')")
}

func TestCheckService_Check_InstallerNameNotConfigured(t *testing.T) {
	f := newCheckFixture(t)
	ctx := context.Background()

	f.adapter.EXPECT().ServerInfo(ctx, gomock.Any()).
		Return(models.ServerInfo{Edition: "chain", Version: "8.5.1", Raw: map[string]any{}}, nil)
	f.provider.EXPECT().LocalName(models.AppType("iikoChain"), gomock.Any()).Return("", errors.New("no prefix"))

	require.NoError(t, f.svc.Check(ctx, "demo.iiko.it"))
	assert.Contains(t, f.log.lastOutput(), "Expected distribution: N/A")
}

func TestCheckService_Check_RejectsRemoteIDs(t *testing.T) {
	for _, in := range []string{"123456789", "MH_12345"} {
		t.Run(in, func(t *testing.T) {
			f := newCheckFixture(t)

			err := f.svc.Check(context.Background(), in)
			assert.ErrorIs(t, err, ErrInvalidRequest)

			st, ok := f.log.status(locales.MsgInvalidRequest)
			require.True(t, ok)
			assert.Equal(t, models.LevelWarning, st.level)
		})
	}
}

func TestCheckService_Check_InvalidInput(t *testing.T) {
	f := newCheckFixture(t)

	err := f.svc.Check(context.Background(), "a b")

	var probeErr *adapter.ProbeError
	require.ErrorAs(t, err, &probeErr)
	assert.Equal(t, "a b", probeErr.URL)
	var parseErr *parser.ParseError
	assert.ErrorAs(t, err, &parseErr)

	st, ok := f.log.status(locales.MsgCheckFailed)
	require.True(t, ok)
	assert.Equal(t, models.LevelError, st.level)
	assert.Contains(t, f.log.lastOutput(), "a b")
}

func TestCheckService_Check_EmptyInput(t *testing.T) {
	f := newCheckFixture(t)

	err := f.svc.Check(context.Background(), "  ")
	assert.ErrorIs(t, err, parser.ErrEmptyInput)
	assert.Equal(t, []string{locales.MsgEnterCheckTarget}, f.log.ids())
}

func TestCheckService_Check_ServerUnreachable(t *testing.T) {
	f := newCheckFixture(t)
	ctx := context.Background()

	probeErr := &adapter.ProbeError{URL: "https://demo.iiko.it:443/resto/api/getServerMonitoringInfo.jsp", Err: adapter.ErrUnreachable}
	f.adapter.EXPECT().ServerInfo(ctx, gomock.Any()).Return(models.ServerInfo{}, probeErr)

	err := f.svc.Check(ctx, "demo.iiko.it")
	assert.ErrorIs(t, err, adapter.ErrUnreachable)

	st, ok := f.log.status(locales.MsgCheckFailed)
	require.True(t, ok)
	assert.Equal(t, models.LevelError, st.level)
	assert.Contains(t, f.log.lastOutput(), "server is unreachable")
	assert.Equal(t, float64(0), f.log.lastProgress())
}

func TestCheckService_Check_Canceled(t *testing.T) {
	f := newCheckFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.adapter.EXPECT().ServerInfo(ctx, gomock.Any()).Return(models.ServerInfo{}, context.Canceled)

	err := f.svc.Check(ctx, "demo.iiko.it")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, f.log.ids(), locales.MsgCheckCanceled)
	assert.NotContains(t, f.log.ids(), locales.MsgCheckFailed)
}
