// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package installer

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/service-launcher/internal/config"
	"github.com/MKhiriev/service-launcher/internal/locales"
	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/models"
)

var rmsRequest = Request{
	AppType: models.NewAppType(models.VendorIiko, models.ProductRMS),
	Vendor:  models.VendorIiko,
	Version: "912",
}

// makeZip пишет zip-архив с указанными файлами.
func makeZip(t *testing.T, path string, files map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

// fakeSource копирует заранее подготовленный архив или возвращает ошибку.
type fakeSource struct {
	name    string
	enabled bool
	archive string
	err     error
	calls   int
}

func (s *fakeSource) Name() string  { return s.name }
func (s *fakeSource) Enabled() bool { return s.enabled }

func (s *fakeSource) Fetch(ctx context.Context, _ models.AppType, _ string, dst string, progress func(float64)) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	in, err := os.Open(s.archive)
	if err != nil {
		return err
	}
	defer in.Close()
	return writeFile(ctx, dst, in, 0, progress)
}

// fakeVendor возвращает фиксированное имя производителя.
type fakeVendor struct {
	name  string
	known bool
}

func (v fakeVendor) CompanyName(string) (string, bool) { return v.name, v.known }

type statusEvent struct {
	level models.Level
	id    string
}

// recordingObserver запоминает статусы и прогресс.
type recordingObserver struct {
	mu       sync.Mutex
	statuses []statusEvent
	progress []float64
}

func (o *recordingObserver) Status(level models.Level, id string, _ map[string]any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.statuses = append(o.statuses, statusEvent{level, id})
}

func (o *recordingObserver) Progress(share float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.progress = append(o.progress, share)
}

func (o *recordingObserver) ids() []string {
	out := make([]string, 0, len(o.statuses))
	for _, s := range o.statuses {
		out = append(out, s.id)
	}
	return out
}

type fixture struct {
	root, tmp string
	cfg       config.Installer
}

func newFixture(t *testing.T, order ...string) fixture {
	t.Helper()
	root := filepath.Join(t.TempDir(), "distr")
	require.NoError(t, os.MkdirAll(root, 0o755))
	return fixture{
		root: root,
		tmp:  t.TempDir(),
		cfg: config.Installer{
			Root:       root,
			LocalNames: map[models.AppType]string{rmsRequest.AppType: "RMSOffice"},
			Order:      order,
		},
	}
}

func (f fixture) installer(vendor VendorInspector, sources ...Source) *Installer {
	return newInstaller(f.cfg, sources, vendor, f.tmp, logger.Nop())
}

// ── local distribution ──────────────────────────────────────────────────────

func TestPrepare_UsesLocalDistribution(t *testing.T) {
	fx := newFixture(t, config.SourceHTTP)
	local := filepath.Join(fx.root, "RMSOffice912")
	require.NoError(t, os.MkdirAll(local, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(local, ExeName), []byte("MZ"), 0o755))

	src := &fakeSource{name: config.SourceHTTP, enabled: true, err: errors.New("must not be called")}
	obs := &recordingObserver{}

	dir, err := fx.installer(fakeVendor{name: "iiko", known: true}, src).Prepare(context.Background(), rmsRequest, obs)

	require.NoError(t, err)
	assert.Equal(t, local, dir)
	assert.Zero(t, src.calls)
	assert.Equal(t, []string{locales.MsgLocalCheck, locales.MsgLocalFound}, obs.ids())
}

func TestPrepare_UnknownVendorIsAccepted(t *testing.T) {
	fx := newFixture(t)
	local := filepath.Join(fx.root, "RMSOffice912")
	require.NoError(t, os.MkdirAll(local, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(local, ExeName), []byte("MZ"), 0o755))

	dir, err := fx.installer(fakeVendor{}).Prepare(context.Background(), rmsRequest, &recordingObserver{})

	require.NoError(t, err)
	assert.Equal(t, local, dir)
}

func TestPrepare_VendorMismatchTriggersDownload(t *testing.T) {
	fx := newFixture(t, config.SourceSMB)
	local := filepath.Join(fx.root, "RMSOffice912")
	require.NoError(t, os.MkdirAll(local, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(local, ExeName), []byte("old"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(local, "stale.dll"), []byte("x"), 0o644))

	archive := filepath.Join(t.TempDir(), "a.zip")
	makeZip(t, archive, map[string]string{"RMSOffice/" + ExeName: "new"})
	src := &fakeSource{name: config.SourceSMB, enabled: true, archive: archive}
	obs := &recordingObserver{}

	// первый вызов: чужой производитель, после скачивания производитель неизвестен
	vendor := &switchingVendor{answers: []fakeVendor{{name: "Syrve Inc", known: true}, {}}}
	dir, err := fx.installer(vendor, src).Prepare(context.Background(), rmsRequest, obs)

	require.NoError(t, err)
	assert.Equal(t, local, dir)
	assert.Contains(t, obs.ids(), locales.MsgVendorMismatch)
	assert.NoFileExists(t, filepath.Join(local, "stale.dll"))
	data, err := os.ReadFile(filepath.Join(local, ExeName))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

type switchingVendor struct {
	answers []fakeVendor
	n       int
}

func (v *switchingVendor) CompanyName(p string) (string, bool) {
	a := v.answers[min(v.n, len(v.answers)-1)]
	v.n++
	return a.CompanyName(p)
}

// ── download ────────────────────────────────────────────────────────────────

func TestPrepare_DownloadsExtractsAndMoves(t *testing.T) {
	fx := newFixture(t, config.SourceSMB, config.SourceHTTP, config.SourceFTP)

	archive := filepath.Join(t.TempDir(), "a.zip")
	makeZip(t, archive, map[string]string{
		"pkg/RMSOffice912/" + ExeName:         "MZ",
		"pkg/RMSOffice912/Resto.Front.dll":    "dll",
		"pkg/RMSOffice912/config/default.xml": "<x/>",
		"pkg/readme.txt":                      "readme",
	})

	smb := &fakeSource{name: config.SourceSMB, enabled: false}
	http := &fakeSource{name: config.SourceHTTP, enabled: true, err: ErrArchiveNotFound}
	ftp := &fakeSource{name: config.SourceFTP, enabled: true, archive: archive}
	obs := &recordingObserver{}

	dir, err := fx.installer(fakeVendor{name: "iiko LLC", known: true}, smb, http, ftp).
		Prepare(context.Background(), rmsRequest, obs)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(fx.root, "RMSOffice912"), dir)
	assert.Zero(t, smb.calls, "disabled source must be skipped")
	assert.Equal(t, 1, http.calls)
	assert.Equal(t, 1, ftp.calls)

	assert.FileExists(t, filepath.Join(dir, ExeName))
	assert.FileExists(t, filepath.Join(dir, "Resto.Front.dll"))
	assert.FileExists(t, filepath.Join(dir, "config", "default.xml"))
	assert.NoDirExists(t, filepath.Join(dir, ExtractDirName))
	assert.NoFileExists(t, filepath.Join(fx.tmp, "RMSOffice912.zip"))

	assert.Contains(t, obs.ids(), locales.MsgSourceFailed)
	assert.Equal(t, locales.MsgInstallerReady, obs.ids()[len(obs.ids())-1])
	for i := 1; i < len(obs.progress); i++ {
		assert.GreaterOrEqual(t, obs.progress[i], obs.progress[i-1], "progress must not go back")
	}
	assert.Equal(t, 1.0, obs.progress[len(obs.progress)-1])
}

func TestPrepare_NotFoundCleansUp(t *testing.T) {
	fx := newFixture(t, config.SourceHTTP, "webdav")
	src := &fakeSource{name: config.SourceHTTP, enabled: true, err: ErrArchiveNotFound}
	obs := &recordingObserver{}

	_, err := fx.installer(fakeVendor{}, src).Prepare(context.Background(), rmsRequest, obs)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, rmsRequest.AppType, nf.AppType)
	assert.Equal(t, "912", nf.Version)
	assert.Equal(t, "distribution for server edition 'iikoRMS' and version '912' could not be found", err.Error())
	assert.NoDirExists(t, filepath.Join(fx.root, "RMSOffice912"))
	assert.DirExists(t, fx.root, "installer root must survive")
}

func TestPrepare_ArchiveWithoutExecutable(t *testing.T) {
	fx := newFixture(t, config.SourceSMB)
	archive := filepath.Join(t.TempDir(), "a.zip")
	makeZip(t, archive, map[string]string{"docs/readme.txt": "nothing here"})
	src := &fakeSource{name: config.SourceSMB, enabled: true, archive: archive}

	_, err := fx.installer(fakeVendor{}, src).Prepare(context.Background(), rmsRequest, &recordingObserver{})

	require.ErrorIs(t, err, ErrExecutableMissing)
	assert.NoDirExists(t, filepath.Join(fx.root, "RMSOffice912"))
}

func TestPrepare_DownloadedVendorMismatch(t *testing.T) {
	fx := newFixture(t, config.SourceSMB)
	archive := filepath.Join(t.TempDir(), "a.zip")
	makeZip(t, archive, map[string]string{ExeName: "MZ"})
	src := &fakeSource{name: config.SourceSMB, enabled: true, archive: archive}

	_, err := fx.installer(fakeVendor{name: "Syrve", known: true}, src).
		Prepare(context.Background(), rmsRequest, &recordingObserver{})

	require.ErrorIs(t, err, ErrVendorMismatch)
	assert.NoDirExists(t, filepath.Join(fx.root, "RMSOffice912"))
}

func TestPrepare_Canceled(t *testing.T) {
	fx := newFixture(t, config.SourceSMB)
	src := &fakeSource{name: config.SourceSMB, enabled: true}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fx.installer(fakeVendor{}, src).Prepare(ctx, rmsRequest, &recordingObserver{})

	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, src.calls)
	assert.NoDirExists(t, filepath.Join(fx.root, "RMSOffice912"))
}

func TestPrepare_UnknownAppType(t *testing.T) {
	fx := newFixture(t)
	req := rmsRequest
	req.AppType = "iikoCloud"

	_, err := fx.installer(fakeVendor{}).Prepare(context.Background(), req, &recordingObserver{})

	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestLocalName(t *testing.T) {
	fx := newFixture(t)
	name, err := fx.installer(fakeVendor{}).LocalName(rmsRequest.AppType, "912")
	require.NoError(t, err)
	assert.Equal(t, "RMSOffice912", name)
}
