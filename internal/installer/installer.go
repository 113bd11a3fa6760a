// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package installer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/service-launcher/internal/config"
	"github.com/MKhiriev/service-launcher/internal/locales"
	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/internal/parser"
	"github.com/MKhiriev/service-launcher/models"
)

// ExtractDirName is the scratch folder created inside the local distribution
// folder while an archive is unpacked.
const ExtractDirName = "temp_extract_folder"

// Shares of the installer step.
const (
	localCheckShare = 0.1
	downloadShare   = 0.4
	extractShare    = 0.4
)

// Request identifies the distribution to prepare.
type Request struct {
	AppType models.AppType
	Vendor  models.Vendor
	// Version is the formatted version, e.g. "912".
	Version string
}

// Installer prepares local distribution folders.
type Installer struct {
	root       string
	localNames map[models.AppType]string
	order      []string
	sources    map[string]Source
	vendor     VendorInspector
	tempDir    string
	log        *logger.Logger
}

// NewInstaller wires the SMB, HTTP and FTP sources from cfg.
func NewInstaller(cfg config.Installer, log *logger.Logger) *Installer {
	sources := []Source{
		NewSMBSource(cfg.SMB, log),
		NewHTTPSource(cfg.HTTP, cfg.RequestTimeout, log),
		NewFTPSource(cfg.FTP, cfg.RequestTimeout, log),
	}
	return newInstaller(cfg, sources, NewVendorInspector(), os.TempDir(), log)
}

func newInstaller(cfg config.Installer, sources []Source, vendor VendorInspector, tempDir string, log *logger.Logger) *Installer {
	bySource := make(map[string]Source, len(sources))
	for _, s := range sources {
		bySource[s.Name()] = s
	}
	return &Installer{
		root:       cfg.Root,
		localNames: cfg.LocalNames,
		order:      cfg.Order,
		sources:    bySource,
		vendor:     vendor,
		tempDir:    tempDir,
		log:        log,
	}
}

// LocalName returns the expected local folder name, e.g. "RMSOffice912".
func (i *Installer) LocalName(appType models.AppType, version string) (string, error) {
	prefix := strings.TrimSpace(i.localNames[appType])
	if prefix == "" {
		return "", fmt.Errorf("%w: no local installer name for %s", ErrInvalidRequest, appType)
	}
	return parser.InstallerName(prefix, version), nil
}

// Prepare returns the local folder holding BackOffice.exe for req, downloading
// the distribution when no suitable local copy exists.
//
// On failure or cancellation the partially prepared folder and temporary files
// are removed. The installer root itself is never removed.
func (i *Installer) Prepare(ctx context.Context, req Request, obs Observer) (dir string, err error) {
	name, err := i.LocalName(req.AppType, req.Version)
	if err != nil {
		return "", err
	}
	local := filepath.Join(i.root, name)
	log := i.log.With().Str("func", "Installer.Prepare").Str("local", local).Str("vendor", string(req.Vendor)).Logger()

	obs.Status(models.LevelInfo, locales.MsgLocalCheck, map[string]any{"Name": name})
	found, err := i.checkLocal(local, req.Vendor, obs)
	if err != nil {
		return "", err
	}
	if found {
		return local, nil
	}
	obs.Progress(localCheckShare)

	if err = ctx.Err(); err != nil {
		return "", err
	}
	obs.Status(models.LevelInfo, locales.MsgRemoteDownload, nil)

	archive := filepath.Join(i.tempDir, name+".zip")
	extractDir := filepath.Join(local, ExtractDirName)
	defer func() {
		if err != nil {
			log.Warn().Err(err).Msg("distribution preparation failed, cleaning up")
			i.cleanup(archive, extractDir, local)
		}
	}()

	if err = i.resetLocal(local); err != nil {
		return "", err
	}
	_ = os.Remove(archive)

	if err = i.download(ctx, req, archive, obs); err != nil {
		return "", err
	}

	obs.Status(models.LevelInfo, locales.MsgExtracting, nil)
	base := localCheckShare + downloadShare
	if err = Extract(ctx, archive, extractDir, func(f float64) { obs.Progress(base + f*extractShare) }); err != nil {
		return "", err
	}

	contentRoot, err := FindExecutableDir(ctx, extractDir)
	if err != nil {
		return "", fmt.Errorf("%s: %w", filepath.Base(archive), err)
	}
	if err = moveContent(contentRoot, local); err != nil {
		return "", err
	}
	if err = os.RemoveAll(extractDir); err != nil {
		log.Warn().Err(err).Msg("remove extract folder")
	}
	obs.Progress(base + extractShare + (1-base-extractShare)/2)

	exe := filepath.Join(local, ExeName)
	if _, err = os.Stat(exe); err != nil {
		return "", fmt.Errorf("%w: %s", ErrExecutableMissing, exe)
	}
	if company, known := i.vendor.CompanyName(exe); known && !vendorMatches(company, req.Vendor) {
		return "", fmt.Errorf("%w: %q is not %s", ErrVendorMismatch, company, req.Vendor)
	}

	if rmErr := os.Remove(archive); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
		log.Warn().Err(rmErr).Msg("remove temporary archive")
	}

	obs.Progress(1)
	obs.Status(models.LevelInfo, locales.MsgInstallerReady, map[string]any{"Name": name})
	log.Info().Msg("distribution prepared")
	return local, nil
}

// checkLocal reports whether local already holds a usable distribution.
// A copy from another vendor is removed.
func (i *Installer) checkLocal(local string, vendor models.Vendor, obs Observer) (bool, error) {
	exe := filepath.Join(local, ExeName)
	if _, err := os.Stat(exe); err != nil {
		return false, nil
	}

	company, known := i.vendor.CompanyName(exe)
	if !known || vendorMatches(company, vendor) {
		i.log.Info().Str("func", "Installer.checkLocal").Str("exe", exe).Str("company", company).Msg("local distribution accepted")
		obs.Status(models.LevelInfo, locales.MsgLocalFound, nil)
		obs.Progress(1)
		return true, nil
	}

	i.log.Warn().Str("func", "Installer.checkLocal").Str("company", company).Str("vendor", string(vendor)).Msg("local distribution vendor mismatch")
	obs.Status(models.LevelWarning, locales.MsgVendorMismatch, nil)
	if err := i.removeLocal(local); err != nil {
		return false, err
	}
	return false, nil
}

func (i *Installer) download(ctx context.Context, req Request, archive string, obs Observer) error {
	progress := func(f float64) { obs.Progress(localCheckShare + f*downloadShare) }

	for _, kind := range i.order {
		if err := ctx.Err(); err != nil {
			return err
		}

		src, ok := i.sources[kind]
		if !ok {
			i.log.Warn().Str("func", "Installer.download").Str("source", kind).Msg("unknown source in priority order")
			obs.Status(models.LevelWarning, locales.MsgSourceFailed, map[string]any{
				"Source": kind, "Error": ErrUnknownSource.Error(),
			})
			continue
		}
		if !src.Enabled() {
			i.log.Debug().Str("func", "Installer.download").Str("source", kind).Msg("source disabled")
			continue
		}

		label := strings.ToUpper(kind)
		obs.Status(models.LevelInfo, locales.MsgDownloading, map[string]any{"Source": label, "File": filepath.Base(archive)})

		err := src.Fetch(ctx, req.AppType, req.Version, archive, progress)
		if err == nil {
			obs.Progress(localCheckShare + downloadShare)
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if errors.Is(err, ErrSourceDisabled) {
			continue
		}

		i.log.Warn().Err(err).Str("func", "Installer.download").Str("source", kind).Msg("source failed")
		obs.Status(models.LevelWarning, locales.MsgSourceFailed, map[string]any{"Source": label, "Error": err.Error()})
	}

	return &NotFoundError{AppType: req.AppType, Version: req.Version}
}

func (i *Installer) resetLocal(local string) error {
	if err := i.removeLocal(local); err != nil {
		return err
	}
	if err := os.MkdirAll(local, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", local, err)
	}
	return nil
}

// removeLocal deletes a distribution folder unless it is the installer root.
func (i *Installer) removeLocal(local string) error {
	if i.isRoot(local) {
		return nil
	}
	if err := os.RemoveAll(local); err != nil {
		return fmt.Errorf("remove %s: %w", local, err)
	}
	return nil
}

func (i *Installer) isRoot(p string) bool {
	return filepath.Clean(p) == filepath.Clean(i.root)
}

func (i *Installer) cleanup(archive, extractDir, local string) {
	for _, p := range []string{extractDir, archive} {
		if err := os.RemoveAll(p); err != nil {
			i.log.Warn().Err(err).Str("func", "Installer.cleanup").Str("path", p).Msg("cleanup failed")
		}
	}
	if err := i.removeLocal(local); err != nil {
		i.log.Warn().Err(err).Str("func", "Installer.cleanup").Str("path", local).Msg("cleanup failed")
	}
}

func vendorMatches(company string, vendor models.Vendor) bool {
	return strings.Contains(strings.ToLower(company), strings.ToLower(string(vendor)))
}
