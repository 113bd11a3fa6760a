// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/service-launcher/models"
)

// Source kinds accepted in [SourcePriority] Order.
const (
	SourceSMB  = "smb"
	SourceHTTP = "http"
	SourceFTP  = "ftp"
)

// Launcher holds the remote-desktop client settings.
type Launcher struct {
	AnyDeskPath       string
	LiteManagerPath   string
	LiteManagerIDMask string
}

// ExecutablePath returns the configured executable of client.
func (l Launcher) ExecutablePath(client models.RemoteClient) string {
	switch client {
	case models.ClientAnyDesk:
		return l.AnyDeskPath
	case models.ClientLiteManager:
		return l.LiteManagerPath
	default:
		return ""
	}
}

// Adapter holds outbound HTTP settings.
type Adapter struct {
	RequestTimeout time.Duration
}

// ArchiveNames maps an application type to an archive name template that
// contains the {version} placeholder.
type ArchiveNames map[models.AppType]string

// SMBSource is a distribution share reachable by UNC path.
type SMBSource struct {
	Enabled  bool
	Path     string
	Archives ArchiveNames
}

// HTTPSource is a distribution directory served over HTTP(S).
type HTTPSource struct {
	Enabled  bool
	URL      string
	Archives ArchiveNames
}

// FTPSource is a distribution directory on an FTP server.
type FTPSource struct {
	Enabled   bool
	Host      string
	Port      int
	Username  string
	Password  string
	Directory string
	Archives  ArchiveNames
}

// Installer holds everything needed to locate or download a distribution.
type Installer struct {
	Root       string
	LocalNames map[models.AppType]string
	Order      []string
	SMB        SMBSource
	HTTP       HTTPSource
	FTP        FTPSource
	// RequestTimeout bounds HTTP connection setup and FTP dialing.
	RequestTimeout time.Duration
}

// BackOffice holds first-run and config-editing settings.
type BackOffice struct {
	ConfigWaitTimeout   time.Duration
	ConfigCheckInterval time.Duration
	DefaultLogin        string
}

// Storage holds local persistence settings.
type Storage struct {
	NotebookPath string
}

// AppConfig is the validated runtime view of [StructuredConfig].
type AppConfig struct {
	FilePath   string
	Language   string
	Debug      bool
	Launcher   Launcher
	Adapter    Adapter
	Installer  Installer
	BackOffice BackOffice
	Storage    Storage

	// InitialTarget is the positional command-line argument, if any.
	InitialTarget string
	// LoadWarning is a non-fatal problem met while reading config.ini.
	LoadWarning error
}

// GetAppConfig builds and validates the runtime config from args
// (normally os.Args[1:]).
func GetAppConfig(args []string) (*AppConfig, error) {
	cfg, target, warn, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	appCfg := newAppConfig(cfg)
	appCfg.InitialTarget = target
	appCfg.LoadWarning = warn

	return appCfg, appCfg.validate()
}

func newAppConfig(cfg *StructuredConfig) *AppConfig {
	s := cfg.Settings
	timeout := time.Duration(s.HTTPRequestTimeoutSec) * time.Second

	return &AppConfig{
		FilePath: cfg.FilePath,
		Language: s.Language,
		Debug:    s.DebugLogging,
		Launcher: Launcher{
			AnyDeskPath:       s.AnyDeskPath,
			LiteManagerPath:   s.LiteManagerPath,
			LiteManagerIDMask: s.LiteManagerIDMask,
		},
		Adapter: Adapter{RequestTimeout: timeout},
		Installer: Installer{
			Root: s.InstallerRoot,
			LocalNames: map[models.AppType]string{
				appTypeIikoRMS:    cfg.LocalInstallerNames.IikoRMS,
				appTypeIikoChain:  cfg.LocalInstallerNames.IikoChain,
				appTypeSyrveRMS:   cfg.LocalInstallerNames.SyrveRMS,
				appTypeSyrveChain: cfg.LocalInstallerNames.SyrveChain,
			},
			Order: normalizeOrder(cfg.SourcePriority.Order),
			SMB: SMBSource{
				Enabled: cfg.SmbSource.Enabled,
				Path:    cfg.SmbSource.Path,
				Archives: archiveNames(cfg.SmbSource.IikoRMSArchiveName, cfg.SmbSource.IikoChainArchiveName,
					cfg.SmbSource.SyrveRMSArchiveName, cfg.SmbSource.SyrveChainArchiveName),
			},
			HTTP: HTTPSource{
				Enabled: cfg.HTTPSource.Enabled,
				URL:     cfg.HTTPSource.URL,
				Archives: archiveNames(cfg.HTTPSource.IikoRMSArchiveName, cfg.HTTPSource.IikoChainArchiveName,
					cfg.HTTPSource.SyrveRMSArchiveName, cfg.HTTPSource.SyrveChainArchiveName),
			},
			FTP: FTPSource{
				Enabled:   cfg.FtpSource.Enabled,
				Host:      cfg.FtpSource.Host,
				Port:      cfg.FtpSource.Port,
				Username:  cfg.FtpSource.Username,
				Password:  cfg.FtpSource.Password,
				Directory: cfg.FtpSource.Directory,
				Archives: archiveNames(cfg.FtpSource.IikoRMSArchiveName, cfg.FtpSource.IikoChainArchiveName,
					cfg.FtpSource.SyrveRMSArchiveName, cfg.FtpSource.SyrveChainArchiveName),
			},
			RequestTimeout: timeout,
		},
		BackOffice: BackOffice{
			ConfigWaitTimeout:   time.Duration(s.ConfigFileWaitTimeoutSec) * time.Second,
			ConfigCheckInterval: time.Duration(s.ConfigFileCheckIntervalMs) * time.Millisecond,
			DefaultLogin:        s.DefaultLogin,
		},
		Storage: Storage{NotebookPath: resolvePath(cfg.FilePath, s.NotebookPath)},
	}
}

var (
	appTypeIikoRMS    = models.NewAppType(models.VendorIiko, models.ProductRMS)
	appTypeIikoChain  = models.NewAppType(models.VendorIiko, models.ProductChain)
	appTypeSyrveRMS   = models.NewAppType(models.VendorSyrve, models.ProductRMS)
	appTypeSyrveChain = models.NewAppType(models.VendorSyrve, models.ProductChain)
)

func archiveNames(iikoRMS, iikoChain, syrveRMS, syrveChain string) ArchiveNames {
	return ArchiveNames{
		appTypeIikoRMS:    iikoRMS,
		appTypeIikoChain:  iikoChain,
		appTypeSyrveRMS:   syrveRMS,
		appTypeSyrveChain: syrveChain,
	}
}

func normalizeOrder(order []string) []string {
	out := make([]string, 0, len(order))
	for _, s := range order {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// resolvePath makes p absolute relative to the directory of configPath.
func resolvePath(configPath, p string) string {
	if p == "" || filepath.IsAbs(p) || configPath == "" {
		return p
	}
	return filepath.Join(filepath.Dir(configPath), p)
}
