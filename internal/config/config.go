// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig mirrors config.ini section by section. It is populated by
// merging the INI file, environment variables and command-line flags.
//
// Struct tags:
//   - ini: section or key name in config.ini (gopkg.in/ini.v1).
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name; LAUNCHER_ is prepended.
type StructuredConfig struct {
	Settings            Settings            `ini:"Settings"`
	SourcePriority      SourcePriority      `ini:"SourcePriority"`
	SmbSource           SmbSource           `ini:"SmbSource" envPrefix:"SMB_"`
	HTTPSource          HttpSource          `ini:"HttpSource" envPrefix:"HTTP_"`
	FtpSource           FtpSource           `ini:"FtpSource" envPrefix:"FTP_"`
	LocalInstallerNames LocalInstallerNames `ini:"LocalInstallerNames"`

	// FilePath is the location of config.ini. It is never written to the file.
	// Env: LAUNCHER_CONFIG
	FilePath string `ini:"-" env:"CONFIG"`
}

// Settings is the [Settings] section.
type Settings struct {
	// Env: LAUNCHER_HTTP_TIMEOUT_SEC
	HTTPRequestTimeoutSec int `ini:"HttpRequestTimeoutSec" env:"HTTP_TIMEOUT_SEC"`
	// InstallerRoot holds the unpacked local distributions.
	// Env: LAUNCHER_INSTALLER_ROOT
	InstallerRoot             string `ini:"InstallerRoot" env:"INSTALLER_ROOT"`
	ConfigFileWaitTimeoutSec  int    `ini:"ConfigFileWaitTimeoutSec"`
	ConfigFileCheckIntervalMs int    `ini:"ConfigFileCheckIntervalMs"`
	// Env: LAUNCHER_DEBUG
	DebugLogging bool `ini:"DebugLogging" env:"DEBUG"`
	// DefaultLogin is written into the BackOffice connection config.
	// Env: LAUNCHER_DEFAULT_LOGIN
	DefaultLogin string `ini:"DefaultLogin" env:"DEFAULT_LOGIN"`
	// Env: LAUNCHER_ANYDESK_PATH
	AnyDeskPath string `ini:"AnyDeskPath" env:"ANYDESK_PATH"`
	// Env: LAUNCHER_LITEMANAGER_PATH
	LiteManagerPath string `ini:"LiteManagerPath" env:"LITEMANAGER_PATH"`
	// LiteManagerIDMask describes LiteManager IDs: '1' is any digit.
	// Env: LAUNCHER_LITEMANAGER_ID_MASK
	LiteManagerIDMask string `ini:"LiteManagerIdMask" env:"LITEMANAGER_ID_MASK"`
	// Env: LAUNCHER_LANGUAGE
	Language string `ini:"Language" env:"LANGUAGE"`
	// NotebookPath is the connection book database. Relative paths are
	// resolved against the directory of config.ini.
	// Env: LAUNCHER_NOTEBOOK_PATH
	NotebookPath string `ini:"NotebookPath" env:"NOTEBOOK_PATH"`
}

// SourcePriority is the [SourcePriority] section.
type SourcePriority struct {
	// Order lists source kinds (smb, http, ftp) in the order they are tried.
	Order []string `ini:"Order" delim:","`
}

// SmbSource is the [SmbSource] section. Path is a UNC share root.
type SmbSource struct {
	Enabled bool   `ini:"Enabled" env:"ENABLED"`
	Path    string `ini:"Path" env:"PATH"`

	IikoRMSArchiveName    string `ini:"iikoRMS_ArchiveName"`
	IikoChainArchiveName  string `ini:"iikoChain_ArchiveName"`
	SyrveRMSArchiveName   string `ini:"SyrveRMS_ArchiveName"`
	SyrveChainArchiveName string `ini:"SyrveChain_ArchiveName"`
}

// HttpSource is the [HttpSource] section. URL is the directory holding archives.
type HttpSource struct {
	Enabled bool   `ini:"Enabled" env:"ENABLED"`
	URL     string `ini:"Url" env:"URL"`

	IikoRMSArchiveName    string `ini:"iikoRMS_ArchiveName"`
	IikoChainArchiveName  string `ini:"iikoChain_ArchiveName"`
	SyrveRMSArchiveName   string `ini:"SyrveRMS_ArchiveName"`
	SyrveChainArchiveName string `ini:"SyrveChain_ArchiveName"`
}

// FtpSource is the [FtpSource] section.
type FtpSource struct {
	Enabled   bool   `ini:"Enabled" env:"ENABLED"`
	Host      string `ini:"Host" env:"HOST"`
	Port      int    `ini:"Port" env:"PORT"`
	Username  string `ini:"Username" env:"USERNAME"`
	Password  string `ini:"Password" env:"PASSWORD"`
	Directory string `ini:"Directory" env:"DIRECTORY"`

	IikoRMSArchiveName    string `ini:"iikoRMS_ArchiveName"`
	IikoChainArchiveName  string `ini:"iikoChain_ArchiveName"`
	SyrveRMSArchiveName   string `ini:"SyrveRMS_ArchiveName"`
	SyrveChainArchiveName string `ini:"SyrveChain_ArchiveName"`
}

// LocalInstallerNames is the [LocalInstallerNames] section: the folder name
// prefix of an unpacked distribution per application type.
type LocalInstallerNames struct {
	IikoRMS    string `ini:"iikoRMS"`
	IikoChain  string `ini:"iikoChain"`
	SyrveRMS   string `ini:"SyrveRMS"`
	SyrveChain string `ini:"SyrveChain"`
}

// Defaults returns the configuration written to a freshly created config.ini.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Settings: Settings{
			HTTPRequestTimeoutSec:     15,
			InstallerRoot:             `C:\iiko_Distr`,
			ConfigFileWaitTimeoutSec:  60,
			ConfigFileCheckIntervalMs: 100,
			DebugLogging:              false,
			DefaultLogin:              "iikoUser",
			AnyDeskPath:               `C:\Program Files\AnyDesk\AnyDesk.exe`,
			LiteManagerPath:           `C:\Program Files (x86)\LiteManager Pro - Viewer\ROMViewer.exe`,
			LiteManagerIDMask:         "MH_11111",
			Language:                  "ru",
			NotebookPath:              "notebook.db",
		},
		SourcePriority: SourcePriority{Order: []string{SourceSMB, SourceHTTP, SourceFTP}},
		SmbSource: SmbSource{
			Enabled:               false,
			Path:                  `\\10.25.100.5\sharedisk\iikoBacks`,
			IikoRMSArchiveName:    "RMSOffice{version}.zip",
			IikoChainArchiveName:  "ChainOffice{version}.zip",
			SyrveRMSArchiveName:   "Syrve/RMSSOffice{version}.zip",
			SyrveChainArchiveName: "Syrve/ChainSOffice{version}.zip",
		},
		HTTPSource: HttpSource{
			Enabled:               true,
			URL:                   "https://f.serty.top/iikoBacks",
			IikoRMSArchiveName:    "RMSOffice{version}.zip",
			IikoChainArchiveName:  "ChainOffice{version}.zip",
			SyrveRMSArchiveName:   "Syrve/RMSSOffice{version}.zip",
			SyrveChainArchiveName: "Syrve/ChainSOffice{version}.zip",
		},
		FtpSource: FtpSource{
			Enabled:               true,
			Host:                  "ftp.serty.top",
			Port:                  21,
			Username:              "ftpuser",
			Password:              "11",
			Directory:             "/iikoBacks",
			IikoRMSArchiveName:    "RMSOffice{version}.zip",
			IikoChainArchiveName:  "ChainOffice{version}.zip",
			SyrveRMSArchiveName:   "Syrve/RMSSOffice{version}.zip",
			SyrveChainArchiveName: "Syrve/ChainSOffice{version}.zip",
		},
		LocalInstallerNames: LocalInstallerNames{
			IikoRMS:    "RMSOffice",
			IikoChain:  "ChainOffice",
			SyrveRMS:   "RMSSOffice",
			SyrveChain: "ChainSOffice",
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources
// (last source wins for non-zero fields):
//  1. config.ini (path from flags, env, or next to the executable)
//  2. Environment variables
//  3. Command-line flags in args
//
// A config.ini that cannot be read or written does not fail the load: the
// defaults are used and the problem is returned as warn.
func GetStructuredConfig(args []string) (cfg *StructuredConfig, initialTarget string, warn error, err error) {
	b := newConfigBuilder(args).
		withFlags().
		withEnv().
		withINI()

	cfg, err = b.build()
	return cfg, b.initialTarget, b.warn, err
}
