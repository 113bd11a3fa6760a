// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/ini.v1"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempINI(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ── loadINI ───────────────────────────────────────────────────────────────────

// TestLoadINI_CreatesMissingFile verifies that a missing config.ini is created
// from defaults and the defaults are returned.
func TestLoadINI_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", FileName)

	cfg, warn := loadINI(path)

	require.NoError(t, warn)
	assert.FileExists(t, path)
	assert.Equal(t, Defaults().Settings, cfg.Settings)
	assert.Equal(t, path, cfg.FilePath)

	reloaded, warn := loadINI(path)
	require.NoError(t, warn)
	assert.Equal(t, cfg.Settings, reloaded.Settings)
	assert.Equal(t, []string{"smb", "http", "ftp"}, reloaded.SourcePriority.Order)
	assert.Equal(t, "Syrve/RMSSOffice{version}.zip", reloaded.FtpSource.SyrveRMSArchiveName)
}

// TestLoadINI_BackfillsMissingKeys verifies that user values survive and
// missing keys are added to the file.
func TestLoadINI_BackfillsMissingKeys(t *testing.T) {
	path := writeTempINI(t, "[Settings]\nAnyDeskPath = D:\\Tools\\AnyDesk.exe\nLanguage = en\n")

	cfg, warn := loadINI(path)

	require.NoError(t, warn)
	assert.Equal(t, `D:\Tools\AnyDesk.exe`, cfg.Settings.AnyDeskPath)
	assert.Equal(t, "en", cfg.Settings.Language)
	assert.Equal(t, 15, cfg.Settings.HTTPRequestTimeoutSec)
	assert.Equal(t, "ChainOffice", cfg.LocalInstallerNames.IikoChain)

	file, err := ini.LoadSources(loadOptions, path)
	require.NoError(t, err)
	assert.True(t, file.Section("Settings").HasKey("HttpRequestTimeoutSec"))
	assert.True(t, file.Section("FtpSource").HasKey("Directory"))
}

// TestLoadINI_LowerCaseKeys verifies that files written with lower-cased keys
// are understood.
func TestLoadINI_LowerCaseKeys(t *testing.T) {
	path := writeTempINI(t, "[Settings]\nanydeskpath = C:\\AD.exe\nhttprequesttimeoutsec = 30\ndebuglogging = True\n")

	cfg, warn := loadINI(path)

	require.NoError(t, warn)
	assert.Equal(t, `C:\AD.exe`, cfg.Settings.AnyDeskPath)
	assert.Equal(t, 30, cfg.Settings.HTTPRequestTimeoutSec)
	assert.True(t, cfg.Settings.DebugLogging)
}

// TestLoadINI_UnreadableFallsBackToDefaults verifies that an unreadable
// config produces defaults and a warning rather than an error.
func TestLoadINI_UnreadableFallsBackToDefaults(t *testing.T) {
	path := t.TempDir() // a directory cannot be parsed as INI

	cfg, warn := loadINI(path)

	assert.ErrorIs(t, warn, ErrConfigFileUnreadable)
	require.NotNil(t, cfg)
	assert.Equal(t, Defaults().Settings, cfg.Settings)
}

// ── SaveLanguage ──────────────────────────────────────────────────────────────

func TestSaveLanguage_UpdatesExistingFile(t *testing.T) {
	path := writeTempINI(t, "[Settings]\nLanguage = ru\nAnyDeskPath = X\n")

	require.NoError(t, SaveLanguage(path, "en"))

	cfg, warn := loadINI(path)
	require.NoError(t, warn)
	assert.Equal(t, "en", cfg.Settings.Language)
	assert.Equal(t, "X", cfg.Settings.AnyDeskPath)
}

func TestSaveLanguage_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	require.NoError(t, SaveLanguage(path, "en"))

	cfg, warn := loadINI(path)
	require.NoError(t, warn)
	assert.Equal(t, "en", cfg.Settings.Language)
}
