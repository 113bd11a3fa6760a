// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache removes per-client cache directories before a relaunch.
package cache

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/models"
)

// AnyDeskDirName is the AnyDesk cache folder under the roaming AppData root.
const AnyDeskDirName = "AnyDesk"

// AnyDeskCacheDir returns the AnyDesk cache directory under appData.
func AnyDeskCacheDir(appData string) string {
	return filepath.Join(appData, AnyDeskDirName)
}

// Cleaner removes cache directories.
type Cleaner struct {
	log *logger.Logger
}

// NewCleaner returns a Cleaner that logs through log.
func NewCleaner(log *logger.Logger) *Cleaner {
	return &Cleaner{log: log}
}

// Clean removes dir with all its content.
//
// A missing directory yields CleanupNotFound and no error. A path that exists
// but cannot be inspected or removed yields a *FileSystemError.
func (c *Cleaner) Clean(dir string) (models.CleanupOutcome, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		c.log.Debug().Str("func", "Cleaner.Clean").Str("path", dir).Msg("cache directory not found")
		return models.CleanupNotFound, nil
	}
	if err != nil {
		c.log.Err(err).Str("func", "Cleaner.Clean").Str("path", dir).Msg("stat cache directory")
		return models.CleanupSkipped, &FileSystemError{Path: dir, Err: err}
	}
	if !info.IsDir() {
		err = errors.New("not a directory")
		c.log.Err(err).Str("func", "Cleaner.Clean").Str("path", dir).Msg("cache path is not a directory")
		return models.CleanupSkipped, &FileSystemError{Path: dir, Err: err}
	}

	if err = os.RemoveAll(dir); err != nil {
		c.log.Err(err).Str("func", "Cleaner.Clean").Str("path", dir).Msg("remove cache directory")
		return models.CleanupSkipped, &FileSystemError{Path: dir, Err: err}
	}

	c.log.Info().Str("func", "Cleaner.Clean").Str("path", dir).Msg("cache directory removed")
	return models.CleanupCleared, nil
}
