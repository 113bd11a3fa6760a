// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean_RemovesDirectoryTree(t *testing.T) {
	dir := filepath.Join(t.TempDir(), AnyDeskDirName)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "thumbnails"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "service.conf"), []byte("ad.anynet.id=1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "thumbnails", "x.png"), []byte{1, 2}, 0o644))

	outcome, err := NewCleaner(logger.Nop()).Clean(dir)

	require.NoError(t, err)
	assert.Equal(t, models.CleanupCleared, outcome)
	assert.NoDirExists(t, dir)
}

func TestClean_MissingDirectoryIsNotFound(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "absent")

	outcome, err := NewCleaner(logger.Nop()).Clean(dir)

	require.NoError(t, err)
	assert.Equal(t, models.CleanupNotFound, outcome)
}

func TestClean_RegularFileIsFileSystemError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "AnyDesk")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	outcome, err := NewCleaner(logger.Nop()).Clean(path)

	var fsErr *FileSystemError
	require.ErrorAs(t, err, &fsErr)
	assert.Equal(t, path, fsErr.Path)
	assert.Equal(t, models.CleanupSkipped, outcome)
	assert.FileExists(t, path)
}

func TestFileSystemError_Message(t *testing.T) {
	err := &FileSystemError{Path: `C:\Users\u\AppData\Roaming\AnyDesk`, Err: os.ErrPermission}
	assert.Contains(t, err.Error(), "AnyDesk")
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestAnyDeskCacheDir(t *testing.T) {
	assert.Equal(t, filepath.Join("root", "AnyDesk"), AnyDeskCacheDir("root"))
}
