// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package installer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/service-launcher/internal/config"
	"github.com/MKhiriev/service-launcher/models"
)

func TestExtract_WritesTreeAndReportsProgress(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "a.zip")
	makeZip(t, archive, map[string]string{"a/b.txt": "b", "c.txt": "c"})
	dest := t.TempDir()

	var shares []float64
	require.NoError(t, Extract(context.Background(), archive, dest, func(f float64) { shares = append(shares, f) }))

	data, err := os.ReadFile(filepath.Join(dest, "a", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))
	assert.FileExists(t, filepath.Join(dest, "c.txt"))
	assert.Equal(t, []float64{0.5, 1}, shares)
}

func TestExtract_RejectsPathTraversal(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "evil.zip")
	makeZip(t, archive, map[string]string{"../evil.txt": "x"})

	err := Extract(context.Background(), archive, filepath.Join(t.TempDir(), "out"), nil)

	assert.ErrorIs(t, err, ErrUnsafeArchivePath)
}

func TestExtract_NotAZip(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "bad.zip")
	require.NoError(t, os.WriteFile(archive, []byte("not a zip"), 0o644))

	assert.Error(t, Extract(context.Background(), archive, t.TempDir(), nil))
}

func TestExtract_Canceled(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "a.zip")
	makeZip(t, archive, map[string]string{"a.txt": "a"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, Extract(ctx, archive, t.TempDir(), nil), context.Canceled)
}

func TestFindExecutableDir_WalkOrder(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "deep"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "deep", ExeName), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b", ExeName), nil, 0o644))

	dir, err := FindExecutableDir(context.Background(), root)

	require.NoError(t, err)
	// обход в лексическом порядке: a/deep встречается раньше b
	assert.Equal(t, filepath.Join(root, "a", "deep"), dir)
}

func TestFindExecutableDir_Root(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ExeName), nil, 0o644))

	dir, err := FindExecutableDir(context.Background(), root)

	require.NoError(t, err)
	assert.Equal(t, root, dir)
}

func TestFindExecutableDir_Missing(t *testing.T) {
	_, err := FindExecutableDir(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrExecutableMissing)
}

func TestCopyWithProgress(t *testing.T) {
	src := strings.NewReader(strings.Repeat("x", 3*copyBufferSize/2))
	var dst bytes.Buffer
	var shares []float64

	n, err := copyWithProgress(context.Background(), &dst, src, int64(src.Len()), func(f float64) { shares = append(shares, f) })

	require.NoError(t, err)
	assert.EqualValues(t, 3*copyBufferSize/2, n)
	require.NotEmpty(t, shares)
	assert.Equal(t, 1.0, shares[len(shares)-1])
}

func TestArchiveName(t *testing.T) {
	names := config.ArchiveNames{models.NewAppType(models.VendorIiko, models.ProductRMS): "RMS/{version}/BackOffice_{version}.zip"}

	got, err := ArchiveName(names, models.NewAppType(models.VendorIiko, models.ProductRMS), "912")
	require.NoError(t, err)
	assert.Equal(t, "RMS/912/BackOffice_912.zip", got)

	_, err = ArchiveName(names, models.NewAppType(models.VendorSyrve, models.ProductChain), "912")
	assert.ErrorIs(t, err, ErrSourceNotConfigured)
}
