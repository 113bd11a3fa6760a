// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package installer

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ExeName is the executable that marks the root of a distribution.
const ExeName = "BackOffice.exe"

// Extract unpacks archive into dest. progress receives the share of
// processed entries.
func Extract(ctx context.Context, archive, dest string, progress func(float64)) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return fmt.Errorf("open archive %s: %w", filepath.Base(archive), err)
	}
	defer r.Close()

	if err = os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	root := filepath.Clean(dest)

	total := len(r.File)
	for i, f := range r.File {
		if err = ctx.Err(); err != nil {
			return err
		}

		target := filepath.Join(root, filepath.FromSlash(f.Name))
		if target != root && !strings.HasPrefix(target, root+string(os.PathSeparator)) {
			return fmt.Errorf("%w: %s", ErrUnsafeArchivePath, f.Name)
		}

		if f.FileInfo().IsDir() {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return err
			}
		} else if err = extractFile(f, target); err != nil {
			return fmt.Errorf("extract %s: %w", f.Name, err)
		}

		if progress != nil {
			progress(float64(i+1) / float64(total))
		}
	}
	return nil
}

func extractFile(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err = io.Copy(out, rc); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// FindExecutableDir returns the first directory under root, in walk order,
// that directly contains BackOffice.exe.
func FindExecutableDir(ctx context.Context, root string) (string, error) {
	var found string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !d.IsDir() {
			return nil
		}
		if info, statErr := os.Stat(filepath.Join(p, ExeName)); statErr == nil && !info.IsDir() {
			found = p
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if found == "" {
		return "", ErrExecutableMissing
	}
	return found, nil
}

// moveContent moves every entry of src into dst, replacing existing ones.
func moveContent(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, e := range entries {
		from := filepath.Join(src, e.Name())
		to := filepath.Join(dst, e.Name())
		if err = os.RemoveAll(to); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if err = os.Rename(from, to); err != nil {
			return fmt.Errorf("move %s: %w", e.Name(), err)
		}
	}
	return nil
}
