// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backoffice

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/service-launcher/internal/launcher"
)

// ExeName is the BackOffice client executable.
const ExeName = "BackOffice.exe"

// StartCommand returns the command that starts BackOffice from installerDir
// with a private temp folder named after the sanitized target.
func StartCommand(installerDir, sanitizedTarget string) (launcher.Command, error) {
	exe := filepath.Join(installerDir, ExeName)
	if _, err := os.Stat(exe); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return launcher.Command{}, fmt.Errorf("%w: %s", ErrExecutableNotFound, exe)
		}
		return launcher.Command{}, fmt.Errorf("stat %s: %w", exe, err)
	}

	return launcher.Command{
		Path: exe,
		Args: []string{fmt.Sprintf("/AdditionalTmpFolder=%q", sanitizedTarget)},
		Dir:  installerDir,
	}, nil
}
