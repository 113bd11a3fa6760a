// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// FileName is the configuration file looked up next to the executable.
const FileName = "config.ini"

var loadOptions = ini.LoadOptions{
	// configparser-written files carry lower-case keys.
	InsensitiveKeys: true,
}

// DefaultPath returns config.ini in the directory of the running executable.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return FileName
	}
	return filepath.Join(filepath.Dir(exe), FileName)
}

// loadINI reads path into a StructuredConfig.
//
// A missing file is created from Defaults. Keys present in Defaults but
// missing from the file are added and the file is rewritten. On any read or
// decode failure the defaults are returned together with a warning; the
// returned config is never nil.
func loadINI(path string) (*StructuredConfig, error) {
	defaults := Defaults()
	defaults.FilePath = path

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = writeINI(path, defaults); err != nil {
			return defaults, fmt.Errorf("%w: %w", ErrConfigFileNotWritten, err)
		}
		return defaults, nil
	}

	file, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return defaults, fmt.Errorf("%w: %w", ErrConfigFileUnreadable, err)
	}

	var warn error
	changed, err := backfill(file, defaults)
	if err != nil {
		return defaults, fmt.Errorf("%w: %w", ErrConfigFileUnreadable, err)
	}
	if changed {
		if err = file.SaveTo(path); err != nil {
			warn = fmt.Errorf("%w: %w", ErrConfigFileNotWritten, err)
		}
	}

	cfg := &StructuredConfig{}
	if err = file.MapTo(cfg); err != nil {
		return defaults, fmt.Errorf("%w: %w", ErrConfigFileUnreadable, err)
	}
	cfg.FilePath = path

	return cfg, warn
}

// backfill adds every default key missing from file and reports whether
// anything was added.
func backfill(file *ini.File, defaults *StructuredConfig) (bool, error) {
	reference := ini.Empty()
	if err := ini.ReflectFrom(reference, defaults); err != nil {
		return false, err
	}

	changed := false
	for _, sec := range reference.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		target := file.Section(sec.Name())
		for _, key := range sec.Keys() {
			if target.HasKey(key.Name()) {
				continue
			}
			if _, err := target.NewKey(key.Name(), key.Value()); err != nil {
				return changed, err
			}
			changed = true
		}
	}
	return changed, nil
}

func writeINI(path string, cfg *StructuredConfig) error {
	file := ini.Empty()
	if err := ini.ReflectFrom(file, cfg); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return file.SaveTo(path)
}

// SaveLanguage stores lang as [Settings] Language in the file at path,
// creating the file from defaults if it does not exist.
func SaveLanguage(path, lang string) error {
	file, err := ini.LoadSources(loadOptions, path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Defaults()
		cfg.Settings.Language = lang
		return writeINI(path, cfg)
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	file.Section("Settings").Key("Language").SetValue(lang)
	if err = file.SaveTo(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
