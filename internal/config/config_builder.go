// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	args []string

	iniCfg  *StructuredConfig
	envCfg  *StructuredConfig
	flagCfg *StructuredConfig

	initialTarget string
	warn          error
	err           error
}

func newConfigBuilder(args []string) *configBuilder {
	return &configBuilder{args: args}
}

// build merges ini, env and flags in that order; later non-zero fields win.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range []*StructuredConfig{b.iniCfg, b.envCfg, b.flagCfg} {
		if cfg == nil {
			continue
		}
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withFlags() *configBuilder {
	flagCfg, target, err := parseFlags(b.args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.flagCfg = flagCfg
	b.initialTarget = target
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.envCfg = envCfg
	return b
}

// withINI loads config.ini from the path given by flags, then env, then the
// executable directory.
func (b *configBuilder) withINI() *configBuilder {
	path := DefaultPath()
	if b.envCfg != nil && b.envCfg.FilePath != "" {
		path = b.envCfg.FilePath
	}
	if b.flagCfg != nil && b.flagCfg.FilePath != "" {
		path = b.flagCfg.FilePath
	}

	cfg, warn := loadINI(path)
	b.iniCfg = cfg
	b.warn = warn
	return b
}
