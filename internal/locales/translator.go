// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package locales holds the embedded message catalogues and the Translator
// that renders them for the active UI language.
//
// Catalogues are TOML files named active.<lang>.toml. Russian is the default
// language; English is the fallback for any id missing in the active one.
package locales

import (
	"embed"
	"fmt"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var catalogues embed.FS

// Supported language codes.
const (
	LangRussian = "ru"
	LangEnglish = "en"
)

// DefaultLanguage is used when the configured language is empty or unknown.
const DefaultLanguage = LangRussian

var supported = []language.Tag{language.Russian, language.English}

var matcher = language.NewMatcher(supported)

// Translator renders message ids in the active language. It is safe for
// concurrent use: background operations report through it while the UI
// may switch languages.
type Translator struct {
	bundle *i18n.Bundle

	mu        sync.RWMutex
	lang      string
	localizer *i18n.Localizer
}

// NewTranslator loads the embedded catalogues and activates lang.
func NewTranslator(lang string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, tag := range supported {
		name := fmt.Sprintf("active.%s.toml", tag.String())
		data, err := catalogues.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read catalogue %s: %w", name, err)
		}
		if _, err = bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, fmt.Errorf("parse catalogue %s: %w", name, err)
		}
	}

	t := &Translator{bundle: bundle}
	t.SetLanguage(lang)
	return t, nil
}

// Normalize maps any language string to one of the supported codes.
func Normalize(lang string) string {
	if lang == "" {
		return DefaultLanguage
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return DefaultLanguage
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultLanguage
	}
	base, _ := supported[idx].Base()
	return base.String()
}

// SetLanguage activates lang. Unknown languages fall back to DefaultLanguage.
func (t *Translator) SetLanguage(lang string) {
	lang = Normalize(lang)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.lang = lang
	t.localizer = i18n.NewLocalizer(t.bundle, lang, LangEnglish)
}

// Language returns the active language code.
func (t *Translator) Language() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// Toggle switches between Russian and English and returns the new code.
func (t *Translator) Toggle() string {
	next := LangEnglish
	if t.Language() == LangEnglish {
		next = LangRussian
	}
	t.SetLanguage(next)
	return next
}

// T renders id with optional template data. A missing id renders as itself.
func (t *Translator) T(id string, data ...map[string]any) string {
	cfg := &i18n.LocalizeConfig{MessageID: id}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}

	t.mu.RLock()
	loc := t.localizer
	t.mu.RUnlock()

	msg, err := loc.Localize(cfg)
	if err != nil {
		return id
	}
	return msg
}
