// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package locales

import (
	"sort"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTranslator(t *testing.T, lang string) *Translator {
	t.Helper()
	tr, err := NewTranslator(lang)
	require.NoError(t, err)
	return tr
}

func catalogueKeys(t *testing.T, name string) []string {
	t.Helper()
	data, err := catalogues.ReadFile(name)
	require.NoError(t, err)

	var m map[string]string
	require.NoError(t, toml.Unmarshal(data, &m))

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ── catalogues ──────────────────────────────────────────────────────────────

func TestCatalogues_SameKeys(t *testing.T) {
	en := catalogueKeys(t, "active.en.toml")
	ru := catalogueKeys(t, "active.ru.toml")
	assert.Equal(t, en, ru)
}

func TestCatalogues_EveryIDPresent(t *testing.T) {
	en := catalogueKeys(t, "active.en.toml")
	for _, id := range allMessageIDs {
		assert.Contains(t, en, id)
	}
	assert.Len(t, en, len(allMessageIDs))
}

func TestTranslator_EveryIDRendersInBothLanguages(t *testing.T) {
	tr := newTestTranslator(t, LangEnglish)
	data := map[string]any{
		"Client": "AnyDesk", "ID": "123456789", "PID": 42, "Path": "p", "Error": "e",
		"Exe": "AnyDesk.exe", "Address": "a", "AppType": "RMS", "Vendor": "iiko",
		"Edition": "x", "Version": "9", "Formatted": "9.1", "Installer": "i",
		"Host": "h", "State": "s", "Name": "n", "Source": "SMB", "File": "f",
		"URL": "u", "Count": 1, "Language": "English", "Date": "d", "Commit": "c",
	}
	for _, lang := range []string{LangEnglish, LangRussian} {
		tr.SetLanguage(lang)
		for _, id := range allMessageIDs {
			got := tr.T(id, data)
			assert.NotEmpty(t, got, "%s/%s", lang, id)
			assert.NotContains(t, got, "{{", "%s/%s", lang, id)
		}
	}
}

// ── language selection ──────────────────────────────────────────────────────

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"":        LangRussian,
		"ru":      LangRussian,
		"en":      LangEnglish,
		"en-US":   LangEnglish,
		"ru_RU":   LangRussian,
		"garbage": LangRussian,
		"de":      LangRussian,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, Normalize(in))
		})
	}
}

func TestTranslator_DefaultIsRussian(t *testing.T) {
	tr := newTestTranslator(t, "")
	assert.Equal(t, LangRussian, tr.Language())
	assert.Equal(t, "Ожидание ввода...", tr.T(MsgWaitingForInput))
}

func TestTranslator_Toggle(t *testing.T) {
	tr := newTestTranslator(t, LangRussian)

	assert.Equal(t, LangEnglish, tr.Toggle())
	assert.Equal(t, "Waiting for input...", tr.T(MsgWaitingForInput))

	assert.Equal(t, LangRussian, tr.Toggle())
	assert.Equal(t, LangRussian, tr.Language())
}

// ── rendering ───────────────────────────────────────────────────────────────

func TestTranslator_TemplateData(t *testing.T) {
	tr := newTestTranslator(t, LangEnglish)
	got := tr.T(MsgLaunched, map[string]any{"Client": "AnyDesk", "ID": "123456789", "PID": 4242})
	assert.Equal(t, "AnyDesk launched for 123456789 (PID: 4242).", got)
}

func TestTranslator_UnknownIDRendersItself(t *testing.T) {
	tr := newTestTranslator(t, LangEnglish)
	assert.Equal(t, "NoSuchMessage", tr.T("NoSuchMessage"))
}
