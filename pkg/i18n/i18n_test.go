package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocale(t *testing.T) {
	l, err := ParseLocale(" EN ")
	require.NoError(t, err)
	assert.Equal(t, LocaleEN, l)

	_, err = ParseLocale("de")
	assert.Error(t, err)
}

func TestContext_T(t *testing.T) {
	es := NewContext(LocaleES)
	assert.Equal(t, "Educación", es.T("preview.education"))

	ru := NewContext(LocaleRU)
	assert.Equal(t, "Certifications", ru.T("preview.certifications"), "falls back to English")
	assert.Equal(t, "missing.key", ru.T("missing.key"))
}

func TestNewContext_UnknownLocaleUsesDefault(t *testing.T) {
	assert.Equal(t, DefaultLocale, NewContext("xx").Locale)
}

func TestTranslations_SpanishCoversEnglish(t *testing.T) {
	for key := range translations[LocaleEN] {
		_, ok := translations[LocaleES][key]
		assert.True(t, ok, "missing es translation for %s", key)
	}
}
