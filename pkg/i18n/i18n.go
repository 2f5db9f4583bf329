// Package i18n holds the UI string tables and the per-request language
// context handed to renderers.
package i18n

import (
	"fmt"
	"strings"
)

type Locale string

const (
	LocaleES Locale = "es"
	LocaleEN Locale = "en"
	LocaleRU Locale = "ru"

	DefaultLocale = LocaleES
)

// Language is an entry of the language selector.
type Language struct {
	Code Locale
	Name string
	Flag string
}

func Languages() []Language {
	return []Language{
		{Code: LocaleES, Name: "Español", Flag: "🇪🇸"},
		{Code: LocaleEN, Name: "English", Flag: "🇺🇸"},
		{Code: LocaleRU, Name: "Русский", Flag: "🇷🇺"},
	}
}

func ParseLocale(s string) (Locale, error) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	for _, lang := range Languages() {
		if lang.Code == l {
			return l, nil
		}
	}
	return "", fmt.Errorf("unsupported locale %q", s)
}

// Context carries the active locale for one rendered page tree.
type Context struct {
	Locale Locale
}

func NewContext(l Locale) Context {
	if _, err := ParseLocale(string(l)); err != nil {
		l = DefaultLocale
	}
	return Context{Locale: l}
}

// T translates key, falling back to English and then to the key itself.
func (c Context) T(key string) string {
	if s, ok := translations[c.Locale][key]; ok {
		return s
	}
	if s, ok := translations[LocaleEN][key]; ok {
		return s
	}
	return key
}
