package core

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale codes used by the remote APIs. The English value lives on the
// entity itself; translations carry the alternates.
var (
	LocaleEN = language.English.String()
	LocaleAR = language.Arabic.String()
	LocaleFR = language.French.String()
)

// AltLocales are the locales probed for translated name/description matches.
func AltLocales() []string {
	return []string{LocaleAR, LocaleFR}
}

// Translations maps a locale code to a translated string. Entries may be
// absent or present-but-blank; both mean "no translation available".
type Translations map[string]string

// Get returns the translation for the given locale. Whitespace-only values
// count as absent.
func (t Translations) Get(locale string) (string, bool) {
	v, ok := t[locale]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}

// Values returns the defined translations for the given locales, in order,
// skipping absent and blank entries.
func (t Translations) Values(locales ...string) []string {
	var out []string
	for _, locale := range locales {
		if v, ok := t.Get(locale); ok {
			out = append(out, v)
		}
	}
	return out
}

// TranslationSet groups the translated variants an entity carries.
type TranslationSet struct {
	Name        Translations `json:"name,omitempty"`
	Description Translations `json:"description,omitempty"`
}
