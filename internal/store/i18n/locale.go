package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies one of the two storefront display languages.
type Locale string

const (
	// LocaleEN renders English copy.
	LocaleEN Locale = "en"
	// LocaleJA renders Japanese copy. Japanese is the site default.
	LocaleJA Locale = "ja"
)

// Resolve normalises an arbitrary language hint (URL segment, stored
// preference) into a supported Locale. Hints beginning with "ja" resolve to
// Japanese; only the exact value "en" resolves to English. Everything else,
// including an empty or unsupported hint, falls back to Japanese — the
// default is deliberately not English.
func Resolve(hint string) Locale {
	if strings.HasPrefix(hint, string(LocaleJA)) {
		return LocaleJA
	}
	if hint == string(LocaleEN) {
		return LocaleEN
	}
	return LocaleJA
}

// Tag returns the BCP 47 tag used for number formatting.
func (l Locale) Tag() language.Tag {
	if l == LocaleEN {
		return language.English
	}
	return language.Japanese
}

// Other returns the opposite supported locale, used by the language switcher.
func (l Locale) Other() Locale {
	if l == LocaleJA {
		return LocaleEN
	}
	return LocaleJA
}
