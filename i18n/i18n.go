// Package i18n translates pofill's own user-facing strings.
//
// Translations are embedded in the binary and loaded with gotext. T and N
// pass the message through unchanged until Init has been called.
package i18n

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// Catalogs live at locales/<lang>/LC_MESSAGES/pofill.po.
//
//go:embed all:locales
var locales embed.FS

const (
	domain      = "pofill"
	defaultLang = "en"
)

var po *gotext.Locale

// noVars keeps gotext from treating msgid as a format string. Formatting is
// left to the caller.
var noVars []any

// Init loads the catalog for lang. If lang is empty, the first language of
// LANGUAGE, LC_ALL, LC_MESSAGES and LANG that pofill has a catalog for is
// used, and English otherwise.
func Init(lang string) {
	if lang == "" {
		lang = pickLanguage(candidateLanguages(), hasCatalog)
	}

	l := gotext.NewLocaleFSWithPath(lang, locales, "locales")
	l.AddDomain(domain)
	l.SetDomain(domain)
	po = l
}

// Language returns the language passed to the last Init, or English.
func Language() string {
	if po == nil {
		return defaultLang
	}
	return po.GetLanguage()
}

// T translates a string.
func T(msgid string) string {
	if po == nil {
		return msgid
	}
	return po.Get(msgid, noVars...)
}

// N translates a string with plural forms.
func N(singular, plural string, n int) string {
	if po == nil {
		if n == 1 {
			return singular
		}
		return plural
	}
	return po.GetN(singular, plural, n, noVars...)
}

// candidateLanguages lists the requested languages in GNU gettext order.
// LANGUAGE may hold several, separated by colons; it is ignored when the
// locale is C or POSIX.
func candidateLanguages() []string {
	var langs []string
	add := func(val string) {
		if i := strings.IndexAny(val, ".@"); i >= 0 {
			val = val[:i]
		}
		if val != "" && val != "C" && val != "POSIX" {
			langs = append(langs, val)
		}
	}
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(env)
		if env == "LANGUAGE" {
			for _, v := range strings.Split(val, ":") {
				add(v)
			}
			continue
		}
		add(val)
	}
	return langs
}

// pickLanguage returns the first of langs accepted by ok, or English.
func pickLanguage(langs []string, ok func(string) bool) string {
	for _, l := range langs {
		if ok(l) {
			return l
		}
	}
	return defaultLang
}

// hasCatalog reports whether a catalog is embedded for lang or for its base
// language (es for es_ES).
func hasCatalog(lang string) bool {
	if lang == defaultLang {
		return true
	}
	for _, l := range []string{lang, strings.SplitN(lang, "_", 2)[0]} {
		if _, err := fs.Stat(locales, path.Join("locales", l, "LC_MESSAGES", domain+".po")); err == nil {
			return true
		}
	}
	return false
}
