// Package langmeta resolves display metadata (native name and emoji flag)
// for the locales pofill reports on.
package langmeta

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/minios-linux/pofill/dictionary"
)

// Meta describes language display metadata.
type Meta struct {
	Name string
	Flag string
}

// Resolve returns best-effort metadata for locale names like pt_BR, pt-br or
// sr_RS@latin. Unknown or malformed names are passed through with no flag.
func Resolve(lang string) Meta {
	tag, err := dictionary.ParseLocale(lang)
	if err != nil {
		return Meta{Name: lang}
	}

	name := display.Self.Name(tag)
	if name == "" {
		name = lang
	}

	m := Meta{Name: name}
	if region, conf := tag.Region(); conf == language.Exact {
		m.Flag = flagFromRegion(region.String())
	}
	return m
}

// flagFromRegion builds the regional indicator pair for a two-letter region
// code. It returns "" for anything else (numeric UN M.49 codes, "ZZ").
func flagFromRegion(region string) string {
	if len(region) != 2 {
		return ""
	}
	region = strings.ToUpper(region)
	if region == "ZZ" {
		return ""
	}
	var b strings.Builder
	for _, r := range region {
		if r < 'A' || r > 'Z' {
			return ""
		}
		b.WriteRune(0x1F1E6 + r - 'A')
	}
	return b.String()
}
