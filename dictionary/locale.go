package dictionary

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
)

// CanonicalLocale converts a gettext or BCP 47 locale name (pt_BR, pt-br,
// pt_BR.UTF-8) to its canonical BCP 47 form (pt-BR).
func CanonicalLocale(s string) (string, error) {
	tag, err := ParseLocale(s)
	if err != nil {
		return "", err
	}
	return tag.String(), nil
}

// ParseLocale parses a gettext or BCP 47 locale name. Encoding and modifier
// suffixes (de_DE.UTF-8, sr_RS@latin) are ignored.
func ParseLocale(s string) (language.Tag, error) {
	name := strings.TrimSpace(s)
	if idx := strings.IndexAny(name, ".@"); idx >= 0 {
		name = name[:idx]
	}
	if name == "" {
		return language.Und, fmt.Errorf("empty locale")
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", s, err)
	}
	return tag, nil
}

// fallbackChain lists the canonical tags Lookup tries for locale.
func fallbackChain(locale string) []string {
	tag, err := ParseLocale(locale)
	if err != nil {
		return nil
	}
	chain := []string{tag.String()}
	if base, conf := tag.Base(); conf != language.No {
		if b := base.String(); b != chain[0] {
			chain = append(chain, b)
		}
	}
	return chain
}

// LocaleFromPath extracts the locale from a catalog file name. Both the
// WordPress convention (<domain>-<locale>.po) and the plain gettext one
// (<locale>.po) are recognized; the result is empty when the name carries no
// valid locale.
func LocaleFromPath(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	candidates := []string{name}
	if idx := strings.LastIndex(name, "-"); idx >= 0 {
		candidates = append([]string{name[idx+1:]}, candidates...)
	}

	for _, c := range candidates {
		if !looksLikeLocale(c) {
			continue
		}
		if _, err := ParseLocale(c); err == nil {
			return c
		}
	}
	return ""
}

// looksLikeLocale accepts ll, lll, ll_CC, ll-CC and ll_Scrp names. It keeps
// words like "messages" or "designsetgo" from being parsed as languages.
func looksLikeLocale(s string) bool {
	lang, region, hasRegion := strings.Cut(strings.ReplaceAll(s, "-", "_"), "_")
	if len(lang) < 2 || len(lang) > 3 || !isLower(lang) {
		return false
	}
	if !hasRegion {
		return true
	}
	return (len(region) == 2 && isUpper(region)) || (len(region) == 4 && isLetters(region))
}

func isLower(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func isUpper(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func isLetters(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
