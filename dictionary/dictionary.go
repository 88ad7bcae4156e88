// Package dictionary holds the static lookup tables used to fill catalogs.
//
// A Table maps a locale to a set of source string → translation pairs. It is
// built once from YAML or TOML documents, i18next JSON files and existing
// gettext catalogs, and is read-only afterwards:
//
//	# translations/common.yaml
//	es_ES:
//	  Save: Guardar
//	  Delete: Borrar
//	fr_FR:
//	  Save: Enregistrer
//
// Locale names are canonicalized to BCP 47 tags, so es_ES, es-ES and es-es
// refer to the same table.
package dictionary

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/leonelquinteros/gotext"
	"gopkg.in/yaml.v3"

	"github.com/minios-linux/pofill/pofile"
)

// Table is an immutable set of per-locale lookup tables.
type Table struct {
	// entries maps canonical locale → source → translation.
	entries map[string]map[string]string
}

// FromMap builds a Table from an in-memory mapping of locale → source →
// translation. Empty translations are dropped.
func FromMap(m map[string]map[string]string) (*Table, error) {
	t := newTable()
	for locale, pairs := range m {
		if err := t.merge(locale, pairs); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Load builds a Table from the given files. Paths may be glob patterns.
// YAML and TOML files hold several locales; i18next JSON files and gettext
// catalogs (.po, .mo) contribute to the locale named by the file.
// When sources disagree on a key, the one loaded later wins.
func Load(paths ...string) (*Table, error) {
	t := newTable()
	for _, pattern := range paths {
		files, err := expand(pattern)
		if err != nil {
			return nil, err
		}
		for _, path := range files {
			if err := t.loadFile(path); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

func newTable() *Table {
	return &Table{entries: make(map[string]map[string]string)}
}

// expand resolves a glob pattern. A pattern without metacharacters is
// returned as is so that a missing file is reported when it is opened.
func expand(pattern string) ([]string, error) {
	if !strings.ContainsAny(pattern, "*?[") {
		return []string{pattern}, nil
	}
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad dictionary pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

func (t *Table) loadFile(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return t.loadYAML(path)
	case ".toml":
		return t.loadTOML(path)
	case ".json":
		return t.loadI18Next(path)
	case ".po", ".mo":
		return t.loadCatalog(path)
	default:
		return fmt.Errorf("%s: unsupported dictionary type (want .yaml, .yml, .toml, .json, .po or .mo)", path)
	}
}

func (t *Table) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var doc map[string]map[string]string
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return t.mergeDoc(path, doc)
}

// loadTOML reads the TOML form of the YAML layout, one table per locale:
//
//	[es_ES]
//	Save = "Guardar"
func (t *Table) loadTOML(path string) error {
	var doc map[string]map[string]string
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return t.mergeDoc(path, doc)
}

// mergeDoc merges a locale → pairs document read from path.
func (t *Table) mergeDoc(path string, doc map[string]map[string]string) error {
	// Sorted so that a file listing the same locale twice, e.g. es_ES and
	// es-ES, merges deterministically.
	locales := make([]string, 0, len(doc))
	for locale := range doc {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	for _, locale := range locales {
		if err := t.merge(locale, doc[locale]); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// loadCatalog reads the translated singular entries of an existing PO or MO
// file.
func (t *Table) loadCatalog(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var dom *gotext.Domain
	if strings.EqualFold(filepath.Ext(path), ".mo") {
		mo := gotext.NewMo()
		mo.ParseFile(path)
		dom = mo.GetDomain()
	} else {
		po := gotext.NewPo()
		po.ParseFile(path)
		dom = po.GetDomain()
	}

	locale := LocaleFromPath(path)
	if locale == "" {
		locale = dom.Language
	}
	if locale == "" {
		return fmt.Errorf("%s: cannot tell the locale from the file name or Language header", path)
	}

	pairs := make(map[string]string)
	for id, tr := range dom.GetTranslations() {
		if id == "" || tr.PluralID != "" {
			continue
		}
		if s, ok := tr.Trs[0]; ok {
			pairs[id] = s
		}
	}
	return t.merge(locale, pairs)
}

func (t *Table) merge(locale string, pairs map[string]string) error {
	tag, err := CanonicalLocale(locale)
	if err != nil {
		return err
	}
	m := t.entries[tag]
	if m == nil {
		m = make(map[string]string, len(pairs))
		t.entries[tag] = m
	}
	for source, translation := range pairs {
		if source == "" || translation == "" {
			continue
		}
		m[source] = translation
	}
	return nil
}

// Lookup returns the lookup function for locale. The exact locale is tried
// first, then its base language (es-MX falls back to es). An unknown or
// invalid locale yields a function that never finds anything.
func (t *Table) Lookup(locale string) pofile.LookupFunc {
	var chain []map[string]string
	for _, tag := range fallbackChain(locale) {
		if m, ok := t.entries[tag]; ok {
			chain = append(chain, m)
		}
	}

	return func(key string) (string, bool) {
		for _, m := range chain {
			if v, ok := m[key]; ok {
				return v, true
			}
		}
		return "", false
	}
}

// Locales returns the canonical locales that have at least one entry.
func (t *Table) Locales() []string {
	locales := make([]string, 0, len(t.entries))
	for tag, m := range t.entries {
		if len(m) > 0 {
			locales = append(locales, tag)
		}
	}
	sort.Strings(locales)
	return locales
}

// Len returns the number of entries stored for locale, without fallback.
func (t *Table) Len(locale string) int {
	tag, err := CanonicalLocale(locale)
	if err != nil {
		return 0
	}
	return len(t.entries[tag])
}

// Has reports whether Lookup(locale) can find anything at all.
func (t *Table) Has(locale string) bool {
	for _, tag := range fallbackChain(locale) {
		if len(t.entries[tag]) > 0 {
			return true
		}
	}
	return false
}
