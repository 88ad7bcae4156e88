// Package config implements discovery of the catalogs and dictionaries of a
// project, either from .pofill.yaml or by looking at the usual gettext
// directory layouts.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/minios-linux/pofill/dictionary"
)

// Layout indicates how the project's catalogs were found.
type Layout string

const (
	// LayoutConfig: targets declared in .pofill.yaml
	LayoutConfig Layout = "config"
	// LayoutWordPress: languages/<domain>-<locale>.po
	LayoutWordPress Layout = "wordpress"
	// LayoutFlat: po/<locale>.po
	LayoutFlat Layout = "flat"
	// LayoutNested: po/<locale>/*.po
	LayoutNested Layout = "nested"
	// LayoutUnknown: nothing found
	LayoutUnknown Layout = "unknown"
)

// catalogDirs are searched in order when there is no .pofill.yaml.
var catalogDirs = []string{"languages", "po", "locale"}

// dictionaryGlobs are used when there is no .pofill.yaml.
var dictionaryGlobs = []string{
	filepath.Join("translations", "*.yaml"),
	filepath.Join("translations", "*.yml"),
}

// Project holds the resolved set of catalogs to work on.
type Project struct {
	// Root is the absolute project root.
	Root string
	// Domain is the gettext text domain, if known.
	Domain string
	// Layout tells where the catalogs came from.
	Layout Layout
	// ConfigFile is the path of .pofill.yaml, empty when auto-detected.
	ConfigFile string
	// Dictionaries are absolute dictionary paths or globs.
	Dictionaries []string
	// Catalogs are the files to fill, in processing order.
	Catalogs []Catalog
}

// Detect resolves the project rooted at rootDir. A .pofill.yaml file takes
// precedence over auto-detection.
func Detect(rootDir string) (*Project, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, err
	}

	pf, err := LoadPofillFile(absRoot)
	if err != nil {
		return nil, err
	}
	if pf != nil {
		catalogs, err := pf.Resolve(absRoot)
		if err != nil {
			return nil, err
		}
		return &Project{
			Root:         absRoot,
			Domain:       pf.Domain,
			Layout:       LayoutConfig,
			ConfigFile:   filepath.Join(absRoot, PofillFileName),
			Dictionaries: pf.DictionaryPaths(absRoot),
			Catalogs:     catalogs,
		}, nil
	}

	p := &Project{Root: absRoot, Layout: LayoutUnknown}
	for _, dir := range catalogDirs {
		full := filepath.Join(absRoot, dir)
		if info, err := os.Stat(full); err != nil || !info.IsDir() {
			continue
		}
		if catalogs, layout := detectCatalogs(full); len(catalogs) > 0 {
			p.Catalogs = catalogs
			p.Layout = layout
			p.Domain = detectDomain(full, catalogs)
			break
		}
	}

	for _, g := range dictionaryGlobs {
		if matches, _ := filepath.Glob(filepath.Join(absRoot, g)); len(matches) > 0 {
			p.Dictionaries = append(p.Dictionaries, filepath.Join(absRoot, g))
		}
	}

	return p, nil
}

// detectCatalogs finds PO files in dir, flat first, then one level of
// locale subdirectories.
func detectCatalogs(dir string) ([]Catalog, Layout) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, LayoutUnknown
	}

	var flat []Catalog
	wordpress := false
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".po") {
			continue
		}
		locale := dictionary.LocaleFromPath(name)
		if locale == "" {
			continue
		}
		if strings.TrimSuffix(name, ".po") != locale {
			wordpress = true
		}
		flat = append(flat, Catalog{Path: filepath.Join(dir, name), Locale: locale})
	}
	if len(flat) > 0 {
		layout := LayoutFlat
		if wordpress {
			layout = LayoutWordPress
		}
		return named(flat, filepath.Base(dir)), layout
	}

	var nested []Catalog
	for _, entry := range entries {
		locale := entry.Name()
		if !entry.IsDir() || dictionary.LocaleFromPath(locale) != locale {
			continue
		}
		langDir := filepath.Join(dir, locale)
		files, err := os.ReadDir(langDir)
		if err != nil {
			continue
		}
		for _, f := range files {
			if !f.IsDir() && strings.HasSuffix(f.Name(), ".po") {
				nested = append(nested, Catalog{Path: filepath.Join(langDir, f.Name()), Locale: locale})
			}
		}
	}
	if len(nested) > 0 {
		return named(nested, filepath.Base(dir)), LayoutNested
	}
	return nil, LayoutUnknown
}

func named(catalogs []Catalog, target string) []Catalog {
	sort.Slice(catalogs, func(i, j int) bool { return catalogs[i].Path < catalogs[j].Path })
	for i := range catalogs {
		catalogs[i].Target = target
	}
	return catalogs
}

// detectDomain guesses the text domain from a .pot template in dir or from
// the prefix of WordPress-style catalog names.
func detectDomain(dir string, catalogs []Catalog) string {
	if matches, _ := filepath.Glob(filepath.Join(dir, "*.pot")); len(matches) > 0 {
		sort.Strings(matches)
		return strings.TrimSuffix(filepath.Base(matches[0]), ".pot")
	}
	for _, c := range catalogs {
		base := strings.TrimSuffix(filepath.Base(c.Path), ".po")
		if prefix, ok := strings.CutSuffix(base, "-"+c.Locale); ok && prefix != "" {
			return prefix
		}
	}
	return ""
}

// Locales returns the distinct locales of the project's catalogs.
func (p *Project) Locales() []string {
	seen := make(map[string]bool)
	var locales []string
	for _, c := range p.Catalogs {
		if !seen[c.Locale] {
			seen[c.Locale] = true
			locales = append(locales, c.Locale)
		}
	}
	sort.Strings(locales)
	return locales
}

// Filter keeps only catalogs whose locale is one of locales. Locales are
// compared in canonical form.
func (p *Project) Filter(locales []string) error {
	want := make(map[string]bool, len(locales))
	for _, l := range locales {
		tag, err := dictionary.CanonicalLocale(l)
		if err != nil {
			return fmt.Errorf("--lang: %w", err)
		}
		want[tag] = true
	}

	kept := p.Catalogs[:0]
	for _, c := range p.Catalogs {
		if tag, err := dictionary.CanonicalLocale(c.Locale); err == nil && want[tag] {
			kept = append(kept, c)
		}
	}
	p.Catalogs = kept
	return nil
}
