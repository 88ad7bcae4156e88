// Package config — .pofill.yaml configuration file support.
//
// When a .pofill.yaml file exists in the project root, pofill uses it as the
// sole source of truth for which catalogs to fill and which dictionaries to
// fill them from. No auto-detection is performed in that case.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/minios-linux/pofill/dictionary"
)

// ---------------------------------------------------------------------------
// YAML schema
// ---------------------------------------------------------------------------

// PofillFile is the top-level .pofill.yaml structure.
type PofillFile struct {
	// Domain is the gettext text domain, shown in status output.
	Domain string `yaml:"domain,omitempty"`
	// Dictionaries are lookup table files or globs, relative to the project
	// root. Later entries override earlier ones.
	Dictionaries []string `yaml:"dictionaries,omitempty"`
	// Targets is the list of catalog groups to fill.
	Targets []Target `yaml:"targets"`
}

// Target describes a group of catalogs filled from one locale's table.
type Target struct {
	// Name is a human-readable label shown in status/logs.
	Name string `yaml:"name"`
	// Locale selects the lookup table. When empty, each file's locale is
	// taken from its name (designsetgo-es_ES.po, es_ES.po).
	Locale string `yaml:"locale,omitempty"`
	// Files are catalog paths or globs relative to the project root.
	Files []string `yaml:"files"`
}

// PofillFileName is the default config file name.
const PofillFileName = ".pofill.yaml"

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// LoadPofillFile loads and validates .pofill.yaml from the given directory.
// Returns nil if no .pofill.yaml exists.
func LoadPofillFile(rootDir string) (*PofillFile, error) {
	path := filepath.Join(rootDir, PofillFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var pf PofillFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(pf.Targets) == 0 {
		return nil, fmt.Errorf("%s: no targets defined", path)
	}

	seen := make(map[string]bool)
	for i := range pf.Targets {
		t := &pf.Targets[i]

		if t.Name == "" {
			return nil, fmt.Errorf("%s: target #%d has no name", path, i+1)
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("%s: duplicate target name %q", path, t.Name)
		}
		seen[t.Name] = true

		if len(t.Files) == 0 {
			return nil, fmt.Errorf("%s: target %q requires \"files\"", path, t.Name)
		}
		if t.Locale != "" {
			if _, err := dictionary.CanonicalLocale(t.Locale); err != nil {
				return nil, fmt.Errorf("%s: target %q: %w", path, t.Name, err)
			}
		}
	}

	return &pf, nil
}

// ---------------------------------------------------------------------------
// Resolving targets to catalogs
// ---------------------------------------------------------------------------

// Catalog is one PO file to fill together with its locale.
type Catalog struct {
	// Target is the name of the target the file belongs to.
	Target string
	// Path is the absolute file path.
	Path string
	// Locale is the lookup table locale as written (es_ES, pt-BR, ...).
	Locale string
}

// Resolve expands every target's file patterns relative to projectRoot.
//
// A pattern without glob metacharacters is kept even if the file does not
// exist, so that a missing catalog surfaces as an error when it is filled.
// A glob that matches nothing contributes no files.
func (pf *PofillFile) Resolve(projectRoot string) ([]Catalog, error) {
	absRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, err
	}

	var catalogs []Catalog
	seen := make(map[string]bool)
	for _, t := range pf.Targets {
		for _, pattern := range t.Files {
			paths, err := expandPattern(absRoot, pattern)
			if err != nil {
				return nil, fmt.Errorf("target %q: %w", t.Name, err)
			}
			for _, path := range paths {
				if seen[path] {
					continue
				}
				seen[path] = true

				locale := t.Locale
				if locale == "" {
					locale = dictionary.LocaleFromPath(path)
				}
				if locale == "" {
					return nil, fmt.Errorf("target %q: cannot tell the locale of %s; set \"locale\"", t.Name, path)
				}
				catalogs = append(catalogs, Catalog{Target: t.Name, Path: path, Locale: locale})
			}
		}
	}

	return catalogs, nil
}

// DictionaryPaths returns the dictionary patterns made absolute.
func (pf *PofillFile) DictionaryPaths(projectRoot string) []string {
	absRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		absRoot = projectRoot
	}
	paths := make([]string, 0, len(pf.Dictionaries))
	for _, d := range pf.Dictionaries {
		paths = append(paths, absPath(absRoot, d))
	}
	return paths
}

func expandPattern(absRoot, pattern string) ([]string, error) {
	full := absPath(absRoot, pattern)
	if !strings.ContainsAny(pattern, "*?[") {
		return []string{full}, nil
	}
	matches, err := filepath.Glob(full)
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

func absPath(absRoot, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(absRoot, p)
}
