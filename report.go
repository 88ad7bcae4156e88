package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/minios-linux/pofill/config"
	"github.com/minios-linux/pofill/i18n"
	"github.com/minios-linux/pofill/pofile"
)

// fileReport is the outcome of filling one catalog.
type fileReport struct {
	catalog config.Catalog
	result  pofile.Result
	err     error
}

// report collects per-file outcomes of a fill run.
type report struct {
	root  string
	files []fileReport
}

func newReport(root string) *report {
	return &report{root: root}
}

// add records the outcome for c and logs it.
func (r *report) add(c config.Catalog, res pofile.Result, err error) {
	r.files = append(r.files, fileReport{catalog: c, result: res, err: err})

	if err != nil {
		log.Error().
			Err(err).
			Str("file", r.rel(c.Path)).
			Str("locale", c.Locale).
			Msg(i18n.T("Failed to process catalog"))
		return
	}

	log.Info().
		Str("file", r.rel(c.Path)).
		Str("locale", c.Locale).
		Int("filled", res.Filled).
		Int("skipped", res.Skipped).
		Msg(i18n.T("Catalog processed"))
}

// total sums the results of the catalogs that were processed.
func (r *report) total() pofile.Result {
	var sum pofile.Result
	for _, f := range r.files {
		if f.err == nil {
			sum.Add(f.result)
		}
	}
	return sum
}

func (r *report) failed() int {
	n := 0
	for _, f := range r.files {
		if f.err != nil {
			n++
		}
	}
	return n
}

// print writes the per-file lines and the grand total.
func (r *report) print(w io.Writer) {
	for _, f := range r.files {
		name := r.rel(f.catalog.Path)
		if f.err != nil {
			fmt.Fprintf(w, "  %s %s: %s\n", colorize(colorRed, "✗"), name, i18n.T("failed"))
			continue
		}
		mark := colorize(colorGreen, "✓")
		if f.result.Filled == 0 {
			mark = colorize(colorYellow, "-")
		}
		fmt.Fprintf(w, "  %s %s: "+i18n.T("filled %d, skipped %d")+"\n", mark, name, f.result.Filled, f.result.Skipped)
	}

	sum := r.total()
	processed := len(r.files) - r.failed()
	fmt.Fprintf(w, i18n.N("Total: filled %d, skipped %d in %d catalog", "Total: filled %d, skipped %d in %d catalogs", processed)+"\n",
		sum.Filled, sum.Skipped, processed)
	if n := r.failed(); n > 0 {
		fmt.Fprintf(w, colorize(colorRed, i18n.N("%d catalog failed", "%d catalogs failed", n))+"\n", n)
	}
}

// rel shortens path relative to the project root for display.
func (r *report) rel(path string) string {
	if r.root == "" {
		return path
	}
	if rel, err := filepath.Rel(r.root, path); err == nil && !filepath.IsAbs(rel) && rel != "." && len(rel) < len(path) {
		return rel
	}
	return path
}
