package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/spf13/cobra"

	"github.com/minios-linux/pofill/config"
	"github.com/minios-linux/pofill/dictionary"
	"github.com/minios-linux/pofill/i18n"
	"github.com/minios-linux/pofill/langmeta"
	"github.com/minios-linux/pofill/pofile"
)

// ---------------------------------------------------------------------------
// status (read-only: project info + empty slots + dictionary coverage)
// ---------------------------------------------------------------------------

func newStatusCmd() *cobra.Command {
	var dicts []string

	cmd := &cobra.Command{
		Use:   "status",
		Short: i18n.T("Show catalogs, empty slots and dictionary coverage"),
		Long: i18n.T(`Show the detected project, its catalogs and how many empty translations
the dictionaries could fill. Does not modify any files.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.ErrOrStderr(), dicts)
		},
	}

	cmd.Flags().StringArrayVarP(&dicts, "dict", "d", nil, "Dictionary file or glob (default: project dictionaries)")

	return cmd
}

func runStatus(w io.Writer, dicts []string) error {
	proj, err := config.Detect(global.rootDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s\n", colorize(colorBlue, i18n.T("Project")))
	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintf(w, "  %-14s %s\n", i18n.T("Root:"), proj.Root)
	if proj.Domain != "" {
		fmt.Fprintf(w, "  %-14s %s\n", i18n.T("Domain:"), proj.Domain)
	}
	fmt.Fprintf(w, "  %-14s %s\n", i18n.T("Layout:"), layoutDescription(proj.Layout))
	if proj.ConfigFile != "" {
		fmt.Fprintf(w, "  %-14s %s\n", i18n.T("Config:"), proj.ConfigFile)
	}

	paths := dicts
	if len(paths) == 0 {
		paths = proj.Dictionaries
	}
	var table *dictionary.Table
	if len(paths) == 0 {
		fmt.Fprintf(w, "  %-14s %s\n", i18n.T("Dictionaries:"), i18n.T("none"))
	} else {
		fmt.Fprintf(w, "  %-14s %s\n", i18n.T("Dictionaries:"), strings.Join(paths, ", "))
		if table, err = dictionary.Load(paths...); err != nil {
			return err
		}
	}

	if len(proj.Catalogs) == 0 {
		fmt.Fprintf(w, "\n%s\n\n", i18n.T("No catalogs found"))
		return nil
	}

	fmt.Fprintf(w, "\n%s\n", colorize(colorBlue, i18n.T("Catalogs")))
	fmt.Fprintln(w, strings.Repeat("─", 60))
	for _, row := range statusRows(proj, table) {
		row.print(w, proj.Root)
	}
	fmt.Fprintln(w)

	return nil
}

// catalogStatus is one line of the status table.
type catalogStatus struct {
	catalog    config.Catalog
	entries    int
	translated int
	empty      int
	fillable   int
	hasTable   bool
	err        error
}

func statusRows(proj *config.Project, table *dictionary.Table) []catalogStatus {
	rows := make([]catalogStatus, 0, len(proj.Catalogs))
	for _, c := range proj.Catalogs {
		row := catalogStatus{catalog: c}

		row.entries, row.translated, row.err = catalogStats(c.Path)
		if row.err != nil {
			rows = append(rows, row)
			continue
		}

		lines, err := pofile.ReadLines(c.Path)
		if err != nil {
			row.err = err
			rows = append(rows, row)
			continue
		}
		row.empty = pofile.CountEmpty(lines)
		if table != nil && table.Has(c.Locale) {
			row.hasTable = true
			_, res := pofile.Rewrite(lines, pofile.Scan(lines), table.Lookup(c.Locale))
			row.fillable = res.Filled
		}

		rows = append(rows, row)
	}
	return rows
}

func (s catalogStatus) print(w io.Writer, root string) {
	meta := langmeta.Resolve(s.catalog.Locale)
	name := (&report{root: root}).rel(s.catalog.Path)

	label := s.catalog.Locale
	if meta.Flag != "" {
		label = meta.Flag + " " + label
	}
	fmt.Fprintf(w, "  %-14s %s (%s)\n", label, meta.Name, name)

	if s.err != nil {
		fmt.Fprintf(w, "      %s %v\n", colorize(colorRed, i18n.T("error:")), s.err)
		return
	}

	percent := 0
	if s.entries > 0 {
		percent = s.translated * 100 / s.entries
	}
	fmt.Fprintf(w, "      %s  %s\n", progressBar(percent, 20),
		fmt.Sprintf(i18n.T("%d/%d translated, %d empty"), s.translated, s.entries, s.empty))

	switch {
	case !s.hasTable:
		fmt.Fprintf(w, "      %s\n", colorize(colorYellow, i18n.T("no lookup table for this locale")))
	case s.empty > 0:
		fmt.Fprintf(w, "      "+i18n.N("%d empty entry can be filled", "%d empty entries can be filled", s.fillable)+"\n", s.fillable)
	}
}

// catalogStats counts the non-header entries of a catalog and how many of
// them carry a translation.
func catalogStats(path string) (entries, translated int, err error) {
	if _, err := os.Stat(path); err != nil {
		return 0, 0, err
	}

	po := gotext.NewPo()
	po.ParseFile(path)
	for id, tr := range po.GetDomain().GetTranslations() {
		if id == "" {
			continue
		}
		entries++
		if s, ok := tr.Trs[0]; ok && s != "" {
			translated++
		}
	}
	return entries, translated, nil
}

func layoutDescription(l config.Layout) string {
	switch l {
	case config.LayoutConfig:
		return i18n.T("Configured (.pofill.yaml)")
	case config.LayoutWordPress:
		return i18n.T("WordPress (languages/<domain>-<locale>.po)")
	case config.LayoutFlat:
		return i18n.T("Flat (po/<locale>.po)")
	case config.LayoutNested:
		return i18n.T("Nested (po/<locale>/*.po)")
	}
	return i18n.T("Unknown")
}

// progressBar renders percent as a colored bar of the given width followed
// by the number.
func progressBar(percent, width int) string {
	percent = min(max(percent, 0), 100)
	filled := percent * width / 100

	color := colorRed
	switch {
	case percent == 100:
		color = colorGreen
	case percent >= 50:
		color = colorYellow
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return colorize(color, bar) + fmt.Sprintf(" %3d%%", percent)
}
