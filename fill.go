package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/minios-linux/pofill/config"
	"github.com/minios-linux/pofill/dictionary"
	"github.com/minios-linux/pofill/i18n"
	"github.com/minios-linux/pofill/pofile"
)

type fillArgs struct {
	dicts  []string
	locale string
	langs  []string
	dryRun bool
}

func newFillCmd() *cobra.Command {
	var a fillArgs

	cmd := &cobra.Command{
		Use:   "fill [file...]",
		Short: i18n.T("Fill empty translations from lookup tables"),
		Long: i18n.T(`Fill every empty msgstr "" whose msgid has a translation in the
dictionaries for the catalog's locale.

Without arguments the project's catalogs are filled (.pofill.yaml or
auto-detected). Given files are filled with --locale, or with the locale in
their name (designsetgo-es_ES.po, pt_BR.po).

Entries that are already translated, have no dictionary entry, or whose
translation equals the source text are left alone and counted as skipped.

Examples:
  pofill fill
  pofill fill --dict translations/common.yaml --lang es_ES,fr_FR
  pofill fill --locale es_ES languages/designsetgo-es_ES.po
  pofill fill --dry-run`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFill(cmd.Context(), cmd.ErrOrStderr(), a, args)
		},
	}

	cmd.Flags().StringArrayVarP(&a.dicts, "dict", "d", nil, "Dictionary file or glob (.yaml, .po, .mo); repeatable, later ones win")
	cmd.Flags().StringVar(&a.locale, "locale", "", "Locale of the given files (default: from the file name)")
	cmd.Flags().StringSliceVar(&a.langs, "lang", nil, "Only fill project catalogs of these locales (comma-separated)")
	cmd.Flags().BoolVar(&a.dryRun, "dry-run", false, "Report what would be filled without writing files")

	return cmd
}

func runFill(ctx context.Context, w io.Writer, a fillArgs, files []string) error {
	proj, err := config.Detect(global.rootDir)
	if err != nil {
		return err
	}

	catalogs, err := selectCatalogs(proj, a, files)
	if err != nil {
		return err
	}
	if len(catalogs) == 0 {
		log.Warn().Str("root", proj.Root).Msg(i18n.T("No catalogs found"))
		return nil
	}

	table, err := loadDictionaries(proj, a.dicts)
	if err != nil {
		return err
	}

	rep := newReport(proj.Root)
	for _, c := range catalogs {
		if err := ctx.Err(); err != nil {
			rep.print(w)
			log.Warn().
				Int("done", len(rep.files)).
				Int("total", len(catalogs)).
				Msg(i18n.T("Interrupted"))
			return err
		}
		if !table.Has(c.Locale) {
			log.Warn().
				Str("file", rep.rel(c.Path)).
				Str("locale", c.Locale).
				Msg(i18n.T("No lookup table for locale"))
		}
		res, err := pofile.FillFile(c.Path, table.Lookup(c.Locale), pofile.FillOptions{DryRun: a.dryRun})
		rep.add(c, res, err)
	}

	rep.print(w)
	if a.dryRun {
		log.Info().Msg(i18n.T("Dry run: no files were written"))
	}

	if n := rep.failed(); n > 0 {
		return fmt.Errorf(i18n.N("%d catalog failed", "%d catalogs failed", n), n)
	}
	return nil
}

// selectCatalogs returns the explicitly given files, or the project's
// catalogs narrowed by --lang.
func selectCatalogs(proj *config.Project, a fillArgs, files []string) ([]config.Catalog, error) {
	if len(files) == 0 {
		if len(a.langs) > 0 {
			if err := proj.Filter(a.langs); err != nil {
				return nil, err
			}
		}
		return proj.Catalogs, nil
	}

	if a.locale != "" {
		if _, err := dictionary.CanonicalLocale(a.locale); err != nil {
			return nil, fmt.Errorf("--locale: %w", err)
		}
	}

	catalogs := make([]config.Catalog, 0, len(files))
	for _, f := range files {
		path, err := filepath.Abs(f)
		if err != nil {
			return nil, err
		}
		locale := a.locale
		if locale == "" {
			locale = dictionary.LocaleFromPath(f)
		}
		if locale == "" {
			return nil, fmt.Errorf(i18n.T("cannot tell the locale of %s; use --locale"), f)
		}
		catalogs = append(catalogs, config.Catalog{Path: path, Locale: locale})
	}
	return catalogs, nil
}

// loadDictionaries loads --dict paths, or the project's dictionaries when
// none are given.
func loadDictionaries(proj *config.Project, dicts []string) (*dictionary.Table, error) {
	paths := dicts
	if len(paths) == 0 {
		paths = proj.Dictionaries
	}
	if len(paths) == 0 {
		return nil, errors.New(i18n.T("no dictionaries: use --dict or add translations/*.yaml"))
	}

	table, err := dictionary.Load(paths...)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Strs("dictionaries", paths).
		Strs("locales", table.Locales()).
		Msg(i18n.T("Dictionaries loaded"))
	return table, nil
}
