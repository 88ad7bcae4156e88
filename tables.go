package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minios-linux/pofill/config"
	"github.com/minios-linux/pofill/i18n"
	"github.com/minios-linux/pofill/langmeta"
)

func newTablesCmd() *cobra.Command {
	var dicts []string

	cmd := &cobra.Command{
		Use:   "tables",
		Short: i18n.T("List the locales of the loaded dictionaries"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTables(cmd.OutOrStdout(), dicts)
		},
	}

	cmd.Flags().StringArrayVarP(&dicts, "dict", "d", nil, "Dictionary file or glob (default: project dictionaries)")

	return cmd
}

func runTables(w io.Writer, dicts []string) error {
	proj, err := config.Detect(global.rootDir)
	if err != nil {
		return err
	}

	table, err := loadDictionaries(proj, dicts)
	if err != nil {
		return err
	}

	locales := table.Locales()
	if len(locales) == 0 {
		return errors.New(i18n.T("the dictionaries contain no translations"))
	}

	fmt.Fprintf(w, "%-10s %-8s %s\n", i18n.T("Locale"), i18n.T("Entries"), i18n.T("Language"))
	fmt.Fprintln(w, strings.Repeat("─", 40))
	for _, l := range locales {
		meta := langmeta.Resolve(l)
		fmt.Fprintf(w, "%-10s %-8d %s\n", l, table.Len(l), strings.TrimSpace(meta.Flag+" "+meta.Name))
	}
	return nil
}
