// pofill fills empty gettext translations from locale lookup tables.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/minios-linux/pofill/config"
	"github.com/minios-linux/pofill/i18n"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

// useColor is false when stderr is not a terminal.
var useColor = isTerminal(os.Stderr)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func colorize(color, s string) string {
	if !useColor {
		return s
	}
	return color + s + colorReset
}

// ---------------------------------------------------------------------------
// Global flags
// ---------------------------------------------------------------------------

type globalFlags struct {
	rootDir   string
	logLevel  string
	logFormat string
}

var global globalFlags

func (g *globalFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&g.rootDir, "root", ".", "Project root directory")
	fs.StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error (or "+config.EnvLogLevel+")")
	fs.StringVar(&g.logFormat, "log-format", "", "Log format: console, json (or "+config.EnvLogFormat+")")
}

// ---------------------------------------------------------------------------
// Logging
// ---------------------------------------------------------------------------

// setupLogging configures the global zerolog logger. Empty level and format
// fall back to the environment, then to info/console.
func setupLogging(w io.Writer, level, format string) error {
	if level == "" {
		level = config.Getenv(config.EnvLogLevel, "info")
	}
	if format == "" {
		format = config.Getenv(config.EnvLogFormat, "console")
	}
	return configureLogger(w, strings.ToLower(level), format)
}

func configureLogger(w io.Writer, level, format string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return fmt.Errorf("invalid log level %q", level)
	}
	zerolog.SetGlobalLevel(lvl)

	switch strings.ToLower(format) {
	case "json":
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	case "console":
		log.Logger = zerolog.New(consoleWriter(w)).With().Timestamp().Logger()
	default:
		return fmt.Errorf("invalid log format %q (want console or json)", format)
	}
	return nil
}

// consoleWriter returns a zerolog console writer, colored only on terminals.
func consoleWriter(w io.Writer) zerolog.ConsoleWriter {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isTerminal(f)
	}
	return zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: time.TimeOnly}
}

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pofill",
		Short: i18n.T("Fill empty gettext translations from lookup tables"),
		Long: i18n.T(`pofill fills empty msgstr "" slots of gettext catalogs (.po) from
locale-keyed lookup tables (YAML maps or existing .po/.mo catalogs).

Catalogs are rewritten line by line: only empty translation slots change,
everything else (comments, flags, wrapping, line endings) is kept as is.
Running pofill twice is harmless.

Targets come from .pofill.yaml in the project root or are detected under
languages/, po/ and locale/. Dictionaries default to translations/*.yaml.

Commands:
  fill      Fill empty translations
  status    Show catalogs, empty slots and dictionary coverage
  tables    List the locales of the loaded dictionaries`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnv(global.rootDir); err != nil {
				return err
			}
			return setupLogging(os.Stderr, global.logLevel, global.logFormat)
		},
	}

	global.register(root.PersistentFlags())

	root.AddCommand(
		newFillCmd(),
		newStatusCmd(),
		newTablesCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")
	log.Logger = zerolog.New(consoleWriter(os.Stderr)).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		log.Error().Err(err).Msg(i18n.T("pofill failed"))
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("Show version information"),
		Long:  i18n.T("Display version, commit hash, and build date."),
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "pofill version %s\n", version)
			fmt.Fprintf(out, "  commit:    %s\n", commit)
			fmt.Fprintf(out, "  built:     %s\n", date)
			fmt.Fprintf(out, "  language:  %s\n", i18n.Language())
		},
	}
}
