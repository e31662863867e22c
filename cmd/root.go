package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/oakwood-commons/tabx/internal/config"
	"github.com/oakwood-commons/tabx/internal/ui"
	"github.com/oakwood-commons/tabx/pkg/loader"
	"github.com/oakwood-commons/tabx/pkg/logger"
	"github.com/oakwood-commons/tabx/pkg/settings"
)

var (
	logLevel       int8
	noColor        bool
	sheet          string
	configFile     string
	snapshotWidth  int
	snapshotHeight int
	renderSnapshot bool
	delimiter      = delimiterValue(',')
)

var rootCtx = context.Background()

// delimiterValue is a pflag.Value for a single-rune field separator, so
// "--delimiter ';'" and "--delimiter $'\t'" both parse and multi-rune input
// fails at flag-parse time.
type delimiterValue rune

func (d *delimiterValue) String() string { return string(rune(*d)) }

func (d *delimiterValue) Set(s string) error {
	switch s {
	case "\\t", "tab":
		*d = '\t'
		return nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	*d = delimiterValue(runes[0])
	return nil
}

func (d *delimiterValue) Type() string { return "char" }

var _ pflag.Value = (*delimiterValue)(nil)

// cliVersionString builds the version string for Cobra's --version flag.
func cliVersionString() string {
	v := settings.VersionInformation
	return fmt.Sprintf("%s %s (commit %s, built %s, go %s)",
		settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime, runtime.Version())
}

var rootCmd = &cobra.Command{
	Use:     "tabx <file>",
	Short:   "tabx - terminal viewer for tabular data",
	Long:    "tabx opens CSV, TSV, and XLSX files in an interactive terminal grid\nwith vi-style navigation, search, and CEL expressions over the selection.",
	Example: "\n  tabx data.csv\n  tabx data.tsv\n  tabx report.xlsx --sheet Inventory\n  tabx data.csv --snapshot --width 100 --height 30\n",
	Args:    cobra.ExactArgs(1),
	Version: cliVersionString(),
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		lgr := logger.Get(logLevel)
		rootCtx = logger.WithLogger(context.Background(), lgr)
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		params := settings.NewCliParams()
		params.MinLogLevel = logLevel
		params.Path = args[0]
		params.Sheet = sheet
		params.Delimiter = rune(delimiter)
		params.NoColor = noColor
		rootCtx = settings.IntoContext(rootCtx, params)
		log := logger.FromContext(rootCtx)

		cfgPath := configFile
		if cfgPath == "" {
			cfgPath = config.DefaultPath()
		}
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}

		fr, err := loader.Load(params.Path, loader.Options{
			Delimiter: params.Delimiter,
			Sheet:     params.Sheet,
		})
		if err != nil {
			return err
		}
		rows, cols := fr.Shape()
		log.V(1).Info("loaded table", "path", params.Path, "rows", rows, "cols", cols)

		m, err := ui.NewModel(fr, cfg, params.NoColor)
		if err != nil {
			return err
		}

		if renderSnapshot {
			sz := resolveSnapshotSize(snapshotWidth, snapshotHeight)
			fmt.Fprintln(cmd.OutOrStdout(), m.Snapshot(sz.Width, sz.Height))
			return nil
		}
		return ui.RunModel(m, snapshotWidth, snapshotHeight)
	},
}

type snapshotSize struct {
	Width  int
	Height int
}

// resolveSnapshotSize fills unset dimensions from the terminal, falling back
// to 80×24 when nothing can be detected.
func resolveSnapshotSize(flagWidth, flagHeight int) snapshotSize {
	width, height := flagWidth, flagHeight
	if width <= 0 || height <= 0 {
		w, h := detectTerminalSize()
		if width <= 0 {
			width = w
		}
		if height <= 0 {
			height = h
		}
	}
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	return snapshotSize{Width: width, Height: height}
}

// detectTerminalSize returns the best-effort terminal width/height by probing
// stdout, stderr, and stdin, then falling back to $COLUMNS.
func detectTerminalSize() (int, int) {
	fds := []uintptr{os.Stdout.Fd(), os.Stderr.Fd(), os.Stdin.Fd()}
	for _, fd := range fds {
		if w, h, err := term.GetSize(int(fd)); err == nil && (w > 0 || h > 0) {
			return w, h
		}
	}
	if col := os.Getenv("COLUMNS"); col != "" {
		if w, err := strconv.Atoi(col); err == nil && w > 0 {
			return w, 0
		}
	}
	return 0, 0
}

func init() { //nolint:gochecknoinits
	rootCmd.Flags().Int8Var(&logLevel, "log-level", 0, "minimum log level (negative is more verbose)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.Flags().Var(&delimiter, "delimiter", "field separator for CSV input (default ','; 'tab' for TSV)")
	rootCmd.Flags().StringVar(&sheet, "sheet", "", "worksheet name for XLSX input (default: first sheet)")
	rootCmd.Flags().StringVar(&configFile, "config-file", "", "path to a YAML config file")
	rootCmd.Flags().IntVar(&snapshotWidth, "width", 0, "window width in columns (default: detect)")
	rootCmd.Flags().IntVar(&snapshotHeight, "height", 0, "window height in rows (default: detect)")
	rootCmd.Flags().BoolVar(&renderSnapshot, "snapshot", false, "render a single frame to stdout and exit; honors --width/--height")
}

func Execute() error {
	return rootCmd.Execute()
}
