package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	cfgpkg "github.com/KaramelBytes/csvreport-cli/internal/config"
	"github.com/KaramelBytes/csvreport-cli/internal/logging"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool
	noColor bool

	// Loaded configuration
	cfg *cfgpkg.Global
	// Diagnostics logger; report output goes to stdout instead.
	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:           "csvreport",
	Short:         "csvreport: descriptive statistics for CSV/TSV/XLSX files",
	Long:          `csvreport reads a tabular file, optionally filters and sorts it by a column, and prints mean, min, max, median, mode and standard deviation for every numeric column, plus the date range of an optional date column.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportedError marks a failure whose diagnostic was already printed as
// part of the report output.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func printError(w io.Writer, err error) {
	var rep reportedError
	if errors.As(err, &rep) {
		return
	}
	errColor := color.New(color.FgRed, color.Bold)
	_, _ = errColor.Fprintln(w, "✗ Error:", err)
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.csvreport/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = cfgpkg.Defaults()
	}
	cfg = c

	if rootCmd.PersistentFlags().Changed("no-color") {
		cfg.NoColor = noColor
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	logger = logging.New(os.Stderr, level, cfg.NoColor)
}

// config returns the loaded configuration or defaults when loading was skipped.
func config() *cfgpkg.Global {
	if cfg == nil {
		return cfgpkg.Defaults()
	}
	return cfg
}
