// Command palindromer grows palindromic sentences from a dictionary.
//
//	palindromer -t "WAS |SAW" -d dictionary.txt -o palindromes.txt
//	palindromer -m --seed 42 -t "|"
//	palindromer auto "WAS|SAW" --iterations 5
//	palindromer check palindromes.txt
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/palindromer/config"
	"github.com/katalvlaran/palindromer/search"
)

// app holds flag values and the state built before every command runs.
type app struct {
	// Global flags
	configPath string
	dictionary string
	verbose    bool
	timeout    time.Duration

	// Search flags
	text       string
	outputPath string
	format     string
	montecarlo bool
	reverse    bool
	seed       int64
	workers    int

	cfg    *config.Config
	logger *zap.Logger
}

// newRootCmd builds the command tree. A non-nil a.logger is kept as is.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "palindromer",
		Short: "Generate palindromic text from a dictionary",
		Long: `palindromer grows palindromes outward from a center marker '|'.

The text left of the marker is continued to the right, the text right of it is
continued to the left, and every word on both sides comes from the dictionary.
The default search enumerates every continuation up to a depth limit; -m runs
random trials instead.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		Args: cobra.NoArgs,
		RunE: a.runSearch,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "palindromer.yaml", "YAML configuration file (missing file: defaults)")
	pf.StringVarP(&a.dictionary, "dictionary", "d", "", "Path to load the list of valid words")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	pf.DurationVar(&a.timeout, "timeout", 0, "Stop searching after this long and keep what was found (0: no limit)")

	f := root.Flags()
	f.StringVarP(&a.text, "text", "t", "|", "Palindrome input text with '|' as a center divider")
	f.StringVarP(&a.outputPath, "output", "o", "", "Output path for generated palindromes")
	f.StringVar(&a.format, "format", "", "Output format: text or sqlite")
	f.BoolVarP(&a.montecarlo, "montecarlo", "m", false, "Use random trials instead of the exhaustive search")
	f.BoolVarP(&a.reverse, "reverse", "r", false, "Build the palindrome from the outside in")
	f.Int64Var(&a.seed, "seed", 0, "Random seed for -m (0: time based)")
	f.IntVar(&a.workers, "workers", 0, "Goroutines running random trials")

	root.AddCommand(newAutoCmd(a), newCheckCmd(a))

	return root
}

// setup loads the configuration, applies flags over it and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}
	if changed("dictionary") {
		cfg.Dictionary.Path = a.dictionary
	}
	if changed("output") {
		cfg.Output.Path = a.outputPath
	}
	if changed("format") {
		cfg.Output.Format = a.format
	}
	if changed("montecarlo") && a.montecarlo {
		cfg.Search.Mode = search.ModeGenerative.String()
	}
	if changed("reverse") {
		cfg.Search.Reverse = a.reverse
	}
	if changed("seed") {
		cfg.Search.Seed = a.seed
	}
	if changed("workers") {
		cfg.Search.Workers = a.workers
	}
	if changed("timeout") {
		cfg.Search.Timeout = a.timeout.String()
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger == nil {
		if a.logger, err = buildLogger(cfg.Logging); err != nil {
			return err
		}
	}

	return nil
}

// buildLogger returns a JSON production logger or a console development
// logger at the configured level.
func buildLogger(lc config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("logging level: %w", err)
	}

	var zc zap.Config
	if strings.EqualFold(lc.Format, "json") {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}

// printf writes to the command's standard output.
func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
