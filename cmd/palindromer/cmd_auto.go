package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/palindromer/auto"
	"github.com/katalvlaran/palindromer/search"
)

// newAutoCmd builds the refinement loop command.
func newAutoCmd(a *app) *cobra.Command {
	var (
		iterations int
		selector   string
		model      string
	)

	cmd := &cobra.Command{
		Use:   "auto [start]",
		Short: "Iteratively grow a palindrome, picking the best line each round",
		Long: `auto runs the search on the start text, keeps the lines whose words are all
in the dictionary, picks one (with a Gemini model, or by score), and feeds it
back as the next input.

The Gemini selector reads its key from GEMINI_API_KEY or auto.api_key.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("iterations") {
				cfg.Auto.Iterations = iterations
			}
			if cmd.Flags().Changed("selector") {
				cfg.Auto.Selector = selector
			}
			if cmd.Flags().Changed("model") {
				cfg.Auto.Model = model
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			start := "|"
			if len(args) == 1 {
				start = args[0]
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if d := cfg.SearchTimeout(); d > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, d)
				defer cancel()
			}

			mode, err := cfg.Mode()
			if err != nil {
				return err
			}
			if mode != search.ModeExhaustive {
				return fmt.Errorf("%w (search.mode %s)", auto.ErrMarkerlessMode, mode)
			}
			lex, err := loadLexicon(a)
			if err != nil {
				return err
			}

			var sel auto.Selector = auto.ScoreSelector{}
			if cfg.Auto.Selector == "genai" {
				if sel, err = auto.NewGenAISelector(ctx, cfg.Auto.APIKey, cfg.Auto.Model, cfg.AutoTimeout(), a.logger); err != nil {
					return err
				}
			}

			engine := &auto.SearchEngine{
				Lexicon:       lex,
				Mode:          mode,
				Reverse:       cfg.Search.Reverse,
				SearchOptions: cfg.SearchOptions(),
				FilterOptions: cfg.FilterOptions(),
			}
			history, err := auto.Iterate(ctx, engine, sel, start, cfg.Auto.Iterations,
				auto.WithDictionary(lex), auto.WithLogger(a.logger))

			out := cmd.OutOrStdout()
			printf(out, "History:\n")
			for i, h := range history {
				printf(out, "  %d: %s\n", i, h)
			}

			return err
		},
	}

	f := cmd.Flags()
	f.IntVar(&iterations, "iterations", 5, "Maximum number of rounds")
	f.StringVar(&selector, "selector", "genai", "How to pick each round's line: genai or score")
	f.StringVar(&model, "model", auto.DefaultModel, "Gemini model for the genai selector")

	return cmd
}
