package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/palindromer/filter"
	"github.com/katalvlaran/palindromer/lexicon"
	"github.com/katalvlaran/palindromer/output"
	"github.com/katalvlaran/palindromer/search"
)

// runSearch is the default command: one search, filtered and written out.
func (a *app) runSearch(cmd *cobra.Command, _ []string) error {
	cfg, log := a.cfg, a.logger

	// 1. Input
	startFor, startBac, err := filter.SplitInput(a.text, cfg.Search.Reverse)
	if err != nil {
		return err
	}

	// 2. Dictionary
	lex, err := loadLexicon(a)
	if err != nil {
		return err
	}

	// 3. Search
	mode, err := cfg.Mode()
	if err != nil {
		return err
	}
	seed := cfg.Search.Seed
	if mode == search.ModeGenerative && seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	searchCtx := ctx
	if d := cfg.SearchTimeout(); d > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	log.Info("generating",
		zap.String("input", a.text),
		zap.Stringer("mode", mode),
		zap.Bool("reverse", cfg.Search.Reverse),
		zap.Int64("seed", seed))
	opts := append(cfg.SearchOptions(),
		search.WithSeed(seed),
		search.WithContext(searchCtx),
		search.WithLogger(log))
	res, err := search.Run(lex.Forward, lex.Backward, startFor, startBac, mode, opts...)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		log.Warn("search stopped by timeout, keeping partial results", zap.Int("found", res.Candidates.Len()))
	case err != nil:
		return err
	}
	if !res.Seeded {
		log.Warn("input fragments do not continue any dictionary word",
			zap.String("forward", startFor), zap.String("backward", startBac))
	}
	if res.Truncated {
		log.Warn("result cap reached", zap.Int("max_results", cfg.Search.MaxResults))
	}

	// 4. Filter
	kept, err := filter.Select(res.Candidates.Sorted(), startFor, startBac, cfg.Search.Reverse, cfg.FilterOptions()...)
	if err != nil {
		return err
	}
	lines := filter.Lines(kept)

	// 5. Save
	w, err := output.Open(cfg.Output.Path, cfg.Output.Format)
	if err != nil {
		return err
	}
	run := output.Run{
		Input:   a.text,
		Mode:    mode.String(),
		Reverse: cfg.Search.Reverse,
		Created: time.Now(),
	}
	if mode == search.ModeGenerative {
		run.Seed = seed
	}
	if err := w.Write(ctx, run, lines); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	printf(cmd.OutOrStdout(), "Found %d continuations, kept %d, saved to %s\n",
		res.Candidates.Len(), len(lines), cfg.Output.Path)

	return nil
}

// loadLexicon reads the configured dictionary.
func loadLexicon(a *app) (*lexicon.Lexicon, error) {
	opts := append(a.cfg.LexiconOptions(), lexicon.WithLogger(a.logger))
	return lexicon.LoadFile(a.cfg.Dictionary.Path, opts...)
}
