// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

// Command pipeline builds the data files served by the explorer.
//
// Usage:
//
//	pipeline [-out dir] [-sources cookpad,recetasgratis] <command>
//
// Commands:
//
//	scrape   download recipe pages into the page store
//	clean    parse stored pages into formatted-recipes.json
//	pairs    count co-occurring ingredients into ingredient-pairs.json
//	matrix   build ingredient-recommendation-matrix.json from the pairs
//	tfidf    weight the pairs into ingredient-pairs-tfidf.json
//	export   write maridaje.xlsx from the cleaned recipes
//	all      every step above, in order
//
// Pages already in the page store are not downloaded again, so scrape can be
// interrupted and resumed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/tomtom215/maridaje/internal/catalog"
	"github.com/tomtom215/maridaje/internal/config"
	"github.com/tomtom215/maridaje/internal/logging"
	"github.com/tomtom215/maridaje/internal/models"
	"github.com/tomtom215/maridaje/internal/pipeline"
)

var commands = []string{"scrape", "clean", "pairs", "matrix", "tfidf", "export", "all"}

// errUsage reports a bad command line.
var errUsage = errors.New("usage: pipeline [-out dir] [-sources a,b] <" + strings.Join(commands, "|") + ">")

type options struct {
	command string
	outDir  string
	sources []string
}

func parseArgs(args []string) (options, error) {
	fs := flag.NewFlagSet("pipeline", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	out := fs.String("out", "", "output directory (overrides pipeline.output_dir)")
	sources := fs.String("sources", "", "comma separated sources (overrides pipeline.sources)")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() != 1 {
		return options{}, errUsage
	}

	opts := options{command: fs.Arg(0), outDir: *out}
	known := false
	for _, c := range commands {
		if c == opts.command {
			known = true
			break
		}
	}
	if !known {
		return options{}, fmt.Errorf("unknown command %q: %w", opts.command, errUsage)
	}
	for _, s := range strings.Split(*sources, ",") {
		if s = strings.TrimSpace(s); s != "" {
			opts.sources = append(opts.sources, s)
		}
	}
	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Service:   "maridaje-pipeline",
	})
	if opts.outDir != "" {
		cfg.Pipeline.OutputDir = opts.outDir
	}
	if len(opts.sources) > 0 {
		cfg.Pipeline.Sources = opts.sources
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := logging.WithComponent("pipeline")
	if err := run(ctx, opts.command, cfg.Pipeline, logger); err != nil {
		stop()
		logger.Fatal().Err(err).Str("command", opts.command).Msg("Pipeline failed")
	}
	logger.Info().Str("command", opts.command).Msg("Pipeline finished")
}

func run(ctx context.Context, command string, cfg config.PipelineConfig, logger zerolog.Logger) error {
	sources, err := pipeline.SelectSources(cfg.Sources)
	if err != nil {
		return err
	}
	store, err := pipeline.OpenPageStore(cfg.PageStorePath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("Failed to close page store")
		}
	}()

	fetcher := pipeline.NewFetcher(pipeline.FetcherConfig{
		UserAgent:      cfg.UserAgent,
		RequestsPerSec: cfg.RequestsPerSec,
		Timeout:        cfg.FetchTimeout,
	})
	p, err := pipeline.New(cfg, sources, store, fetcher, logger)
	if err != nil {
		return err
	}

	switch command {
	case "all":
		return p.Run(ctx)
	case "scrape":
		stats, err := p.Scrape(ctx)
		for _, s := range stats {
			logger.Info().
				Str("source", s.Source).
				Int("listed", s.Listed).
				Int("stored", s.Stored).
				Int("skipped", s.Skipped).
				Int("invalid", s.Invalid).
				Int("failed", s.Failed).
				Msg("Scrape summary")
		}
		return err
	case "clean":
		recipes, err := p.Clean(ctx)
		if err != nil {
			return err
		}
		return p.WriteJSON(pipeline.RecipesFile, recipes)
	case "pairs":
		var recipes []models.Recipe
		if err := p.ReadJSON(pipeline.RecipesFile, &recipes); err != nil {
			return err
		}
		return p.WriteJSON(pipeline.PairsFile, pipeline.CountPairs(recipes))
	case "matrix":
		var pairs []models.PairingEntry
		if err := p.ReadJSON(pipeline.PairsFile, &pairs); err != nil {
			return err
		}
		return p.WriteJSON(pipeline.MatrixFile, catalog.BuildMatrix(pairs))
	case "tfidf":
		var pairs []models.PairingEntry
		if err := p.ReadJSON(pipeline.PairsFile, &pairs); err != nil {
			return err
		}
		return p.WriteJSON(pipeline.TFIDFFile, pipeline.TFIDF(pairs))
	case "export":
		var recipes []models.Recipe
		if err := p.ReadJSON(pipeline.RecipesFile, &recipes); err != nil {
			return err
		}
		return p.Export(pipeline.Derive(recipes))
	default:
		return fmt.Errorf("unknown command %q: %w", command, errUsage)
	}
}
