// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/maridaje/internal/catalog"
	"github.com/tomtom215/maridaje/internal/config"
	"github.com/tomtom215/maridaje/internal/metrics"
	"github.com/tomtom215/maridaje/internal/models"
)

// Output file names inside the output directory.
const (
	RecipesFile  = "formatted-recipes.json"
	PairsFile    = "ingredient-pairs.json"
	MatrixFile   = "ingredient-recommendation-matrix.json"
	TFIDFFile    = "ingredient-pairs-tfidf.json"
	WorkbookFile = "maridaje.xlsx"
)

// Page fetch outcomes, used as the metrics result label.
const (
	resultStored  = "stored"
	resultSkipped = "skipped"
	resultInvalid = "invalid"
	resultError   = "error"
)

// Pipeline builds the explorer's data files from recipe sites.
type Pipeline struct {
	sources []Source
	store   *PageStore
	fetcher *Fetcher
	cleaner *Cleaner
	outDir  string
	workers int
	logger  zerolog.Logger
	now     func() time.Time
}

// New assembles a pipeline. The store is owned by the caller.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cfg config.PipelineConfig, sources []Source, store *PageStore, fetcher *Fetcher, logger zerolog.Logger) (*Pipeline, error) {
	replacements, err := ParseReplacements(cfg.Replacements)
	if err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{
		sources: sources,
		store:   store,
		fetcher: fetcher,
		cleaner: NewCleaner(replacements),
		outDir:  cfg.OutputDir,
		workers: workers,
		logger:  logger.With().Str("component", "pipeline").Logger(),
		now:     time.Now,
	}, nil
}

// ScrapeStats summarizes one source's scrape.
type ScrapeStats struct {
	Source  string `json:"source"`
	Listed  int    `json:"listed"`
	Skipped int    `json:"skipped"`
	Stored  int    `json:"stored"`
	Invalid int    `json:"invalid"`
	Failed  int    `json:"failed"`
}

// Scrape collects recipe links from every source's listings and stores the
// recipe pages not scraped before. Fetch failures are counted, not fatal;
// only store errors and cancellation abort the run.
func (p *Pipeline) Scrape(ctx context.Context) ([]ScrapeStats, error) {
	all := make([]ScrapeStats, 0, len(p.sources))
	for _, src := range p.sources {
		stats, err := p.scrapeSource(ctx, src)
		if err != nil {
			return all, fmt.Errorf("scrape %s: %w", src.Name, err)
		}
		p.logger.Info().
			Str("source", src.Name).
			Int("listed", stats.Listed).
			Int("stored", stats.Stored).
			Int("skipped", stats.Skipped).
			Int("invalid", stats.Invalid).
			Int("failed", stats.Failed).
			Msg("Source scraped")
		all = append(all, stats)
	}
	return all, nil
}

func (p *Pipeline) scrapeSource(ctx context.Context, src Source) (ScrapeStats, error) {
	stats := ScrapeStats{Source: src.Name}

	links, err := p.collectLinks(ctx, src)
	if err != nil {
		return stats, err
	}
	stats.Listed = len(links)

	var mu sync.Mutex
	count := func(result string) {
		metrics.PipelinePagesFetched.WithLabelValues(src.Name, result).Inc()
		mu.Lock()
		defer mu.Unlock()
		switch result {
		case resultStored:
			stats.Stored++
		case resultSkipped:
			stats.Skipped++
		case resultInvalid:
			stats.Invalid++
		case resultError:
			stats.Failed++
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for _, link := range links {
		g.Go(func() error {
			result, err := p.scrapePage(gctx, src, link)
			if err != nil {
				return err
			}
			count(result)
			return nil
		})
	}
	return stats, g.Wait()
}

// collectLinks reads every listing page and returns the unique recipe URLs
// in listing order. An unreachable listing page is logged and skipped.
func (p *Pipeline) collectLinks(ctx context.Context, src Source) ([]string, error) {
	seen := make(map[string]struct{})
	var links []string

	for _, listing := range src.Listings {
		body, err := p.fetcher.Fetch(ctx, src.Name, listing)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			p.logger.Warn().Err(err).Str("listing", listing).Msg("Listing page unavailable")
			continue
		}
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
		if err != nil {
			p.logger.Warn().Err(err).Str("listing", listing).Msg("Listing page unparseable")
			continue
		}

		found := 0
		doc.Find(src.LinkSelector).Each(func(_ int, a *goquery.Selection) {
			href, ok := a.Attr("href")
			if !ok {
				return
			}
			link, err := src.Resolve(href)
			if err != nil {
				return
			}
			found++
			if _, dup := seen[link]; dup {
				return
			}
			seen[link] = struct{}{}
			links = append(links, link)
		})
		if found == 0 {
			p.logger.Debug().Str("listing", listing).Msg("No recipe links on listing page")
		}
	}
	return links, nil
}

// scrapePage returns the fetch outcome. Only cancellation and store
// failures are returned as errors.
func (p *Pipeline) scrapePage(ctx context.Context, src Source, link string) (string, error) {
	seen, err := p.store.Seen(src.Name, link)
	if err != nil {
		return "", err
	}
	if seen {
		return resultSkipped, nil
	}

	body, err := p.fetcher.Fetch(ctx, src.Name, link)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		p.logger.Warn().Err(err).Str("url", link).Msg("Recipe page fetch failed")
		return resultError, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil || !src.IsRecipe(doc) {
		p.logger.Debug().Str("url", link).Msg("Page is not a recipe")
		return resultInvalid, nil
	}

	page := &Page{
		Source:    src.Name,
		Slug:      src.Slug(link),
		URL:       link,
		HTML:      body,
		FetchedAt: p.now().UTC(),
	}
	if err := p.store.Put(page); err != nil {
		return "", err
	}
	return resultStored, nil
}

// Clean parses every stored page into a recipe record. Sources are read in
// configured order and pages in slug order.
func (p *Pipeline) Clean(ctx context.Context) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	for _, src := range p.sources {
		err := p.store.Pages(ctx, src.Name, func(page *Page) error {
			doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page.HTML))
			if err != nil {
				p.logger.Warn().Err(err).Str("slug", page.Slug).Msg("Stored page unparseable")
				return nil
			}
			recipes = append(recipes, p.ParseRecipe(src, page.Slug, doc))
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("clean %s: %w", src.Name, err)
		}
	}
	p.logger.Info().Int("recipes", len(recipes)).Msg("Recipes cleaned")
	return recipes, nil
}

// ParseRecipe turns one recipe page into a cleaned record.
func (p *Pipeline) ParseRecipe(src Source, slug string, doc *goquery.Document) models.Recipe {
	title, lines := src.Parse(doc)
	ingredients := p.cleaner.Recipe(lines)
	if ingredients == nil {
		ingredients = []string{}
	}
	return models.Recipe{
		Title:       CleanTitle(title),
		URL:         src.RecipeURL(slug),
		Ingredients: ingredients,
	}
}

// Outputs holds everything the pipeline derives from the cleaned recipes.
type Outputs struct {
	Recipes []models.Recipe
	Pairs   []models.PairingEntry
	Matrix  *catalog.Matrix
	TFIDF   []models.PairingEntry
}

// Derive computes the pairing tables from cleaned recipes.
func Derive(recipes []models.Recipe) Outputs {
	pairs := CountPairs(recipes)
	return Outputs{
		Recipes: recipes,
		Pairs:   pairs,
		Matrix:  catalog.BuildMatrix(pairs),
		TFIDF:   TFIDF(pairs),
	}
}

// Path returns name inside the output directory.
func (p *Pipeline) Path(name string) string {
	return filepath.Join(p.outDir, name)
}

// WriteJSON writes v as indented JSON to name in the output directory.
func (p *Pipeline) WriteJSON(name string, v interface{}) error {
	if err := os.MkdirAll(p.outDir, 0o750); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	path := p.Path(name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	p.logger.Info().Str("path", path).Int("bytes", len(data)).Msg("Output written")
	return nil
}

// ReadJSON decodes name from the output directory into v.
func (p *Pipeline) ReadJSON(name string, v interface{}) error {
	path := p.Path(name)
	data, err := os.ReadFile(path) //nolint:gosec // path is built from the configured output directory
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Export writes the xlsx workbook.
func (p *Pipeline) Export(out Outputs) error {
	if err := os.MkdirAll(p.outDir, 0o750); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := p.Path(WorkbookFile)
	if err := WriteWorkbook(path, out.Pairs, out.Matrix, out.Recipes); err != nil {
		return fmt.Errorf("export workbook: %w", err)
	}
	p.logger.Info().Str("path", path).Msg("Workbook exported")
	return nil
}

// WriteAll writes every output file: recipes, pairs, matrix, TF-IDF pairs
// and the workbook.
func (p *Pipeline) WriteAll(out Outputs) error {
	files := []struct {
		name string
		v    interface{}
	}{
		{RecipesFile, out.Recipes},
		{PairsFile, out.Pairs},
		{MatrixFile, out.Matrix},
		{TFIDFFile, out.TFIDF},
	}
	for _, f := range files {
		if err := p.WriteJSON(f.name, f.v); err != nil {
			return err
		}
	}
	return p.Export(out)
}

// Run scrapes, cleans and writes every output.
func (p *Pipeline) Run(ctx context.Context) error {
	if _, err := p.Scrape(ctx); err != nil {
		return err
	}
	recipes, err := p.Clean(ctx)
	if err != nil {
		return err
	}
	return p.WriteAll(Derive(recipes))
}
