// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package catalog

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/maridaje/internal/config"
	"github.com/tomtom215/maridaje/internal/metrics"
	"github.com/tomtom215/maridaje/internal/models"
)

// Load reads every configured table concurrently and indexes them.
// The first failing file cancels the rest.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Load(ctx context.Context, paths config.DataConfig, logger zerolog.Logger) (*Tables, error) {
	logger = logger.With().Str("component", "catalog").Logger()
	start := time.Now()

	var (
		src        Source
		matrixOnly *Matrix
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		data, err := readFile(gctx, paths.PairsPath)
		if err != nil {
			return err
		}
		pairs, m, err := DecodePairingTable(data)
		if err != nil {
			return fmt.Errorf("%s: %w", paths.PairsPath, err)
		}
		src.Pairs = pairs
		if paths.MatrixPath == "" {
			src.Matrix = m
		}
		return nil
	})

	if paths.MatrixPath != "" {
		g.Go(func() error {
			data, err := readFile(gctx, paths.MatrixPath)
			if err != nil {
				return err
			}
			_, m, err := DecodePairingTable(data)
			if err != nil {
				return fmt.Errorf("%s: %w", paths.MatrixPath, err)
			}
			matrixOnly = m
			return nil
		})
	}

	g.Go(func() error {
		return decodeFile(gctx, paths.RecipesPath, &src.Recipes)
	})

	g.Go(func() error {
		return decodeFile(gctx, paths.NutritionIndexPath, &src.NutritionIndex)
	})

	g.Go(func() error {
		var table models.FoodTable
		if err := decodeFile(gctx, paths.NutritionPath, &table); err != nil {
			return err
		}
		src.Foods = table.FoundationFoods
		return nil
	})

	if paths.ClassificationPath != "" {
		g.Go(func() error {
			return decodeFile(gctx, paths.ClassificationPath, &src.Labels)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if matrixOnly != nil {
		src.Matrix = matrixOnly
	}

	tables := New(src)

	elapsed := time.Since(start)
	metrics.CatalogLoadDuration.Observe(elapsed.Seconds())
	metrics.CatalogTableSize.WithLabelValues("pairs").Set(float64(len(tables.Pairs())))
	metrics.CatalogTableSize.WithLabelValues("matrix").Set(float64(tables.Matrix().Len()))
	metrics.CatalogTableSize.WithLabelValues("recipes").Set(float64(len(tables.Recipes())))
	metrics.CatalogTableSize.WithLabelValues("nutrition_index").Set(float64(len(tables.descriptions)))
	metrics.CatalogTableSize.WithLabelValues("foods").Set(float64(len(tables.Foods())))
	metrics.CatalogTableSize.WithLabelValues("labels").Set(float64(len(tables.labels)))

	logger.Info().
		Int("ingredients", len(tables.Ingredients())).
		Int("pairs", len(tables.Pairs())).
		Int("recipes", len(tables.Recipes())).
		Int("foods", len(tables.Foods())).
		Int("labels", len(tables.labels)).
		Dur("elapsed", elapsed).
		Msg("Catalog loaded")

	return tables, nil
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func decodeFile(ctx context.Context, path string, v interface{}) error {
	data, err := readFile(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
