// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

/*
Package pipeline builds the explorer's data files from Argentine recipe sites.

Stages:

  - Scrape: read each source's listing pages, fetch the recipe pages not seen
    before and keep those carrying the recipe marker in a BadgerDB PageStore
  - Clean: parse stored pages with goquery and normalize ingredient lines
    (ASCII folding, quantity and unit removal, configured replacements)
  - Pairs: count co-occurring ingredient pairs per recipe
  - Matrix: symmetric partner matrix from the pairs
  - TF-IDF: pair counts reweighted by ingredient rarity
  - Export: xlsx workbook with pairs, matrix and recipes sheets

Fetching shares one rate limiter across sources, retries 429 and 5xx
responses with exponential backoff (honoring Retry-After) and wraps each
source in its own circuit breaker. Scrape outcomes are counted in the
pipeline_pages_fetched_total metric.

The output files are the ones the explorer server loads:

	formatted-recipes.json                  recipes
	ingredient-pairs.json                   flat pairing table
	ingredient-recommendation-matrix.json   nested matrix
	ingredient-pairs-tfidf.json             weighted pairing table
*/
package pipeline
