// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package pipeline

import (
	"math"

	"github.com/tomtom215/maridaje/internal/models"
)

// CountPairs counts every unordered ingredient pair inside each recipe.
// Pairs are stored alphabetically (ing1 < ing2) and returned in the order
// they were first met. A repeated ingredient never pairs with itself.
func CountPairs(recipes []models.Recipe) []models.PairingEntry {
	index := make(map[[2]string]int)
	out := []models.PairingEntry{}

	for _, r := range recipes {
		ings := r.Ingredients
		for i := 0; i < len(ings); i++ {
			for j := i + 1; j < len(ings); j++ {
				a, b := ings[i], ings[j]
				if a == b {
					continue
				}
				if b < a {
					a, b = b, a
				}
				key := [2]string{a, b}
				if k, ok := index[key]; ok {
					out[k].Count++
					continue
				}
				index[key] = len(out)
				out = append(out, models.PairingEntry{Ing1: a, Ing2: b, Count: 1})
			}
		}
	}
	return out
}

// TFIDF reweights pair counts so ubiquitous ingredients weigh less. Each
// pair is a document: df(i) is the number of pairs naming i, N the number
// of pairs, idf(i) = ln(N/df(i)) and the new count is
// count*idf(ing1) + count*idf(ing2). The input is not modified.
func TFIDF(pairs []models.PairingEntry) []models.PairingEntry {
	df := make(map[string]int)
	for _, p := range pairs {
		df[p.Ing1]++
		df[p.Ing2]++
	}

	n := float64(len(pairs))
	idf := make(map[string]float64, len(df))
	for ing, d := range df {
		idf[ing] = math.Log(n / float64(d))
	}

	out := make([]models.PairingEntry, len(pairs))
	for i, p := range pairs {
		out[i] = models.PairingEntry{
			Ing1:  p.Ing1,
			Ing2:  p.Ing2,
			Count: p.Count*idf[p.Ing1] + p.Count*idf[p.Ing2],
		}
	}
	return out
}
