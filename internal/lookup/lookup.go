// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

// Package lookup resolves nutrition records and sweet/savory labels for
// ingredient names.
package lookup

import (
	"strings"

	"github.com/tomtom215/maridaje/internal/catalog"
	"github.com/tomtom215/maridaje/internal/metrics"
	"github.com/tomtom215/maridaje/internal/models"
)

// Category labels and their display colors.
const (
	LabelSavory  = "Salado"
	LabelSweet   = "Dulce"
	LabelNeutral = "Indistinto"

	ColorSavory  = "#1f77b4"
	ColorSweet   = "#d32f2f"
	ColorNeutral = "#008107"
	ColorDefault = ColorSavory
)

// Service answers lookups against the catalog tables.
type Service struct {
	tables    *catalog.Tables
	nutrients []models.NutrientName
}

// New creates a lookup service. The nutrient name list is computed once.
func New(tables *catalog.Tables) *Service {
	return &Service{
		tables:    tables,
		nutrients: collectNutrientNames(tables.Foods()),
	}
}

// Nutrition returns the first food record whose description contains the
// ingredient's canonical USDA description. When nothing matches, it retries
// with the part of the description before the first comma.
func (s *Service) Nutrition(ingredient string) (*models.FoodRecord, bool) {
	description, ok := s.tables.Description(ingredient)
	if !ok {
		metrics.LookupsTotal.WithLabelValues("nutrition", "miss").Inc()
		return nil, false
	}

	if food := s.findContaining(description); food != nil {
		metrics.LookupsTotal.WithLabelValues("nutrition", "exact").Inc()
		return food, true
	}

	head, _, _ := strings.Cut(description, ",")
	if food := s.findContaining(head); food != nil {
		metrics.LookupsTotal.WithLabelValues("nutrition", "fallback").Inc()
		return food, true
	}

	metrics.LookupsTotal.WithLabelValues("nutrition", "miss").Inc()
	return nil, false
}

func (s *Service) findContaining(fragment string) *models.FoodRecord {
	foods := s.tables.Foods()
	for i := range foods {
		if strings.Contains(foods[i].Description, fragment) {
			return &foods[i]
		}
	}
	return nil
}

// AllNutrientNames returns every distinct nutrient (by name) across the
// foods table in first-appearance order.
func (s *Service) AllNutrientNames() []models.NutrientName {
	return s.nutrients
}

func collectNutrientNames(foods []models.FoodRecord) []models.NutrientName {
	out := make([]models.NutrientName, 0)
	seen := make(map[string]struct{})
	for i := range foods {
		for _, fn := range foods[i].FoodNutrients {
			if _, ok := seen[fn.Nutrient.Name]; ok {
				continue
			}
			seen[fn.Nutrient.Name] = struct{}{}
			out = append(out, models.NutrientName{Name: fn.Nutrient.Name, Unit: fn.Nutrient.UnitName})
		}
	}
	return out
}

// Classify returns the category label and display color of an ingredient.
func (s *Service) Classify(ingredient string) (models.Classification, bool) {
	label, ok := s.tables.Label(ingredient)
	if !ok {
		metrics.LookupsTotal.WithLabelValues("classification", "miss").Inc()
		return models.Classification{}, false
	}
	metrics.LookupsTotal.WithLabelValues("classification", "hit").Inc()
	return models.Classification{
		Ingredient: ingredient,
		Label:      label,
		Color:      ColorFor(label),
	}, true
}

// Color returns the display color of an ingredient, or "" when it has no label.
func (s *Service) Color(ingredient string) string {
	label, ok := s.tables.Label(ingredient)
	if !ok {
		return ""
	}
	return ColorFor(label)
}

// ColorFor maps a category label to its color. Unknown labels get the
// savory color.
func ColorFor(label string) string {
	switch label {
	case LabelSavory:
		return ColorSavory
	case LabelSweet:
		return ColorSweet
	case LabelNeutral:
		return ColorNeutral
	default:
		return ColorDefault
	}
}
