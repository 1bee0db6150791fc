// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package models

import "testing"

func TestRecipeHostname(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{"https://cookpad.com/ar/recetas/123-locro", "cookpad.com"},
		{"https://www.recetasgratis.net/receta-de-empanadas", "www.recetasgratis.net"},
		{"", ""},
		{"://bad", ""},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()
			r := Recipe{URL: tt.url}
			if got := r.Hostname(); got != tt.want {
				t.Errorf("Hostname() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecipeHasAll(t *testing.T) {
	t.Parallel()

	r := Recipe{Title: "A", Ingredients: []string{"carne", "ajo", "cebolla"}}
	tests := []struct {
		name     string
		required []string
		want     bool
	}{
		{"empty set", nil, true},
		{"single", []string{"ajo"}, true},
		{"order independent", []string{"cebolla", "carne"}, true},
		{"missing one", []string{"carne", "limon"}, false},
		{"exact match only", []string{"aj"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := r.HasAll(tt.required); got != tt.want {
				t.Errorf("HasAll(%v) = %v, want %v", tt.required, got, tt.want)
			}
		})
	}
}
