// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package pipeline

import (
	"reflect"
	"testing"
)

func TestFoldASCII(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"Azúcar", "azucar"},
		{"Ñandú", "nandu"},
		{"½ taza de leche", "1/2 taza de leche"},
		{"Limón 🍋", "limon "},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := FoldASCII(tt.in); got != tt.want {
			t.Errorf("FoldASCII(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleaner_Ingredients(t *testing.T) {
	t.Parallel()
	c := NewCleaner([]Replacement{{From: "a gusto", To: ""}, {From: "c/n", To: ""}})

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"quantity", "2 cebollas", []string{"cebollas"}},
		{"unit with dot and de", "500 gr. de carne picada", []string{"carne picada"}},
		{"glued unit", "200g harina", []string{"harina"}},
		{"parenthesized and alternative", "1 cebolla (grande) o 2 chicas", []string{"cebolla"}},
		{"slash alternative", "manteca / margarina", []string{"manteca"}},
		{"replacement", "Sal y pimienta a gusto", []string{"sal y pimienta"}},
		{"comma list", "Aceite, sal", []string{"aceite", "sal"}},
		{"trailing comma", "3 huevos,", []string{"huevos"}},
		{"leading de", "de leche", []string{"leche"}},
		{"accents", "1 Limón", []string{"limon"}},
		{"junk only", "y", nil},
		{"empty after replacement", "c/n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Ingredients(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Ingredients(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCleaner_RecipeDedupes(t *testing.T) {
	t.Parallel()
	c := NewCleaner(nil)
	got := c.Recipe([]string{"2 huevos", "Huevos", "sal, pimienta", "sal"})
	want := []string{"huevos", "sal", "pimienta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recipe() = %q, want %q", got, want)
	}
}

func TestParseReplacements(t *testing.T) {
	t.Parallel()
	got, err := ParseReplacements([]string{"cantidad necesaria->", "ajies->aji"})
	if err != nil {
		t.Fatalf("ParseReplacements() error = %v", err)
	}
	want := []Replacement{{From: "cantidad necesaria", To: ""}, {From: "ajies", To: "aji"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseReplacements() = %+v, want %+v", got, want)
	}

	for _, bad := range []string{"no arrow", "->to"} {
		if _, err := ParseReplacements([]string{bad}); err == nil {
			t.Errorf("ParseReplacements(%q) error = nil, want error", bad)
		}
	}
}

func TestCleanTitle(t *testing.T) {
	t.Parallel()
	if got := CleanTitle("  Empanadas salteñas \n"); got != "Empanadas salteas" {
		t.Errorf("CleanTitle() = %q, want %q", got, "Empanadas salteas")
	}
}
