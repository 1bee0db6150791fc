// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package pipeline

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Source names.
const (
	SourceCookpad       = "cookpad"
	SourceRecetasGratis = "recetasgratis"
	SourceSaborArgento  = "saborargento"
)

// ParseFunc extracts the raw title and ingredient lines from a recipe page.
type ParseFunc func(doc *goquery.Document) (title string, ingredients []string)

// Source describes one recipe site: where its listings are, how to recognize
// a recipe page and how to read one.
type Source struct {
	Name string

	// Listings are the index pages that link to recipes.
	Listings []string

	// LinkSelector matches the recipe anchors on a listing page.
	LinkSelector string

	// Marker must match on a page for it to be kept as a recipe.
	Marker string

	// RecipePath is the path prefix shared by recipe URLs, stripped to
	// form the slug.
	RecipePath string

	Base  *url.URL
	Parse ParseFunc
}

// Resolve turns a listing href into an absolute recipe URL.
func (s Source) Resolve(href string) (string, error) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", fmt.Errorf("parse link %q: %w", href, err)
	}
	return s.Base.ResolveReference(ref).String(), nil
}

// Slug returns the recipe identifier of pageURL within the source.
func (s Source) Slug(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return strings.Trim(strings.TrimPrefix(u.Path, s.RecipePath), "/")
}

// RecipeURL rebuilds the canonical recipe URL from a slug.
func (s Source) RecipeURL(slug string) string {
	return strings.TrimSuffix(s.Base.String(), "/") + s.RecipePath + slug
}

// IsRecipe reports whether the page carries the source's recipe marker.
func (s Source) IsRecipe(doc *goquery.Document) bool {
	return doc.Find(s.Marker).Length() > 0
}

// DefaultSources returns the three recipe sites in scrape order.
func DefaultSources() []Source {
	return []Source{
		NewCookpad("https://cookpad.com"),
		NewRecetasGratis("https://www.recetasgratis.net"),
		NewSaborArgento("https://saborargento.com.ar"),
	}
}

// SelectSources filters DefaultSources by name, keeping the given order.
func SelectSources(names []string) ([]Source, error) {
	all := make(map[string]Source)
	for _, s := range DefaultSources() {
		all[s.Name] = s
	}
	out := make([]Source, 0, len(names))
	for _, n := range names {
		s, ok := all[n]
		if !ok {
			return nil, fmt.Errorf("unknown source %q", n)
		}
		out = append(out, s)
	}
	return out, nil
}

func mustBase(base string) *url.URL {
	u, err := url.Parse(base)
	if err != nil {
		panic(fmt.Sprintf("pipeline: bad base URL %q: %v", base, err))
	}
	return u
}

// NewCookpad describes cookpad's Argentine recipe search rooted at base.
func NewCookpad(base string) Source {
	b := strings.TrimSuffix(base, "/")
	listings := make([]string, 0, 13)
	for page := 0; page <= 12; page++ {
		listings = append(listings, fmt.Sprintf("%s/ar/buscar/argentina?page=%d", b, page))
	}
	return Source{
		Name:         SourceCookpad,
		Listings:     listings,
		LinkSelector: "a.block-link__main",
		Marker:       "div.text-cookpad-gray-500",
		RecipePath:   "/ar/recetas/",
		Base:         mustBase(b),
		Parse:        parseCookpad,
	}
}

// NewRecetasGratis describes recetasgratis.net's Argentine category.
func NewRecetasGratis(base string) Source {
	b := strings.TrimSuffix(base, "/")
	listings := []string{b + "/recetas-argentinas"}
	for page := 1; page <= 6; page++ {
		listings = append(listings, fmt.Sprintf("%s/recetas-argentinas/%d", b, page))
	}
	return Source{
		Name:         SourceRecetasGratis,
		Listings:     listings,
		LinkSelector: "a.titulo.titulo--resultado",
		Marker:       "h1.titulo.titulo--articulo",
		RecipePath:   "/",
		Base:         mustBase(b),
		Parse:        parseRecetasGratis,
	}
}

// NewSaborArgento describes saborargento.com.ar, whose home page lists its
// recipes.
func NewSaborArgento(base string) Source {
	b := strings.TrimSuffix(base, "/")
	return Source{
		Name:         SourceSaborArgento,
		Listings:     []string{b + "/"},
		LinkSelector: "a.post-item.post-grid-item.vertical",
		Marker:       "h1",
		RecipePath:   "/",
		Base:         mustBase(b),
		Parse:        parseSaborArgento,
	}
}

// cookpad puts the quantity in a child element; the name is the direct text.
func parseCookpad(doc *goquery.Document) (string, []string) {
	title := doc.Find("h1[itemprop=name]").First().Text()

	var lines []string
	doc.Find("div[itemprop=recipeIngredient]").Each(func(_ int, s *goquery.Selection) {
		var direct strings.Builder
		s.Contents().Each(func(_ int, c *goquery.Selection) {
			if goquery.NodeName(c) == "#text" {
				direct.WriteString(c.Text())
			}
		})
		line := strings.TrimSpace(direct.String())
		if line == "" {
			line = strings.TrimSpace(s.Text())
		}
		if line != "" {
			lines = append(lines, line)
		}
	})
	return title, lines
}

func parseRecetasGratis(doc *goquery.Document) (string, []string) {
	title := doc.Find("h1.titulo.titulo--articulo").First().Text()

	var lines []string
	doc.Find("li.ingrediente").Not(".titulo").Each(func(_ int, s *goquery.Selection) {
		label := s.Find("label").First()
		if label.Length() == 0 {
			return
		}
		if line := firstLine(label.Text()); line != "" {
			lines = append(lines, line)
		}
	})
	return title, lines
}

// saborargento lists ingredients in the ul blocks between the ingredients
// heading and the preparation heading.
func parseSaborArgento(doc *goquery.Document) (string, []string) {
	title := doc.Find("h1").First().Text()

	start := doc.Find("h3").FilterFunction(func(_ int, s *goquery.Selection) bool {
		id, _ := s.Attr("id")
		return strings.Contains(id, "ingredientes")
	}).First()
	if start.Length() == 0 {
		return title, nil
	}

	var lines []string
	start.NextAll().EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if goquery.NodeName(s) == "h3" {
			if id, _ := s.Attr("id"); strings.Contains(id, "como-hacer") {
				return false
			}
		}
		if goquery.NodeName(s) == "ul" {
			s.Find("li").Each(func(_ int, li *goquery.Selection) {
				if line := strings.TrimSpace(li.Text()); line != "" {
					lines = append(lines, line)
				}
			})
		}
		return true
	})
	return title, lines
}

func firstLine(s string) string {
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
