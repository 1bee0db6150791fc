// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package pipeline

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// unitWords are quantity units and filler words that precede an ingredient
// name in recipe listings.
var unitWords = []string{
	"unidades", "unidad", "lonchas", "loncha", "onzas", "piezas", "onza", "pieza",
	"gramos", "vasos", "vaso", "mililitros", "kilogramos", "kilogramo", "s", "g",
	"g.", "gr", "gr.", "cc", "cucharadas", "cucharadita", "cucharada", "taza",
	"tazas", "ml", "kg", "kgr", "litro", "porciones", "de", "cc.", "cda", "cdas",
	"cdas.", "cdita", "cdtas..",
}

// trailingSuffixes are checked in order, each stripped at most once.
var trailingSuffixes = []string{" s ", " s, ", ", ", " s", " s,", " s, en", ",", ",  "}

// junkTokens are fragments left over by the transformation that are not
// ingredients on their own.
var junkTokens = map[string]struct{}{
	"y": {}, "de": {}, ",": {}, "s": {}, "en s": {}, "en rusa": {}, "en": {},
	"des": {}, "bon": {}, "ados": {}, "ado": {}, "adas": {}, "aceit": {},
	"gr": {}, "cc": {}, "cdas": {},
}

var (
	parenthesized = regexp.MustCompile(`\([^)]*\)`)
	digits        = regexp.MustCompile(`\d+`)
	leadingQty    = regexp.MustCompile(`^\d+\s*(?:(?:` + unitAlternation() + `)(?:\s+|$))?\s*`)
	nonASCIIRun   = regexp.MustCompile(`[^\x00-\x7F]+`)
)

// unitAlternation quotes the unit words longest first so "gr." wins over "g".
func unitAlternation() string {
	words := make([]string, len(unitWords))
	copy(words, unitWords)
	sort.SliceStable(words, func(i, j int) bool { return len(words[i]) > len(words[j]) })
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

// Replacement rewrites From to To inside ingredient text.
type Replacement struct {
	From string
	To   string
}

// ParseReplacements parses "from->to" rules.
func ParseReplacements(rules []string) ([]Replacement, error) {
	out := make([]Replacement, 0, len(rules))
	for _, rule := range rules {
		from, to, ok := strings.Cut(rule, "->")
		if !ok || from == "" {
			return nil, fmt.Errorf("invalid replacement %q: want from->to", rule)
		}
		out = append(out, Replacement{From: from, To: to})
	}
	return out, nil
}

// Cleaner turns raw ingredient lines into normalized ingredient names.
type Cleaner struct {
	replacements []Replacement
}

// NewCleaner creates a cleaner applying replacements in order.
func NewCleaner(replacements []Replacement) *Cleaner {
	return &Cleaner{replacements: replacements}
}

// FoldASCII lowercases s and transliterates it to ASCII: accents are
// dropped, the fraction slash becomes "/" and other non-ASCII runes go.
func FoldASCII(s string) string {
	t := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(func(r rune) rune {
			if r == '\u2044' {
				return '/'
			}
			return r
		}),
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return ""
	}
	return strings.ToLower(folded)
}

// Transform applies the text rewriting steps to one folded ingredient line
// and returns the comma separated remainder.
func (c *Cleaner) Transform(text string) string {
	text = parenthesized.ReplaceAllString(text, "")
	text = leadingQty.ReplaceAllString(text, "")
	text = digits.ReplaceAllString(text, "")

	if i := strings.Index(text, " o "); i != -1 {
		text = text[:i]
	}
	if i := strings.Index(text, " / "); i != -1 {
		text = text[:i]
	}

	for _, r := range c.replacements {
		text = strings.ReplaceAll(text, r.From, r.To)
	}
	text = strings.TrimSpace(text)

	if words := strings.Fields(text); len(words) > 0 && isUnitWord(words[0]) {
		text = strings.Join(words[1:], " ")
	}

	for _, suffix := range trailingSuffixes {
		text = strings.TrimSuffix(text, suffix)
	}
	return text
}

// Ingredients cleans one raw ingredient line into zero or more names.
func (c *Cleaner) Ingredients(raw string) []string {
	text := strings.TrimSpace(c.Transform(FoldASCII(strings.TrimSpace(raw))))
	if text == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(text, ", ") {
		if name := dropJunk(part); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// Recipe cleans every raw line of one recipe, keeping first-seen order and
// dropping duplicates.
func (c *Cleaner) Recipe(raw []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, line := range raw {
		for _, name := range c.Ingredients(line) {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}

func dropJunk(s string) string {
	if _, junk := junkTokens[s]; junk {
		return ""
	}
	s = strings.TrimPrefix(s, "de ")
	return strings.TrimSpace(s)
}

func isUnitWord(w string) bool {
	for _, u := range unitWords {
		if u == w {
			return true
		}
	}
	return false
}

// CleanTitle trims a recipe title and removes its non-ASCII characters.
func CleanTitle(title string) string {
	return nonASCIIRun.ReplaceAllString(strings.TrimSpace(title), "")
}
