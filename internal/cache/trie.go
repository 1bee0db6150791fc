// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package cache

import (
	"sort"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type trieNode[V any] struct {
	children map[rune]*trieNode[V]
	isEnd    bool
	value    string
	data     V
	weight   float64
	order    int
}

// TrieResult is one autocomplete match.
type TrieResult[V any] struct {
	Value  string
	Data   V
	Weight float64
}

// Trie is a thread-safe prefix tree with folded keys.
//
// Autocomplete ranks matches by weight (descending), then by insertion order.
type Trie[V any] struct {
	mu             sync.RWMutex
	root           *trieNode[V]
	size           int
	maxSuggestions int
}

// NewTrie creates an empty trie returning at most maxSuggestions results
// per query (10 when maxSuggestions <= 0).
func NewTrie[V any](maxSuggestions int) *Trie[V] {
	if maxSuggestions <= 0 {
		maxSuggestions = 10
	}
	return &Trie[V]{
		root:           newTrieNode[V](),
		maxSuggestions: maxSuggestions,
	}
}

func newTrieNode[V any]() *trieNode[V] {
	return &trieNode[V]{children: make(map[rune]*trieNode[V])}
}

// FoldKey lowercases s and strips diacritics, so "Limón" and "limon" match.
func FoldKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// Insert adds value with its data. Inserting an existing key adds weight to
// it and keeps the first data. It returns true for new keys.
func (t *Trie[V]) Insert(value string, data V, weight float64) bool {
	key := FoldKey(value)
	if key == "" {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	node := t.root
	for _, ch := range key {
		child := node.children[ch]
		if child == nil {
			child = newTrieNode[V]()
			node.children[ch] = child
		}
		node = child
	}

	if node.isEnd {
		node.weight += weight
		return false
	}
	node.isEnd = true
	node.value = value
	node.data = data
	node.weight = weight
	node.order = t.size
	t.size++
	return true
}

// Autocomplete returns up to limit entries starting with prefix.
// A non-positive limit uses the trie default.
func (t *Trie[V]) Autocomplete(prefix string, limit int) []TrieResult[V] {
	if limit <= 0 {
		limit = t.maxSuggestions
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.find(FoldKey(prefix))
	if node == nil {
		return nil
	}

	var nodes []*trieNode[V]
	collect(node, &nodes)
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].weight != nodes[j].weight {
			return nodes[i].weight > nodes[j].weight
		}
		return nodes[i].order < nodes[j].order
	})
	if len(nodes) > limit {
		nodes = nodes[:limit]
	}

	results := make([]TrieResult[V], len(nodes))
	for i, n := range nodes {
		results[i] = TrieResult[V]{Value: n.value, Data: n.data, Weight: n.weight}
	}
	return results
}

// Len returns the number of distinct keys.
func (t *Trie[V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

func (t *Trie[V]) find(key string) *trieNode[V] {
	node := t.root
	for _, ch := range key {
		node = node.children[ch]
		if node == nil {
			return nil
		}
	}
	return node
}

func collect[V any](node *trieNode[V], out *[]*trieNode[V]) {
	if node.isEnd {
		*out = append(*out, node)
	}
	for _, child := range node.children {
		collect(child, out)
	}
}
