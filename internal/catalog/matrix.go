// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/tomtom215/maridaje/internal/models"
)

// Partner is one co-occurring ingredient and its pairing strength.
type Partner struct {
	Name  string  `json:"name"`
	Count float64 `json:"count"`
}

// Matrix maps each ingredient to its partners, preserving table order.
type Matrix struct {
	order    []string
	partners map[string][]Partner
	index    map[string]map[string]int
}

// NewMatrix returns an empty matrix.
func NewMatrix() *Matrix {
	return &Matrix{
		partners: make(map[string][]Partner),
		index:    make(map[string]map[string]int),
	}
}

// Add accumulates count onto the a->b cell, appending b to a's partner list
// the first time it is seen.
func (m *Matrix) Add(a, b string, count float64) {
	row, ok := m.index[a]
	if !ok {
		row = make(map[string]int)
		m.index[a] = row
		m.order = append(m.order, a)
	}
	if i, seen := row[b]; seen {
		m.partners[a][i].Count += count
		return
	}
	row[b] = len(m.partners[a])
	m.partners[a] = append(m.partners[a], Partner{Name: b, Count: count})
}

// Partners returns the partner list of name in table order, or nil when
// name is not in the matrix. The slice must not be modified.
func (m *Matrix) Partners(name string) []Partner {
	return m.partners[name]
}

// Count returns the a->b pairing strength, or 0.
func (m *Matrix) Count(a, b string) float64 {
	if i, ok := m.index[a][b]; ok {
		return m.partners[a][i].Count
	}
	return 0
}

// Ingredients returns the row keys in table order.
func (m *Matrix) Ingredients() []string {
	return m.order
}

// Len returns the number of rows.
func (m *Matrix) Len() int {
	return len(m.order)
}

// BuildMatrix accumulates a symmetric matrix from flat pairs: each entry adds
// its count to both the ing1->ing2 and ing2->ing1 cells.
func BuildMatrix(pairs []models.PairingEntry) *Matrix {
	m := NewMatrix()
	for _, p := range pairs {
		m.Add(p.Ing1, p.Ing2, p.Count)
		m.Add(p.Ing2, p.Ing1, p.Count)
	}
	return m
}

// Pairs flattens the matrix back to unique unordered pairs in row order.
// Only the first direction of each pair is emitted.
func (m *Matrix) Pairs() []models.PairingEntry {
	var out []models.PairingEntry
	emitted := make(map[[2]string]struct{})
	for _, a := range m.order {
		for _, p := range m.partners[a] {
			if _, ok := emitted[[2]string{p.Name, a}]; ok {
				continue
			}
			emitted[[2]string{a, p.Name}] = struct{}{}
			out = append(out, models.PairingEntry{Ing1: a, Ing2: p.Name, Count: p.Count})
		}
	}
	return out
}

// MarshalJSON writes the nested {ingredient: {partner: count}} form with
// rows and partners in table order.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(a)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(":{")
		for j, p := range m.partners[a] {
			if j > 0 {
				buf.WriteByte(',')
			}
			name, err := json.Marshal(p.Name)
			if err != nil {
				return nil, err
			}
			count, err := json.Marshal(p.Count)
			if err != nil {
				return nil, err
			}
			buf.Write(name)
			buf.WriteByte(':')
			buf.Write(count)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

var errNotPairingTable = errors.New("pairing table must be a JSON array or object")

// DecodePairingTable accepts either the flat [{ing1, ing2, count}] list or
// the nested {ingredient: {partner: count}} object and returns both views.
// The flat view of a nested table emits each unordered pair once.
func DecodePairingTable(data []byte) ([]models.PairingEntry, *Matrix, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) == 0 {
		return nil, nil, errNotPairingTable
	}

	switch trimmed[0] {
	case '[':
		var pairs []models.PairingEntry
		if err := json.Unmarshal(trimmed, &pairs); err != nil {
			return nil, nil, fmt.Errorf("decode flat pairs: %w", err)
		}
		return pairs, BuildMatrix(pairs), nil
	case '{':
		m, err := decodeNestedMatrix(bytes.NewReader(trimmed))
		if err != nil {
			return nil, nil, err
		}
		return m.Pairs(), m, nil
	default:
		return nil, nil, errNotPairingTable
	}
}

// decodeNestedMatrix walks the object token by token so partner order
// survives decoding.
func decodeNestedMatrix(r io.Reader) (*Matrix, error) {
	dec := json.NewDecoder(r)
	m := NewMatrix()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	for dec.More() {
		ingredient, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		if err := expectDelim(dec, '{'); err != nil {
			return nil, fmt.Errorf("row %q: %w", ingredient, err)
		}
		if _, ok := m.index[ingredient]; !ok {
			m.index[ingredient] = make(map[string]int)
			m.order = append(m.order, ingredient)
		}
		for dec.More() {
			partner, err := readKey(dec)
			if err != nil {
				return nil, fmt.Errorf("row %q: %w", ingredient, err)
			}
			tok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("row %q partner %q: %w", ingredient, partner, err)
			}
			count, ok := tok.(float64)
			if !ok {
				return nil, fmt.Errorf("row %q partner %q: count must be a number, got %T", ingredient, partner, tok)
			}
			m.Add(ingredient, partner, count)
		}
		if err := expectDelim(dec, '}'); err != nil {
			return nil, fmt.Errorf("row %q: %w", ingredient, err)
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return m, nil
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return key, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
