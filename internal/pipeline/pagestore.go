// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/maridaje/internal/logging"
)

const (
	pagePrefix = "page:"
	seenPrefix = "seen:"
)

// Page is one stored recipe page.
type Page struct {
	Source    string    `json:"source"`
	Slug      string    `json:"slug"`
	URL       string    `json:"url"`
	HTML      []byte    `json:"html"`
	FetchedAt time.Time `json:"fetched_at"`
}

// PageStore keeps raw recipe pages and the already-scraped URL set in
// BadgerDB so interrupted scrapes resume where they stopped.
//
// Keys:
//
//	page:<source>:<slug>  JSON Page
//	seen:<source>:<url>   empty
type PageStore struct {
	db *badger.DB
}

// OpenPageStore opens (or creates) the store at path.
func OpenPageStore(path string) (*PageStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	return openPageStore(opts)
}

// OpenInMemoryPageStore opens a store that lives only as long as the process.
func OpenInMemoryPageStore() (*PageStore, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return openPageStore(opts)
}

func openPageStore(opts badger.Options) (*PageStore, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}
	return &PageStore{db: db}, nil
}

// Close releases the database.
func (s *PageStore) Close() error {
	return s.db.Close()
}

func pageKey(source, slug string) []byte { return []byte(pagePrefix + source + ":" + slug) }
func seenKey(source, url string) []byte  { return []byte(seenPrefix + source + ":" + url) }

// Put stores a page and marks its URL as scraped in one transaction.
func (s *PageStore) Put(p *Page) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal page: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(pageKey(p.Source, p.Slug), data); err != nil {
			return err
		}
		return txn.Set(seenKey(p.Source, p.URL), nil)
	})
	if err != nil {
		return fmt.Errorf("store page %s/%s: %w", p.Source, p.Slug, err)
	}
	return nil
}

// Seen reports whether url was already scraped for source.
func (s *PageStore) Seen(source, url string) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(seenKey(source, url))
		return err
	})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("lookup seen url: %w", err)
	}
}

// Get returns the page stored under source and slug.
func (s *PageStore) Get(source, slug string) (*Page, error) {
	var page Page
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(pageKey(source, slug))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &page)
		})
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// Pages calls fn for every page of source in key order. Undecodable entries
// are logged and skipped. Iteration stops at the first error from fn.
func (s *PageStore) Pages(ctx context.Context, source string, fn func(*Page) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(pagePrefix + source + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			var page Page
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &page)
			}); err != nil {
				logging.Warn().Err(err).Str("key", string(item.Key())).Msg("Skipping undecodable page")
				continue
			}
			if err := fn(&page); err != nil {
				return err
			}
		}
		return nil
	})
}

// Count returns the number of stored pages for source.
func (s *PageStore) Count(source string) (int, error) {
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(pagePrefix + source + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}
