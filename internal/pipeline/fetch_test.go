// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package pipeline

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

func fastFetcher() *Fetcher {
	return NewFetcher(FetcherConfig{
		UserAgent:      "maridaje-test",
		RequestsPerSec: 1000,
		MaxRetries:     2,
		RetryBaseDelay: time.Millisecond,
	})
}

// statusServer answers with the given statuses in order, then 200.
func statusServer(t *testing.T, statuses ...int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := int(hits.Add(1))
		if r.Header.Get("User-Agent") != "maridaje-test" {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}
		if n <= len(statuses) {
			w.WriteHeader(statuses[n-1])
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		statuses   []int
		wantBody   string
		wantStatus int
		wantHits   int32
	}{
		{name: "ok", wantBody: "ok", wantHits: 1},
		{name: "retries 5xx and 429", statuses: []int{503, 429}, wantBody: "ok", wantHits: 3},
		{name: "gives up after max retries", statuses: []int{500, 500, 500}, wantStatus: 500, wantHits: 3},
		{name: "no retry on 404", statuses: []int{404}, wantStatus: 404, wantHits: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv, hits := statusServer(t, tt.statuses...)
			body, err := fastFetcher().Fetch(context.Background(), "test-"+tt.name, srv.URL)

			if tt.wantStatus != 0 {
				var se *StatusError
				if !errors.As(err, &se) || se.Code != tt.wantStatus {
					t.Errorf("Fetch() error = %v, want HTTP %d", err, tt.wantStatus)
				}
			} else if err != nil || string(body) != tt.wantBody {
				t.Errorf("Fetch() = %q, %v; want %q", body, err, tt.wantBody)
			}
			if hits.Load() != tt.wantHits {
				t.Errorf("server hits = %d, want %d", hits.Load(), tt.wantHits)
			}
		})
	}
}

func TestFetcher_BreakerOpensPerSource(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	f := NewFetcher(FetcherConfig{RequestsPerSec: 1000, MaxRetries: 1, RetryBaseDelay: time.Millisecond})
	for i := 0; i < 5; i++ {
		if _, err := f.Fetch(context.Background(), "down", srv.URL); err == nil {
			t.Fatal("Fetch() error = nil, want failure")
		}
	}
	before := hits.Load()

	if _, err := f.Fetch(context.Background(), "down", srv.URL); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Fetch() after 5 failures = %v, want ErrOpenState", err)
	}
	if hits.Load() != before {
		t.Error("open breaker still reached the server")
	}

	// Another source has its own breaker.
	if _, err := f.Fetch(context.Background(), "other", srv.URL); errors.Is(err, gobreaker.ErrOpenState) {
		t.Error("breaker state leaked to another source")
	}
}

func TestFetcher_PageSizeCap(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", len(r.URL.Path))))
	}))
	t.Cleanup(srv.Close)

	f := NewFetcher(FetcherConfig{RequestsPerSec: 1000, MaxPageBytes: 8})
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "under cap", path: "/123", wantErr: false},
		{name: "exactly cap", path: "/2345678", wantErr: false},
		{name: "one byte over", path: "/23456789", wantErr: true},
		{name: "far over", path: "/" + strings.Repeat("a", 100), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := f.Fetch(context.Background(), "big", srv.URL+tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrPageTooLarge) {
					t.Errorf("Fetch() error = %v, want ErrPageTooLarge", err)
				}
				if body != nil {
					t.Errorf("Fetch() body = %d bytes, want nil", len(body))
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch() error = %v", err)
			}
			if len(body) != len(tt.path) {
				t.Errorf("len(body) = %d, want %d", len(body), len(tt.path))
			}
		})
	}
}

func TestFetcher_OversizedPagesDoNotTripBreaker(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	}))
	t.Cleanup(srv.Close)

	f := NewFetcher(FetcherConfig{RequestsPerSec: 1000, MaxPageBytes: 16})
	for i := 0; i < 7; i++ {
		if _, err := f.Fetch(context.Background(), "big", srv.URL); !errors.Is(err, ErrPageTooLarge) {
			t.Fatalf("Fetch() #%d error = %v, want ErrPageTooLarge", i, err)
		}
	}
}

func TestParseRetryAfter(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"", 0},
		{"3", 3 * time.Second},
		{"-1", 0},
		{"Wed, 21 Oct 2026 07:28:00 GMT", 0},
	}
	for _, tt := range tests {
		if got := parseRetryAfter(tt.in); got != tt.want {
			t.Errorf("parseRetryAfter(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
