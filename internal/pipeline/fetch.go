// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/maridaje/internal/logging"
	"github.com/tomtom215/maridaje/internal/metrics"
)

// maxPageBytes is the default bound on a single downloaded page.
const maxPageBytes = 8 << 20

// ErrPageTooLarge is returned when a page exceeds the configured size cap.
// Truncated HTML is never handed to the parsers.
var ErrPageTooLarge = errors.New("page too large")

// StatusError is returned for non-2xx responses.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d", e.URL, e.Code)
}

// retryable reports whether a status is worth another attempt.
func retryable(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// FetcherConfig configures a Fetcher.
type FetcherConfig struct {
	UserAgent      string
	RequestsPerSec float64
	Timeout        time.Duration
	MaxRetries     int
	RetryBaseDelay time.Duration

	// MaxPageBytes caps a response body. Zero means 8 MiB.
	MaxPageBytes int64
}

// Fetcher downloads pages politely: one shared rate limit, bounded retries
// on 429 and 5xx, and a circuit breaker per source so a site that is down
// stops being hammered.
type Fetcher struct {
	client   *http.Client
	limiter  *rate.Limiter
	cfg      FetcherConfig
	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[[]byte]
}

// NewFetcher creates a fetcher. Zero retry settings mean 3 retries starting
// at one second.
func NewFetcher(cfg FetcherConfig) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.RequestsPerSec <= 0 {
		cfg.RequestsPerSec = 1
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = time.Second
	}
	if cfg.MaxPageBytes <= 0 {
		cfg.MaxPageBytes = maxPageBytes
	}
	return &Fetcher{
		client:   &http.Client{Timeout: cfg.Timeout},
		limiter:  rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), 1),
		cfg:      cfg,
		breakers: make(map[string]*gobreaker.CircuitBreaker[[]byte]),
	}
}

func (f *Fetcher) breaker(source string) *gobreaker.CircuitBreaker[[]byte] {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cb, ok := f.breakers[source]; ok {
		return cb
	}

	name := "fetch-" + source
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// A 404, an oversized page or a canceled fetch says nothing about
		// the site's health.
		IsSuccessful: func(err error) bool {
			var se *StatusError
			if errors.As(err, &se) {
				return !retryable(se.Code)
			}
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, ErrPageTooLarge)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("Circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})
	f.breakers[source] = cb
	return cb
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// Fetch downloads url on behalf of source.
func (f *Fetcher) Fetch(ctx context.Context, source, url string) ([]byte, error) {
	name := "fetch-" + source
	body, err := f.breaker(source).Execute(func() ([]byte, error) {
		return f.fetchWithRetry(ctx, url)
	})
	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(name, "success").Inc()
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(name, "rejected").Inc()
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(name, "failure").Inc()
	}
	return body, err
}

func (f *Fetcher) fetchWithRetry(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= f.cfg.MaxRetries; attempt++ {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		body, retryAfter, err := f.get(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		var se *StatusError
		if !errors.As(err, &se) || !retryable(se.Code) || attempt == f.cfg.MaxRetries {
			break
		}

		delay := f.cfg.RetryBaseDelay * time.Duration(1<<uint(attempt))
		if retryAfter > 0 {
			delay = retryAfter
		}
		logging.Warn().Str("url", url).Int("status", se.Code).Dur("retry_delay", delay).Int("attempt", attempt+1).Msg("Fetch failed, retrying")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	if f.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", f.cfg.UserAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, parseRetryAfter(resp.Header.Get("Retry-After")), &StatusError{URL: url, Code: resp.StatusCode}
	}

	// One byte past the cap tells a full page from a truncated one.
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.cfg.MaxPageBytes+1))
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", url, err)
	}
	if int64(len(body)) > f.cfg.MaxPageBytes {
		return nil, 0, fmt.Errorf("GET %s: over %d bytes: %w", url, f.cfg.MaxPageBytes, ErrPageTooLarge)
	}
	return body, 0, nil
}

// parseRetryAfter reads the delay-seconds form of Retry-After.
func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
