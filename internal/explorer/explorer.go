// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package explorer

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/maridaje/internal/cache"
	"github.com/tomtom215/maridaje/internal/catalog"
	"github.com/tomtom215/maridaje/internal/graph"
	"github.com/tomtom215/maridaje/internal/logging"
	"github.com/tomtom215/maridaje/internal/lookup"
	"github.com/tomtom215/maridaje/internal/metrics"
	"github.com/tomtom215/maridaje/internal/models"
	"github.com/tomtom215/maridaje/internal/recommend"
)

// Publisher receives session updates, typically the WebSocket hub.
type Publisher interface {
	PublishSessionUpdate(view models.SessionView)
	SessionClosed(sessionID string)
}

// Config bounds the session store.
type Config struct {
	SessionTTL  time.Duration
	MaxSessions int
}

// Deps are the read-only services sessions derive their results from.
type Deps struct {
	Tables *catalog.Tables
	View   *graph.View
	Engine *recommend.Engine
	Lookup *lookup.Service
}

// Explorer creates, finds and expires sessions.
type Explorer struct {
	tables    *catalog.Tables
	view      *graph.View
	engine    *recommend.Engine
	lookup    *lookup.Service
	publisher Publisher
	logger    zerolog.Logger

	sessions *cache.LRU[*Session]
	now      func() time.Time
}

// New creates an explorer. publisher may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(deps Deps, cfg Config, publisher Publisher, logger zerolog.Logger) *Explorer {
	e := &Explorer{
		tables:    deps.Tables,
		view:      deps.View,
		engine:    deps.Engine,
		lookup:    deps.Lookup,
		publisher: publisher,
		logger:    logger.With().Str("component", "explorer").Logger(),
		sessions:  cache.NewLRU[*Session](cfg.MaxSessions, cfg.SessionTTL),
		now:       time.Now,
	}
	e.sessions.OnEvict(e.onEvict)
	return e
}

// SetClock replaces the time source for session timestamps and expiry.
func (e *Explorer) SetClock(now func() time.Time) {
	e.now = now
	e.sessions.SetClock(now)
}

func (e *Explorer) onEvict(id string, _ *Session, reason cache.EvictReason) {
	metrics.SessionsEvicted.WithLabelValues(string(reason)).Inc()
	metrics.SessionsActive.Dec()
	if e.publisher != nil {
		e.publisher.SessionClosed(id)
	}
	e.logger.Debug().
		Str("session_id", logging.SanitizeSessionID(id)).
		Str("reason", string(reason)).
		Msg("session evicted")
}

// Create starts an empty session.
func (e *Explorer) Create() *Session {
	s := newSession(uuid.New().String(), e)
	e.sessions.Add(s.id, s)
	metrics.SessionsActive.Inc()
	e.logger.Debug().
		Str("session_id", logging.SanitizeSessionID(s.id)).
		Msg("session created")
	return s
}

// Get returns a live session and refreshes its TTL.
func (e *Explorer) Get(id string) (*Session, error) {
	s, ok := e.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete ends a session.
func (e *Explorer) Delete(id string) error {
	if !e.sessions.Remove(id) {
		return ErrSessionNotFound
	}
	return nil
}

// Toggle toggles nodeID in the session's selection.
func (e *Explorer) Toggle(sessionID, nodeID string) (models.SessionView, error) {
	s, err := e.Get(sessionID)
	if err != nil {
		return models.SessionView{}, err
	}
	return s.Toggle(nodeID)
}

// AddRecommended toggles the node named ingredient.
func (e *Explorer) AddRecommended(sessionID, ingredient string) (models.SessionView, error) {
	s, err := e.Get(sessionID)
	if err != nil {
		return models.SessionView{}, err
	}
	return s.AddRecommended(ingredient)
}

// SelectRecipe replaces the selection with a recipe's ingredients.
func (e *Explorer) SelectRecipe(sessionID, title string) (models.RecipeSearchResult, error) {
	s, err := e.Get(sessionID)
	if err != nil {
		return models.RecipeSearchResult{}, err
	}
	return s.SelectRecipe(title), nil
}

// Sweep removes expired sessions and returns how many were removed.
func (e *Explorer) Sweep() int {
	n := e.sessions.CleanupExpired()
	if n > 0 {
		e.logger.Info().Int("expired", n).Int("active", e.sessions.Len()).Msg("expired sessions swept")
	}
	return n
}

// Len returns the number of stored sessions.
func (e *Explorer) Len() int { return e.sessions.Len() }
