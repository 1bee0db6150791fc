// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultSweepInterval is used when the configured interval is not positive.
const DefaultSweepInterval = time.Minute

// Sweeper drops expired entries and reports how many went. Satisfied by
// *explorer.Explorer.
type Sweeper interface {
	Sweep() int
}

// SessionJanitorService periodically evicts idle explorer sessions. Evicted
// sessions notify their WebSocket subscribers through the explorer's
// eviction hook, so the janitor only has to trigger the sweep.
type SessionJanitorService struct {
	sweeper  Sweeper
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewSessionJanitorService creates a janitor sweeping every interval.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSessionJanitorService(sweeper Sweeper, interval time.Duration, logger zerolog.Logger) *SessionJanitorService {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &SessionJanitorService{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger.With().Str("service", "session-janitor").Logger(),
		name:     "session-janitor",
	}
}

// Serve implements suture.Service.
func (s *SessionJanitorService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("session janitor starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session janitor shutting down")
			return ctx.Err()

		case <-ticker.C:
			if n := s.sweeper.Sweep(); n > 0 {
				s.logger.Info().Int("expired", n).Msg("expired sessions evicted")
			}
		}
	}
}

func (s *SessionJanitorService) String() string {
	return s.name
}
