// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// LayoutBuilder is satisfied by *graph.View. Init is idempotent.
type LayoutBuilder interface {
	Init()
	Ready() bool
}

// LayoutWarmupService computes the graph layout once at startup so the first
// graph request does not pay for it. It retires after a successful build.
type LayoutWarmupService struct {
	view   LayoutBuilder
	logger zerolog.Logger
	name   string
}

// NewLayoutWarmupService creates the warmup service for view.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewLayoutWarmupService(view LayoutBuilder, logger zerolog.Logger) *LayoutWarmupService {
	return &LayoutWarmupService{
		view:   view,
		logger: logger.With().Str("service", "layout-warmup").Logger(),
		name:   "layout-warmup",
	}
}

// Serve implements suture.Service. The layout cannot be interrupted, so a
// canceled context only stops the wait.
func (s *LayoutWarmupService) Serve(ctx context.Context) error {
	if s.view.Ready() {
		return suture.ErrDoNotRestart
	}

	start := time.Now()
	done := make(chan struct{})
	go func() {
		s.view.Init()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
	}

	s.logger.Info().Dur("duration", time.Since(start)).Msg("graph layout ready")
	return suture.ErrDoNotRestart
}

func (s *LayoutWarmupService) String() string {
	return s.name
}
