// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package explorer

import (
	"errors"
	"sync"
	"time"

	"github.com/tomtom215/maridaje/internal/graph"
	"github.com/tomtom215/maridaje/internal/metrics"
	"github.com/tomtom215/maridaje/internal/models"
)

var (
	// ErrUnknownNode is returned when a node id or ingredient name is not in the graph.
	ErrUnknownNode = errors.New("unknown node")

	// ErrSessionNotFound is returned for missing or expired sessions.
	ErrSessionNotFound = errors.New("session not found")
)

// Session is one user's selection state. Methods serialize on the session.
type Session struct {
	id string
	ex *Explorer

	mu              sync.Mutex
	selection       []models.GraphNode
	recommendations []string
	recipes         []models.Recipe
	lastClicked     string
	nutrition       *models.FoodRecord
	emphasis        models.Emphasis
	version         uint64
	updatedAt       time.Time
}

func newSession(id string, ex *Explorer) *Session {
	s := &Session{
		id:        id,
		ex:        ex,
		selection: make([]models.GraphNode, 0),
		updatedAt: ex.now(),
	}
	s.resetResults()
	s.emphasis = graph.ComputeEmphasis(nil, nil)
	return s
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// View returns a snapshot of the session.
func (s *Session) View() models.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Republish sends the current view to subscribers. The snapshot is taken and
// queued under the session lock, so it can never overtake a newer view from
// a concurrent change.
func (s *Session) Republish() models.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	view := s.snapshot()
	if s.ex.publisher != nil {
		s.ex.publisher.PublishSessionUpdate(view)
	}
	return view
}

// Toggle adds the node to the selection, or removes it when already selected.
func (s *Session) Toggle(nodeID string) (models.SessionView, error) {
	node, ok := s.ex.view.NodeByID(nodeID)
	if !ok {
		metrics.SessionTransitions.WithLabelValues("rejected").Inc()
		return s.View(), ErrUnknownNode
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.toggle(node)
	return s.snapshot(), nil
}

// AddRecommended toggles the node named by a recommended ingredient.
func (s *Session) AddRecommended(name string) (models.SessionView, error) {
	node, ok := s.ex.view.NodeByName(name)
	if !ok {
		metrics.SessionTransitions.WithLabelValues("rejected").Inc()
		return s.View(), ErrUnknownNode
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.toggle(node)
	return s.snapshot(), nil
}

// SelectRecipe replaces the selection with the graph nodes of the recipe
// titled exactly title. Matched is false when no recipe has that title.
func (s *Session) SelectRecipe(title string) models.RecipeSearchResult {
	recipe, ok := s.ex.tables.RecipeByTitle(title)
	if !ok {
		return models.RecipeSearchResult{Matched: false, View: s.View()}
	}
	nodes := s.ex.view.NodesNamed(recipe.Ingredients)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = nodes
	metrics.SessionTransitions.WithLabelValues("recipe").Inc()
	s.changed()
	return models.RecipeSearchResult{Matched: true, View: s.snapshot()}
}

// toggle must be called with mu held.
func (s *Session) toggle(node models.GraphNode) {
	idx := -1
	for i, n := range s.selection {
		if n.ID == node.ID {
			idx = i
			break
		}
	}
	if idx >= 0 {
		next := make([]models.GraphNode, 0, len(s.selection)-1)
		next = append(next, s.selection[:idx]...)
		s.selection = append(next, s.selection[idx+1:]...)
		metrics.SessionTransitions.WithLabelValues("remove").Inc()
	} else {
		s.selection = append(s.selection, node)
		metrics.SessionTransitions.WithLabelValues("add").Inc()
	}

	s.lastClicked = node.ID
	if rec, ok := s.ex.lookup.Nutrition(node.Name); ok {
		s.nutrition = rec
	} else {
		s.nutrition = nil
	}
	s.changed()
}

// changed recomputes derived results and publishes. Must be called with mu held.
func (s *Session) changed() {
	if len(s.selection) == 0 {
		s.resetResults()
	} else {
		names := make([]string, len(s.selection))
		for i, n := range s.selection {
			names[i] = n.Name
		}
		s.recommendations = s.ex.engine.Recommend(names)
		s.recipes = s.ex.engine.FindRecipes(names, 0)
	}
	s.emphasis = graph.ComputeEmphasis(s.selection, s.ex.view.Edges())
	s.version++
	s.updatedAt = s.ex.now()

	if s.ex.publisher != nil {
		s.ex.publisher.PublishSessionUpdate(s.snapshot())
	}
}

func (s *Session) resetResults() {
	s.recommendations = make([]string, 0)
	s.recipes = make([]models.Recipe, 0)
}

// snapshot must be called with mu held.
func (s *Session) snapshot() models.SessionView {
	selection := make([]models.GraphNode, len(s.selection))
	copy(selection, s.selection)

	recommendations := make([]string, len(s.recommendations))
	copy(recommendations, s.recommendations)

	recipes := make([]models.RecipeView, len(s.recipes))
	for i := range s.recipes {
		recipes[i] = models.NewRecipeView(&s.recipes[i])
	}

	return models.SessionView{
		ID:              s.id,
		Selection:       selection,
		Recommendations: recommendations,
		Recipes:         recipes,
		LastClicked:     s.lastClicked,
		Nutrition:       s.nutrition,
		Emphasis:        s.emphasis,
		Version:         s.version,
		UpdatedAt:       s.updatedAt,
	}
}
