// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package explorer

import (
	"errors"
	"io"
	"math/rand"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/maridaje/internal/catalog"
	"github.com/tomtom215/maridaje/internal/graph"
	"github.com/tomtom215/maridaje/internal/logging"
	"github.com/tomtom215/maridaje/internal/lookup"
	"github.com/tomtom215/maridaje/internal/models"
	"github.com/tomtom215/maridaje/internal/recommend"
)

type recordingPublisher struct {
	mu      sync.Mutex
	updates []models.SessionView
	closed  []string
}

func (p *recordingPublisher) PublishSessionUpdate(view models.SessionView) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.updates = append(p.updates, view)
}

func (p *recordingPublisher) SessionClosed(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = append(p.closed, id)
}

func (p *recordingPublisher) count() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.updates), len(p.closed)
}

func newTestExplorer(t *testing.T, cfg Config) (*Explorer, *recordingPublisher) {
	t.Helper()

	tables := catalog.New(catalog.Source{
		Pairs: []models.PairingEntry{
			{Ing1: "ajo", Ing2: "carne", Count: 5},
			{Ing1: "carne", Ing2: "cebolla", Count: 2},
			{Ing1: "ajo", Ing2: "limon", Count: 1},
			{Ing1: "aceite de oliva", Ing2: "ajo", Count: 4},
		},
		Recipes: []models.Recipe{
			{Title: "Bife a la criolla", URL: "https://cookpad.com/ar/recetas/1", Ingredients: []string{"cebolla", "carne", "sal"}},
			{Title: "Carne al ajo", URL: "https://www.recetasgratis.net/carne-al-ajo", Ingredients: []string{"carne", "ajo"}},
		},
		NutritionIndex: [][]string{{"ajo", "Garlic, raw"}},
		Foods:          []models.FoodRecord{{Description: "Garlic, raw, whole"}},
	})
	logger := logging.NewTestLogger(io.Discard)
	view := graph.NewView(tables, nil, graph.DefaultLayoutConfig(), logger)
	engine := recommend.NewEngineWithRand(tables, recommend.Config{}, logger, rand.New(rand.NewSource(1)))

	pub := &recordingPublisher{}
	ex := New(Deps{
		Tables: tables,
		View:   view,
		Engine: engine,
		Lookup: lookup.New(tables),
	}, cfg, pub, logger)
	return ex, pub
}

func selectionIDs(v models.SessionView) []string {
	ids := make([]string, len(v.Selection))
	for i, n := range v.Selection {
		ids[i] = n.ID
	}
	return ids
}

func TestToggle(t *testing.T) {
	t.Parallel()

	ex, pub := newTestExplorer(t, Config{})
	s := ex.Create()

	view, err := s.Toggle("carne")
	if err != nil {
		t.Fatalf("Toggle(carne) error = %v", err)
	}
	if got := selectionIDs(view); !reflect.DeepEqual(got, []string{"carne"}) {
		t.Errorf("selection = %v, want [carne]", got)
	}
	if !reflect.DeepEqual(view.Recommendations, []string{"ajo", "cebolla"}) {
		t.Errorf("Recommendations = %v, want [ajo cebolla]", view.Recommendations)
	}
	if len(view.Recipes) != 2 {
		t.Errorf("len(Recipes) = %d, want 2", len(view.Recipes))
	}
	if view.Version != 1 || view.LastClicked != "carne" {
		t.Errorf("Version = %d LastClicked = %q, want 1 carne", view.Version, view.LastClicked)
	}
	if view.Nutrition != nil {
		t.Errorf("Nutrition = %+v, want nil for unmapped carne", view.Nutrition)
	}

	view, err = s.Toggle("ajo")
	if err != nil {
		t.Fatalf("Toggle(ajo) error = %v", err)
	}
	if got := selectionIDs(view); !reflect.DeepEqual(got, []string{"carne", "ajo"}) {
		t.Errorf("selection = %v, want [carne ajo]", got)
	}
	if view.Nutrition == nil || view.Nutrition.Description != "Garlic, raw, whole" {
		t.Errorf("Nutrition = %+v, want Garlic, raw, whole", view.Nutrition)
	}
	if len(view.Recipes) != 1 || view.Recipes[0].Hostname != "www.recetasgratis.net" {
		t.Errorf("Recipes = %+v, want only Carne al ajo", view.Recipes)
	}

	// Removing keeps the last clicked node and its nutrition.
	view, _ = s.Toggle("ajo")
	if got := selectionIDs(view); !reflect.DeepEqual(got, []string{"carne"}) {
		t.Errorf("selection after removal = %v, want [carne]", got)
	}
	if view.LastClicked != "ajo" || view.Nutrition == nil {
		t.Errorf("LastClicked = %q Nutrition = %v, want ajo with record", view.LastClicked, view.Nutrition)
	}

	if updates, _ := pub.count(); updates != 3 {
		t.Errorf("published %d updates, want 3", updates)
	}
}

func TestToggle_TwiceReturnsToEmpty(t *testing.T) {
	t.Parallel()

	ex, _ := newTestExplorer(t, Config{})
	s := ex.Create()

	if _, err := s.Toggle("aceite-de-oliva"); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	view, err := s.Toggle("aceite-de-oliva")
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if len(view.Selection) != 0 || len(view.Recommendations) != 0 || len(view.Recipes) != 0 {
		t.Errorf("view = %+v, want empty selection and results", view)
	}
	if view.Recommendations == nil || view.Recipes == nil {
		t.Error("empty results must be empty slices, not nil")
	}
	if len(view.Emphasis.CommonLinks) != 0 {
		t.Errorf("CommonLinks = %+v, want none", view.Emphasis.CommonLinks)
	}
}

func TestToggle_UnknownNode(t *testing.T) {
	t.Parallel()

	ex, pub := newTestExplorer(t, Config{})
	s := ex.Create()
	_, _ = s.Toggle("carne")

	view, err := s.Toggle("aceite de oliva")
	if !errors.Is(err, ErrUnknownNode) {
		t.Fatalf("Toggle(name with spaces) error = %v, want ErrUnknownNode", err)
	}
	if got := selectionIDs(view); !reflect.DeepEqual(got, []string{"carne"}) {
		t.Errorf("selection = %v, want unchanged [carne]", got)
	}
	if view.Version != 1 {
		t.Errorf("Version = %d, want 1", view.Version)
	}
	if updates, _ := pub.count(); updates != 1 {
		t.Errorf("published %d updates, want 1", updates)
	}
}

func TestAddRecommended(t *testing.T) {
	t.Parallel()

	ex, _ := newTestExplorer(t, Config{})
	s := ex.Create()

	view, err := s.AddRecommended("aceite de oliva")
	if err != nil {
		t.Fatalf("AddRecommended() error = %v", err)
	}
	if got := selectionIDs(view); !reflect.DeepEqual(got, []string{"aceite-de-oliva"}) {
		t.Errorf("selection = %v, want [aceite-de-oliva]", got)
	}

	if _, err := s.AddRecommended("quinoa"); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("AddRecommended(quinoa) error = %v, want ErrUnknownNode", err)
	}
}

func TestSelectRecipe(t *testing.T) {
	t.Parallel()

	ex, _ := newTestExplorer(t, Config{})
	s := ex.Create()
	_, _ = s.Toggle("limon")

	res := s.SelectRecipe("Bife a la criolla")
	if !res.Matched {
		t.Fatal("SelectRecipe() Matched = false")
	}
	// Graph order is ajo, carne, cebolla...; sal is not a node.
	if got := selectionIDs(res.View); !reflect.DeepEqual(got, []string{"carne", "cebolla"}) {
		t.Errorf("selection = %v, want [carne cebolla]", got)
	}
	if res.View.LastClicked != "limon" {
		t.Errorf("LastClicked = %q, want unchanged limon", res.View.LastClicked)
	}

	miss := s.SelectRecipe("bife a la criolla")
	if miss.Matched {
		t.Error("SelectRecipe must match titles exactly")
	}
	if miss.View.Version != res.View.Version {
		t.Errorf("Version = %d, want unchanged %d", miss.View.Version, res.View.Version)
	}
}

func TestEmphasisFollowsSelection(t *testing.T) {
	t.Parallel()

	ex, _ := newTestExplorer(t, Config{})
	s := ex.Create()
	_, _ = s.Toggle("carne")
	view, _ := s.Toggle("cebolla")

	if !reflect.DeepEqual(view.Emphasis.Selected, []string{"carne", "cebolla"}) {
		t.Errorf("Selected = %v", view.Emphasis.Selected)
	}
	// carne -> {ajo, cebolla}, cebolla -> {carne}: no shared target.
	if len(view.Emphasis.CommonLinks) != 0 {
		t.Errorf("CommonLinks = %+v, want none", view.Emphasis.CommonLinks)
	}
}

func TestExplorerSessions(t *testing.T) {
	t.Parallel()

	ex, pub := newTestExplorer(t, Config{})
	s := ex.Create()

	got, err := ex.Get(s.ID())
	if err != nil || got != s {
		t.Fatalf("Get() = %v, %v, want created session", got, err)
	}
	if _, err := ex.Toggle(s.ID(), "ajo"); err != nil {
		t.Errorf("Explorer.Toggle() error = %v", err)
	}
	if _, err := ex.Toggle("missing", "ajo"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Toggle(missing) error = %v, want ErrSessionNotFound", err)
	}
	if _, err := ex.SelectRecipe("missing", "x"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("SelectRecipe(missing) error = %v, want ErrSessionNotFound", err)
	}

	if err := ex.Delete(s.ID()); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := ex.Delete(s.ID()); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second Delete() error = %v, want ErrSessionNotFound", err)
	}
	if _, closed := pub.count(); closed != 1 {
		t.Errorf("SessionClosed called %d times, want 1", closed)
	}
}

func TestExplorerSweep(t *testing.T) {
	t.Parallel()

	ex, pub := newTestExplorer(t, Config{SessionTTL: time.Minute, MaxSessions: 2})
	now := time.Unix(1_700_000_000, 0)
	ex.SetClock(func() time.Time { return now })

	a := ex.Create()
	_ = ex.Create()
	_ = ex.Create() // evicts a
	if _, err := ex.Get(a.ID()); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get(a) error = %v, want eviction", err)
	}
	if ex.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ex.Len())
	}

	now = now.Add(2 * time.Minute)
	if n := ex.Sweep(); n != 2 {
		t.Errorf("Sweep() = %d, want 2", n)
	}
	if ex.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ex.Len())
	}
	if _, closed := pub.count(); closed != 3 {
		t.Errorf("SessionClosed called %d times, want 3", closed)
	}
}

func TestConcurrentToggles(t *testing.T) {
	t.Parallel()

	ex, _ := newTestExplorer(t, Config{})
	s := ex.Create()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Toggle("ajo")
		}()
	}
	wg.Wait()

	view := s.View()
	if len(view.Selection) != 0 {
		t.Errorf("selection after an even number of toggles = %v, want empty", selectionIDs(view))
	}
	if view.Version != 20 {
		t.Errorf("Version = %d, want 20", view.Version)
	}
}

func TestRepublish(t *testing.T) {
	t.Parallel()

	ex, pub := newTestExplorer(t, Config{})
	s := ex.Create()
	if _, err := s.Toggle("ajo"); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}

	view := s.Republish()
	if view.Version != 1 {
		t.Errorf("Version = %d, want 1", view.Version)
	}
	pub.mu.Lock()
	last := pub.updates[len(pub.updates)-1]
	pub.mu.Unlock()
	if last.Version != view.Version || !reflect.DeepEqual(selectionIDs(last), []string{"ajo"}) {
		t.Errorf("last published = version %d %v, want version 1 [ajo]", last.Version, selectionIDs(last))
	}
}

func TestRepublish_NeverOvertakesNewerViews(t *testing.T) {
	t.Parallel()

	ex, pub := newTestExplorer(t, Config{})
	s := ex.Create()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.Toggle("carne")
		}()
		go func() {
			defer wg.Done()
			s.Republish()
		}()
	}
	wg.Wait()

	pub.mu.Lock()
	defer pub.mu.Unlock()
	if len(pub.updates) != 40 {
		t.Fatalf("published %d views, want 40", len(pub.updates))
	}
	for i := 1; i < len(pub.updates); i++ {
		if pub.updates[i].Version < pub.updates[i-1].Version {
			t.Fatalf("view %d has version %d after version %d", i, pub.updates[i].Version, pub.updates[i-1].Version)
		}
	}
}
