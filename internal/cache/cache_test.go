// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func TestLRU_Eviction(t *testing.T) {
	t.Parallel()

	c := NewLRU[int](3, time.Minute)
	var evicted []string
	c.OnEvict(func(key string, _ int, reason EvictReason) {
		evicted = append(evicted, key+":"+string(reason))
	})

	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)
	c.Get("a")
	c.Add("d", 4)

	if _, ok := c.Get("b"); ok {
		t.Error("expected b to be evicted")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("expected %s to be present", k)
		}
	}
	if len(evicted) != 1 || evicted[0] != "b:capacity" {
		t.Errorf("evicted = %v, want [b:capacity]", evicted)
	}
}

func TestLRU_TTL(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	c := NewLRU[string](10, time.Minute)
	c.now = clock.Now

	c.Add("s1", "one")
	c.Add("s2", "two")

	clock.Advance(45 * time.Second)
	if _, ok := c.Get("s1"); !ok {
		t.Fatal("s1 should still be live")
	}

	clock.Advance(30 * time.Second)
	// s1 was refreshed 30s ago; s2 is 75s old.
	if removed := c.CleanupExpired(); removed != 1 {
		t.Errorf("CleanupExpired() = %d, want 1", removed)
	}
	if _, ok := c.Get("s2"); ok {
		t.Error("s2 should have expired")
	}
	if v, ok := c.Get("s1"); !ok || v != "one" {
		t.Errorf("Get(s1) = %q, %v, want one, true", v, ok)
	}
}

func TestLRU_Remove(t *testing.T) {
	t.Parallel()

	c := NewLRU[int](2, time.Minute)
	c.Add("x", 1)
	if !c.Remove("x") {
		t.Error("Remove(x) = false, want true")
	}
	if c.Remove("x") {
		t.Error("second Remove(x) = true, want false")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestLRU_Concurrent(t *testing.T) {
	t.Parallel()

	c := NewLRU[int](100, time.Minute)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", (g*200+i)%150)
				c.Add(key, i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()
	if c.Len() > 100 {
		t.Errorf("Len() = %d, want <= 100", c.Len())
	}
}

func TestFoldKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"Limón", "limon"},
		{"  Azúcar Impalpable ", "azucar impalpable"},
		{"ÑOQUIS", "noquis"},
		{"ajo", "ajo"},
	}
	for _, tt := range tests {
		if got := FoldKey(tt.in); got != tt.want {
			t.Errorf("FoldKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTrie_Autocomplete(t *testing.T) {
	t.Parallel()

	tr := NewTrie[int](5)
	tr.Insert("limón", 0, 3)
	tr.Insert("lima", 1, 10)
	tr.Insert("lentejas", 2, 3)
	tr.Insert("leche", 3, 3)
	tr.Insert("ajo", 4, 1)

	got := tr.Autocomplete("l", 0)
	want := []string{"lima", "limón", "lentejas", "leche"}
	if len(got) != len(want) {
		t.Fatalf("len(Autocomplete) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Value != want[i] {
			t.Errorf("Autocomplete[%d] = %q, want %q", i, got[i].Value, want[i])
		}
	}

	if got := tr.Autocomplete("LIMON", 0); len(got) != 1 || got[0].Data != 0 {
		t.Errorf("Autocomplete(LIMON) = %v, want limón", got)
	}
	if got := tr.Autocomplete("x", 0); got != nil {
		t.Errorf("Autocomplete(x) = %v, want nil", got)
	}
	if got := tr.Autocomplete("l", 2); len(got) != 2 {
		t.Errorf("len(Autocomplete(l, 2)) = %d, want 2", len(got))
	}
}

func TestTrie_InsertDuplicateAddsWeight(t *testing.T) {
	t.Parallel()

	tr := NewTrie[string](10)
	if !tr.Insert("ajo", "first", 1) {
		t.Error("first Insert should be new")
	}
	if tr.Insert("Ajo", "second", 2) {
		t.Error("second Insert should not be new")
	}
	if res := tr.Autocomplete("AJ", 0); len(res) != 1 || res[0].Weight != 3 || res[0].Data != "first" {
		t.Errorf("Autocomplete(AJ) = %+v, want one result with weight 3 and data first", res)
	}
	if tr.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tr.Len())
	}
}
