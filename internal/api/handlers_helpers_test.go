// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package api

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/maridaje/internal/explorer"
	"github.com/tomtom215/maridaje/internal/models"
)

// decodeBody reads an envelope from a live response and closes the body.
func decodeBody(resp *http.Response, env *envelope, data interface{}) error {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, env); err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	return json.Unmarshal(env.Data, data)
}

func TestGenerateETag(t *testing.T) {
	t.Parallel()

	a := generateETag([]byte(`["ajo","cebolla"]`))
	b := generateETag([]byte(`["ajo","cebolla"]`))
	c := generateETag([]byte(`["ajo","limon"]`))
	if a == "" || a != b {
		t.Errorf("generateETag not stable: %q vs %q", a, b)
	}
	if a == c {
		t.Errorf("generateETag(%q) collides with different data", a)
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "ajo", want: "ajo"},
		{in: "limón", want: "limón"},
		{in: "a\nb", want: `a\x0ab`},
		{in: "x\ty\x7f", want: `x\x09y\x7f`},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseCommaSeparated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: "carne", want: []string{"carne"}},
		{in: " carne , aceite de oliva,,", want: []string{"carne", "aceite de oliva"}},
	}
	for _, tt := range tests {
		got := parseCommaSeparated(tt.in)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
			t.Errorf("parseCommaSeparated(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQueryParams(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?limit=7&bad=x&verbose=true&quiet=nope", nil)
	if got := getIntParam(req, "limit", 3); got != 7 {
		t.Errorf("getIntParam(limit) = %d, want 7", got)
	}
	if got := getIntParam(req, "bad", 3); got != 3 {
		t.Errorf("getIntParam(bad) = %d, want default 3", got)
	}
	if got := getIntParam(req, "missing", 3); got != 3 {
		t.Errorf("getIntParam(missing) = %d, want default 3", got)
	}
	if !getBoolParam(req, "verbose") || getBoolParam(req, "quiet") || getBoolParam(req, "missing") {
		t.Error("getBoolParam mismatch")
	}
}

func TestDecodeJSONBody_TooLarge(t *testing.T) {
	t.Parallel()

	body := `{"node_id":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	var dst models.ToggleRequest
	if decodeJSONBody(rec, req, &dst) {
		t.Fatal("decodeJSONBody() = true, want false")
	}
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
}

func TestExplorerErrorStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err    error
		status int
		code   string
	}{
		{err: explorer.ErrSessionNotFound, status: http.StatusNotFound, code: ErrCodeSessionNotFound},
		{err: explorer.ErrUnknownNode, status: http.StatusBadRequest, code: ErrCodeUnknownNode},
		{err: errors.New("boom"), status: http.StatusInternalServerError, code: ErrCodeInternal},
	}
	for _, tt := range tests {
		status, code, _ := explorerErrorStatus(tt.err)
		if status != tt.status || code != tt.code {
			t.Errorf("explorerErrorStatus(%v) = %d %s, want %d %s", tt.err, status, code, tt.status, tt.code)
		}
	}
}
