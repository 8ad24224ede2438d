package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackdeck/internal/decks"
	"github.com/matzehuels/stackdeck/pkg/cache"
	"github.com/matzehuels/stackdeck/pkg/pipeline"
	"github.com/matzehuels/stackdeck/pkg/render/inspect"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(c, nil, logger, decks.Build)
	ts := httptest.NewServer(New(runner, logger).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, body
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/health")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), `"ok"`) {
		t.Errorf("body = %s", body)
	}
}

func TestListDecks(t *testing.T) {
	ts := newTestServer(t)
	_, body := get(t, ts.URL+"/api/v1/decks")
	var entries []deckEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != len(decks.Names()) {
		t.Errorf("got %d decks, want %d", len(entries), len(decks.Names()))
	}
}

func TestGetArtifactCaches(t *testing.T) {
	ts := newTestServer(t)
	url := ts.URL + "/api/v1/decks/agentic?format=json"

	first, body1 := get(t, url)
	if first.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", first.StatusCode, body1)
	}
	if ct := first.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if first.Header.Get("X-Cache") != "miss" {
		t.Errorf("first X-Cache = %q, want miss", first.Header.Get("X-Cache"))
	}

	second, body2 := get(t, url)
	if second.Header.Get("X-Cache") != "hit" {
		t.Errorf("second X-Cache = %q, want hit", second.Header.Get("X-Cache"))
	}
	if !bytes.Equal(body1, body2) {
		t.Error("cached artifact differs")
	}
	if first.Header.Get("X-Deck-Hash") == "" || first.Header.Get("X-Deck-Hash") != second.Header.Get("X-Deck-Hash") {
		t.Error("deck hash missing or unstable")
	}
}

func TestGetPPTXReadsBack(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/api/v1/decks/overview")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	rep, err := inspect.Bytes(body)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if len(rep.Slides) != 18 {
		t.Errorf("slides = %d, want 18", len(rep.Slides))
	}
}

func TestErrors(t *testing.T) {
	ts := newTestServer(t)
	tests := []struct {
		name   string
		path   string
		status int
		code   string
	}{
		{"unknown deck", "/api/v1/decks/missing", http.StatusNotFound, "DECK_NOT_FOUND"},
		{"bad format", "/api/v1/decks/overview?format=gif", http.StatusBadRequest, "INVALID_FORMAT"},
		{"bad slide", "/api/v1/decks/overview?format=svg&slide=x", http.StatusBadRequest, "INVALID_INPUT"},
		{"slide out of range", "/api/v1/decks/overview?format=svg&slide=99", http.StatusNotFound, "NOT_FOUND"},
		{"dpi NaN", "/api/v1/decks/overview?format=png&dpi=NaN", http.StatusBadRequest, "INVALID_INPUT"},
		{"dpi Inf", "/api/v1/decks/overview?format=png&dpi=Inf", http.StatusBadRequest, "INVALID_INPUT"},
		{"dpi too high", "/api/v1/decks/overview?format=png&dpi=100000", http.StatusBadRequest, "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d (%s)", resp.StatusCode, tt.status, body)
			}
			var e errorBody
			if err := json.Unmarshal(body, &e); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if e.Code != tt.code {
				t.Errorf("code = %q, want %q", e.Code, tt.code)
			}
		})
	}
}

func TestPostThemeOverlay(t *testing.T) {
	ts := newTestServer(t)
	body := `{"format":"json","theme":{"palette":{"background":"#FFFFFF"}}}`
	resp, err := http.Post(ts.URL+"/api/v1/decks/agentic", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, out)
	}
	if !strings.Contains(string(out), "#FFFFFF") {
		t.Error("posted background not applied")
	}

	resp, err = http.Post(ts.URL+"/api/v1/decks/agentic", "application/json", strings.NewReader(`{"bogus":1}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown field status = %d, want 400", resp.StatusCode)
	}
}

func TestRenderDocument(t *testing.T) {
	ts := newTestServer(t)
	_, doc := get(t, ts.URL+"/api/v1/decks/agentic?format=json")

	resp, err := http.Post(ts.URL+"/api/v1/render?format=svg&slide=2", "application/json", bytes.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, out)
	}
	if !bytes.HasPrefix(out, []byte("<svg")) {
		t.Errorf("body is not svg: %.40s", out)
	}

	resp, err = http.Post(ts.URL+"/api/v1/render", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("empty body status = %d, want 400", resp.StatusCode)
	}
}

func TestDeckStats(t *testing.T) {
	ts := newTestServer(t)
	_, body := get(t, ts.URL+"/api/v1/decks/overview/stats")
	var st struct {
		Slides int  `json:"slides"`
		Cached bool `json:"cached"`
	}
	if err := json.Unmarshal(body, &st); err != nil {
		t.Fatalf("decode: %v (%s)", err, body)
	}
	if st.Slides != 18 || st.Cached {
		t.Errorf("stats = %+v, want 18 fresh slides", st)
	}
}
