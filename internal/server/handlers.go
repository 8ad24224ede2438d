package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/stackdeck/internal/decks"
	"github.com/matzehuels/stackdeck/pkg/buildinfo"
	"github.com/matzehuels/stackdeck/pkg/cache"
	"github.com/matzehuels/stackdeck/pkg/errors"
	"github.com/matzehuels/stackdeck/pkg/pipeline"
	"github.com/matzehuels/stackdeck/pkg/theme"
)

// artifactRequest selects one artifact. Slide is one-based.
type artifactRequest struct {
	Theme      *theme.Theme `json:"theme,omitempty"`
	Format     string       `json:"format,omitempty"`
	Slide      int          `json:"slide,omitempty"`
	DPI        float64      `json:"dpi,omitempty"`
	EmbedFonts bool         `json:"embed_fonts,omitempty"`
	Refresh    bool         `json:"refresh,omitempty"`
}

// options converts the request to pipeline options.
func (a artifactRequest) options() (pipeline.Options, error) {
	slide := a.Slide
	if slide == 0 {
		slide = 1
	}
	if slide < 1 {
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "slide must be at least 1, got %d", a.Slide)
	}
	format := a.Format
	if format == "" {
		format = pipeline.FormatPPTX
	}
	return pipeline.Options{
		Theme:      a.Theme,
		Formats:    []string{format},
		Slide:      slide - 1,
		DPI:        a.DPI,
		EmbedFonts: a.EmbedFonts,
		Refresh:    a.Refresh,
	}, nil
}

// queryRequest reads an artifactRequest from URL query parameters.
func queryRequest(r *http.Request) (artifactRequest, error) {
	q := r.URL.Query()
	req := artifactRequest{Format: q.Get("format")}
	var err error
	if v := q.Get("slide"); v != "" {
		if req.Slide, err = strconv.Atoi(v); err != nil {
			return req, errors.New(errors.ErrCodeInvalidInput, "invalid slide %q", v)
		}
	}
	if v := q.Get("dpi"); v != "" {
		if req.DPI, err = strconv.ParseFloat(v, 64); err != nil {
			return req, errors.New(errors.ErrCodeInvalidInput, "invalid dpi %q", v)
		}
	}
	req.EmbedFonts = queryBool(q.Get("embed_fonts"))
	req.Refresh = queryBool(q.Get("refresh"))
	return req, nil
}

func queryBool(v string) bool {
	b, _ := strconv.ParseBool(v)
	return b
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

type deckEntry struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *Server) listDecks(w http.ResponseWriter, r *http.Request) {
	entries := decks.All()
	out := make([]deckEntry, len(entries))
	for i, e := range entries {
		out[i] = deckEntry{Name: e.Name, Title: e.Title, Description: e.Description}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getArtifact(w http.ResponseWriter, r *http.Request) {
	req, err := queryRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.serveDeck(w, r, req)
}

func (s *Server) postArtifact(w http.ResponseWriter, r *http.Request) {
	// Body theme fields overlay the default theme.
	def := theme.Default()
	req := artifactRequest{Theme: &def}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil && err != io.EOF {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	s.serveDeck(w, r, req)
}

func (s *Server) serveDeck(w http.ResponseWriter, r *http.Request, req artifactRequest) {
	entry, err := decks.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := req.options()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Deck = entry.Name
	s.execute(w, r, opts, entry.Name)
}

func (s *Server) deckStats(w http.ResponseWriter, r *http.Request) {
	entry, err := decks.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	d, data, hit, err := s.runner.BuildWithCacheInfo(r.Context(), pipeline.Options{Deck: entry.Name})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	st := d.Stats()
	writeJSON(w, http.StatusOK, map[string]any{
		"name":       entry.Name,
		"title":      d.Meta.Title,
		"hash":       cache.Hash(data),
		"cached":     hit,
		"slides":     st.Slides,
		"elements":   st.Elements,
		"shapes":     st.Shapes,
		"text_boxes": st.TextBoxes,
	})
}

func (s *Server) renderDocument(w http.ResponseWriter, r *http.Request) {
	req, err := queryRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	doc, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body"))
		return
	}
	if len(doc) == 0 {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "request body must be a deck JSON document"))
		return
	}
	opts, err := req.options()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Document = doc
	s.execute(w, r, opts, "deck")
}

// execute runs the pipeline and writes the single requested artifact.
func (s *Server) execute(w http.ResponseWriter, r *http.Request, opts pipeline.Options, name string) {
	opts.Logger = s.logger
	if err := opts.ValidateForRender(); err != nil {
		s.writeError(w, r, err)
		return
	}
	format := opts.Formats[0]
	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	body := result.Artifacts[format]

	status := "miss"
	if result.CacheInfo.RenderHit {
		status = "hit"
	}
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", name+"."+format))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("X-Deck-Hash", result.DeckHash)
	w.Header().Set("X-Cache", status)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
