// Package server serves catalog decks and rendered artifacts over HTTP.
//
// Routes:
//
//	GET  /health                    liveness check
//	GET  /api/v1/decks              catalog listing
//	GET  /api/v1/decks/{name}       one artifact, chosen by query parameters
//	POST /api/v1/decks/{name}       one artifact, options and theme in the body
//	GET  /api/v1/decks/{name}/stats deck statistics
//	POST /api/v1/render             render a deck JSON document from the body
//
// Artifact responses carry X-Deck-Hash and X-Cache (hit or miss) headers.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/stackdeck/pkg/observability"
	"github.com/matzehuels/stackdeck/pkg/pipeline"
)

const (
	requestTimeout    = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second

	// maxBodyBytes bounds request bodies (themes and deck documents).
	maxBodyBytes = 8 << 20
)

// Server wraps the chi router and the pipeline runner behind it.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router *chi.Mux
}

// New builds the router. The runner supplies caching and deck builders.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, logger: logger, router: chi.NewRouter()}

	r := s.router
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(hooks)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(requestTimeout))
	r.Use(chimw.CleanPath)

	r.Get("/health", s.health)
	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/decks", s.listDecks)
		api.Route("/decks/{name}", func(d chi.Router) {
			d.Get("/", s.getArtifact)
			d.Post("/", s.postArtifact)
			d.Get("/stats", s.deckStats)
		})
		api.Post("/render", s.renderDocument)
	})

	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx ends, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// hooks reports every request to the registered server hooks.
func hooks(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h := observability.Server()
		h.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		h.OnResponse(r.Context(), r.Method, route, status, time.Since(start))
	})
}
