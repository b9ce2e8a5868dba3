// Package httpapi exposes the knowledge-base store over HTTP: item,
// category and location CRUD, search, type-scoped listings, bulk
// export/import, image upload, and static serving of normalized images.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/ShalunBdk/ZavodHelper/internal/sqlite"
	"github.com/ShalunBdk/ZavodHelper/pkg/types"
	"github.com/ShalunBdk/ZavodHelper/pkg/zavod"
)

// Server routes HTTP requests to store operations and maps store errors to
// client-visible statuses.
type Server struct {
	cfg    types.Config
	store  *sqlite.Store
	log    zerolog.Logger
	router chi.Router
}

// New builds a Server with its full route table.
func New(cfg types.Config, store *sqlite.Store, log zerolog.Logger) *Server {
	s := &Server{
		cfg:   cfg,
		store: store,
		log:   log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)

	r.Route("/items", func(r chi.Router) {
		r.Get("/", s.handleListItems)
		r.Post("/", s.handleCreateItem)
		r.Get("/search", s.handleSearchItems)
		r.Get("/{id}", s.handleGetItem)
		r.Put("/{id}", s.handleUpdateItem)
		r.Delete("/{id}", s.handleDeleteItem)
	})

	r.Get("/incidents", s.handleIncidents)
	r.Get("/instructions", s.handleInstructions)

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", s.handleListCategories)
		r.Post("/", s.handleCreateCategory)
		r.Get("/{id}", s.handleGetCategory)
		r.Put("/{id}", s.handleUpdateCategory)
		r.Delete("/{id}", s.handleDeleteCategory)
	})

	r.Route("/locations", func(r chi.Router) {
		r.Get("/", s.handleListLocations)
		r.Post("/", s.handleCreateLocation)
		r.Get("/{id}", s.handleGetLocation)
		r.Put("/{id}", s.handleUpdateLocation)
		r.Delete("/{id}", s.handleDeleteLocation)
	})

	r.Get("/export", s.handleExport)
	r.Post("/import", s.handleImport)
	r.Delete("/clear", s.handleClear)

	r.Post("/upload", s.handleUpload)
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Uploads()))))

	s.router = r
	return s
}

// ServeHTTP makes the server an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": zavod.Version,
	})
}

// logRequests emits one structured log line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}
