// Package api expone el servicio de navegación al front end del navegador.
package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"campus_nav/internal/models"
)

// Navigator es lo que los handlers necesitan del servicio.
type Navigator interface {
	FindRoute(ctx context.Context, from, to string) (models.PathResult, bool, error)
	ReachableWithin(ctx context.Context, from string, seconds float64) ([]models.Reachable, error)
	FindInaccessible(ctx context.Context, start string) ([]string, []string, error)
	Nodes(ctx context.Context) ([]models.CampusNode, error)
	Blocked(ctx context.Context) ([]models.BlockedPath, error)
	BlockPath(ctx context.Context, block models.BlockedPath) error
	UnblockPath(ctx context.Context, from, to string) error
	WriteDOT(ctx context.Context, w io.Writer) error
}

type Options struct {
	AllowedOrigins []string
	// Metrics se monta en /metrics si no es nil.
	Metrics http.Handler
}

// NewRouter arma las rutas HTTP con CORS para el front end.
func NewRouter(nav Navigator, logger *slog.Logger, opts Options) http.Handler {
	h := &Handler{nav: nav, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/nodes", h.Nodes)
		r.Get("/route", h.Route)
		r.Get("/reachable", h.Reachable)
		r.Get("/inaccessible", h.Inaccessible)
		r.Get("/blocked", h.ListBlocked)
		r.Post("/blocked", h.Block)
		r.Delete("/blocked", h.Unblock)
		r.Get("/graph.dot", h.GraphDOT)
	})

	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         600,
	})
	return c.Handler(r)
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			started := time.Now()
			next.ServeHTTP(ww, r)
			logger.DebugContext(r.Context(), "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(started),
				"request_id", middleware.GetReqID(r.Context()))
		})
	}
}
