package router

import (
	"net/http"

	"text-extractor/internal/http-server/handler/extract"
	"text-extractor/internal/http-server/middleware"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	ExtractHandler *extract.Handler
}

func SetupRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			next.ServeHTTP(w, r)
		})
	})

	r.Post("/extract-text", h.ExtractHandler.ExtractText)
	r.Get("/health", h.ExtractHandler.Health)
	r.Get("/supported-formats", h.ExtractHandler.SupportedFormats)

	return r
}
