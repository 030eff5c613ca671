package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/starford/notefeed/internal/notes"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *notes.Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Note listing and cache control.
	r.Get("/notes", h.ListNotes)
	r.Post("/refresh", h.Refresh)

	// Standalone date formatter for presentation code.
	r.Get("/dates/format", h.FormatDate)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
