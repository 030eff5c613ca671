package api

import (
	"net/http"
	"strconv"

	"github.com/starford/notefeed/internal/notes"
)

// Handler holds API route handlers.
type Handler struct {
	svc *notes.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *notes.Service) *Handler {
	return &Handler{svc: svc}
}

// ListNotes handles GET /api/notes.
//
// Query parameters: page_size (default 50), after (opaque cursor from the
// previous page), q (free-text search), fresh (bypass the cache).
// Always responds 200; internal failures degrade to an empty list with no
// cursor inside the service.
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pageSize, _ := strconv.Atoi(q.Get("page_size"))
	fresh, _ := strconv.ParseBool(q.Get("fresh"))

	result := h.svc.ListNotes(r.Context(), notes.ListParams{
		PageSize:   pageSize,
		After:      q.Get("after"),
		Query:      q.Get("q"),
		ForceFresh: fresh,
	})
	writeJSON(w, http.StatusOK, result)
}

// Refresh handles POST /api/refresh. It invalidates every cache entry and
// returns 204; it does not itself fetch.
func (h *Handler) Refresh(w http.ResponseWriter, _ *http.Request) {
	h.svc.Refresh()
	w.WriteHeader(http.StatusNoContent)
}

// FormatDate handles GET /api/dates/format. value is either epoch
// milliseconds or an ISO-8601 string; omitting it yields the missing-date
// sentinels. The formatter is total, so this endpoint always responds 200.
func (h *Handler) FormatDate(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("value")

	var value any
	if raw != "" {
		if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
			value = ms
		} else {
			value = raw
		}
	}
	writeJSON(w, http.StatusOK, h.svc.FormatDate(value))
}
