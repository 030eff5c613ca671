// Package testutil provides shared helpers for faking the notes backend.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/starford/notefeed/internal/backend"
	"github.com/starford/notefeed/internal/models"
)

// Envelope wraps notes in one of the response shapes the backend has
// shipped. shape is one of "data.data", "data.value.data", "value.data",
// "data", or "root".
func Envelope(shape string, notes []models.Note) any {
	switch shape {
	case "data.data":
		return map[string]any{
			"call": map[string]any{"operation": "notes.get"},
			"data": map[string]any{"data": notes, "message": nil, "success": true},
		}
	case "data.value.data":
		return map[string]any{
			"data": map[string]any{"value": map[string]any{"data": notes}},
		}
	case "value.data":
		return map[string]any{
			"value": map[string]any{"data": notes},
		}
	case "data":
		return map[string]any{"data": notes}
	case "root":
		return notes
	default:
		panic("unknown envelope shape: " + shape)
	}
}

// EnvelopeShapes lists every shape Envelope understands, in the order the
// normalizer probes them.
var EnvelopeShapes = []string{"data.data", "data.value.data", "value.data", "data", "root"}

// BackendServer starts an httptest server that answers every call with the
// given envelope and returns a client pointed at it. calls, when non-nil,
// is incremented per request.
func BackendServer(t *testing.T, envelope any, calls *int) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls != nil {
			*calls++
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(envelope); err != nil {
			t.Errorf("encode envelope: %v", err)
		}
	}))
	t.Cleanup(srv.Close)
	return backend.NewClient(srv.URL, "")
}

// FailingBackend returns a client whose every call fails with the given
// HTTP status.
func FailingBackend(t *testing.T, status int) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return backend.NewClient(srv.URL, "")
}

// SeedNotes returns n notes with creation times ascending from start in
// one-hour steps, so index 0 is the oldest.
func SeedNotes(n int, start time.Time) []models.Note {
	notes := make([]models.Note, n)
	for i := range notes {
		notes[i] = models.Note{
			ID:         uuid.NewString(),
			User:       "user-1",
			Text:       "seed note",
			CreatedOn:  float64(start.Add(time.Duration(i) * time.Hour).UnixMilli()),
			AuthorID:   "author-1",
			AuthorName: "Seed Author",
		}
	}
	return notes
}

// StrPtr returns a pointer to s.
func StrPtr(s string) *string {
	return &s
}
