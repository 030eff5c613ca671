// Package notes implements the note retrieval, transformation, and
// listing service over the remote backend: fetch and normalize, cache,
// transform for display, sort, filter, paginate.
package notes

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/starford/notefeed/internal/backend"
	"github.com/starford/notefeed/internal/cache"
	"github.com/starford/notefeed/internal/dateutil"
	"github.com/starford/notefeed/internal/models"
	"github.com/starford/notefeed/internal/search"
)

const (
	// Operation is the backend read operation this service is built on.
	Operation = "notes.get"

	// DefaultPageSize is used when a caller passes a non-positive size.
	DefaultPageSize = 50

	// DefaultTTL is how long a fetched collection serves from cache.
	DefaultTTL = 5 * time.Minute
)

// Backend is the remote-call capability the service consumes.
type Backend interface {
	Call(ctx context.Context, operation string, params any) (json.RawMessage, error)
}

// Options configure a Service. Zero values fall back to defaults.
type Options struct {
	TTL      time.Duration
	Location *time.Location
	Logger   *slog.Logger
	// OnRefresh is invoked after Refresh drops the cache, e.g. to notify
	// connected table UIs. May be nil.
	OnRefresh func()
}

// Service is the read-side note engine. Safe for concurrent use.
type Service struct {
	backend   Backend
	cache     *cache.Cache[[]models.Note]
	ttl       time.Duration
	loc       *time.Location
	logger    *slog.Logger
	group     singleflight.Group
	onRefresh func()
}

// NewService creates a Service over the given backend.
func NewService(b Backend, opts Options) *Service {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Service{
		backend:   b,
		cache:     cache.New[[]models.Note](),
		ttl:       opts.TTL,
		loc:       opts.Location,
		logger:    opts.Logger,
		onRefresh: opts.OnRefresh,
	}
}

// FetchAll returns the full normalized note collection. A live cache
// entry is served without contacting the backend unless forceFresh is
// set. Concurrent cold fetches for the same key share a single backend
// call. Remote failures propagate unmodified and leave the cache
// untouched; an envelope matching no known shape is zero records, not an
// error.
func (s *Service) FetchAll(ctx context.Context, forceFresh bool) ([]models.Note, error) {
	key := cache.Fingerprint(Operation, nil)

	if !forceFresh {
		if cached, ok := s.cache.Get(key); ok {
			return cached, nil
		}
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		envelope, callErr := s.backend.Call(ctx, Operation, nil)
		if callErr != nil {
			return nil, callErr
		}
		extracted := backend.ExtractNotes(envelope)
		s.logger.Debug("notes fetched",
			slog.Int("envelope_bytes", len(envelope)),
			slog.Int("count", len(extracted)))
		s.cache.Put(key, extracted, s.ttl)
		return extracted, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Note), nil
}

// ListParams control a ListNotes call.
type ListParams struct {
	PageSize   int
	After      string
	Query      string
	ForceFresh bool
}

// ListResult is one page of display records. NextCursor is empty when no
// records remain past this page.
type ListResult struct {
	Notes      []models.NoteDisplay `json:"notes"`
	NextCursor string               `json:"next_cursor,omitempty"`
}

// ListNotes fetches, transforms, sorts, filters, and paginates the note
// collection. It never fails: any internal error is logged and degraded
// to an empty page with no cursor, so callers cannot distinguish "no
// matches" from "fetch failed" through this operation alone.
func (s *Service) ListNotes(ctx context.Context, params ListParams) ListResult {
	raw, err := s.FetchAll(ctx, params.ForceFresh)
	if err != nil {
		s.logger.Error("list notes: fetch failed", slog.String("error", err.Error()))
		return ListResult{Notes: []models.NoteDisplay{}}
	}

	displays := make([]models.NoteDisplay, len(raw))
	for i, n := range raw {
		displays[i] = ToDisplay(n, s.loc)
	}
	SortByCreatedDesc(displays, s.loc)
	displays = search.Filter(displays, params.Query, s.loc)

	items, next := Page(displays, params.PageSize, params.After)
	return ListResult{Notes: items, NextCursor: next}
}

// Refresh drops every cache entry so the next fetch hits the backend. It
// does not itself trigger a fetch.
func (s *Service) Refresh() {
	s.cache.InvalidateAll()
	s.logger.Info("note cache invalidated")
	if s.onRefresh != nil {
		s.onRefresh()
	}
}

// FormatDate exposes the display date formatter in the service timezone,
// for presentation code that renders timestamps outside the listing flow.
func (s *Service) FormatDate(value any) dateutil.Formatted {
	return dateutil.Format(value, s.loc)
}

// Location returns the timezone all dates are parsed and matched in.
func (s *Service) Location() *time.Location {
	return s.loc
}
