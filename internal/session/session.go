// Package session owns the browser's mutable state: the single in-memory
// record set, the current criteria, and the last fetch error. Every fetch
// wholly replaces the record set; a failed fetch clears it so stale data is
// never shown behind an error. A monotonic generation token guards against a
// slow earlier response overwriting a faster later one when fetches are
// triggered in quick succession (browse mode).
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/folaolaitan/bondctl/internal/bondapi"
	"github.com/folaolaitan/bondctl/internal/catalog"
	"github.com/folaolaitan/bondctl/internal/model"
)

// Fetcher is the slice of the API client the session needs.
type Fetcher interface {
	Fetch(ctx context.Context, req catalog.Request) ([]model.Bond, error)
}

var _ Fetcher = (*bondapi.Client)(nil)

// Session is safe for use from bubbletea command goroutines; one logical
// session is still the only writer.
type Session struct {
	fetcher  Fetcher
	mu       sync.Mutex
	gen      uint64
	records  []model.Bond
	facets   catalog.Facets
	criteria model.Criteria
	lastErr  error
}

// New creates a session around the given fetcher.
func New(fetcher Fetcher) *Session {
	return &Session{fetcher: fetcher}
}

// Criteria returns a copy of the current criteria.
func (s *Session) Criteria() model.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// SetCriteria replaces the criteria. The record set is untouched until the
// next fetch.
func (s *Session) SetCriteria(c model.Criteria) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = c
}

// Clear resets every criteria field. Callers follow up with Refresh, which
// then resolves to the fetch-all request.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Clear()
}

// Records returns the currently loaded record set.
func (s *Session) Records() []model.Bond {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records
}

// Facets returns the suggestion values derived from the loaded set.
func (s *Session) Facets() catalog.Facets {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.facets
}

// Err returns the error of the most recent completed fetch, nil after a
// successful one.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// View derives the displayed list from the loaded set and the client-side
// criteria (search text, currency equality, sort key).
func (s *Session) View() []model.Bond {
	s.mu.Lock()
	records, c := s.records, s.criteria
	s.mu.Unlock()
	return catalog.Derive(records, c.Query, c.Currency, c.Sort)
}

// Begin starts a fetch and returns its generation token.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

// Complete applies a fetch result if its generation is still current. It
// reports whether the result was applied; a stale result is dropped without
// touching the record set.
func (s *Session) Complete(gen uint64, records []model.Bond, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		slog.Debug("dropping stale fetch response", "generation", gen, "current", s.gen)
		return false
	}

	if err != nil {
		s.records = nil
		s.facets = catalog.Facets{}
		s.lastErr = err
		return true
	}

	s.records = records
	s.facets = catalog.DeriveFacets(records)
	s.lastErr = nil
	return true
}

// Refresh resolves the current criteria to a server query, executes it, and
// replaces the record set with the response. On failure the set is cleared
// and the error recorded.
func (s *Session) Refresh(ctx context.Context) error {
	req := catalog.Resolve(s.Criteria())
	slog.Debug("resolved server query", "kind", req.Kind, "path", req.Path)

	gen := s.Begin()
	records, err := s.fetcher.Fetch(ctx, req)
	s.Complete(gen, records, err)
	return err
}

// RefreshAll fetches the unfiltered record set regardless of criteria, used
// after mutations.
func (s *Session) RefreshAll(ctx context.Context) error {
	gen := s.Begin()
	records, err := s.fetcher.Fetch(ctx, catalog.FetchAll())
	s.Complete(gen, records, err)
	return err
}
