package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folaolaitan/bondctl/internal/catalog"
	"github.com/folaolaitan/bondctl/internal/model"
)

type fakeFetcher struct {
	lastKind string
	records  []model.Bond
	err      error
}

func (f *fakeFetcher) Fetch(_ context.Context, req catalog.Request) ([]model.Bond, error) {
	f.lastKind = req.Kind
	return f.records, f.err
}

func TestSession_RefreshReplacesRecordSet(t *testing.T) {
	fetcher := &fakeFetcher{records: []model.Bond{{Name: "A", Issuer: "Acme"}, {Name: "B", Issuer: "Globex"}}}
	s := New(fetcher)

	s.SetCriteria(model.Criteria{Issuer: "Acme"})
	require.NoError(t, s.Refresh(context.Background()))

	assert.Equal(t, catalog.KindIssuer, fetcher.lastKind)
	assert.Len(t, s.Records(), 2)
	assert.Equal(t, []string{"Acme", "Globex"}, s.Facets().Issuers)
	assert.NoError(t, s.Err())

	// Next fetch wholly replaces the set.
	fetcher.records = []model.Bond{{Name: "C", Issuer: "Initech"}}
	s.Clear()
	require.NoError(t, s.Refresh(context.Background()))
	assert.Equal(t, catalog.KindAll, fetcher.lastKind)
	assert.Len(t, s.Records(), 1)
	assert.Equal(t, []string{"Initech"}, s.Facets().Issuers)
}

func TestSession_FailedFetchClearsRecords(t *testing.T) {
	fetcher := &fakeFetcher{records: []model.Bond{{Name: "A"}}}
	s := New(fetcher)
	require.NoError(t, s.Refresh(context.Background()))
	require.Len(t, s.Records(), 1)

	fetcher.err = errors.New("503 Service Unavailable")
	err := s.Refresh(context.Background())
	require.Error(t, err)

	assert.Empty(t, s.Records(), "no stale data behind an error")
	assert.Empty(t, s.Facets().Issuers)
	assert.EqualError(t, s.Err(), "503 Service Unavailable")
}

func TestSession_StaleResponseDropped(t *testing.T) {
	s := New(&fakeFetcher{})

	slow := s.Begin()
	fast := s.Begin()

	applied := s.Complete(fast, []model.Bond{{Name: "fresh"}}, nil)
	assert.True(t, applied)

	applied = s.Complete(slow, []model.Bond{{Name: "stale"}}, nil)
	assert.False(t, applied, "earlier generation must not overwrite newer state")

	records := s.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "fresh", records[0].Name)
}

func TestSession_ViewAppliesClientCriteria(t *testing.T) {
	fetcher := &fakeFetcher{records: []model.Bond{
		{Name: "Treasury", Currency: "USD", MaturityDate: "2031-01-01"},
		{Name: "Acme Note", Currency: "EUR", MaturityDate: "2029-01-01"},
		{Name: "Acme Bill", Currency: "USD", MaturityDate: "2030-01-01"},
	}}
	s := New(fetcher)
	require.NoError(t, s.Refresh(context.Background()))

	s.SetCriteria(model.Criteria{Query: "acme", Currency: "USD"})
	view := s.View()
	require.Len(t, view, 1)
	assert.Equal(t, "Acme Bill", view[0].Name)

	// Sort key applies to the derived view.
	s.SetCriteria(model.Criteria{Sort: model.SortMaturityDesc})
	view = s.View()
	require.Len(t, view, 3)
	assert.Equal(t, "Treasury", view[0].Name)
}
