package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folaolaitan/bondctl/internal/bondapi"
	"github.com/folaolaitan/bondctl/internal/model"
	"github.com/folaolaitan/bondctl/internal/session"
)

func newTestModel(records []model.Bond) Model {
	client := bondapi.NewClient("http://unused.invalid")
	sess := session.New(client)
	m := New(client, sess)

	gen := sess.Begin()
	sess.Complete(gen, records, nil)
	m.refreshRows()
	return m
}

func testRecords() []model.Bond {
	one, two := int64(1), int64(2)
	return []model.Bond{
		{ID: &one, Name: "Acme 2030", Issuer: "Acme", Currency: "USD", MaturityDate: "2030-01-01", Status: "Active"},
		{ID: &two, Name: "Globex Perp", Issuer: "Globex", Currency: "EUR", Status: "Matured"},
	}
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{}
}

func TestModel_LoadedRowsFollowDerivedView(t *testing.T) {
	m := newTestModel(testRecords())

	rows := m.table.Rows()
	require.Len(t, rows, 2)
	// Default sort is ascending maturity; the missing date sorts first.
	assert.Equal(t, "Globex Perp", rows[0][1])
	assert.Equal(t, "Acme 2030", rows[1][1])
}

func TestModel_SearchFiltersLive(t *testing.T) {
	m := newTestModel(testRecords())

	next, _ := m.handleKey(keyMsg("/"))
	m = next.(Model)
	require.Equal(t, StateSearch, m.state)

	next, _ = m.handleKey(keyMsg("a"))
	m = next.(Model)
	next, _ = m.handleKey(keyMsg("c"))
	m = next.(Model)

	rows := m.table.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme 2030", rows[0][1])

	// Esc leaves search mode but keeps the query applied.
	next, _ = m.handleKey(keyMsg("esc"))
	m = next.(Model)
	assert.Equal(t, StateTable, m.state)
	assert.Equal(t, "ac", m.session.Criteria().Query)
}

func TestModel_CycleSortAndCurrency(t *testing.T) {
	m := newTestModel(testRecords())

	next, _ := m.handleKey(keyMsg("s"))
	m = next.(Model)
	assert.Equal(t, model.SortMaturityDesc, m.session.Criteria().Sort)

	next, _ = m.handleKey(keyMsg("c"))
	m = next.(Model)
	assert.Equal(t, "USD", m.session.Criteria().Currency)
	require.Len(t, m.table.Rows(), 1)

	next, _ = m.handleKey(keyMsg("c"))
	m = next.(Model)
	assert.Equal(t, "EUR", m.session.Criteria().Currency)

	next, _ = m.handleKey(keyMsg("c"))
	m = next.(Model)
	assert.Equal(t, "", m.session.Criteria().Currency, "cycles back to no filter")
	assert.Len(t, m.table.Rows(), 2)
}

func TestModel_DeleteRequiresConfirmation(t *testing.T) {
	m := newTestModel(testRecords())

	next, _ := m.handleKey(keyMsg("d"))
	m = next.(Model)
	require.Equal(t, StateConfirmDelete, m.state)
	require.NotNil(t, m.pending)

	next, _ = m.handleKey(keyMsg("esc"))
	m = next.(Model)
	assert.Equal(t, StateTable, m.state)
	assert.Nil(t, m.pending, "declining leaves the record alone")
}

func TestModel_StaleFetchDoesNotReplaceRows(t *testing.T) {
	m := newTestModel(testRecords())

	slow := m.session.Begin()
	fast := m.session.Begin()

	next, _ := m.Update(bondsLoadedMsg{gen: fast, records: testRecords()[:1]})
	m = next.(Model)
	require.Len(t, m.table.Rows(), 1)

	next, _ = m.Update(bondsLoadedMsg{gen: slow, records: testRecords()})
	m = next.(Model)
	assert.Len(t, m.table.Rows(), 1, "stale generation dropped")
}
