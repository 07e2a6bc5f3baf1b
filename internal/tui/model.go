// Package tui implements the interactive catalog browser: a table over the
// derived view with live search, sort cycling, a currency filter, an add/edit
// form, and a delete-confirmation modal.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/folaolaitan/bondctl/internal/bondapi"
	"github.com/folaolaitan/bondctl/internal/model"
	"github.com/folaolaitan/bondctl/internal/session"
)

// State represents the current interaction state.
type State int

const (
	StateTable State = iota
	StateSearch
	StateForm
	StateConfirmDelete
)

// Model holds the browse-mode state.
type Model struct {
	client   *bondapi.Client
	session  *session.Session
	form     formModel
	lastErr  error
	status   string
	pending  *model.Bond // delete target while confirming
	table    table.Model
	search   textinput.Model
	keymap   KeyMap
	sortIdx  int
	width    int
	height   int
	state    State
	loading  bool
	quitting bool
}

// New creates the browse model around an API client and a session.
func New(client *bondapi.Client, sess *session.Session) Model {
	search := textinput.New()
	search.Placeholder = "name / issuer / rating / status / currency"
	search.Prompt = "Search: "
	search.CharLimit = 64

	return Model{
		client:  client,
		session: sess,
		search:  search,
		keymap:  DefaultKeyMap(),
		table:   newBondTable(),
		state:   StateTable,
	}
}

func newBondTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Name", Width: 24},
		{Title: "Issuer", Width: 16},
		{Title: "Face", Width: 10},
		{Title: "Coupon", Width: 8},
		{Title: "Rating", Width: 8},
		{Title: "Issue", Width: 12},
		{Title: "Maturity", Width: 12},
		{Title: "Status", Width: 10},
		{Title: "Ccy", Width: 5},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	return t
}

// Init starts the initial fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, m.startFetch())
}

// startFetch begins a generation-guarded fetch for the current criteria.
func (m *Model) startFetch() tea.Cmd {
	m.loading = true
	gen := m.session.Begin()
	req := m.session.Criteria()
	return fetchCmd(m.client, gen, req)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(5, m.height-8))
		return m, nil

	case bondsLoadedMsg:
		applied := m.session.Complete(msg.gen, msg.records, msg.err)
		if !applied {
			return m, nil
		}
		m.loading = false
		m.lastErr = msg.err
		m.refreshRows()
		return m, nil

	case mutationDoneMsg:
		m.loading = false
		if msg.err != nil {
			// The form stays open so the user can retry.
			m.lastErr = msg.err
			if m.state == StateConfirmDelete {
				m.state = StateTable
				m.pending = nil
			}
			return m, nil
		}
		m.lastErr = nil
		m.status = msg.status
		m.state = StateTable
		m.pending = nil
		return m, m.startFetchAll()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.delegate(msg)
}

// startFetchAll refetches the unfiltered set after a mutation.
func (m *Model) startFetchAll() tea.Cmd {
	m.loading = true
	gen := m.session.Begin()
	return fetchAllCmd(m.client, gen)
}

// refreshRows rebuilds the table from the freshly derived view.
func (m *Model) refreshRows() {
	view := m.session.View()
	rows := make([]table.Row, len(view))
	for i, b := range view {
		id := ""
		if b.ID != nil {
			id = fmt.Sprintf("%d", *b.ID)
		}
		rows[i] = table.Row{
			id,
			model.DisplayString(b.Name),
			model.DisplayString(b.Issuer),
			model.DisplayDecimal(b.FaceValue),
			model.DisplayDecimal(b.CouponRate),
			model.DisplayString(b.Rating),
			model.DisplayDate(b.IssueDate),
			model.DisplayDate(b.MaturityDate),
			model.DisplayString(b.Status),
			model.DisplayString(b.Currency),
		}
	}
	m.table.SetRows(rows)
}

// selected returns the bond behind the table cursor, nil when the view is
// empty.
func (m *Model) selected() *model.Bond {
	view := m.session.View()
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(view) {
		return nil
	}
	b := view[idx]
	return &b
}

func (m *Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case StateSearch:
		m.search, cmd = m.search.Update(msg)
	case StateForm:
		m.form, cmd = m.form.Update(msg)
	default:
		m.table, cmd = m.table.Update(msg)
	}
	return *m, cmd
}
