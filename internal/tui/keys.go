package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/folaolaitan/bondctl/internal/model"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateSearch:
		return m.handleSearchKey(msg)
	case StateForm:
		return m.handleFormKey(msg)
	case StateConfirmDelete:
		return m.handleConfirmKey(msg)
	default:
		return m.handleTableKey(msg)
	}
}

func (m Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Search):
		m.state = StateSearch
		m.search.Focus()
		return m, nil

	case key.Matches(msg, m.keymap.CycleSort):
		m.cycleSort()
		m.refreshRows()
		return m, nil

	case key.Matches(msg, m.keymap.CycleCcy):
		m.cycleCurrency()
		m.refreshRows()
		return m, nil

	case key.Matches(msg, m.keymap.ClearFilters):
		m.session.Clear()
		m.search.SetValue("")
		m.sortIdx = 0
		m.status = ""
		return m, m.startFetch()

	case key.Matches(msg, m.keymap.Refresh):
		m.status = ""
		return m, m.startFetch()

	case key.Matches(msg, m.keymap.Add):
		m.form = newForm(nil, m.session.Facets())
		m.state = StateForm
		return m, m.form.Focus()

	case key.Matches(msg, m.keymap.Edit):
		if b := m.selected(); b != nil {
			m.form = newForm(b, m.session.Facets())
			m.state = StateForm
			return m, m.form.Focus()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Delete):
		if b := m.selected(); b != nil && b.Persisted() {
			m.pending = b
			m.state = StateConfirmDelete
		}
		return m, nil
	}

	return m.delegate(msg)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.state = StateTable
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	// Search is a client-side criterion: re-derive on every keystroke.
	c := m.session.Criteria()
	c.Query = m.search.Value()
	m.session.SetCriteria(c)
	m.refreshRows()
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = StateTable
		m.lastErr = nil
		return m, nil
	case "ctrl+s":
		return m.submitForm()
	case "enter":
		if m.form.onLastField() {
			return m.submitForm()
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	bond, err := m.form.Bond()
	if err != nil {
		// Keep the form open for correction.
		m.lastErr = err
		return m, nil
	}
	m.loading = true
	return m, saveCmd(m.client, bond)
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Confirm):
		m.loading = true
		return m, deleteCmd(m.client, m.pending)
	case key.Matches(msg, m.keymap.Cancel), key.Matches(msg, m.keymap.Quit):
		m.state = StateTable
		m.pending = nil
		return m, nil
	}
	return m, nil
}

// cycleSort advances through the eight orderings.
func (m *Model) cycleSort() {
	m.sortIdx = (m.sortIdx + 1) % len(model.SortKeys)
	c := m.session.Criteria()
	c.Sort = model.SortKeys[m.sortIdx]
	m.session.SetCriteria(c)
}

// cycleCurrency rotates through "" plus the currencies observed in the
// loaded set.
func (m *Model) cycleCurrency() {
	options := append([]string{""}, m.session.Facets().Currencies...)
	c := m.session.Criteria()
	current := 0
	for i, o := range options {
		if o == c.Currency {
			current = i
			break
		}
	}
	c.Currency = options[(current+1)%len(options)]
	m.session.SetCriteria(c)
}
