package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/folaolaitan/bondctl/internal/cli"
	"github.com/folaolaitan/bondctl/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PrimaryColor).
			Padding(0, 1)

	bannerErrStyle = lipgloss.NewStyle().
			Foreground(cli.ErrorColor).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(cli.SubtleColor)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cli.PrimaryColor).
			Padding(1, 2)
)

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateForm:
		return m.formView()
	case StateConfirmDelete:
		return m.confirmView()
	default:
		return m.tableView()
	}
}

func (m Model) tableView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Bond Catalog"))
	b.WriteString("\n")

	b.WriteString(m.search.View())
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(footerStyle.Render("Loading…"))
	case m.lastErr != nil:
		b.WriteString(bannerErrStyle.Render("Error: " + m.lastErr.Error()))
	case m.status != "":
		b.WriteString(cli.SuccessStyle.Render(m.status))
	}
	b.WriteString("\n")

	b.WriteString(m.table.View())
	b.WriteString("\n")

	b.WriteString(footerStyle.Render(m.footer()))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("/ search · s sort · c currency · a add · e edit · d delete · x clear · r refresh · q quit"))

	return b.String()
}

func (m Model) footer() string {
	c := m.session.Criteria()

	parts := []string{
		fmt.Sprintf("Showing %d of %d bonds", len(m.session.View()), len(m.session.Records())),
		"Sort: " + c.Sort.Description(),
	}
	if c.Currency != "" {
		parts = append(parts, "Currency: "+c.Currency)
	}
	return strings.Join(parts, "  ·  ")
}

func (m Model) formView() string {
	var b strings.Builder

	title := "Add Bond"
	if m.form.Editing() {
		title = "Edit Bond"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for i := range m.form.inputs {
		label := fieldLabels[i]
		if i == m.form.focus {
			label = cli.PromptStyle.Render("> " + label)
		} else {
			label = "  " + label
		}
		b.WriteString(fmt.Sprintf("%-22s %s\n", label, m.form.inputs[i].View()))
	}

	if m.lastErr != nil {
		b.WriteString("\n")
		b.WriteString(bannerErrStyle.Render(m.lastErr.Error()))
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("tab next · shift+tab previous · ctrl+s save · esc cancel"))

	return modalStyle.Render(b.String())
}

func (m Model) confirmView() string {
	name := ""
	if m.pending != nil {
		name = model.DisplayString(m.pending.Name)
	}

	content := fmt.Sprintf("Delete bond %q?\n\n%s",
		name,
		footerStyle.Render("y delete · esc cancel"))
	return modalStyle.Render(content)
}
