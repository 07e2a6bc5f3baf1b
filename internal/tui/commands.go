package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/folaolaitan/bondctl/internal/bondapi"
	"github.com/folaolaitan/bondctl/internal/catalog"
	"github.com/folaolaitan/bondctl/internal/model"
)

const requestTimeout = 30 * time.Second

// fetchCmd resolves the criteria to the single server query and executes it.
func fetchCmd(client *bondapi.Client, gen uint64, criteria model.Criteria) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		records, err := client.Fetch(ctx, catalog.Resolve(criteria))
		return bondsLoadedMsg{gen: gen, records: records, err: err}
	}
}

// fetchAllCmd fetches the unfiltered set, used after mutations.
func fetchAllCmd(client *bondapi.Client, gen uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		records, err := client.Fetch(ctx, catalog.FetchAll())
		return bondsLoadedMsg{gen: gen, records: records, err: err}
	}
}

// saveCmd creates or updates a bond depending on whether it has an id.
func saveCmd(client *bondapi.Client, bond *model.Bond) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if bond.Persisted() {
			if _, err := client.Update(ctx, bond); err != nil {
				return mutationDoneMsg{err: fmt.Errorf("failed to update bond: %w", err)}
			}
			return mutationDoneMsg{status: fmt.Sprintf("Updated %q", bond.Name)}
		}

		if _, err := client.Create(ctx, bond); err != nil {
			return mutationDoneMsg{err: fmt.Errorf("failed to create bond: %w", err)}
		}
		return mutationDoneMsg{status: fmt.Sprintf("Created %q", bond.Name)}
	}
}

// deleteCmd removes a bond after the user confirmed.
func deleteCmd(client *bondapi.Client, bond *model.Bond) tea.Cmd {
	return func() tea.Msg {
		if bond.ID == nil {
			return mutationDoneMsg{err: fmt.Errorf("bond has no id")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := client.Delete(ctx, *bond.ID); err != nil {
			return mutationDoneMsg{err: fmt.Errorf("failed to delete bond: %w", err)}
		}
		return mutationDoneMsg{status: fmt.Sprintf("Deleted %q", bond.Name)}
	}
}
