package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/folaolaitan/bondctl/internal/bondapi"
	"github.com/folaolaitan/bondctl/internal/session"
)

// Run starts the interactive catalog browser and blocks until the user
// quits.
func Run(ctx context.Context, client *bondapi.Client, sess *session.Session) error {
	program := tea.NewProgram(
		New(client, sess),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browse mode failed: %w", err)
	}
	return nil
}
