package main

import (
	"github.com/spf13/cobra"

	"github.com/folaolaitan/bondctl/internal/session"
	"github.com/folaolaitan/bondctl/internal/tui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Long: `Open a full-screen browser over the bond catalog.

Keys: / search, s cycle sort, c cycle currency, a add, e edit, d delete,
x clear filters, r refresh, q quit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := newClient()
			return tui.Run(cmd.Context(), client, session.New(client))
		},
	}
}
