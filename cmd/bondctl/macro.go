package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/folaolaitan/bondctl/internal/bondapi"
	"github.com/folaolaitan/bondctl/internal/cli"
)

const defaultMacroYear = "2022"

func macroCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "macro",
		Short: "World Bank macro indicators via the catalog service",
	}

	cmd.AddCommand(macroIndicatorCmd("gdp", "GDP (current US$)",
		func(ctx context.Context, c *bondapi.Client, iso3, year string) (*bondapi.Indicator, error) {
			return c.GDP(ctx, iso3, year)
		}))
	cmd.AddCommand(macroIndicatorCmd("inflation", "CPI inflation (annual %)",
		func(ctx context.Context, c *bondapi.Client, iso3, year string) (*bondapi.Indicator, error) {
			return c.Inflation(ctx, iso3, year)
		}))

	return cmd
}

func macroIndicatorCmd(name, short string, fetch func(context.Context, *bondapi.Client, string, string) (*bondapi.Indicator, error)) *cobra.Command {
	var year string

	cmd := &cobra.Command{
		Use:   name + " COUNTRY",
		Short: short,
		Long:  fmt.Sprintf(`Look up %s for a country by its ISO alpha-3 code (e.g. USA, DEU).`, short),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iso3 := strings.ToUpper(args[0])
			if len(iso3) != 3 {
				return fmt.Errorf("country must be an ISO alpha-3 code, got %q", args[0])
			}

			ind, err := fetch(cmd.Context(), newClient(), iso3, year)
			if err != nil {
				return fmt.Errorf("failed to fetch %s for %s: %w", name, iso3, err)
			}

			if ind.Value == nil {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("No %s observation for %s in %s", name, ind.Country, ind.Year))) //nolint:forbidigo // User-facing output
				return nil
			}

			fmt.Printf("%s %s (%s): %.4f\n", ind.Country, ind.Indicator, ind.Year, *ind.Value) //nolint:forbidigo // User-facing output
			return nil
		},
	}

	cmd.Flags().StringVar(&year, "year", defaultMacroYear, "observation year")

	return cmd
}
