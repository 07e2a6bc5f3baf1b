package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/folaolaitan/bondctl/internal/cli"
	"github.com/folaolaitan/bondctl/internal/common"
	"github.com/folaolaitan/bondctl/internal/storage"
)

func fxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fx",
		Short: "Currency conversion via the catalog's FX service",
	}

	cmd.AddCommand(fxRateCmd())
	cmd.AddCommand(fxValueInCmd())

	return cmd
}

func fxRateCmd() *cobra.Command {
	var (
		noCache bool
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "rate FROM TO",
		Short: "Look up an exchange rate",
		Long: `Print the exchange rate for one unit of FROM in TO.

Rates are cached locally; a cached rate younger than the TTL is served
without hitting the API.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			from, to := strings.ToUpper(args[0]), strings.ToUpper(args[1])

			store, err := initStore(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStore(store)

			if !noCache {
				rate, hit, err := store.GetRate(ctx, from, to, ttl)
				if err != nil {
					slog.Warn("FX cache lookup failed", "error", err)
				} else if hit {
					slog.Debug("FX rate served from cache", "from", from, "to", to)
					printRate(from, to, rate)
					return nil
				}
			}

			rate, err := newClient().FXRate(ctx, from, to)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("failed to fetch %s/%s rate", from, to), err)
			}

			if err := store.PutRate(ctx, from, to, rate); err != nil {
				slog.Warn("failed to cache FX rate", "error", err)
			}

			printRate(from, to, rate)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the local rate cache")
	cmd.Flags().DurationVar(&ttl, "cache-ttl", storage.DefaultFXRateTTL, "maximum age of a cached rate")

	return cmd
}

func printRate(from, to string, rate decimal.Decimal) {
	fmt.Printf("1 %s = %s %s\n", from, rate.String(), to) //nolint:forbidigo // User-facing output
}

func fxValueInCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "value-in ID CURRENCY",
		Short: "Convert a bond's face value into another currency",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBondID(args[0])
			if err != nil {
				return err
			}

			conv, err := newClient().ValueIn(cmd.Context(), id, args[1])
			if err != nil {
				return fmt.Errorf("failed to convert bond %d: %w", id, err)
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("%s (bond %d)", conv.BondName, conv.BondID))) //nolint:forbidigo // User-facing output
			fmt.Printf("  %s  →  %s\n",                                                           //nolint:forbidigo // User-facing output
				formatAmount(conv.OriginalFaceValue, conv.FromCurrency),
				formatAmount(conv.ConvertedFaceValue, conv.ToCurrency))
			fmt.Printf("  Rate: 1 %s = %s %s\n", conv.FromCurrency, conv.Rate.String(), conv.ToCurrency) //nolint:forbidigo // User-facing output
			return nil
		},
	}

	return cmd
}

// formatAmount renders a decimal amount with the currency's own symbol and
// grouping rules, falling back to a plain fixed-point string for codes the
// formatter does not know.
func formatAmount(d decimal.Decimal, code string) string {
	code = strings.ToUpper(code)
	cur := money.GetCurrency(code)
	if cur == nil {
		return d.StringFixed(2) + " " + code
	}
	minor := d.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}
