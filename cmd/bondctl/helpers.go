package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/folaolaitan/bondctl/internal/bondapi"
	"github.com/folaolaitan/bondctl/internal/cli"
	"github.com/folaolaitan/bondctl/internal/config"
	"github.com/folaolaitan/bondctl/internal/model"
	"github.com/folaolaitan/bondctl/internal/storage"
)

// newClient builds the API client from the configured base URL.
func newClient() *bondapi.Client {
	return bondapi.NewClient(config.BaseURL())
}

// initStore opens the local SQLite database and runs migrations.
func initStore(ctx context.Context) (*storage.Store, error) {
	store, err := storage.NewStore(config.DatabasePath())
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("failed to close store", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

func closeStore(store *storage.Store) {
	if err := store.Close(); err != nil {
		slog.Error("failed to close store", "error", err)
	}
}

func parseBondID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid bond id %q", arg)
	}
	return id, nil
}

var tableHeaderStyle = cli.TableHeaderStyle

// printBondTable renders records as a tab-aligned table.
func printBondTable(out io.Writer, bonds []model.Bond) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	cols := []string{"ID", "Name", "Issuer", "Face Value", "Coupon %", "Rating", "Issued", "Matures", "Status", "Ccy"}
	styled := make([]string, len(cols))
	seps := make([]string, len(cols))
	for i, c := range cols {
		styled[i] = tableHeaderStyle.Render(c)
		seps[i] = strings.Repeat("─", len(c)+2)
	}
	if _, err := fmt.Fprintln(w, strings.Join(styled, "\t")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := fmt.Fprintln(w, strings.Join(seps, "\t")); err != nil {
		return fmt.Errorf("failed to write separator: %w", err)
	}

	for i := range bonds {
		b := &bonds[i]
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			bondIDString(b),
			b.Name,
			b.Issuer,
			model.DisplayDecimal(b.FaceValue),
			model.DisplayDecimal(b.CouponRate),
			model.DisplayString(b.Rating),
			model.DisplayDate(b.IssueDate),
			model.DisplayDate(b.MaturityDate),
			model.DisplayString(b.Status),
			model.DisplayString(b.Currency)); err != nil {
			return fmt.Errorf("failed to write bond row: %w", err)
		}
	}

	return w.Flush()
}

func bondIDString(b *model.Bond) string {
	if b.ID == nil {
		return "-"
	}
	return strconv.FormatInt(*b.ID, 10)
}

// printBond shows a single record as a field/value listing.
func printBond(b *model.Bond) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"ID", bondIDString(b)},
		{"Name", b.Name},
		{"Issuer", b.Issuer},
		{"Face Value", model.DisplayDecimal(b.FaceValue)},
		{"Coupon Rate", model.DisplayDecimal(b.CouponRate)},
		{"Rating", model.DisplayString(b.Rating)},
		{"Issue Date", model.DisplayDate(b.IssueDate)},
		{"Maturity Date", model.DisplayDate(b.MaturityDate)},
		{"Status", model.DisplayString(b.Status)},
		{"Currency", model.DisplayString(b.Currency)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\n", tableHeaderStyle.Render(r[0]), r[1])
	}
	if err := w.Flush(); err != nil {
		slog.Error("failed to flush table writer", "error", err)
	}
}
