package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/folaolaitan/bondctl/internal/cli"
	"github.com/folaolaitan/bondctl/internal/config"
	"github.com/folaolaitan/bondctl/internal/model"
	"github.com/folaolaitan/bondctl/internal/sheets"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog",
	}

	cmd.AddCommand(exportSheetsCmd())
	cmd.AddCommand(exportCSVCmd())

	return cmd
}

func exportSheetsCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Export bonds to Google Sheets",
		Long: `Write the catalog to a Google Sheets spreadsheet. Filter flags narrow
the export the same way they narrow 'bondctl list'.

Credentials come from the sheets section of the config file or from
GOOGLE_SHEETS_* environment variables; either a service account key file
or an OAuth client id/secret/refresh-token trio works.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sheetsConfig, err := config.LoadSheetsConfig()
			if err != nil {
				return err
			}

			bonds, _, err := resolveAndFetch(cmd, &flags)
			if err != nil {
				return err
			}

			writer, err := sheets.NewWriter(ctx, *sheetsConfig, slog.Default())
			if err != nil {
				return fmt.Errorf("failed to create sheets writer: %w", err)
			}

			if err := writer.Write(ctx, bonds); err != nil {
				return fmt.Errorf("failed to write to sheets: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d bonds to Google Sheets", len(bonds)))) //nolint:forbidigo // User-facing output
			return nil
		},
	}

	addCriteriaFlags(cmd, &flags)
	cmd.Flags().StringVar(&flags.preset, "preset", "", "load a saved filter preset before applying flags")

	return cmd
}

func exportCSVCmd() *cobra.Command {
	var (
		flags  listFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export bonds as CSV",
		Long:  `Write the derived view as CSV. Filter flags narrow the export the same way they narrow 'bondctl list'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bonds, _, err := resolveAndFetch(cmd, &flags)
			if err != nil {
				return err
			}

			out := os.Stdout
			if output != "" && output != "-" {
				f, err := os.Create(config.ExpandPath(output))
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer func() {
					if closeErr := f.Close(); closeErr != nil {
						slog.Error("failed to close output file", "error", closeErr)
					}
				}()
				out = f
			}

			if err := writeCSV(out, bonds); err != nil {
				return err
			}

			if out != os.Stdout {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d bonds to %s", len(bonds), output))) //nolint:forbidigo // User-facing output
			}
			return nil
		},
	}

	addCriteriaFlags(cmd, &flags)
	cmd.Flags().StringVar(&flags.preset, "preset", "", "load a saved filter preset before applying flags")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func writeCSV(out io.Writer, bonds []model.Bond) error {
	w := csv.NewWriter(out)

	if err := w.Write(sheets.Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i := range bonds {
		b := &bonds[i]
		row := []string{
			bondIDString(b),
			b.Name,
			b.Issuer,
			model.DisplayDecimal(b.FaceValue),
			model.DisplayDecimal(b.CouponRate),
			model.DisplayString(b.Rating),
			model.DisplayDate(b.IssueDate),
			model.DisplayDate(b.MaturityDate),
			model.DisplayString(b.Status),
			model.DisplayString(b.Currency),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
