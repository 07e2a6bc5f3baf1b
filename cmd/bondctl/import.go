package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/folaolaitan/bondctl/internal/cli"
	"github.com/folaolaitan/bondctl/internal/common"
	"github.com/folaolaitan/bondctl/internal/config"
	"github.com/folaolaitan/bondctl/internal/model"
)

func importCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Bulk-create bonds from a JSON file",
		Long: `Read a JSON array of bonds from FILE and create each one in the catalog.

Records are validated before anything is sent; a file with any invalid
record is rejected whole. Use --dry-run to validate without creating.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the file without creating anything")

	return cmd
}

func runImport(cmd *cobra.Command, path string, dryRun bool) error {
	ctx := cmd.Context()

	data, err := os.ReadFile(config.ExpandPath(path))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var bonds []model.Bond
	if err := json.Unmarshal(data, &bonds); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(bonds) == 0 {
		fmt.Println(cli.FormatInfo("Nothing to import.")) //nolint:forbidigo // User-facing output
		return nil
	}

	for i := range bonds {
		if bonds[i].ID != nil {
			return fmt.Errorf("record %d: import records must not carry an id", i+1)
		}
		if err := bonds[i].Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
	}

	if dryRun {
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("%d records valid, nothing imported (dry run)", len(bonds)))) //nolint:forbidigo // User-facing output
		return nil
	}

	bar := progressbar.NewOptions(len(bonds),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Importing bonds...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	client := newClient()
	created := 0
	var failures []string
	for i := range bonds {
		if _, err := client.Create(ctx, &bonds[i]); err != nil {
			failures = append(failures, fmt.Sprintf("record %d (%s): %v", i+1, bonds[i].Name, err))
			common.LogDebug("import record failed", common.Fields{
				"record": i + 1,
				"name":   bonds[i].Name,
				"error":  err.Error(),
			})
		} else {
			created++
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	for _, f := range failures {
		fmt.Println(cli.FormatError(f)) //nolint:forbidigo // User-facing output
	}
	if created > 0 {
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d of %d bonds", created, len(bonds)))) //nolint:forbidigo // User-facing output
	}
	if len(failures) > 0 {
		return fmt.Errorf("%d of %d records failed", len(failures), len(bonds))
	}
	return nil
}
