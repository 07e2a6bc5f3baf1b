package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/folaolaitan/bondctl/internal/cli"
	"github.com/folaolaitan/bondctl/internal/model"
)

func presetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage saved filter presets",
		Long: `Save filter combinations under a name and replay them later with
'bondctl list --preset NAME'.`,
	}

	cmd.AddCommand(presetsSaveCmd())
	cmd.AddCommand(presetsListCmd())
	cmd.AddCommand(presetsShowCmd())
	cmd.AddCommand(presetsDeleteCmd())
	cmd.AddCommand(presetsApplyCmd())

	return cmd
}

func presetsApplyCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "apply NAME",
		Short: "Run a saved preset against the catalog",
		Long: `Resolve the preset's criteria to a server query, fetch, and print the
derived view. Filter flags given alongside override individual preset fields.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.preset = args[0]
			return runList(cmd, &flags)
		},
	}

	addCriteriaFlags(cmd, &flags)
	return cmd
}

func presetsSaveCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save the given filter flags as a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			key, err := model.ParseSortKey(flags.sortKey)
			if err != nil {
				return err
			}
			flags.criteria.Sort = key

			store, err := initStore(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStore(store)

			if err := store.SavePreset(ctx, args[0], flags.criteria); err != nil {
				return fmt.Errorf("failed to save preset: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Saved preset %q", args[0]))) //nolint:forbidigo // User-facing output
			return nil
		},
	}

	addCriteriaFlags(cmd, &flags)
	return cmd
}

func presetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStore(store)

			presets, err := store.ListPresets(ctx)
			if err != nil {
				return fmt.Errorf("failed to list presets: %w", err)
			}
			if len(presets) == 0 {
				fmt.Println(cli.FormatInfo("No presets saved. Use 'bondctl presets save' to create one.")) //nolint:forbidigo // User-facing output
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() {
				if flushErr := w.Flush(); flushErr != nil {
					slog.Error("failed to flush table writer", "error", flushErr)
				}
			}()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				tableHeaderStyle.Render("Name"),
				tableHeaderStyle.Render("Filters"),
				tableHeaderStyle.Render("Created"))
			for _, p := range presets {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					p.Name,
					summarizeCriteria(p.Criteria),
					p.CreatedAt.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func presetsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print a preset's criteria as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStore(store)

			preset, err := store.GetPreset(ctx, args[0])
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(preset.Criteria, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode preset: %w", err)
			}
			fmt.Println(string(data)) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}

func presetsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStore(store)

			if err := store.DeletePreset(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted preset %q", args[0]))) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}

// summarizeCriteria renders the set fields of a preset in one line.
func summarizeCriteria(c model.Criteria) string {
	var parts []string
	add := func(label, v string) {
		if v != "" {
			parts = append(parts, label+"="+v)
		}
	}
	add("issuer", c.Issuer)
	add("rating", c.Rating)
	add("status", c.Status)
	add("currency", c.Currency)
	add("coupon-min", c.CouponMin)
	add("coupon-max", c.CouponMax)
	add("face-min", c.FaceMin)
	add("face-max", c.FaceMax)
	add("maturity-after", c.MaturityAfter)
	add("maturity-start", c.MaturityStart)
	add("maturity-end", c.MaturityEnd)
	add("issued-after", c.IssueAfter)
	add("issued-start", c.IssueStart)
	add("issued-end", c.IssueEnd)
	add("search", c.Query)
	add("sort", string(c.Sort))
	if len(parts) == 0 {
		return "(none)"
	}
	return strings.Join(parts, " ")
}
