package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/folaolaitan/bondctl/internal/catalog"
	"github.com/folaolaitan/bondctl/internal/cli"
	"github.com/folaolaitan/bondctl/internal/model"
)

type listFlags struct {
	criteria model.Criteria
	sortKey  string
	preset   string
}

func listCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bonds matching the given filters",
		Long: `Fetch bonds from the catalog and print them as a table.

Filters that the API supports natively (issuer, rating, status, coupon and
face-value ranges, date windows) are resolved to a single server query; the
API answers one filter at a time, so when several are set the most specific
one wins. Search text, currency and sorting are applied locally to the
fetched set.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, &flags)
		},
	}

	addCriteriaFlags(cmd, &flags)
	cmd.Flags().StringVar(&flags.preset, "preset", "", "load a saved filter preset before applying flags")

	return cmd
}

func addCriteriaFlags(cmd *cobra.Command, flags *listFlags) {
	c := &flags.criteria
	cmd.Flags().StringVar(&c.Issuer, "issuer", "", "filter by issuer (server-side)")
	cmd.Flags().StringVar(&c.Rating, "rating", "", "filter by credit rating (server-side)")
	cmd.Flags().StringVar(&c.Status, "status", "", "filter by status (server-side)")
	cmd.Flags().StringVar(&c.CouponMin, "coupon-min", "", "minimum coupon rate")
	cmd.Flags().StringVar(&c.CouponMax, "coupon-max", "", "maximum coupon rate (needs --coupon-min)")
	cmd.Flags().StringVar(&c.FaceMin, "face-min", "", "minimum face value")
	cmd.Flags().StringVar(&c.FaceMax, "face-max", "", "maximum face value (needs --face-min)")
	cmd.Flags().StringVar(&c.MaturityAfter, "maturity-after", "", "maturing on or after date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&c.MaturityStart, "maturity-start", "", "maturity window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&c.MaturityEnd, "maturity-end", "", "maturity window end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&c.IssueAfter, "issued-after", "", "issued on or after date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&c.IssueStart, "issued-start", "", "issue window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&c.IssueEnd, "issued-end", "", "issue window end (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&c.Query, "search", "q", "", "free-text search across name, issuer, rating, status and currency")
	cmd.Flags().StringVar(&c.Currency, "currency", "", "show only bonds in this currency (client-side, exact match)")
	cmd.Flags().StringVar(&flags.sortKey, "sort", "", "sort key: maturityAsc maturityDesc issueAsc issueDesc couponAsc couponDesc faceAsc faceDesc")
}

func runList(cmd *cobra.Command, flags *listFlags) error {
	view, records, err := resolveAndFetch(cmd, flags)
	if err != nil {
		return err
	}

	if len(view) == 0 {
		fmt.Println(cli.FormatInfo("No bonds matched.")) //nolint:forbidigo // User-facing output
		return nil
	}

	if err := printBondTable(os.Stdout, view); err != nil {
		return err
	}
	fmt.Printf("\nShowing %d of %d bonds\n", len(view), len(records)) //nolint:forbidigo // User-facing output

	return nil
}

// resolveAndFetch turns the flags into one server query, executes it, and
// derives the displayed view. It returns both the view and the raw fetch so
// callers can report how much filtering happened client-side.
func resolveAndFetch(cmd *cobra.Command, flags *listFlags) (view, records []model.Bond, err error) {
	ctx := cmd.Context()

	if flags.preset != "" {
		if err := mergePreset(ctx, flags); err != nil {
			return nil, nil, err
		}
	}

	key, err := model.ParseSortKey(flags.sortKey)
	if err != nil {
		return nil, nil, err
	}
	flags.criteria.Sort = key

	warnIgnoredBounds(&flags.criteria)

	req := catalog.Resolve(flags.criteria)
	slog.Debug("resolved catalog query", "kind", req.Kind, "path", req.Path)

	records, err = newClient().Fetch(ctx, req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch bonds: %w", err)
	}

	c := flags.criteria
	return catalog.Derive(records, c.Query, c.Currency, c.Sort), records, nil
}

// mergePreset loads a stored criteria set as the baseline; flags set on the
// command line override individual preset fields.
func mergePreset(ctx context.Context, flags *listFlags) error {
	store, err := initStore(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer closeStore(store)

	preset, err := store.GetPreset(ctx, flags.preset)
	if err != nil {
		return err
	}

	merged := preset.Criteria
	overlayCriteria(&merged, &flags.criteria)
	if flags.sortKey == "" && preset.Criteria.Sort != "" {
		flags.sortKey = string(preset.Criteria.Sort)
	}
	flags.criteria = merged
	return nil
}

func overlayCriteria(dst, src *model.Criteria) {
	pairs := [][2]*string{
		{&dst.Issuer, &src.Issuer}, {&dst.Rating, &src.Rating},
		{&dst.Status, &src.Status}, {&dst.Currency, &src.Currency},
		{&dst.CouponMin, &src.CouponMin}, {&dst.CouponMax, &src.CouponMax},
		{&dst.FaceMin, &src.FaceMin}, {&dst.FaceMax, &src.FaceMax},
		{&dst.MaturityAfter, &src.MaturityAfter},
		{&dst.MaturityStart, &src.MaturityStart}, {&dst.MaturityEnd, &src.MaturityEnd},
		{&dst.IssueAfter, &src.IssueAfter},
		{&dst.IssueStart, &src.IssueStart}, {&dst.IssueEnd, &src.IssueEnd},
		{&dst.Query, &src.Query},
	}
	for _, p := range pairs {
		if *p[1] != "" {
			*p[0] = *p[1]
		}
	}
}

// warnIgnoredBounds flags max-only range fields, which cannot resolve to a
// server query on their own and are silently skipped by the resolver.
func warnIgnoredBounds(c *model.Criteria) {
	if c.CouponMax != "" && c.CouponMin == "" {
		fmt.Println(cli.FormatWarning("--coupon-max has no effect without --coupon-min")) //nolint:forbidigo // User-facing output
	}
	if c.FaceMax != "" && c.FaceMin == "" {
		fmt.Println(cli.FormatWarning("--face-max has no effect without --face-min")) //nolint:forbidigo // User-facing output
	}
}
