package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/folaolaitan/bondctl/internal/cli"
	"github.com/folaolaitan/bondctl/internal/model"
)

// bondFlags mirrors the editable record fields for add/update.
type bondFlags struct {
	name       string
	issuer     string
	faceValue  string
	couponRate string
	rating     string
	issueDate  string
	maturity   string
	status     string
	currency   string
}

func (f *bondFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "bond name")
	cmd.Flags().StringVar(&f.issuer, "issuer", "", "issuer name")
	cmd.Flags().StringVar(&f.faceValue, "face-value", "", "face value")
	cmd.Flags().StringVar(&f.couponRate, "coupon-rate", "", "coupon rate in percent")
	cmd.Flags().StringVar(&f.rating, "rating", "", "credit rating")
	cmd.Flags().StringVar(&f.issueDate, "issue-date", "", "issue date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.maturity, "maturity-date", "", "maturity date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.status, "status", "", "status (e.g. Active, Matured)")
	cmd.Flags().StringVar(&f.currency, "currency", "", "ISO currency code")
}

// apply copies set flags onto a bond; untouched flags leave existing
// values alone so updates can be partial.
func (f *bondFlags) apply(cmd *cobra.Command, b *model.Bond) error {
	set := func(name string, dst *string, v string) {
		if cmd.Flags().Changed(name) {
			*dst = strings.TrimSpace(v)
		}
	}
	set("name", &b.Name, f.name)
	set("issuer", &b.Issuer, f.issuer)
	set("rating", &b.Rating, f.rating)
	set("issue-date", &b.IssueDate, f.issueDate)
	set("maturity-date", &b.MaturityDate, f.maturity)
	set("status", &b.Status, f.status)
	set("currency", &b.Currency, f.currency)

	if cmd.Flags().Changed("face-value") {
		d, err := parseDecimalFlag("face-value", f.faceValue)
		if err != nil {
			return err
		}
		b.FaceValue = d
	}
	if cmd.Flags().Changed("coupon-rate") {
		d, err := parseDecimalFlag("coupon-rate", f.couponRate)
		if err != nil {
			return err
		}
		b.CouponRate = d
	}
	return nil
}

func parseDecimalFlag(name, v string) (decimal.NullDecimal, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("invalid --%s %q: %w", name, v, err)
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a single bond",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBondID(args[0])
			if err != nil {
				return err
			}

			bond, err := newClient().Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get bond %d: %w", id, err)
			}

			printBond(bond)
			return nil
		},
	}
}

func addCmd() *cobra.Command {
	var flags bondFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new bond",
		Long:  `Create a bond from flags. Name and issuer are required; every other field is optional.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var bond model.Bond
			if err := flags.apply(cmd, &bond); err != nil {
				return err
			}

			created, err := newClient().Create(cmd.Context(), &bond)
			if err != nil {
				return fmt.Errorf("failed to create bond: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created bond %s (%s)", bondIDString(created), created.Name))) //nolint:forbidigo // User-facing output
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func updateCmd() *cobra.Command {
	var flags bondFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update an existing bond",
		Long:  `Fetch the bond, apply the given flags on top of its current values, and save it. Flags left unset keep their stored value.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseBondID(args[0])
			if err != nil {
				return err
			}

			client := newClient()
			bond, err := client.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get bond %d: %w", id, err)
			}

			if err := flags.apply(cmd, bond); err != nil {
				return err
			}

			updated, err := client.Update(ctx, bond)
			if err != nil {
				return fmt.Errorf("failed to update bond %d: %w", id, err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated bond %s (%s)", bondIDString(updated), updated.Name))) //nolint:forbidigo // User-facing output
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func deleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a bond",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseBondID(args[0])
			if err != nil {
				return err
			}

			client := newClient()
			bond, err := client.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get bond %d: %w", id, err)
			}

			if !force {
				question := fmt.Sprintf("Delete bond %d (%s)?", id, bond.Name)
				ok, err := cli.Confirm(ctx, os.Stdin, os.Stdout, question)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.FormatInfo("Aborted.")) //nolint:forbidigo // User-facing output
					return nil
				}
			}

			if err := client.Delete(ctx, id); err != nil {
				return fmt.Errorf("failed to delete bond %d: %w", id, err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted bond %d", id))) //nolint:forbidigo // User-facing output
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	return cmd
}
