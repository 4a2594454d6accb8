package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/balancebook-dev/balancebook/internal/asset"
	"github.com/balancebook-dev/balancebook/internal/fiscal"
)

func newAssetCommand() *cobra.Command {
	assetCmd := &cobra.Command{
		Use:   "asset",
		Short: "Fixed asset operations",
	}
	assetCmd.AddCommand(newAssetAddCommand())
	assetCmd.AddCommand(newAssetDepreciateCommand())
	return assetCmd
}

func newAssetAddCommand() *cobra.Command {
	var dir string
	var name string
	var category string
	var cost string
	var salvage string
	var lifeMonths int
	var method string
	var acquired string
	var start string
	var user string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register and activate a fixed asset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := openBook(dir)
			if err != nil {
				return err
			}

			costAmt, err := decimal.NewFromString(cost)
			if err != nil {
				return fmt.Errorf("parsing cost %q: %w", cost, err)
			}
			salvageAmt, err := decimal.NewFromString(salvage)
			if err != nil {
				return fmt.Errorf("parsing salvage %q: %w", salvage, err)
			}
			acquiredAt, err := time.Parse("2006-01-02", acquired)
			if err != nil {
				return fmt.Errorf("parsing acquired date %q: %w", acquired, err)
			}
			startAt := acquiredAt
			if start != "" {
				startAt, err = time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("parsing start date %q: %w", start, err)
				}
			}

			a, err := asset.NewFixedAsset(name, category, costAmt, salvageAmt,
				lifeMonths, asset.Method(method), acquiredAt, startAt)
			if err != nil {
				return err
			}
			if err := a.Activate(); err != nil {
				return err
			}

			if err := book.Assets.Save(a); err != nil {
				return err
			}
			if err := book.Save(); err != nil {
				return err
			}
			if err := logAction(book, user, "asset.add", "fixed_asset", a.ID, a.Name); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s over %d months)\n", a.Name, a.Method, a.LifeMonths)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "book directory")
	cmd.Flags().StringVar(&name, "name", "", "asset name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&category, "category", "", "asset category id")
	cmd.Flags().StringVar(&cost, "cost", "", "acquisition cost (required)")
	_ = cmd.MarkFlagRequired("cost")
	cmd.Flags().StringVar(&salvage, "salvage", "0", "salvage value")
	cmd.Flags().IntVar(&lifeMonths, "life", 60, "useful life in months")
	cmd.Flags().StringVar(&method, "method", string(asset.StraightLine), "depreciation method")
	cmd.Flags().StringVar(&acquired, "acquired", "", "acquisition date YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("acquired")
	cmd.Flags().StringVar(&start, "start", "", "depreciation start date, defaults to acquisition date")
	cmd.Flags().StringVar(&user, "user", "", "acting user")

	return cmd
}

func newAssetDepreciateCommand() *cobra.Command {
	var dir string
	var user string

	cmd := &cobra.Command{
		Use:   "depreciate <period>",
		Short: "Run monthly depreciation for a period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := openBook(dir)
			if err != nil {
				return err
			}

			p, err := fiscal.Parse(args[0])
			if err != nil {
				return err
			}
			state, err := periodState(book, p)
			if err != nil {
				return err
			}

			run, err := asset.NewRun(p, state, user)
			if err != nil {
				return err
			}

			assets, err := book.Assets.FindDepreciable()
			if err != nil {
				return err
			}
			for _, a := range assets {
				if p.Before(fiscal.FromDate(a.DepreciationStart)) {
					continue
				}
				if a.DepreciatedThrough != (fiscal.Period{}) && !a.DepreciatedThrough.Before(p) {
					continue // already booked for this period
				}
				amount, err := a.DepreciationFor(1, elapsedMonths(a.DepreciationStart, p))
				if err != nil {
					run.Record(a.ID, decimal.Zero, err)
					continue
				}
				if err := a.ApplyDepreciation(amount, p); err != nil {
					run.Record(a.ID, decimal.Zero, err)
					continue
				}
				if err := book.Assets.Save(a); err != nil {
					run.Record(a.ID, decimal.Zero, err)
					continue
				}
				run.Record(a.ID, amount, nil)
			}
			run.Finish()

			if err := book.Save(); err != nil {
				return err
			}
			details := fmt.Sprintf("%s: %d assets, %s total", p, len(run.Results), run.Total.StringFixed(2))
			if err := logAction(book, user, "asset.depreciate", "depreciation_run", run.ID, details); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Depreciated %d assets for %s (%s, %s)\n",
				len(run.Results), p, run.Total.StringFixed(2), run.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "book directory")
	cmd.Flags().StringVar(&user, "user", "", "acting user")

	return cmd
}

// elapsedMonths counts full months of depreciation before period p.
func elapsedMonths(start time.Time, p fiscal.Period) int {
	months := (p.Year-start.Year())*12 + p.Month - int(start.Month())
	if months < 0 {
		return 0
	}
	return months
}
