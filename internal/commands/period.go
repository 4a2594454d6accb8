package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balancebook-dev/balancebook/internal/fiscal"
	"github.com/balancebook-dev/balancebook/internal/journal"
	"github.com/balancebook-dev/balancebook/internal/store"
)

func newPeriodCommand() *cobra.Command {
	periodCmd := &cobra.Command{
		Use:   "period",
		Short: "Fiscal period operations",
	}
	periodCmd.AddCommand(newPeriodCloseCommand())
	periodCmd.AddCommand(newPeriodReopenCommand())
	periodCmd.AddCommand(newPeriodLockCommand())
	periodCmd.AddCommand(newPeriodStatusCommand())
	return periodCmd
}

func newPeriodCloseCommand() *cobra.Command {
	var dir string
	var user string

	cmd := &cobra.Command{
		Use:   "close <period>",
		Short: "Close a fiscal period (YYYY-MM)",
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

			prevStatus, err := previousStatus(book, p)
			if err != nil {
				return err
			}
			if err := state.Close(user, prevStatus); err != nil {
				return err
			}

			if err := book.Periods.Save(state); err != nil {
				return err
			}
			if err := rollForwardBalances(book, p); err != nil {
				return err
			}
			if err := book.Save(); err != nil {
				return err
			}
			if err := logAction(book, user, "period.close", "fiscal_period", state.ID, p.String()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Closed %s\n", p)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "book directory")
	cmd.Flags().StringVar(&user, "user", "", "acting user")

	return cmd
}

// previousStatus resolves the status of the period before p. A previous
// period that was never touched and holds no entries is treated as
// closed, so the first month of a new book can close without ceremony.
func previousStatus(book *store.Book, p fiscal.Period) (fiscal.Status, error) {
	prev, ok := p.Previous()
	if !ok {
		return fiscal.StatusClosed, nil
	}
	if state, err := book.Periods.Find(prev); err == nil {
		return state.Status, nil
	}
	entries, err := book.Journal.FindByPeriod(prev)
	if err != nil {
		return "", err
	}
	if len(entries) > 0 {
		return fiscal.StatusOpen, nil
	}
	return fiscal.StatusClosed, nil
}

func newPeriodReopenCommand() *cobra.Command {
	var dir string
	var user string
	var reason string

	cmd := &cobra.Command{
		Use:   "reopen <period>",
		Short: "Reopen a closed period",
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
			state, err := book.Periods.Find(p)
			if err != nil {
				return err
			}
			if err := state.Reopen(user, reason); err != nil {
				return err
			}

			if err := book.Periods.Save(state); err != nil {
				return err
			}
			if err := book.Save(); err != nil {
				return err
			}
			if err := logAction(book, user, "period.reopen", "fiscal_period", state.ID, p.String()+": "+reason); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Reopened %s\n", p)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "book directory")
	cmd.Flags().StringVar(&user, "user", "", "acting user")
	cmd.Flags().StringVar(&reason, "reason", "", "reopen reason, at least 10 characters (required)")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}

func newPeriodLockCommand() *cobra.Command {
	var dir string
	var user string

	cmd := &cobra.Command{
		Use:   "lock <period>",
		Short: "Permanently lock a closed period",
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
			state, err := book.Periods.Find(p)
			if err != nil {
				return err
			}
			if err := state.Lock(user); err != nil {
				return err
			}

			if err := book.Periods.Save(state); err != nil {
				return err
			}
			if err := book.Save(); err != nil {
				return err
			}
			if err := logAction(book, user, "period.lock", "fiscal_period", state.ID, p.String()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Locked %s\n", p)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "book directory")
	cmd.Flags().StringVar(&user, "user", "", "acting user")

	return cmd
}

func newPeriodStatusCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "status <period>",
		Short: "Show a period's state and activity",
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

			status := fiscal.StatusOpen
			if state, err := book.Periods.Find(p); err == nil {
				status = state.Status
			}

			entries, err := book.Journal.FindByPeriod(p)
			if err != nil {
				return err
			}
			var posted, draft int
			for _, e := range entries {
				switch e.Status {
				case journal.StatusPosted:
					posted++
				case journal.StatusDraft:
					draft++
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%d posted, %d draft)\n", p, status, posted, draft)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "book directory")

	return cmd
}
