package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/balancebook-dev/balancebook/internal/banking"
)

func newReconCommand() *cobra.Command {
	reconCmd := &cobra.Command{
		Use:   "recon",
		Short: "Bank reconciliation operations",
	}
	reconCmd.AddCommand(newReconStatusCommand())
	return reconCmd
}

func newReconStatusCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show unmatched transactions per bank account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := openBook(dir)
			if err != nil {
				return err
			}

			txns, err := book.BankTxns.FindAll()
			if err != nil {
				return err
			}
			if len(txns) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No bank transactions on file")
				return nil
			}

			unmatched := make(map[string]int)
			totals := make(map[string]int)
			for _, t := range txns {
				totals[t.BankAccountID]++
				if t.MatchStatus == banking.Unmatched {
					unmatched[t.BankAccountID]++
				}
			}

			accounts := make([]string, 0, len(totals))
			for acct := range totals {
				accounts = append(accounts, acct)
			}
			sort.Strings(accounts)
			for _, acct := range accounts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d unmatched of %d\n", acct, unmatched[acct], totals[acct])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "book directory")

	return cmd
}
