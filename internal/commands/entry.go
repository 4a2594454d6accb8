package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/balancebook-dev/balancebook/internal/coa"
	"github.com/balancebook-dev/balancebook/internal/fiscal"
	"github.com/balancebook-dev/balancebook/internal/journal"
	"github.com/balancebook-dev/balancebook/internal/store"
)

func newEntryCommand() *cobra.Command {
	entryCmd := &cobra.Command{
		Use:   "entry",
		Short: "Journal entry operations",
	}
	entryCmd.AddCommand(newEntryAddCommand())
	entryCmd.AddCommand(newEntryPostCommand())
	entryCmd.AddCommand(newEntryVoidCommand())
	return entryCmd
}

func newEntryAddCommand() *cobra.Command {
	var dir string
	var date string
	var description string
	var user string
	var debits []string
	var credits []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a draft journal entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := openBook(dir)
			if err != nil {
				return err
			}

			entryDate, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("parsing date %q: %w", date, err)
			}

			var lines []journal.Line
			for _, spec := range debits {
				line, err := parseLineFlag(book, spec, journal.Debit)
				if err != nil {
					return err
				}
				lines = append(lines, line)
			}
			for _, spec := range credits {
				line, err := parseLineFlag(book, spec, journal.Credit)
				if err != nil {
					return err
				}
				lines = append(lines, line)
			}

			number, err := book.Journal.NextEntryNumber(entryDate.Year())
			if err != nil {
				return err
			}
			e, err := journal.New(journal.Params{
				Number:      number,
				Date:        entryDate,
				Description: description,
				Type:        journal.TypeManual,
				Lines:       lines,
				CreatedBy:   user,
			})
			if err != nil {
				return err
			}

			if err := book.Journal.Save(e); err != nil {
				return err
			}
			if err := book.Save(); err != nil {
				return err
			}
			if err := logAction(book, user, "journal.add", "journal_entry", e.ID, e.Number); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created draft %s (%s)\n", e.Number, e.TotalDebits().StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "book directory")
	cmd.Flags().StringVar(&date, "date", "", "entry date YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("date")
	cmd.Flags().StringVar(&description, "description", "", "entry description (required)")
	_ = cmd.MarkFlagRequired("description")
	cmd.Flags().StringVar(&user, "user", "", "acting user")
	cmd.Flags().StringArrayVar(&debits, "debit", nil, "debit line CODE:AMOUNT (repeatable)")
	cmd.Flags().StringArrayVar(&credits, "credit", nil, "credit line CODE:AMOUNT (repeatable)")

	return cmd
}

// parseLineFlag turns a CODE:AMOUNT flag into a journal line against the
// postable account with that code.
func parseLineFlag(book *store.Book, spec string, dir journal.Direction) (journal.Line, error) {
	code, amountStr, ok := strings.Cut(spec, ":")
	if !ok {
		return journal.Line{}, fmt.Errorf("line %q: expected CODE:AMOUNT", spec)
	}
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return journal.Line{}, fmt.Errorf("line %q: parsing amount: %w", spec, err)
	}

	acct, err := book.Accounts.FindByCode(coa.Code(code))
	if err != nil {
		return journal.Line{}, err
	}
	if !acct.CanPost() {
		return journal.Line{}, fmt.Errorf("account %s does not accept postings", acct.Code)
	}

	return journal.Line{AccountID: acct.ID, Direction: dir, Amount: amount}, nil
}

func newEntryPostCommand() *cobra.Command {
	var dir string
	var user string

	cmd := &cobra.Command{
		Use:   "post <number>",
		Short: "Post a draft entry to the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := openBook(dir)
			if err != nil {
				return err
			}

			e, err := book.Journal.FindByNumber(args[0])
			if err != nil {
				return err
			}

			state, err := periodState(book, e.Period())
			if err != nil {
				return err
			}
			if err := e.Post(user, state); err != nil {
				return err
			}

			if err := book.Journal.Save(e); err != nil {
				return err
			}
			for _, line := range e.Lines {
				book.Accounts.RecordPosting(line.AccountID)
			}
			if err := refreshBalances(book, e); err != nil {
				return err
			}
			if err := book.Save(); err != nil {
				return err
			}
			if err := logAction(book, user, "journal.post", "journal_entry", e.ID, e.Number); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Posted %s\n", e.Number)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "book directory")
	cmd.Flags().StringVar(&user, "user", "", "acting user")

	return cmd
}

func newEntryVoidCommand() *cobra.Command {
	var dir string
	var user string
	var reason string

	cmd := &cobra.Command{
		Use:   "void <number>",
		Short: "Void a posted entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := openBook(dir)
			if err != nil {
				return err
			}

			e, err := book.Journal.FindByNumber(args[0])
			if err != nil {
				return err
			}
			if err := e.Void(user, reason); err != nil {
				return err
			}

			if err := book.Journal.Save(e); err != nil {
				return err
			}
			if err := refreshBalances(book, e); err != nil {
				return err
			}
			if err := book.Save(); err != nil {
				return err
			}
			if err := logAction(book, user, "journal.void", "journal_entry", e.ID, e.Number+": "+reason); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Voided %s\n", e.Number)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "book directory")
	cmd.Flags().StringVar(&user, "user", "", "acting user")
	cmd.Flags().StringVar(&reason, "reason", "", "void reason (required)")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}

// periodState loads the fiscal state for a period. Periods start life
// open, so a period never touched before is materialized as open.
func periodState(book *store.Book, p fiscal.Period) (*fiscal.State, error) {
	state, err := book.Periods.Find(p)
	if err == nil {
		return state, nil
	}
	state = fiscal.Open(p)
	if err := book.Periods.Save(state); err != nil {
		return nil, err
	}
	return state, nil
}
