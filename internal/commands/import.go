package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/balancebook-dev/balancebook/internal/banking"
	"github.com/balancebook-dev/balancebook/internal/fiscal"
	"github.com/balancebook-dev/balancebook/internal/importer"
)

func newImportCommand() *cobra.Command {
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Bank statement imports",
	}
	importCmd.AddCommand(newImportScanCommand())
	importCmd.AddCommand(newImportFileCommand())
	return importCmd
}

func newImportScanCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List statement files waiting in import/",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := openBook(dir)
			if err != nil {
				return err
			}

			files, err := importer.Scan(book.Root)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to import")
				return nil
			}
			for _, f := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", f.Name, f.Size)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "book directory")

	return cmd
}

func newImportFileCommand() *cobra.Command {
	var dir string
	var account string
	var format string
	var user string

	cmd := &cobra.Command{
		Use:   "file <name>",
		Short: "Import a statement CSV from import/",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := openBook(dir)
			if err != nil {
				return err
			}

			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown statement format %q", format)
			}

			path := filepath.Join(book.Root, "import", args[0])
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("opening statement file: %w", err)
			}
			defer f.Close()

			res, err := importer.Import(parser, book.BankTxns, account, "", f)
			if err != nil {
				return err
			}

			if user == "" {
				user = book.Config.Audit.UserID
			}
			// Each imported transaction lands on the statement header for
			// its account and period, created on first use.
			for _, txn := range res.Imported {
				p := fiscal.FromDate(txn.Date)
				s, err := book.Statements.FindByAccountAndPeriod(account, p)
				if err != nil {
					s = banking.NewStatement(account, p, decimal.Zero, decimal.Zero, user)
				}
				s.AddTotals(txn.Amount)
				if err := book.Statements.Save(s); err != nil {
					return err
				}
				txn.StatementID = s.ID
				if err := book.BankTxns.Save(txn); err != nil {
					return err
				}
			}

			if err := book.Save(); err != nil {
				return err
			}
			if err := importer.MarkProcessed(book.Root, args[0]); err != nil {
				return err
			}
			details := fmt.Sprintf("%s: %d imported, %d duplicates", args[0], len(res.Imported), res.Duplicates)
			if err := logAction(book, user, "statement.import", "bank_account", account, details); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions (%d duplicates skipped)\n",
				len(res.Imported), res.Duplicates)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "book directory")
	cmd.Flags().StringVar(&account, "account", "", "bank account id (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&format, "format", "generic", "statement format (generic, chase)")
	cmd.Flags().StringVar(&user, "user", "", "acting user")

	return cmd
}
