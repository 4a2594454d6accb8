package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/balancebook-dev/balancebook/internal/coa"
)

func newAccountsCommand() *cobra.Command {
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Chart of accounts operations",
	}
	accountsCmd.AddCommand(newAccountsListCommand())
	accountsCmd.AddCommand(newAccountsAddCommand())
	return accountsCmd
}

func newAccountsListCommand() *cobra.Command {
	var dir string
	var acctType string
	var detailOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the chart of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := openBook(dir)
			if err != nil {
				return err
			}

			accounts, err := book.Accounts.FindAll(coa.Filter{
				Type:       coa.AccountType(acctType),
				DetailOnly: detailOnly,
			})
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tNAME\tTYPE\tCATEGORY\tSTATUS")
			for _, a := range accounts {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					a.Code, a.Name, a.Type(), a.Category(), a.Status)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "book directory")
	cmd.Flags().StringVar(&acctType, "type", "", "filter by account type")
	cmd.Flags().BoolVar(&detailOnly, "detail", false, "only postable detail accounts")

	return cmd
}

func newAccountsAddCommand() *cobra.Command {
	var dir string
	var name string
	var description string
	var summary bool

	cmd := &cobra.Command{
		Use:   "add <code>",
		Short: "Add an account to the chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := openBook(dir)
			if err != nil {
				return err
			}

			code := coa.Code(args[0])
			exists, err := book.Accounts.CodeExists(code)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("%w: %s", coa.ErrDuplicateCode, code)
			}

			acct, err := coa.NewAccount(args[0], name, !summary)
			if err != nil {
				return err
			}
			acct.Description = description

			if err := book.Accounts.Save(acct); err != nil {
				return err
			}
			if err := book.Save(); err != nil {
				return err
			}
			if err := logAction(book, "", "account.add", "account", acct.ID, string(acct.Code)+" "+acct.Name); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s (%s)\n", acct.Code, acct.Name, acct.Type())
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "book directory")
	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&description, "description", "", "account description")
	cmd.Flags().BoolVar(&summary, "summary", false, "create a summary account instead of a detail account")

	return cmd
}
