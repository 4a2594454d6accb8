package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/balancebook-dev/balancebook/internal/coa"
	"github.com/balancebook-dev/balancebook/internal/config"
	"github.com/balancebook-dev/balancebook/internal/store"
)

func newInitCommand() *cobra.Command {
	var name string
	var entityType string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new set of books",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, name, entityType)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&entityType, "entity-type", "llc_single_member", "entity type")

	return cmd
}

func runInit(cmd *cobra.Command, dir, name, entityType string) error {
	// Create directory structure.
	dirs := []string{
		"accounts",
		"journal",
		"banking",
		"assets",
		"logs",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write balancebook.yaml.
	cfg := config.Default(name, entityType)
	if err := config.Save(filepath.Join(dir, store.ConfigFile), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Seed the chart of accounts and write the empty books.
	book, err := store.Open(dir)
	if err != nil {
		return fmt.Errorf("opening new book: %w", err)
	}
	for _, acct := range coa.DefaultChart() {
		if err := book.Accounts.Save(acct); err != nil {
			return fmt.Errorf("seeding account %s: %w", acct.Code, err)
		}
	}
	if err := book.Save(); err != nil {
		return fmt.Errorf("writing books: %w", err)
	}

	// Write import/.gitkeep.
	if err := os.WriteFile(filepath.Join(dir, "import", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s at %s\n", name, dir)
	return nil
}
