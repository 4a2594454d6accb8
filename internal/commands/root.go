package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/balancebook-dev/balancebook/internal/audit"
	"github.com/balancebook-dev/balancebook/internal/buildinfo"
	"github.com/balancebook-dev/balancebook/internal/store"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "balancebook",
		Short:   "Double-entry bookkeeping for small businesses",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAccountsCommand())
	rootCmd.AddCommand(newEntryCommand())
	rootCmd.AddCommand(newPeriodCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newReconCommand())
	rootCmd.AddCommand(newAssetCommand())

	return rootCmd
}

func openBook(dir string) (*store.Book, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	return store.Open(absDir)
}

// logAction appends one row to the audit trail when auditing is enabled.
// The user passed on the command line wins over the configured one.
func logAction(b *store.Book, userID, action, entityType, entityID, details string) error {
	if !b.Config.Audit.Enabled {
		return nil
	}
	if userID == "" {
		userID = b.Config.Audit.UserID
	}
	return audit.Append(b.Root, []audit.Entry{{
		Timestamp:  time.Now().UTC(),
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	}})
}
