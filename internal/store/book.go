package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/balancebook-dev/balancebook/internal/coa"
	"github.com/balancebook-dev/balancebook/internal/config"
	"github.com/balancebook-dev/balancebook/internal/journal"
	"github.com/balancebook-dev/balancebook/internal/memory"
)

// ConfigFile is the name of the book configuration file.
const ConfigFile = "balancebook.yaml"

const (
	accountsFile   = "accounts/chart-of-accounts.csv"
	journalFile    = "journal/journal.csv"
	periodsFile    = "journal/periods.csv"
	balancesFile   = "journal/balances.csv"
	bankTxnsFile   = "banking/transactions.csv"
	statementsFile = "banking/statements.csv"
	assetsFile     = "assets/assets.csv"
)

// Book is a set of books opened from disk: the configuration plus every
// repository, loaded from the CSV files under Root.
type Book struct {
	Root   string
	Config *config.Config

	Accounts   *memory.AccountRepo
	Journal    *memory.JournalRepo
	Periods    *memory.PeriodRepo
	Balances   *memory.BalanceRepo
	BankTxns   *memory.BankTransactionRepo
	Statements *memory.StatementRepo
	Assets     *memory.AssetRepo
}

// Open loads a book from the given root directory. Missing CSV files are
// treated as empty, so a freshly initialized book opens cleanly.
func Open(root string) (*Book, error) {
	cfg, err := config.Load(filepath.Join(root, ConfigFile))
	if err != nil {
		return nil, err
	}

	b := &Book{
		Root:       root,
		Config:     cfg,
		Accounts:   memory.NewAccountRepo(),
		Journal:    memory.NewJournalRepo(),
		Periods:    memory.NewPeriodRepo(),
		Balances:   memory.NewBalanceRepo(),
		BankTxns:   memory.NewBankTransactionRepo(),
		Statements: memory.NewStatementRepo(),
		Assets:     memory.NewAssetRepo(),
	}

	if err := b.load(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Book) load() error {
	accounts, err := readIfExists(filepath.Join(b.Root, accountsFile), ReadAccounts)
	if err != nil {
		return err
	}
	for _, a := range accounts {
		if err := b.Accounts.Save(a); err != nil {
			return fmt.Errorf("loading account %s: %w", a.Code, err)
		}
	}

	entries, err := readIfExists(filepath.Join(b.Root, journalFile), ReadEntries)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := b.Journal.Save(e); err != nil {
			return fmt.Errorf("loading entry %s: %w", e.Number, err)
		}
	}

	states, err := readIfExists(filepath.Join(b.Root, periodsFile), ReadPeriods)
	if err != nil {
		return err
	}
	for _, s := range states {
		if err := b.Periods.Save(s); err != nil {
			return fmt.Errorf("loading period %s: %w", s.Period, err)
		}
	}

	balances, err := readIfExists(filepath.Join(b.Root, balancesFile), ReadBalances)
	if err != nil {
		return err
	}
	for _, bal := range balances {
		if err := b.Balances.Save(bal); err != nil {
			return fmt.Errorf("loading balance %s %s: %w", bal.AccountID, bal.Period, err)
		}
	}

	txns, err := readIfExists(filepath.Join(b.Root, bankTxnsFile), ReadBankTransactions)
	if err != nil {
		return err
	}
	for _, t := range txns {
		if err := b.BankTxns.Save(t); err != nil {
			return fmt.Errorf("loading bank transaction %s: %w", t.Reference, err)
		}
	}

	statements, err := readIfExists(filepath.Join(b.Root, statementsFile), ReadStatements)
	if err != nil {
		return err
	}
	for _, s := range statements {
		if err := b.Statements.Save(s); err != nil {
			return fmt.Errorf("loading statement %s: %w", s.ID, err)
		}
	}

	assets, err := readIfExists(filepath.Join(b.Root, assetsFile), ReadAssets)
	if err != nil {
		return err
	}
	for _, a := range assets {
		if err := b.Assets.Save(a); err != nil {
			return fmt.Errorf("loading asset %s: %w", a.Name, err)
		}
	}
	return nil
}

// Save writes every repository back to its CSV file.
func (b *Book) Save() error {
	accounts, err := b.Accounts.FindAll(coa.Filter{})
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(b.Root, accountsFile), func(f *os.File) error {
		return WriteAccounts(f, accounts)
	}); err != nil {
		return err
	}

	entries, err := b.Journal.FindAll(journal.Filter{}, journal.Page{})
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(b.Root, journalFile), func(f *os.File) error {
		return WriteEntries(f, entries)
	}); err != nil {
		return err
	}

	states, err := b.Periods.FindAll()
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(b.Root, periodsFile), func(f *os.File) error {
		return WritePeriods(f, states)
	}); err != nil {
		return err
	}

	balances, err := b.Balances.FindAll()
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(b.Root, balancesFile), func(f *os.File) error {
		return WriteBalances(f, balances)
	}); err != nil {
		return err
	}

	txns, err := b.BankTxns.FindAll()
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(b.Root, bankTxnsFile), func(f *os.File) error {
		return WriteBankTransactions(f, txns)
	}); err != nil {
		return err
	}

	statements, err := b.Statements.FindAll()
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(b.Root, statementsFile), func(f *os.File) error {
		return WriteStatements(f, statements)
	}); err != nil {
		return err
	}

	assets, err := b.Assets.FindAll()
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(b.Root, assetsFile), func(f *os.File) error {
		return WriteAssets(f, assets)
	})
}

func readIfExists[T any](path string, read func(r io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	out, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return out, nil
}
