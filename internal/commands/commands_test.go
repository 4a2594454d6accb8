package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balancebook-dev/balancebook/internal/coa"
	"github.com/balancebook-dev/balancebook/internal/commands"
	"github.com/balancebook-dev/balancebook/internal/fiscal"
	"github.com/balancebook-dev/balancebook/internal/store"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func initBooks(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := run(t, "init", dir, "--name", "Test Biz")
	require.NoError(t, err)
	return dir
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := initBooks(t)

	for _, f := range []string{
		"balancebook.yaml",
		filepath.Join("accounts", "chart-of-accounts.csv"),
		filepath.Join("import", ".gitkeep"),
		"logs",
	} {
		_, err := os.Stat(filepath.Join(dir, f))
		require.NoError(t, err, "%s should exist", f)
	}
}

func TestAccounts_ListAndAdd(t *testing.T) {
	dir := initBooks(t)

	out, err := run(t, "accounts", "list", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "1000")
	assert.Contains(t, out, "Cash")
	assert.Contains(t, out, "CURRENT_ASSET")

	_, err = run(t, "accounts", "add", "6400", "--dir", dir, "--name", "Software Subscriptions")
	require.NoError(t, err)

	out, err = run(t, "accounts", "list", "--dir", dir, "--type", "expense")
	require.NoError(t, err)
	assert.Contains(t, out, "Software Subscriptions")

	// Duplicate code rejected.
	_, err = run(t, "accounts", "add", "6400", "--dir", dir, "--name", "Dup")
	assert.ErrorIs(t, err, coa.ErrDuplicateCode)
}

func TestEntry_Lifecycle(t *testing.T) {
	dir := initBooks(t)

	out, err := run(t, "entry", "add", "--dir", dir,
		"--date", "2025-03-10", "--description", "March rent", "--user", "alice",
		"--debit", "6100:1500.00", "--credit", "1000:1500.00")
	require.NoError(t, err)
	assert.Contains(t, out, "JE-2025-000001")

	out, err = run(t, "entry", "post", "JE-2025-000001", "--dir", dir, "--user", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "Posted JE-2025-000001")

	out, err = run(t, "entry", "void", "JE-2025-000001", "--dir", dir,
		"--user", "bob", "--reason", "duplicate of manual payment")
	require.NoError(t, err)
	assert.Contains(t, out, "Voided JE-2025-000001")
}

func TestEntry_PostMaintainsBalances(t *testing.T) {
	dir := initBooks(t)
	p := fiscal.Period{Year: 2025, Month: 3}

	_, err := run(t, "entry", "add", "--dir", dir,
		"--date", "2025-03-10", "--description", "March rent", "--user", "alice",
		"--debit", "6100:1500.00", "--credit", "1000:1500.00")
	require.NoError(t, err)
	_, err = run(t, "entry", "post", "JE-2025-000001", "--dir", dir, "--user", "alice")
	require.NoError(t, err)

	book, err := store.Open(dir)
	require.NoError(t, err)
	rent, err := book.Accounts.FindByCode(coa.Code("6100"))
	require.NoError(t, err)
	bal, err := book.Balances.Find(rent.ID, p)
	require.NoError(t, err)
	assert.Equal(t, "1500.00", bal.DebitTotal.StringFixed(2))
	assert.Equal(t, "1500.00", bal.Closing.StringFixed(2))

	cash, err := book.Accounts.FindByCode(coa.Code("1000"))
	require.NoError(t, err)
	bal, err = book.Balances.Find(cash.ID, p)
	require.NoError(t, err)
	assert.Equal(t, "-1500.00", bal.Closing.StringFixed(2), "credit against a debit-normal account")

	// Voiding the entry zeroes the rollup again.
	_, err = run(t, "entry", "void", "JE-2025-000001", "--dir", dir,
		"--user", "bob", "--reason", "duplicate of manual payment")
	require.NoError(t, err)

	book, err = store.Open(dir)
	require.NoError(t, err)
	bal, err = book.Balances.Find(rent.ID, p)
	require.NoError(t, err)
	assert.Equal(t, "0.00", bal.Closing.StringFixed(2))
}

func TestPeriod_CloseRollsBalancesForward(t *testing.T) {
	dir := initBooks(t)

	_, err := run(t, "entry", "add", "--dir", dir,
		"--date", "2025-01-20", "--description", "January rent", "--user", "alice",
		"--debit", "6100:100.00", "--credit", "1000:100.00")
	require.NoError(t, err)
	_, err = run(t, "entry", "post", "JE-2025-000001", "--dir", dir, "--user", "alice")
	require.NoError(t, err)
	_, err = run(t, "period", "close", "2025-01", "--dir", dir, "--user", "controller")
	require.NoError(t, err)

	book, err := store.Open(dir)
	require.NoError(t, err)
	cash, err := book.Accounts.FindByCode(coa.Code("1000"))
	require.NoError(t, err)
	feb, err := book.Balances.Find(cash.ID, fiscal.Period{Year: 2025, Month: 2})
	require.NoError(t, err)
	assert.Equal(t, "-100.00", feb.Opening.StringFixed(2))
	assert.Equal(t, "-100.00", feb.Closing.StringFixed(2))
}

func TestEntry_UnbalancedRejected(t *testing.T) {
	dir := initBooks(t)

	_, err := run(t, "entry", "add", "--dir", dir,
		"--date", "2025-03-10", "--description", "Broken",
		"--debit", "6100:1500.00", "--credit", "1000:1400.00")
	require.Error(t, err)
}

func TestEntry_NumbersIncrementAcrossInvocations(t *testing.T) {
	dir := initBooks(t)

	for _, desc := range []string{"first", "second"} {
		_, err := run(t, "entry", "add", "--dir", dir,
			"--date", "2025-03-10", "--description", desc,
			"--debit", "6100:10.00", "--credit", "1000:10.00")
		require.NoError(t, err)
	}

	out, err := run(t, "period", "status", "2025-03", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "2 draft")
}

func TestPeriod_CloseBlocksPosting(t *testing.T) {
	dir := initBooks(t)

	_, err := run(t, "entry", "add", "--dir", dir,
		"--date", "2025-03-10", "--description", "March rent",
		"--debit", "6100:1500.00", "--credit", "1000:1500.00")
	require.NoError(t, err)

	out, err := run(t, "period", "close", "2025-03", "--dir", dir, "--user", "controller")
	require.NoError(t, err)
	assert.Contains(t, out, "Closed 2025-03")

	_, err = run(t, "entry", "post", "JE-2025-000001", "--dir", dir, "--user", "alice")
	require.Error(t, err)

	out, err = run(t, "period", "reopen", "2025-03", "--dir", dir,
		"--user", "controller", "--reason", "missed accrual adjustment")
	require.NoError(t, err)
	assert.Contains(t, out, "Reopened 2025-03")

	_, err = run(t, "entry", "post", "JE-2025-000001", "--dir", dir, "--user", "alice")
	require.NoError(t, err)
}

func TestPeriod_CloseRequiresPreviousClosed(t *testing.T) {
	dir := initBooks(t)

	// Posting in February materializes it as an open period.
	_, err := run(t, "entry", "add", "--dir", dir,
		"--date", "2025-02-10", "--description", "Feb rent",
		"--debit", "6100:1500.00", "--credit", "1000:1500.00")
	require.NoError(t, err)
	_, err = run(t, "entry", "post", "JE-2025-000001", "--dir", dir, "--user", "alice")
	require.NoError(t, err)

	_, err = run(t, "period", "close", "2025-03", "--dir", dir, "--user", "controller")
	require.Error(t, err)

	_, err = run(t, "period", "close", "2025-02", "--dir", dir, "--user", "controller")
	require.NoError(t, err)
	_, err = run(t, "period", "close", "2025-03", "--dir", dir, "--user", "controller")
	require.NoError(t, err)
}

func TestPeriod_LockIsPermanent(t *testing.T) {
	dir := initBooks(t)

	_, err := run(t, "period", "close", "2025-03", "--dir", dir, "--user", "controller")
	require.NoError(t, err)
	out, err := run(t, "period", "lock", "2025-03", "--dir", dir, "--user", "controller")
	require.NoError(t, err)
	assert.Contains(t, out, "Locked 2025-03")

	_, err = run(t, "period", "reopen", "2025-03", "--dir", dir,
		"--user", "controller", "--reason", "trying to reopen a locked month")
	require.Error(t, err)
}

const statementCSV = `date,description,amount,reference
2025-01-03,Github subscription,-4.00,ach-8841
2025-01-15,Acme invoice 1042,3500.00,ach-8902
`

func writeStatement(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, "import", name)
	require.NoError(t, os.WriteFile(path, []byte(statementCSV), 0o644))
}

func TestImport_FileAndDedup(t *testing.T) {
	dir := initBooks(t)
	writeStatement(t, dir, "jan.csv")

	out, err := run(t, "import", "scan", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "jan.csv")

	out, err = run(t, "import", "file", "jan.csv", "--dir", dir,
		"--account", "bank-1", "--format", "generic")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 transactions (0 duplicates skipped)")

	// The file moves to import/processed on success.
	_, err = os.Stat(filepath.Join(dir, "import", "processed", "jan.csv"))
	require.NoError(t, err)

	// Re-importing the same statement is a no-op.
	writeStatement(t, dir, "jan-again.csv")
	out, err = run(t, "import", "file", "jan-again.csv", "--dir", dir,
		"--account", "bank-1", "--format", "generic")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 0 transactions (2 duplicates skipped)")

	out, err = run(t, "recon", "status", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "bank-1: 2 unmatched of 2")

	// Both transactions landed on one statement header for the period.
	book, err := store.Open(dir)
	require.NoError(t, err)
	s, err := book.Statements.FindByAccountAndPeriod("bank-1", fiscal.Period{Year: 2025, Month: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, s.TransactionCount)
	assert.Equal(t, "3500.00", s.TotalDeposits.StringFixed(2))
	assert.Equal(t, "4.00", s.TotalWithdrawals.StringFixed(2))

	txns, err := book.BankTxns.FindByStatement(s.ID)
	require.NoError(t, err)
	assert.Len(t, txns, 2)
}

func TestAsset_AddAndDepreciate(t *testing.T) {
	dir := initBooks(t)

	out, err := run(t, "asset", "add", "--dir", dir,
		"--name", "Laptop", "--cost", "2400", "--salvage", "400",
		"--life", "24", "--acquired", "2025-01-15", "--start", "2025-02-01",
		"--user", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "straight-line over 24 months")

	out, err = run(t, "asset", "depreciate", "2025-02", "--dir", dir, "--user", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "Depreciated 1 assets for 2025-02 (83.33, completed)")
}

func TestAsset_DepreciateRerunDoesNotDoubleBook(t *testing.T) {
	dir := initBooks(t)

	_, err := run(t, "asset", "add", "--dir", dir,
		"--name", "Laptop", "--cost", "2400", "--salvage", "400",
		"--life", "24", "--acquired", "2025-01-15", "--start", "2025-02-01",
		"--user", "alice")
	require.NoError(t, err)

	out, err := run(t, "asset", "depreciate", "2025-02", "--dir", dir, "--user", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "(83.33, completed)")

	// Running the same period again charges nothing.
	out, err = run(t, "asset", "depreciate", "2025-02", "--dir", dir, "--user", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "Depreciated 0 assets for 2025-02 (0.00, completed)")

	// The next period picks up where the first run left off.
	out, err = run(t, "asset", "depreciate", "2025-03", "--dir", dir, "--user", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "(83.33, completed)")
}

func TestAsset_DepreciateClosedPeriodRejected(t *testing.T) {
	dir := initBooks(t)

	_, err := run(t, "asset", "add", "--dir", dir,
		"--name", "Laptop", "--cost", "2400", "--salvage", "400",
		"--life", "24", "--acquired", "2025-01-15", "--start", "2025-02-01")
	require.NoError(t, err)

	_, err = run(t, "period", "close", "2025-02", "--dir", dir, "--user", "controller")
	require.NoError(t, err)

	_, err = run(t, "asset", "depreciate", "2025-02", "--dir", dir)
	require.Error(t, err)
}

func TestAuditTrail_RecordsActions(t *testing.T) {
	dir := initBooks(t)

	_, err := run(t, "accounts", "add", "6400", "--dir", dir, "--name", "Software Subscriptions")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "logs", "audit-log.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "account.add")
	assert.Contains(t, string(data), "books-admin")
}
