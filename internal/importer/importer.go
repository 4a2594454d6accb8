package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/banking"
)

// Row is one statement line as parsed from a bank export, before it is
// attached to an account or statement.
type Row struct {
	Date        time.Time
	Amount      decimal.Decimal
	Reference   string
	Description string
}

// Parser converts a bank CSV export into Rows.
type Parser interface {
	Parse(r io.Reader) ([]Row, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// FileInfo describes a CSV file in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// Result summarizes one import run.
type Result struct {
	Imported   []*banking.Transaction
	Duplicates int
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names.
func (r *Registry) Formats() []string {
	var names []string
	for k := range r.parsers {
		names = append(names, k)
	}
	return names
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&GenericParser{})
	r.Register(&ChaseParser{})
	return r
}

// Import parses rows from src and saves each as an unmatched bank
// transaction on the given statement. Rows whose fingerprint already
// exists in the repository are skipped and counted, never saved twice.
func Import(p Parser, repo banking.TransactionRepository, bankAccountID, statementID string, src io.Reader) (*Result, error) {
	rows, err := p.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s export: %w", p.Format(), err)
	}

	res := &Result{}
	for _, row := range rows {
		txn := banking.NewTransaction(bankAccountID, statementID, row.Date, row.Amount, row.Reference, row.Description)

		exists, err := repo.FingerprintExists(txn.Fingerprint)
		if err != nil {
			return nil, fmt.Errorf("checking fingerprint: %w", err)
		}
		if exists {
			res.Duplicates++
			continue
		}

		if err := repo.Save(txn); err != nil {
			return nil, fmt.Errorf("saving transaction %s: %w", txn.Reference, err)
		}
		res.Imported = append(res.Imported, txn)
	}
	return res, nil
}

// importDir is the subdirectory for import CSVs.
const importDir = "import"

// processedDir is the subdirectory for processed CSVs.
const processedDir = "import/processed"

// Scan returns CSV files in <bookRoot>/import/.
func Scan(bookRoot string) ([]FileInfo, error) {
	dir := filepath.Join(bookRoot, importDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// MarkProcessed moves a file from import/ to import/processed/.
func MarkProcessed(bookRoot, fileName string) error {
	src := filepath.Join(bookRoot, importDir, fileName)
	dstDir := filepath.Join(bookRoot, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}
