package asset

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category groups assets sharing a default depreciation policy and the GL
// accounts their postings hit.
type Category struct {
	ID                   string
	Name                 string
	DefaultMethod        Method
	DefaultLifeMonths    int
	AssetAccountID       string // GL account carrying the asset cost
	AccumulatedAccountID string // contra asset for accumulated depreciation
	ExpenseAccountID     string // periodic depreciation charge
	CreatedAt            time.Time
}

// NewCategory validates and creates an asset category.
func NewCategory(name string, method Method, lifeMonths int, assetAcct, accumAcct, expenseAcct string) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	switch method {
	case StraightLine, DecliningBalance, SumOfYearsDigits, UnitsOfProduction:
	default:
		return nil, ErrUnknownMethod
	}
	if lifeMonths < 1 {
		return nil, ErrInvalidLife
	}
	return &Category{
		ID:                   uuid.NewString(),
		Name:                 strings.TrimSpace(name),
		DefaultMethod:        method,
		DefaultLifeMonths:    lifeMonths,
		AssetAccountID:       assetAcct,
		AccumulatedAccountID: accumAcct,
		ExpenseAccountID:     expenseAcct,
		CreatedAt:            time.Now().UTC(),
	}, nil
}
