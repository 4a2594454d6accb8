package coa

// Filter narrows FindAll results. Zero values match everything.
type Filter struct {
	Type       AccountType
	Status     Status
	DetailOnly bool
}

// TreeNode is an account with its resolved children, for hierarchy views.
type TreeNode struct {
	Account  *Account
	Children []*TreeNode
}

// Repository is the persistence port for the chart of accounts.
type Repository interface {
	FindByID(id string) (*Account, error)
	FindByCode(code Code) (*Account, error)
	FindAll(f Filter) ([]*Account, error)
	FindByParentID(parentID string) ([]*Account, error)
	AccountTree() ([]*TreeNode, error)
	Save(a *Account) error
	Delete(id string) error
	HasTransactions(id string) (bool, error)
	CodeExists(code Code) (bool, error)
}
