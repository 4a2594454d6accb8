package commands

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/fiscal"
	"github.com/balancebook-dev/balancebook/internal/journal"
	"github.com/balancebook-dev/balancebook/internal/store"
)

// refreshBalances recomputes the rollups for every account an entry
// touches, by summing all posted lines for that account in the entry's
// period. Derived from the journal, so posting and voiding share it.
func refreshBalances(book *store.Book, e *journal.Entry) error {
	p := e.Period()
	touched := make(map[string]bool)
	for _, line := range e.Lines {
		touched[line.AccountID] = true
	}

	entries, err := book.Journal.FindByPeriod(p)
	if err != nil {
		return err
	}
	debits := make(map[string]decimal.Decimal)
	credits := make(map[string]decimal.Decimal)
	for _, je := range entries {
		if je.Status != journal.StatusPosted {
			continue
		}
		for _, line := range je.Lines {
			if !touched[line.AccountID] {
				continue
			}
			if line.Direction == journal.Debit {
				debits[line.AccountID] = debits[line.AccountID].Add(line.Amount)
			} else {
				credits[line.AccountID] = credits[line.AccountID].Add(line.Amount)
			}
		}
	}

	for accountID := range touched {
		acct, err := book.Accounts.FindByID(accountID)
		if err != nil {
			return err
		}
		bal, err := book.Balances.Find(accountID, p)
		if errors.Is(err, fiscal.ErrBalanceNotFound) {
			bal = fiscal.NewBalance(uuid.NewString(), accountID, p)
		} else if err != nil {
			return err
		}
		if err := bal.UpdateFromTransactions(debits[accountID], credits[accountID], acct.Code.NormalBalance()); err != nil {
			return err
		}
		if err := book.Balances.Save(bal); err != nil {
			return err
		}
	}
	return nil
}

// rollForwardBalances copies each closing balance of p into the opening
// balance of the following period. Runs when p closes, so the next month
// starts from the closed figures.
func rollForwardBalances(book *store.Book, p fiscal.Period) error {
	balances, err := book.Balances.FindByPeriod(p)
	if err != nil {
		return err
	}
	next := p.Next()
	for _, bal := range balances {
		acct, err := book.Accounts.FindByID(bal.AccountID)
		if err != nil {
			return err
		}
		nb, err := book.Balances.Find(bal.AccountID, next)
		if errors.Is(err, fiscal.ErrBalanceNotFound) {
			nb = fiscal.NewBalance(uuid.NewString(), bal.AccountID, next)
		} else if err != nil {
			return err
		}
		if err := nb.SetOpeningBalance(bal.Closing, acct.Code.NormalBalance()); err != nil {
			return err
		}
		if err := book.Balances.Save(nb); err != nil {
			return err
		}
	}
	return nil
}
