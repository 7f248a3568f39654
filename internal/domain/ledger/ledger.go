// Package ledger keeps account balances in memory and applies deposits and
// withdrawals with per-account mutual exclusion.
//
// The set of accounts is fixed when the Ledger is built, so the index is read
// without locking. Every balance read or write holds the owning account's
// mutex, which serialises operations on one account while leaving other
// accounts free to proceed.
package ledger

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/mufasadev/account-ledger/internal/domain/models"
	"github.com/mufasadev/account-ledger/internal/domain/money"
	"github.com/mufasadev/account-ledger/internal/domain/repositories"
	apperrors "github.com/mufasadev/account-ledger/internal/errors"
)

// MaxBalance is the largest balance an account may reach.
const MaxBalance int64 = math.MaxInt64 / 2

type entry struct {
	mu      sync.Mutex
	account models.Account
}

type Ledger struct {
	entries map[string]*entry
}

var _ repositories.AccountLedger = (*Ledger)(nil)

// New builds a ledger from the given accounts. Ids must be unique, balances
// non-negative and currencies 3-letter ISO codes.
func New(accounts []models.Account) (*Ledger, error) {
	entries := make(map[string]*entry, len(accounts))
	for _, a := range accounts {
		if a.ID == "" {
			return nil, fmt.Errorf("account id is empty")
		}
		if _, dup := entries[a.ID]; dup {
			return nil, fmt.Errorf("duplicate account id %q", a.ID)
		}
		if a.Balance < 0 || a.Balance > MaxBalance {
			return nil, fmt.Errorf("account %q: balance %d out of range", a.ID, a.Balance)
		}
		if !money.ValidCurrency(a.Currency) {
			return nil, fmt.Errorf("account %q: invalid currency %q", a.ID, a.Currency)
		}
		entries[a.ID] = &entry{account: a}
	}

	return &Ledger{entries: entries}, nil
}

// GetBalance returns the current balance and currency of the account.
func (l *Ledger) GetBalance(ctx context.Context, id string) (int64, string, error) {
	if err := ctx.Err(); err != nil {
		return 0, "", err
	}
	e, err := l.lookup(id)
	if err != nil {
		return 0, "", err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.account.Balance, e.account.Currency, nil
}

// Deposit adds amount to the account and returns the new balance.
func (l *Ledger) Deposit(ctx context.Context, id string, amount int64) (int64, error) {
	return l.apply(ctx, id, amount, func(balance int64) (int64, error) {
		if balance > MaxBalance-amount {
			return 0, apperrors.NewInvalidAmountError(apperrors.ErrBalanceOverflow)
		}
		return balance + amount, nil
	})
}

// Withdraw subtracts amount from the account and returns the new balance.
// The funds check and the update happen under the same lock.
func (l *Ledger) Withdraw(ctx context.Context, id string, amount int64) (int64, error) {
	return l.apply(ctx, id, amount, func(balance int64) (int64, error) {
		if amount > balance {
			return 0, apperrors.NewInsufficientFundsError()
		}
		return balance - amount, nil
	})
}

// Snapshot returns a copy of every account, ordered by id. Each account is
// read under its own lock.
func (l *Ledger) Snapshot() []models.Account {
	out := make([]models.Account, 0, len(l.entries))
	for _, e := range l.entries {
		e.mu.Lock()
		out = append(out, e.account)
		e.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Accounts returns the number of accounts in the ledger.
func (l *Ledger) Accounts() int {
	return len(l.entries)
}

func (l *Ledger) apply(ctx context.Context, id string, amount int64, next func(balance int64) (int64, error)) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := validateAmount(amount); err != nil {
		return 0, err
	}
	e, err := l.lookup(id)
	if err != nil {
		return 0, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	balance, err := next(e.account.Balance)
	if err != nil {
		return 0, err
	}
	e.account.Balance = balance
	return balance, nil
}

func (l *Ledger) lookup(id string) (*entry, error) {
	e, ok := l.entries[id]
	if !ok {
		return nil, apperrors.NewAccountNotFoundError(id)
	}
	return e, nil
}

func validateAmount(amount int64) error {
	if amount <= 0 {
		return apperrors.NewInvalidAmountError(apperrors.ErrAmountNotPositive)
	}
	if amount > money.MaxMinor {
		return apperrors.NewInvalidAmountError(apperrors.ErrAmountTooLarge)
	}
	return nil
}
