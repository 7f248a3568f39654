package repositories

import (
	"context"

	"github.com/mufasadev/account-ledger/internal/domain/models"
)

// AccountLedger holds account state and enforces the balance invariants.
type AccountLedger interface {
	GetBalance(ctx context.Context, id string) (int64, string, error)
	Deposit(ctx context.Context, id string, amount int64) (int64, error)
	Withdraw(ctx context.Context, id string, amount int64) (int64, error)
	Snapshot() []models.Account
}
