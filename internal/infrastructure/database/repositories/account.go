package repositories

import (
	"context"
	"fmt"

	"github.com/mufasadev/account-ledger/internal/domain/models"
	"github.com/mufasadev/account-ledger/internal/domain/repositories"
	"github.com/mufasadev/account-ledger/pkg/log"
	"github.com/mufasadev/account-ledger/pkg/postgresql"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const CreateAccountsTable = `
CREATE TABLE IF NOT EXISTS accounts (
  id       TEXT PRIMARY KEY,
  api_key  TEXT NOT NULL UNIQUE,
  balance  NUMERIC(20,4) NOT NULL DEFAULT 0 CHECK (balance >= 0),
  currency CHAR(3) NOT NULL
);`

const selectAccounts = `SELECT id, api_key, balance, currency FROM accounts ORDER BY id`

var _ repositories.SeedRepository = (*AccountSeedRepositoryImpl)(nil)

type AccountSeedRepositoryImpl struct {
	db     postgresql.Client
	logger *zerolog.Logger
}

// NewAccountSeedRepositoryImpl reads the start-up accounts from the accounts table.
// NUMERIC balances are scanned into decimal.Decimal, so the pool must have
// pgx-shopspring-decimal registered (see db_client).
func NewAccountSeedRepositoryImpl(db postgresql.Client) *AccountSeedRepositoryImpl {
	l := log.GetLogger()
	return &AccountSeedRepositoryImpl{
		db:     db,
		logger: &l,
	}
}

// Migrate creates the accounts table when it does not exist.
func (r *AccountSeedRepositoryImpl) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, CreateAccountsTable); err != nil {
		return fmt.Errorf("create accounts table: %w", err)
	}
	return nil
}

// LoadAccounts returns every row of the accounts table.
func (r *AccountSeedRepositoryImpl) LoadAccounts(ctx context.Context) ([]models.SeedAccount, error) {
	rows, err := r.db.Query(ctx, selectAccounts)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]models.SeedAccount, 0)
	for rows.Next() {
		var (
			a       models.SeedAccount
			balance decimal.Decimal
		)
		if err = rows.Scan(&a.ID, &a.Credential, &balance, &a.Currency); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		a.Balance = balance
		accounts = append(accounts, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("read accounts: %w", err)
	}

	r.logger.Info().Int("accounts", len(accounts)).Msg("loaded accounts from postgres")
	return accounts, nil
}
