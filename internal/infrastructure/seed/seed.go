// Package seed provides the account sets the ledger starts from and turns
// them into ledger accounts and credentials.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mufasadev/account-ledger/internal/domain/models"
	"github.com/mufasadev/account-ledger/internal/domain/money"
	"github.com/mufasadev/account-ledger/internal/domain/repositories"
	"github.com/shopspring/decimal"
)

// DefaultAccounts are the demo accounts used when no seed source is configured.
func DefaultAccounts() []models.SeedAccount {
	return []models.SeedAccount{
		{ID: "user1", Credential: "user1_key", Balance: decimal.NewFromInt(2000), Currency: "PKR"},
		{ID: "user2", Credential: "user2_key", Balance: decimal.NewFromInt(5000), Currency: "PKR"},
	}
}

type staticRepository struct {
	accounts []models.SeedAccount
}

// NewStaticRepository serves a fixed list of accounts.
func NewStaticRepository(accounts []models.SeedAccount) repositories.SeedRepository {
	return &staticRepository{accounts: accounts}
}

func (r *staticRepository) LoadAccounts(_ context.Context) ([]models.SeedAccount, error) {
	out := make([]models.SeedAccount, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

type fileRepository struct {
	path string
}

// NewFileRepository reads accounts from a JSON file holding an array of
// {"id", "credential", "balance", "currency"} objects.
func NewFileRepository(path string) repositories.SeedRepository {
	return &fileRepository{path: path}
}

func (r *fileRepository) LoadAccounts(_ context.Context) ([]models.SeedAccount, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var accounts []models.SeedAccount
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", r.path, err)
	}
	return accounts, nil
}

// Build validates the seed and converts balances to minor units.
func Build(seed []models.SeedAccount) ([]models.Account, []models.Credential, error) {
	accounts := make([]models.Account, 0, len(seed))
	credentials := make([]models.Credential, 0, len(seed))
	for _, s := range seed {
		id := strings.TrimSpace(s.ID)
		if id == "" {
			return nil, nil, fmt.Errorf("seed account without id")
		}
		credential := strings.TrimSpace(s.Credential)
		if credential == "" {
			return nil, nil, fmt.Errorf("seed account %q: credential is empty", id)
		}
		currency := strings.ToUpper(strings.TrimSpace(s.Currency))
		if !money.ValidCurrency(currency) {
			return nil, nil, fmt.Errorf("seed account %q: invalid currency %q", id, s.Currency)
		}
		balance, err := money.BalanceToMinor(s.Balance, currency)
		if err != nil {
			return nil, nil, fmt.Errorf("seed account %q: %w", id, err)
		}

		accounts = append(accounts, models.Account{ID: id, Balance: balance, Currency: currency})
		credentials = append(credentials, models.Credential{Key: credential, AccountID: id})
	}

	return accounts, credentials, nil
}
