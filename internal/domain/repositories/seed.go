package repositories

import (
	"context"

	"github.com/mufasadev/account-ledger/internal/domain/models"
)

// SeedRepository supplies the accounts the ledger is built from.
type SeedRepository interface {
	LoadAccounts(ctx context.Context) ([]models.SeedAccount, error)
}
