package repositories

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mufasadev/account-ledger/internal/config"
	"github.com/mufasadev/account-ledger/internal/infrastructure/database/db_client"
	"github.com/mufasadev/account-ledger/internal/infrastructure/seed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupDB connects to the database described by the DB_* variables. The
// tests are skipped when DB_HOST is not set.
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if _, ok := os.LookupEnv("DB_HOST"); !ok {
		t.Skip("DB_HOST is not set")
	}

	cnf := config.Parse()
	db, err := db_client.NewPGClient(cnf.PostgreSQL).Connect(context.Background())
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func TestAccountSeedRepository(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)

	repo := NewAccountSeedRepositoryImpl(db)
	require.NoError(t, repo.Migrate(ctx))

	_, err := db.Exec(ctx, "TRUNCATE TABLE accounts")
	require.NoError(t, err)
	_, err = db.Exec(ctx,
		"INSERT INTO accounts (id, api_key, balance, currency) VALUES ($1, $2, $3, $4), ($5, $6, $7, $8)",
		"acct-1", "key-1", decimal.RequireFromString("200.00"), "PKR",
		"acct-2", "key-2", decimal.RequireFromString("0.10"), "USD",
	)
	require.NoError(t, err)

	loaded, err := repo.LoadAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "acct-1", loaded[0].ID)
	assert.Equal(t, "key-1", loaded[0].Credential)
	assert.True(t, loaded[0].Balance.Equal(decimal.NewFromInt(200)))

	accounts, credentials, err := seed.Build(loaded)
	require.NoError(t, err)
	assert.Equal(t, int64(20000), accounts[0].Balance)
	assert.Equal(t, int64(10), accounts[1].Balance)
	assert.Len(t, credentials, 2)
}
