package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mufasadev/account-ledger/pkg/log"
	"github.com/mufasadev/account-ledger/pkg/util/repeat"
)

const ClientTimeout = 5 * time.Second

type Client interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

var _ Client = (*pgxpool.Pool)(nil)

// NewClient opens a pool and pings it, retrying up to maxAttempts times.
func NewClient(ctx context.Context, cfg *pgxpool.Config, maxAttempts int) (*pgxpool.Pool, error) {
	logger := log.GetLogger()
	var pool *pgxpool.Pool

	err := repeat.Repeat(ctx, func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, ClientTimeout)
		defer cancel()

		p, err := pgxpool.NewWithConfig(attemptCtx, cfg)
		if err != nil {
			return err
		}

		if err = p.Ping(attemptCtx); err != nil {
			p.Close()
			logger.Warn().Err(err).Msg("postgres is not reachable yet")
			return err
		}

		pool = p
		return nil
	}, maxAttempts, ClientTimeout)

	if err != nil {
		return nil, err
	}

	return pool, nil
}
