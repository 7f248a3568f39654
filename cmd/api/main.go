package main

import (
	"context"
	"strconv"

	"github.com/mufasadev/account-ledger/internal/app"
	"github.com/mufasadev/account-ledger/internal/config"
	"github.com/mufasadev/account-ledger/internal/di"
	"github.com/mufasadev/account-ledger/internal/domain/repositories"
	"github.com/mufasadev/account-ledger/internal/errors"
	"github.com/mufasadev/account-ledger/internal/infrastructure/api/routers"
	"github.com/mufasadev/account-ledger/internal/infrastructure/database/db_client"
	dbrepositories "github.com/mufasadev/account-ledger/internal/infrastructure/database/repositories"
	"github.com/mufasadev/account-ledger/internal/infrastructure/seed"
	"github.com/mufasadev/account-ledger/pkg/log"
)

const (
	appName = "account-ledger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	logOpts := []log.LoggerOption{log.WithLevel(cfg.Log.Level)}
	if console, _ := strconv.ParseBool(cfg.Log.Console); console {
		logOpts = append(logOpts, log.WithConsoleLogger())
	}
	if cfg.Log.File != "" {
		logOpts = append(logOpts, log.WithFileLogger(cfg.Log.File))
	}
	log.Init(appName, logOpts...)
	logger := log.GetLogger()

	var seedRepository repositories.SeedRepository
	switch cfg.Seed.Source {
	case "file":
		seedRepository = seed.NewFileRepository(cfg.Seed.File)
	case "postgres":
		db, err := db_client.NewPGClient(cfg.PostgreSQL).Connect(ctx)
		if err != nil {
			logger.Fatal().Err(err).Msg(errors.ErrorFailedToConnectToTheDatabase)
		}
		defer db.Close()
		accountRepository := dbrepositories.NewAccountSeedRepositoryImpl(db)
		if err = accountRepository.Migrate(ctx); err != nil {
			logger.Fatal().Err(err).Msg(errors.ErrorFailedToConnectToTheDatabase)
		}
		seedRepository = accountRepository
	default:
		seedRepository = seed.NewStaticRepository(seed.DefaultAccounts())
	}

	container, err := di.NewContainer(ctx, seedRepository)
	if err != nil {
		logger.Fatal().Err(err).Msg(errors.ErrorFailedToBuildLedger)
	}
	logger.Info().Str("seed", cfg.Seed.Source).Int("accounts", container.Ledger.Accounts()).Msg("ledger ready")

	report, err := app.NewLedgerReportProcess(container.ReportInteractor, cfg.Process)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid report configuration")
	}
	go report.Run(ctx)

	router := routers.NewRouter(container)
	service := app.NewService(cfg)
	if err = service.Run(ctx, router); err != nil {
		logger.Fatal().Err(err).Msg(errors.ErrorFailedToRunTheServer)
	}
}
