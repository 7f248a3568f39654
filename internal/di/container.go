package di

import (
	"context"
	"fmt"

	"github.com/mufasadev/account-ledger/internal/domain/ledger"
	"github.com/mufasadev/account-ledger/internal/domain/repositories"
	"github.com/mufasadev/account-ledger/internal/infrastructure/api/handlers"
	"github.com/mufasadev/account-ledger/internal/infrastructure/memory"
	"github.com/mufasadev/account-ledger/internal/infrastructure/seed"
	"github.com/mufasadev/account-ledger/internal/usecases/interactor"
)

type Container struct {
	Ledger                *ledger.Ledger
	AuthInteractor        *interactor.AuthInteractor
	TransactionInteractor *interactor.TransactionInteractor
	ReportInteractor      *interactor.ReportInteractor
	TransactionHandler    *handlers.TransactionHandler
	BalanceHandler        *handlers.BalanceHandler
}

// NewContainer loads the seed and wires the ledger, its credential store and
// the interactors and handlers built on them.
func NewContainer(ctx context.Context, seedRepository repositories.SeedRepository) (*Container, error) {
	seedAccounts, err := seedRepository.LoadAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}

	accounts, credentials, err := seed.Build(seedAccounts)
	if err != nil {
		return nil, fmt.Errorf("build seed: %w", err)
	}

	accountLedger, err := ledger.New(accounts)
	if err != nil {
		return nil, fmt.Errorf("ledger.New: %w", err)
	}

	credentialStore, err := memory.NewCredentialStore(credentials)
	if err != nil {
		return nil, fmt.Errorf("memory.NewCredentialStore: %w", err)
	}

	authInteractor := interactor.NewAuthInteractor(credentialStore)
	transactionInteractor := interactor.NewTransactionInteractor(authInteractor, accountLedger)

	return &Container{
		Ledger:                accountLedger,
		AuthInteractor:        authInteractor,
		TransactionInteractor: transactionInteractor,
		ReportInteractor:      interactor.NewReportInteractor(accountLedger),
		TransactionHandler:    handlers.NewTransactionHandler(transactionInteractor),
		BalanceHandler:        handlers.NewBalanceHandler(transactionInteractor),
	}, nil
}
