package interactor

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mufasadev/account-ledger/internal/domain/models"
	"github.com/mufasadev/account-ledger/internal/domain/money"
	"github.com/mufasadev/account-ledger/internal/domain/repositories"
	apperrors "github.com/mufasadev/account-ledger/internal/errors"
	"github.com/mufasadev/account-ledger/internal/usecases/dtos"
	"github.com/mufasadev/account-ledger/pkg/log"
	"github.com/rs/zerolog"
)

type TransactionInteractor struct {
	auth   Authenticator
	ledger repositories.AccountLedger
	logger *zerolog.Logger
}

func NewTransactionInteractor(auth Authenticator, ledger repositories.AccountLedger) *TransactionInteractor {
	l := log.GetLogger()
	return &TransactionInteractor{
		auth:   auth,
		ledger: ledger,
		logger: &l,
	}
}

// GetBalance returns the account owned by credential.
func (i *TransactionInteractor) GetBalance(ctx context.Context, credential string) (models.Account, error) {
	id, err := i.auth.Authenticate(ctx, credential)
	if err != nil {
		return models.Account{}, err
	}
	return i.AccountBalance(ctx, id)
}

// AccountBalance returns the account with the given id. The caller must have
// authenticated the id already.
func (i *TransactionInteractor) AccountBalance(ctx context.Context, id string) (models.Account, error) {
	balance, currency, err := i.ledger.GetBalance(ctx, id)
	if err != nil {
		i.logger.Error().Err(err).Str("account", id).Msg("Failed to get balance")
		return models.Account{}, err
	}

	return models.Account{ID: id, Balance: balance, Currency: currency}, nil
}

// Deposit credits amount minor units to the account owned by credential.
func (i *TransactionInteractor) Deposit(ctx context.Context, credential string, amount int64) (*models.Receipt, error) {
	return i.Process(ctx, credential, models.OperationDeposit, amount)
}

// Withdraw debits amount minor units from the account owned by credential.
func (i *TransactionInteractor) Withdraw(ctx context.Context, credential string, amount int64) (*models.Receipt, error) {
	return i.Process(ctx, credential, models.OperationWithdraw, amount)
}

// Process authenticates the caller and applies op to their account.
func (i *TransactionInteractor) Process(ctx context.Context, credential string, op models.Operation, amount int64) (*models.Receipt, error) {
	id, err := i.auth.Authenticate(ctx, credential)
	if err != nil {
		return nil, err
	}
	if err = validOperation(op); err != nil {
		return nil, err
	}

	_, currency, err := i.ledger.GetBalance(ctx, id)
	if err != nil {
		return nil, err
	}
	return i.apply(ctx, id, currency, op, amount)
}

// ProcessTransaction is Process for amounts given as decimal strings in major
// units. The amount is converted with the account's currency once the caller
// is authenticated.
func (i *TransactionInteractor) ProcessTransaction(ctx context.Context, credential string, op models.Operation, dto *dtos.TransactionDTO) (*models.Receipt, error) {
	id, err := i.auth.Authenticate(ctx, credential)
	if err != nil {
		return nil, err
	}
	return i.ProcessAccountTransaction(ctx, id, op, dto)
}

// ProcessAccountTransaction applies op to an account that was authenticated
// upstream, e.g. by the HTTP credential middleware.
func (i *TransactionInteractor) ProcessAccountTransaction(ctx context.Context, id string, op models.Operation, dto *dtos.TransactionDTO) (*models.Receipt, error) {
	if err := validOperation(op); err != nil {
		return nil, err
	}

	_, currency, err := i.ledger.GetBalance(ctx, id)
	if err != nil {
		return nil, err
	}

	amount, err := money.ToMinor(dto.Amount, currency)
	if err != nil {
		i.logger.Warn().Err(err).Str("account", id).Str("operation", string(op)).Msg("Failed to parse amount")
		return nil, err
	}

	return i.apply(ctx, id, currency, op, amount)
}

func (i *TransactionInteractor) apply(ctx context.Context, id, currency string, op models.Operation, amount int64) (*models.Receipt, error) {
	var (
		balance int64
		err     error
	)
	switch op {
	case models.OperationDeposit:
		balance, err = i.ledger.Deposit(ctx, id, amount)
	case models.OperationWithdraw:
		balance, err = i.ledger.Withdraw(ctx, id, amount)
	default:
		return nil, validOperation(op)
	}
	if err != nil {
		i.logger.Warn().Err(err).Str("account", id).Str("operation", string(op)).Int64("amount", amount).Msg("transaction rejected")
		return nil, err
	}

	receipt := &models.Receipt{
		TransactionID: uuid.NewString(),
		AccountID:     id,
		Operation:     op,
		Amount:        amount,
		NewBalance:    balance,
		Currency:      currency,
	}
	i.logger.Info().
		Str("transaction", receipt.TransactionID).
		Str("account", id).
		Str("operation", string(op)).
		Int64("amount", amount).
		Int64("balance", balance).
		Msg("transaction applied")

	return receipt, nil
}

func validOperation(op models.Operation) error {
	switch op {
	case models.OperationDeposit, models.OperationWithdraw:
		return nil
	}
	return apperrors.NewBadRequestError(fmt.Sprintf("%s %q", apperrors.ErrUnknownOperation, op))
}
