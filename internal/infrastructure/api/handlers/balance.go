package handlers

import (
	"context"
	"net/http"

	"github.com/mufasadev/account-ledger/internal/domain/money"
	"github.com/mufasadev/account-ledger/internal/errors"
	http2 "github.com/mufasadev/account-ledger/internal/infrastructure/api/http"
	"github.com/mufasadev/account-ledger/internal/usecases/dtos"
	"github.com/mufasadev/account-ledger/internal/usecases/interactor"
	"github.com/mufasadev/account-ledger/pkg/log"
	"github.com/rs/zerolog"
)

type BalanceHandler struct {
	interactor *interactor.TransactionInteractor
	logger     *zerolog.Logger
}

func NewBalanceHandler(interactor *interactor.TransactionInteractor) *BalanceHandler {
	logger := log.GetLogger()
	return &BalanceHandler{interactor: interactor, logger: &logger}
}

func (bh *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	account, err := bh.interactor.AccountBalance(ctx, http2.AccountID(r.Context()))
	if err != nil {
		bh.logger.Error().Err(err).Msg(errors.ErrFailedGetBalance)
		errors.HandleHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dtos.BalanceDTO{
		User:     account.ID,
		Balance:  money.Format(account.Balance, account.Currency),
		Currency: account.Currency,
	})
}
