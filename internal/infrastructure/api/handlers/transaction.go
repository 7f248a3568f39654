package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/mufasadev/account-ledger/internal/domain/models"
	"github.com/mufasadev/account-ledger/internal/domain/money"
	"github.com/mufasadev/account-ledger/internal/errors"
	http2 "github.com/mufasadev/account-ledger/internal/infrastructure/api/http"
	"github.com/mufasadev/account-ledger/internal/usecases/dtos"
	"github.com/mufasadev/account-ledger/internal/usecases/interactor"
	"github.com/mufasadev/account-ledger/pkg/log"
	"github.com/rs/zerolog"
)

const requestTimeout = 5 * time.Second

var successMessages = map[models.Operation]string{
	models.OperationDeposit:  "Deposit successful",
	models.OperationWithdraw: "Withdrawal successful",
}

type TransactionHandler struct {
	interactor *interactor.TransactionInteractor
	logger     *zerolog.Logger
}

func NewTransactionHandler(interactor *interactor.TransactionInteractor) *TransactionHandler {
	logger := log.GetLogger()
	return &TransactionHandler{interactor: interactor, logger: &logger}
}

func (h *TransactionHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.process(w, r, models.OperationDeposit)
}

func (h *TransactionHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.process(w, r, models.OperationWithdraw)
}

// process runs behind CredentialMiddleware, so the body is only read for an
// authenticated account.
func (h *TransactionHandler) process(w http.ResponseWriter, r *http.Request, op models.Operation) {
	var dto dtos.TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.logger.Error().Err(err).Msg(errors.ErrFailedDecodeRequestBody)
		errors.HandleHTTPError(w, errors.NewBadRequestError(errors.ErrInvalidRequestBody))
		return
	}
	if len(dto.RawAmount) == 0 {
		errors.HandleHTTPError(w, errors.NewBadRequestError("amount is required"))
		return
	}
	dto.Amount = rawAmount(dto.RawAmount)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	receipt, err := h.interactor.ProcessAccountTransaction(ctx, http2.AccountID(r.Context()), op, &dto)
	if err != nil {
		h.logger.Error().Err(err).Str("operation", string(op)).Msg(errors.ErrFailedProcessTransaction)
		errors.HandleHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dtos.ReceiptDTO{
		Message:       successMessages[op],
		TransactionID: receipt.TransactionID,
		Amount:        money.Format(receipt.Amount, receipt.Currency),
		NewBalance:    money.Format(receipt.NewBalance, receipt.Currency),
		Currency:      receipt.Currency,
	})
}

// rawAmount accepts both 12.5 and "12.5".
func rawAmount(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
