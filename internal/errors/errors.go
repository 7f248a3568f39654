package errors

import (
	"errors"
	"fmt"
)

const (
	ErrorFailedToConnectToTheDatabase = "Failed to connect to the database"
	ErrorFailedToBuildLedger          = "Failed to build the ledger"
	ErrorFailedToRunTheServer         = "Failed to run the server"
	ErrorFailedToShutdownTheServer    = "Failed to shutdown the server"
	ErrFailedDecodeRequestBody        = "Failed to decode request body"
	ErrInvalidRequestBody             = "Invalid request body"
	ErrFailedProcessTransaction       = "Failed to process transaction"
	ErrFailedGetBalance               = "Failed to get balance"
	ErrCredentialRequired             = "Credential is required"
	ErrInvalidCredential              = "Invalid API Key"
	ErrUnknownOperation               = "unknown operation"
	ErrAmountNotPositive              = "amount must be positive"
	ErrAmountTooLarge                 = "amount exceeds the allowed maximum"
	ErrAmountPrecision                = "amount has more decimal places than the currency allows"
	ErrAmountMalformed                = "amount is not a valid decimal number"
	ErrBalanceOverflow                = "resulting balance exceeds the allowed maximum"
)

type BadRequestError struct {
	Message string
}

func NewBadRequestError(message string) *BadRequestError {
	return &BadRequestError{Message: message}
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("Bad request: %s", e.Message)
}

func (e *BadRequestError) Is(target error) bool {
	_, ok := target.(*BadRequestError)
	return ok
}

// UnauthenticatedError is returned when a credential is absent or unknown.
// The message is the same in both cases.
type UnauthenticatedError struct{}

func NewUnauthenticatedError() *UnauthenticatedError {
	return &UnauthenticatedError{}
}

func (e *UnauthenticatedError) Error() string {
	return ErrInvalidCredential
}

func (e *UnauthenticatedError) Is(target error) bool {
	_, ok := target.(*UnauthenticatedError)
	return ok
}

type InvalidAmountError struct {
	Reason string
}

func NewInvalidAmountError(reason string) *InvalidAmountError {
	return &InvalidAmountError{Reason: reason}
}

func (e *InvalidAmountError) Error() string {
	if e.Reason == "" {
		return "invalid amount"
	}
	return fmt.Sprintf("invalid amount: %s", e.Reason)
}

// Is matches any InvalidAmountError regardless of the reason.
func (e *InvalidAmountError) Is(target error) bool {
	_, ok := target.(*InvalidAmountError)
	return ok
}

type InsufficientFundsError struct{}

func NewInsufficientFundsError() *InsufficientFundsError {
	return &InsufficientFundsError{}
}

func (e *InsufficientFundsError) Error() string {
	return "insufficient funds"
}

func (e *InsufficientFundsError) Is(target error) bool {
	_, ok := target.(*InsufficientFundsError)
	return ok
}

type AccountNotFoundError struct {
	ID string
}

func NewAccountNotFoundError(id string) *AccountNotFoundError {
	return &AccountNotFoundError{ID: id}
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("account %q not found", e.ID)
}

func (e *AccountNotFoundError) Is(target error) bool {
	_, ok := target.(*AccountNotFoundError)
	return ok
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
