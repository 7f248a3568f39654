package dtos

import "encoding/json"

// TransactionDTO is the body of a deposit or withdraw request. The amount is
// accepted either as a JSON number or as a decimal string.
type TransactionDTO struct {
	Amount    string          `json:"-"`
	RawAmount json.RawMessage `json:"amount"`
}

type BalanceDTO struct {
	User     string `json:"user"`
	Balance  string `json:"balance"`
	Currency string `json:"currency"`
}

type ReceiptDTO struct {
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id"`
	Amount        string `json:"amount"`
	NewBalance    string `json:"new_balance"`
	Currency      string `json:"currency"`
}
