package models

// Account is a ledger account. Balance is kept in minor units of Currency.
type Account struct {
	ID       string `json:"id"`
	Balance  int64  `json:"balance"`
	Currency string `json:"currency"`
}

// Credential maps a bearer credential to exactly one account.
type Credential struct {
	Key       string `json:"-"`
	AccountID string `json:"account_id"`
}
