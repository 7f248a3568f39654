package models

import "github.com/shopspring/decimal"

// SeedAccount is the start-up description of an account and its credential.
// Balance is expressed in major units of Currency.
type SeedAccount struct {
	ID         string          `json:"id"`
	Credential string          `json:"credential"`
	Balance    decimal.Decimal `json:"balance"`
	Currency   string          `json:"currency"`
}
