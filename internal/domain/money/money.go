// Package money converts between decimal major-unit amounts and the int64
// minor units the ledger stores.
package money

import (
	"strings"

	apperrors "github.com/mufasadev/account-ledger/internal/errors"
	"github.com/shopspring/decimal"
)

const (
	// MaxMinor is the largest amount, in minor units, accepted for a single operation.
	MaxMinor int64 = 1_000_000_000_000_000

	defaultExponent int32 = 2
	maxInputLength        = 64
)

// exponents lists ISO 4217 currencies whose minor unit is not 1/100.
var exponents = map[string]int32{
	"BHD": 3,
	"BIF": 0,
	"CLP": 0,
	"DJF": 0,
	"GNF": 0,
	"IQD": 3,
	"ISK": 0,
	"JOD": 3,
	"JPY": 0,
	"KMF": 0,
	"KRW": 0,
	"KWD": 3,
	"LYD": 3,
	"OMR": 3,
	"PYG": 0,
	"RWF": 0,
	"TND": 3,
	"UGX": 0,
	"VND": 0,
	"VUV": 0,
	"XAF": 0,
	"XOF": 0,
	"XPF": 0,
}

// Exponent returns the number of decimal places of the currency's minor unit.
func Exponent(currency string) int32 {
	if e, ok := exponents[strings.ToUpper(currency)]; ok {
		return e
	}
	return defaultExponent
}

// ValidCurrency reports whether code looks like an ISO 4217 alphabetic code.
func ValidCurrency(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// ToMinor parses a positive decimal amount expressed in major units and
// returns it in minor units. Amounts are never rounded: extra precision is an error.
func ToMinor(raw, currency string) (int64, error) {
	d, err := Parse(raw)
	if err != nil {
		return 0, err
	}
	if d.Sign() <= 0 {
		return 0, apperrors.NewInvalidAmountError(apperrors.ErrAmountNotPositive)
	}
	return toMinor(d, currency)
}

// BalanceToMinor is ToMinor for seed balances, where zero is allowed.
func BalanceToMinor(d decimal.Decimal, currency string) (int64, error) {
	if d.Sign() < 0 {
		return 0, apperrors.NewInvalidAmountError("balance must not be negative")
	}
	if d.Sign() == 0 {
		return 0, nil
	}
	return toMinor(d, currency)
}

// Parse reads a decimal string. NaN, infinities and oversized inputs are rejected.
func Parse(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxInputLength {
		return decimal.Decimal{}, apperrors.NewInvalidAmountError(apperrors.ErrAmountMalformed)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, apperrors.NewInvalidAmountError(apperrors.ErrAmountMalformed)
	}
	// 1e19 and above cannot fit in MaxMinor whatever the currency.
	if d.Sign() != 0 && d.Exponent() > 18 {
		return decimal.Decimal{}, apperrors.NewInvalidAmountError(apperrors.ErrAmountTooLarge)
	}
	return d, nil
}

func toMinor(d decimal.Decimal, currency string) (int64, error) {
	m := d.Shift(Exponent(currency))
	if !m.IsInteger() {
		return 0, apperrors.NewInvalidAmountError(apperrors.ErrAmountPrecision)
	}
	if m.GreaterThan(decimal.NewFromInt(MaxMinor)) {
		return 0, apperrors.NewInvalidAmountError(apperrors.ErrAmountTooLarge)
	}
	return m.IntPart(), nil
}

// FromMinor returns the exact major-unit value of a minor-unit amount.
func FromMinor(minor int64, currency string) decimal.Decimal {
	return decimal.New(minor, -Exponent(currency))
}

// Format renders a minor-unit amount with the currency's fixed number of decimals.
func Format(minor int64, currency string) string {
	return FromMinor(minor, currency).StringFixed(Exponent(currency))
}
