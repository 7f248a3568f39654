package interactor

import (
	"context"
	"sort"
	"sync"

	"github.com/mufasadev/account-ledger/internal/domain/money"
	"github.com/mufasadev/account-ledger/internal/domain/repositories"
	"github.com/mufasadev/account-ledger/pkg/log"
	"github.com/rs/zerolog"
)

// CurrencyTotal is the sum of all balances held in one currency.
type CurrencyTotal struct {
	Currency string
	Accounts int
	Total    int64
}

type ReportInteractor struct {
	ledger repositories.AccountLedger
	logger *zerolog.Logger
	sync.Mutex
	counter int
}

// NewReportInteractor creates a new ReportInteractor
func NewReportInteractor(ledger repositories.AccountLedger) *ReportInteractor {
	l := log.GetLogger()
	return &ReportInteractor{
		ledger: ledger,
		logger: &l,
	}
}

// Totals sums the ledger per currency.
func (r *ReportInteractor) Totals() []CurrencyTotal {
	byCurrency := make(map[string]*CurrencyTotal)
	for _, a := range r.ledger.Snapshot() {
		t, ok := byCurrency[a.Currency]
		if !ok {
			t = &CurrencyTotal{Currency: a.Currency}
			byCurrency[a.Currency] = t
		}
		t.Accounts++
		t.Total += a.Balance
	}

	out := make([]CurrencyTotal, 0, len(byCurrency))
	for _, t := range byCurrency {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out
}

// Execute logs the per-currency totals of the ledger.
func (r *ReportInteractor) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.Lock()
	defer r.Unlock()
	r.counter++

	for _, t := range r.Totals() {
		r.logger.Info().
			Int("run", r.counter).
			Str("currency", t.Currency).
			Int("accounts", t.Accounts).
			Str("total", money.Format(t.Total, t.Currency)).
			Msg("ledger totals")
	}

	return nil
}

// Runs returns how many times Execute has completed.
func (r *ReportInteractor) Runs() int {
	r.Lock()
	defer r.Unlock()
	return r.counter
}
