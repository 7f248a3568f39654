package app

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/mufasadev/account-ledger/internal/config"
	"github.com/mufasadev/account-ledger/pkg/log"
)

type ReportHandler interface {
	Execute(ctx context.Context) error
}

type LedgerReportProcess struct {
	handler  ReportHandler
	interval time.Duration
}

// NewLedgerReportProcess parses the interval (seconds) from cfg. A
// non-positive interval disables the process.
func NewLedgerReportProcess(h ReportHandler, cfg config.Process) (*LedgerReportProcess, error) {
	seconds, err := strconv.Atoi(cfg.Interval)
	if err != nil {
		return nil, fmt.Errorf("report interval %q: %w", cfg.Interval, err)
	}
	return &LedgerReportProcess{handler: h, interval: time.Duration(seconds) * time.Second}, nil
}

// Run calls the handler on every tick until ctx is cancelled.
func (p *LedgerReportProcess) Run(ctx context.Context) {
	if p.interval <= 0 {
		return
	}
	logger := log.GetLogger()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.handler.Execute(ctx); err != nil && ctx.Err() == nil {
				logger.Error().Err(err).Msg("ledger report failed")
			}
		}
	}
}
