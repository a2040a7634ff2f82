package sched

import (
	"context"
	"time"

	"chatcart/internal/infra/metrics"
	"chatcart/internal/usecase"

	"github.com/rs/zerolog"
)

// StatsWorker periodically publishes subscription totals to the metrics
// registry so the gauges stay fresh even without traffic.
type StatsWorker struct {
	interval time.Duration
	subUC    usecase.SubscriptionUseCase
	log      *zerolog.Logger
}

func NewStatsWorker(interval time.Duration, subUC usecase.SubscriptionUseCase, logger *zerolog.Logger) *StatsWorker {
	statsLog := logger.With().Str("component", "StatsWorker").Logger()
	return &StatsWorker{
		interval: interval,
		subUC:    subUC,
		log:      &statsLog,
	}
}

func (w *StatsWorker) Run(ctx context.Context) error {
	w.log.Info().Msg("Starting stats worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.publish(ctx)
	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Stopping stats worker")
			return ctx.Err()
		case <-ticker.C:
			w.publish(ctx)
		}
	}
}

func (w *StatsWorker) publish(ctx context.Context) {
	counts, err := w.subUC.CountByStatus(ctx)
	if err != nil {
		w.log.Error().Err(err).Msg("stats worker error")
		return
	}
	metrics.SetSubscriptionsTotal(counts)
}
