package booking

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/idohairstudios/salon-booking/internal/audit"
	domain "github.com/idohairstudios/salon-booking/internal/domain/booking"
	"github.com/idohairstudios/salon-booking/internal/metrics"
)

// ======================================================
// USE CASE
// ======================================================

// SweepPending moves stale PENDING_PAYMENT appointments to abandoned so
// they stop accumulating. Pending appointments never hold capacity (the
// slot is consumed at confirmation), so there is nothing to release.
type SweepPending struct {
	store domain.AppointmentStore
	audit Auditor
	ttl   time.Duration
	log   zerolog.Logger
}

func NewSweepPending(
	store domain.AppointmentStore,
	auditDispatcher Auditor,
	ttl time.Duration,
	log zerolog.Logger,
) *SweepPending {
	return &SweepPending{
		store: store,
		audit: auditDispatcher,
		ttl:   ttl,
		log:   log.With().Str("usecase", "sweep_pending").Logger(),
	}
}

// Execute marks every pending appointment older than the TTL abandoned
// and returns how many it swept.
func (uc *SweepPending) Execute(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-uc.ttl)

	stale, err := uc.store.ListPendingBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	swept := 0
	for i := range stale {
		ap := &stale[i]

		if err := domain.Abandon(ap); err != nil {
			uc.log.Warn().Err(err).Uint("id", ap.ID).Msg("sweep transition rejected")
			continue
		}
		if err := uc.store.Update(ctx, ap); err != nil {
			uc.log.Error().Err(err).Uint("id", ap.ID).Msg("sweep update failed")
			continue
		}

		uc.audit.Dispatch(audit.Event{
			Action:   "booking_abandoned",
			Entity:   "appointment",
			EntityID: &ap.ID,
			Metadata: map[string]any{"reference": ap.PaymentReference, "reason": "swept"},
		})
		metrics.IncBookingAbandoned("swept")
		swept++
	}

	if swept > 0 {
		uc.log.Info().Int("swept", swept).Msg("stale pending appointments abandoned")
	}

	return swept, nil
}

// Run drives Execute on a ticker until the context is cancelled.
func (uc *SweepPending) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if _, err := uc.Execute(ctx, now); err != nil {
				uc.log.Error().Err(err).Msg("sweep failed")
			}
		}
	}
}
