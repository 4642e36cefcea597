package booking

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/idohairstudios/salon-booking/internal/audit"
	"github.com/idohairstudios/salon-booking/internal/cache"
	domain "github.com/idohairstudios/salon-booking/internal/domain/booking"
	"github.com/idohairstudios/salon-booking/internal/httperr"
	"github.com/idohairstudios/salon-booking/internal/metrics"
	"github.com/idohairstudios/salon-booking/internal/models"
	"github.com/idohairstudios/salon-booking/internal/notify"
	"github.com/idohairstudios/salon-booking/internal/payment"
	"github.com/idohairstudios/salon-booking/internal/timezone"
)

const reconcileGuardTTL = 30 * time.Second

type ReconcileResult struct {
	Success     bool
	Pending     bool
	NeedsReview bool
	Appointment *models.Appointment
}

// ======================================================
// USE CASE
// ======================================================

// ReconcileBooking runs the PENDING_PAYMENT -> CONFIRMED transition: it
// verifies the external transaction and applies its effect to the
// appointment and the slot ledger exactly once. Designed for repeated
// polling: "still pending" results are side-effect free, and the
// success path is idempotent under replays.
type ReconcileBooking struct {
	ledger  domain.SlotLedger
	store   domain.AppointmentStore
	gateway payment.Gateway
	guard   Guard
	cache   DatesCache
	audit   Auditor
	sender  notify.Sender

	tz  string
	log zerolog.Logger
}

func NewReconcileBooking(
	ledger domain.SlotLedger,
	store domain.AppointmentStore,
	gateway payment.Gateway,
	guard Guard,
	datesCache DatesCache,
	auditDispatcher Auditor,
	sender notify.Sender,
	tz string,
	log zerolog.Logger,
) *ReconcileBooking {
	return &ReconcileBooking{
		ledger:  ledger,
		store:   store,
		gateway: gateway,
		guard:   guard,
		cache:   datesCache,
		audit:   auditDispatcher,
		sender:  sender,
		tz:      tz,
		log:     log.With().Str("usecase", "reconcile_booking").Logger(),
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ReconcileBooking) Execute(
	ctx context.Context,
	reference string,
) (*ReconcileResult, error) {

	if reference == "" {
		return nil, httperr.ErrBusinessf("missing_required_fields", "reference is required")
	}

	// --------------------------------------------------
	// 1. Guard against concurrent polls for the same reference
	// --------------------------------------------------
	guardKey := "reconcile:" + reference
	acquired, err := uc.guard.AcquireOnce(ctx, guardKey, reconcileGuardTTL)
	if err != nil {
		// Guard unavailable; the duplicate check in RecordPayment still
		// keeps replays safe, so carry on.
		uc.log.Warn().Err(err).Str("reference", reference).Msg("reconcile guard unavailable")
	} else if !acquired {
		return &ReconcileResult{Pending: true}, nil
	} else {
		defer func() {
			if relErr := uc.guard.Release(context.Background(), guardKey); relErr != nil {
				uc.log.Warn().Err(relErr).Msg("guard release failed")
			}
		}()
	}

	// --------------------------------------------------
	// 2. Load the appointment
	// --------------------------------------------------
	ap, err := uc.store.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	switch domain.Status(ap.Status) {
	case domain.StatusConfirmed:
		// Replayed success poll.
		return &ReconcileResult{Success: true, Appointment: ap}, nil
	case domain.StatusNeedsReview:
		return &ReconcileResult{Success: true, NeedsReview: true, Appointment: ap}, nil
	case domain.StatusCancelled:
		return nil, httperr.ErrBusiness("invalid_state")
	}

	// --------------------------------------------------
	// 3. Ask the gateway
	// --------------------------------------------------
	verified, err := uc.gateway.Verify(ctx, reference)
	if err != nil {
		// Verification failure preserves the appointment; no compensation.
		return nil, err
	}

	if verified.Pending {
		return &ReconcileResult{Pending: true, Appointment: ap}, nil
	}

	now := timezone.NowIn(uc.tz)

	// --------------------------------------------------
	// 4. Explicit failure -> abandoned, record retained
	// --------------------------------------------------
	if !verified.Paid {
		if err := domain.Abandon(ap); err != nil {
			return nil, err
		}
		if err := uc.store.Update(ctx, ap); err != nil {
			return nil, err
		}

		uc.audit.Dispatch(audit.Event{
			Action:   "booking_abandoned",
			Entity:   "appointment",
			EntityID: &ap.ID,
			Metadata: map[string]any{"reference": reference, "reason": "verify_failed"},
		})
		metrics.IncBookingAbandoned("verify_failed")

		return &ReconcileResult{Appointment: ap}, nil
	}

	// --------------------------------------------------
	// 5. Verified success -> record payment (idempotent)
	// --------------------------------------------------
	applied, err := domain.RecordPayment(ap, verified.Amount, verified.Method, reference, "", now)
	if err != nil {
		return nil, err
	}
	if !applied {
		uc.log.Info().Str("reference", reference).Msg("duplicate reconciliation, payment already recorded")
	}

	// A partial payment keeps the appointment pending; capacity is only
	// consumed once the booking is fully paid.
	if domain.PaymentStatus(ap.PaymentStatus) != domain.PaymentFull {
		if err := uc.store.Update(ctx, ap); err != nil {
			return nil, err
		}
		return &ReconcileResult{Pending: true, Appointment: ap}, nil
	}

	// --------------------------------------------------
	// 6. Consume the capacity slot
	// --------------------------------------------------
	date, err := uc.ledger.FindByDay(ctx, ap.Date)

	var reserveErr error
	if err != nil {
		reserveErr = err // date deleted since booking started
	} else {
		reserveErr = uc.ledger.Reserve(ctx, date.ID)
	}

	switch {
	case reserveErr == nil:
		if err := domain.Confirm(ap, now); err != nil {
			return nil, err
		}

	case httperr.IsBusiness(reserveErr, "capacity_exceeded"),
		httperr.IsBusiness(reserveErr, "date_not_found"),
		httperr.IsBusiness(reserveErr, "date_not_available"):
		// Lost the race for the last slot (or the date vanished). The
		// customer has paid, so flag for manual resolution instead of
		// overbooking.
		if err := domain.FlagForReview(ap); err != nil {
			return nil, err
		}

		uc.audit.Dispatch(audit.Event{
			Action:   "capacity_conflict",
			Entity:   "appointment",
			EntityID: &ap.ID,
			Metadata: map[string]any{"reference": reference, "date": ap.Date.Format("2006-01-02")},
		})
		metrics.IncBookingNeedsReview()

	default:
		return nil, reserveErr
	}

	if err := uc.store.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidatePrefix(ctx, cache.DatesPrefix)

	// --------------------------------------------------
	// 7. Side effects for the confirmed path
	// --------------------------------------------------
	if domain.Status(ap.Status) == domain.StatusConfirmed {
		uc.audit.Dispatch(audit.Event{
			Action:   "booking_confirmed",
			Entity:   "appointment",
			EntityID: &ap.ID,
			Metadata: map[string]any{"reference": reference, "amount": verified.Amount},
		})
		metrics.IncBookingConfirmed()

		notice := notify.BookingNotice{
			Name:     ap.Name,
			Phone:    ap.Phone,
			Whatsapp: ap.Whatsapp,
			Service:  ap.Service,
			Date:     ap.Date.Format("2006-01-02"),
			TimeSlot: ap.TimeSlot,
			Total:    ap.TotalAmount,
		}
		go func() {
			if err := uc.sender.SendConfirmation(context.Background(), notice); err != nil {
				uc.log.Warn().Err(err).Msg("confirmation notice failed")
			}
		}()
	}

	return &ReconcileResult{
		Success:     true,
		NeedsReview: domain.Status(ap.Status) == domain.StatusNeedsReview,
		Appointment: ap,
	}, nil
}
