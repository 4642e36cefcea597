package booking

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/idohairstudios/salon-booking/internal/audit"
	"github.com/idohairstudios/salon-booking/internal/cache"
	domain "github.com/idohairstudios/salon-booking/internal/domain/booking"
	"github.com/idohairstudios/salon-booking/internal/models"
	"github.com/idohairstudios/salon-booking/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

// CancelAppointment is the admin cancellation. Cancelling a confirmed
// appointment releases its capacity slot back to the date.
type CancelAppointment struct {
	ledger domain.SlotLedger
	store  AppointmentFinder
	cache  DatesCache
	audit  Auditor
	tz     string
	log    zerolog.Logger
}

// AppointmentFinder extends the store with the by-id lookup the admin
// surface works with.
type AppointmentFinder interface {
	domain.AppointmentStore
	GetByID(ctx context.Context, id uint) (*models.Appointment, error)
}

func NewCancelAppointment(
	ledger domain.SlotLedger,
	store AppointmentFinder,
	datesCache DatesCache,
	auditDispatcher Auditor,
	tz string,
	log zerolog.Logger,
) *CancelAppointment {
	return &CancelAppointment{
		ledger: ledger,
		store:  store,
		cache:  datesCache,
		audit:  auditDispatcher,
		tz:     tz,
		log:    log.With().Str("usecase", "cancel_appointment").Logger(),
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.store.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	wasConfirmed := domain.Status(ap.Status) == domain.StatusConfirmed

	now := timezone.NowIn(uc.tz)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.store.Update(ctx, ap); err != nil {
		return nil, err
	}

	if wasConfirmed {
		if date, derr := uc.ledger.FindByDay(ctx, ap.Date); derr == nil {
			if rerr := uc.ledger.Release(ctx, date.ID); rerr != nil {
				uc.log.Warn().Err(rerr).Uint("date_id", date.ID).Msg("capacity release failed")
			}
		}
		uc.cache.InvalidatePrefix(ctx, cache.DatesPrefix)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
